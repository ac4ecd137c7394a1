package session

// Session is the persisted auth state: a token and a flag trusted at face
// value by gated views. It is a routing convenience, not a security
// boundary; the backend re-checks the token on every admin call.
type Session struct {
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}
