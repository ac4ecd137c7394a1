package postal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.postalpincode.in"

var ErrLookupFailed = errors.New("pincode lookup failed")

// Client resolves six-digit Indian PIN codes to district/state through
// the public postalpincode.in API. Lookup failures are logged by the
// caller and never surfaced to the user.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type Place struct {
	City  string
	State string
}

type lookupEntry struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

// Lookup returns the district and state for a PIN code. Anything short of
// a Success entry with at least one post office is ErrLookupFailed.
func (c *Client) Lookup(ctx context.Context, pinCode string) (*Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/pincode/"+pinCode, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrLookupFailed
	}

	var entries []lookupEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 || entries[0].Status != "Success" || len(entries[0].PostOffice) == 0 {
		return nil, ErrLookupFailed
	}

	office := entries[0].PostOffice[0]
	return &Place{City: office.District, State: office.State}, nil
}
