package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"

	domsession "example.com/trustylads/storefront/internal/domain/session"
	"example.com/trustylads/storefront/internal/domain/storage"
)

const namespaceKey = "trustylads-auth"

type SnapshotRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

type Claims struct {
	Email string
	Role  string
}

type TokenService interface {
	GenerateToken(email string) (string, error)
	ParseToken(token string) (*Claims, error)
}

type PasswordComparer interface {
	Compare(hash string, password string) error
}

// AdminCredential is the single configured dashboard login.
type AdminCredential struct {
	Email        string
	PasswordHash string
}

// Service is the auth store: a persisted token plus an authenticated
// flag per session. The flag is trusted at face value by gated views;
// no expiry or server-side validation happens here.
type Service struct {
	repo    SnapshotRepository
	tokens  TokenService
	checker PasswordComparer
	admin   AdminCredential
	log     *slog.Logger

	mu       sync.Mutex
	sessions map[string]*domsession.Session
}

func NewService(repo SnapshotRepository, tokens TokenService, checker PasswordComparer, admin AdminCredential, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		checker:  checker,
		admin:    admin,
		log:      log,
		sessions: make(map[string]*domsession.Session),
	}
}

func key(sessionID string) string {
	return namespaceKey + ":" + sessionID
}

func (s *Service) session(ctx context.Context, sessionID string) *domsession.Session {
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}

	sess := &domsession.Session{}
	data, err := s.repo.Load(ctx, key(sessionID))
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		s.log.Warn("auth snapshot load failed", "session", sessionID, "error", err)
	default:
		if err := json.Unmarshal(data, sess); err != nil {
			s.log.Warn("auth snapshot corrupt, starting logged out", "session", sessionID, "error", err)
			sess = &domsession.Session{}
		}
	}
	s.sessions[sessionID] = sess
	return sess
}

func (s *Service) persist(ctx context.Context, sessionID string, sess *domsession.Session) {
	data, err := json.Marshal(sess)
	if err != nil {
		s.log.Warn("auth snapshot encode failed", "session", sessionID, "error", err)
		return
	}
	if err := s.repo.Save(ctx, key(sessionID), data); err != nil {
		s.log.Warn("auth snapshot save failed", "session", sessionID, "error", err)
	}
}

// Login stores the token and flips the authenticated flag, persisted.
func (s *Service) Login(ctx context.Context, sessionID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sessionID)
	sess.Token = token
	sess.IsAuthenticated = true
	s.persist(ctx, sessionID, sess)
}

// Logout clears both fields, persisted.
func (s *Service) Logout(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(ctx, sessionID)
	sess.Token = ""
	sess.IsAuthenticated = false
	s.persist(ctx, sessionID, sess)
}

func (s *Service) Session(ctx context.Context, sessionID string) domsession.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.session(ctx, sessionID)
}

func (s *Service) IsAuthenticated(ctx context.Context, sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(ctx, sessionID).IsAuthenticated
}

func (s *Service) Token(ctx context.Context, sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(ctx, sessionID).Token
}

// AdminLogin checks the dashboard credential, issues a session token and
// logs the session in.
func (s *Service) AdminLogin(ctx context.Context, sessionID, email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", domsession.ErrInvalidCredential
	}
	if email != strings.ToLower(s.admin.Email) {
		return "", domsession.ErrInvalidCredential
	}
	if err := s.checker.Compare(s.admin.PasswordHash, password); err != nil {
		return "", domsession.ErrInvalidCredential
	}

	token, err := s.tokens.GenerateToken(email)
	if err != nil {
		return "", err
	}

	s.Login(ctx, sessionID, token)
	return token, nil
}
