package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	domsession "example.com/trustylads/storefront/internal/domain/session"
	"example.com/trustylads/storefront/internal/domain/storage"
)

type mockSnapshotRepository struct {
	data map[string][]byte
}

func newMockSnapshotRepository() *mockSnapshotRepository {
	return &mockSnapshotRepository{data: make(map[string][]byte)}
}

func (m *mockSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *mockSnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

type mockTokenService struct {
	generateErr error
}

func (m *mockTokenService) GenerateToken(email string) (string, error) {
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return "token-for-" + email, nil
}

func (m *mockTokenService) ParseToken(token string) (*Claims, error) {
	return &Claims{Email: "admin@trustylads.in", Role: "admin"}, nil
}

type mockComparer struct {
	hash string
}

func (m *mockComparer) Compare(hash, password string) error {
	if hash == "hash:"+password {
		return nil
	}
	return errors.New("mismatch")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo SnapshotRepository) *Service {
	admin := AdminCredential{Email: "admin@trustylads.in", PasswordHash: "hash:secret123"}
	return NewService(repo, &mockTokenService{}, &mockComparer{}, admin, testLogger())
}

func TestLoginLogout_Persisted(t *testing.T) {
	repo := newMockSnapshotRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	svc.Login(ctx, "s1", "tok123")
	require.True(t, svc.IsAuthenticated(ctx, "s1"))
	require.Equal(t, "tok123", svc.Token(ctx, "s1"))

	// A fresh service restores from the snapshot.
	restored := newTestService(repo)
	require.True(t, restored.IsAuthenticated(ctx, "s1"))

	svc.Logout(ctx, "s1")
	require.False(t, svc.IsAuthenticated(ctx, "s1"))
	require.Empty(t, svc.Token(ctx, "s1"))

	afterLogout := newTestService(repo)
	require.False(t, afterLogout.IsAuthenticated(ctx, "s1"))
}

func TestAdminLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "Valid credential", email: "admin@trustylads.in", password: "secret123"},
		{name: "Case-insensitive email", email: "Admin@TrustyLads.in", password: "secret123"},
		{name: "Wrong password", email: "admin@trustylads.in", password: "nope", wantErr: domsession.ErrInvalidCredential},
		{name: "Unknown email", email: "other@trustylads.in", password: "secret123", wantErr: domsession.ErrInvalidCredential},
		{name: "Empty password", email: "admin@trustylads.in", password: "", wantErr: domsession.ErrInvalidCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(newMockSnapshotRepository())
			ctx := context.Background()

			token, err := svc.AdminLogin(ctx, "s1", tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.False(t, svc.IsAuthenticated(ctx, "s1"))
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, token)
			require.True(t, svc.IsAuthenticated(ctx, "s1"))
			require.Equal(t, token, svc.Token(ctx, "s1"))
		})
	}
}

func TestSessionsIndependent(t *testing.T) {
	svc := newTestService(newMockSnapshotRepository())
	ctx := context.Background()

	svc.Login(ctx, "s1", "tok")
	require.True(t, svc.IsAuthenticated(ctx, "s1"))
	require.False(t, svc.IsAuthenticated(ctx, "s2"))
}
