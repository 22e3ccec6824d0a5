// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pestopia/backend/internal/core"
)

type fakeUserProvider struct {
	users           map[string]*UserInfo
	createErr       error
	updatedPassword string
}

func newFakeUserProvider() *fakeUserProvider {
	return &fakeUserProvider{users: make(map[string]*UserInfo)}
}

func (f *fakeUserProvider) GetByEmail(
	_ context.Context,
	email string,
) (*UserInfo, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserProvider) GetByID(
	_ context.Context,
	id string,
) (*UserInfo, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeUserProvider) Create(
	_ context.Context,
	email, passwordHash, name string,
) (*UserInfo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u := &UserInfo{
		ID:           "u-" + email,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserProvider) UpdatePassword(
	_ context.Context,
	_ string,
	passwordHash string,
) error {
	f.updatedPassword = passwordHash
	return nil
}

func newTestService(t *testing.T, provider UserProvider) *Service {
	t.Helper()

	manager, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)

	return NewService(manager, provider)
}

func TestService_SignupThenSignin(t *testing.T) {
	t.Parallel()

	provider := newFakeUserProvider()
	svc := newTestService(t, provider)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, SignupRequest{
		Email:    "a@x.com",
		Password: "longenough1",
		Name:     "Ada",
	})
	require.NoError(t, err)
	require.Equal(t, "a@x.com", signup.User.Email)
	require.Equal(t, "Bearer", signup.Token.TokenType)
	require.NotEmpty(t, signup.Token.Token)

	signin, err := svc.Signin(ctx, SigninRequest{
		Email:    "a@x.com",
		Password: "longenough1",
	})
	require.NoError(t, err)
	require.Equal(t, signup.User.ID, signin.User.ID)
}

func TestService_SigninWrongPassword(t *testing.T) {
	t.Parallel()

	provider := newFakeUserProvider()
	svc := newTestService(t, provider)
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupRequest{
		Email:    "a@x.com",
		Password: "longenough1",
	})
	require.NoError(t, err)

	_, err = svc.Signin(ctx, SigninRequest{
		Email:    "a@x.com",
		Password: "not-the-password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_SigninUnknownEmail(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newFakeUserProvider())

	_, err := svc.Signin(context.Background(), SigninRequest{
		Email:    "nobody@x.com",
		Password: "whatever12",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_SignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	provider := newFakeUserProvider()
	provider.createErr = core.ErrDuplicateKey
	svc := newTestService(t, provider)

	_, err := svc.Signup(context.Background(), SignupRequest{
		Email:    "a@x.com",
		Password: "longenough1",
	})
	require.ErrorIs(t, err, ErrEmailExists)
}

func TestService_TokenCarriesIdentity(t *testing.T) {
	t.Parallel()

	provider := newFakeUserProvider()
	manager, err := NewJWTManager(testJWTConfig())
	require.NoError(t, err)
	svc := NewService(manager, provider)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, SignupRequest{
		Email:    "a@x.com",
		Password: "longenough1",
	})
	require.NoError(t, err)

	claims, err := manager.VerifyToken(ctx, resp.Token.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, claims.UserID)
	require.Equal(t, "a@x.com", claims.Email)
}
