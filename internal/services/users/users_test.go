package users

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitgym/fgms/internal/config"
	"github.com/fitgym/fgms/internal/dto"
	"github.com/fitgym/fgms/internal/repository"
	svc "github.com/fitgym/fgms/internal/services"
	"github.com/fitgym/fgms/pkg/token"
)

type fakeUserRepo struct {
	users []repository.User
}

func (f *fakeUserRepo) find(filter repository.UserRepositoryFilter) *repository.User {
	for i := range f.users {
		u := &f.users[i]
		if filter.ID != nil && u.ID != *filter.ID {
			continue
		}
		if filter.Email != nil && u.Email != *filter.Email {
			continue
		}
		return u
	}
	return nil
}

func (f *fakeUserRepo) Get(_ context.Context, filter repository.UserRepositoryFilter) (*repository.User, error) {
	if u := f.find(filter); u != nil {
		found := *u
		return &found, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) Exists(_ context.Context, filter repository.UserRepositoryFilter) (bool, error) {
	return f.find(filter) != nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *repository.User) (*repository.User, error) {
	created := *user
	created.ID = uuid.New()
	f.users = append(f.users, created)
	return &created, nil
}

func newTestService() (*User, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	cfg := &config.Config{}
	return New(cfg, token.NewJwt("test-secret"), repo), repo
}

func apiError(t *testing.T, err error) *svc.APIError {
	t.Helper()
	var apiErr *svc.APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestRegister(t *testing.T) {
	service, repo := newTestService()

	resp, err := service.Register(context.Background(), &dto.RegisterInput{
		Name:     "Admin",
		Email:    "admin@test.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@test.com", resp.User.Email)
	assert.Equal(t, RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)

	// The stored password is hashed, never the raw input.
	require.Len(t, repo.users, 1)
	assert.NotEqual(t, "admin123", repo.users[0].PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	service, _ := newTestService()

	input := &dto.RegisterInput{Name: "Admin", Email: "admin@test.com", Password: "admin123"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "User already exists", apiErr.Message)
}

func TestLogin(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), &dto.RegisterInput{
		Name:     "Admin",
		Email:    "admin@test.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &dto.LoginInput{
		Email:    "admin@test.com",
		Password: "admin123",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin@test.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := service.TokenService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.ID)
}

func TestLogin_BadCredentials(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Register(context.Background(), &dto.RegisterInput{
		Name:     "Admin",
		Email:    "admin@test.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(context.Background(), &dto.LoginInput{
			Email:    "admin@test.com",
			Password: "wrong",
		})
		apiErr := apiError(t, err)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "Invalid credentials", apiErr.Message)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(context.Background(), &dto.LoginInput{
			Email:    "nobody@test.com",
			Password: "admin123",
		})
		apiErr := apiError(t, err)
		// Same message either way so the response does not leak which
		// part was wrong.
		assert.Equal(t, "Invalid credentials", apiErr.Message)
	})
}

func TestRefresh(t *testing.T) {
	service, _ := newTestService()

	registered, err := service.Register(context.Background(), &dto.RegisterInput{
		Name:     "Admin",
		Email:    "admin@test.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	resp, err := service.Refresh(context.Background(), &dto.RefreshInput{
		RefreshToken: registered.RefreshToken,
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefresh_InvalidToken(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Refresh(context.Background(), &dto.RefreshInput{
		RefreshToken: "not.a.token",
	})
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid or expired refresh token", apiErr.Message)
}

func TestRefresh_DeletedUser(t *testing.T) {
	service, repo := newTestService()

	registered, err := service.Register(context.Background(), &dto.RegisterInput{
		Name:     "Admin",
		Email:    "admin@test.com",
		Password: "admin123",
	})
	require.NoError(t, err)

	repo.users = nil

	_, err = service.Refresh(context.Background(), &dto.RefreshInput{
		RefreshToken: registered.RefreshToken,
	})
	apiErr := apiError(t, err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestFromContext_Miss(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	user := &UserContextValue{ID: uuid.New(), Email: "admin@test.com", Role: RoleAdmin}
	got, ok := FromContext(NewContextWithUser(context.Background(), user))
	require.True(t, ok)
	assert.Equal(t, user, got)
}
