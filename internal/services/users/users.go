package users

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/fitgym/fgms/internal/config"
	"github.com/fitgym/fgms/internal/dto"
	"github.com/fitgym/fgms/internal/repository"
	svc "github.com/fitgym/fgms/internal/services"
	"github.com/fitgym/fgms/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

var _ UserRepository = (*repository.UserRepository)(nil)

var _ TokenService = (*token.Jwt)(nil)

const RoleAdmin = "admin"

type UserRepository interface {
	Get(ctx context.Context, filter repository.UserRepositoryFilter) (*repository.User, error)
	Exists(ctx context.Context, filter repository.UserRepositoryFilter) (bool, error)
	Create(ctx context.Context, user *repository.User) (*repository.User, error)
}

type TokenService interface {
	GenerateTokenPair(params *token.TokenPairParams) (*token.TokenPair, error)
	ValidateToken(tokenString string) (*token.UserClaims, error)
}

type User struct {
	Config       *config.Config
	TokenService TokenService
	UserRepo     UserRepository
}

func New(cfg *config.Config, tokenService TokenService, userRepo UserRepository) *User {
	return &User{
		Config:       cfg,
		TokenService: tokenService,
		UserRepo:     userRepo,
	}
}

func (u *User) Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthResponse, error) {
	emailExists, err := u.UserRepo.Exists(ctx, repository.UserRepositoryFilter{
		Email: &input.Email,
	})
	if err != nil {
		return nil, err
	}
	if emailExists {
		return nil, &svc.APIError{
			Status:  http.StatusBadRequest,
			Message: "User already exists",
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := u.UserRepo.Create(ctx, &repository.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Role:         RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	return u.authResponse(user)
}

func (u *User) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := u.UserRepo.Get(ctx, repository.UserRepositoryFilter{
		Email: &input.Email,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &svc.APIError{
				Status:  http.StatusBadRequest,
				Message: "Invalid credentials",
			}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, &svc.APIError{
			Status:  http.StatusBadRequest,
			Message: "Invalid credentials",
		}
	}

	return u.authResponse(user)
}

// Refresh exchanges a live refresh token for a fresh pair. Verification
// is stateless; there is no server-side session to look up.
func (u *User) Refresh(ctx context.Context, input *dto.RefreshInput) (*dto.AuthResponse, error) {
	claims, err := u.TokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, &svc.APIError{
			Status:  http.StatusUnauthorized,
			Message: "Invalid or expired refresh token",
		}
	}

	user, err := u.UserRepo.Get(ctx, repository.UserRepositoryFilter{
		ID: &claims.ID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &svc.APIError{
				Status:  http.StatusUnauthorized,
				Message: "Invalid or expired refresh token",
			}
		}
		return nil, err
	}

	return u.authResponse(user)
}

func (u *User) authResponse(user *repository.User) (*dto.AuthResponse, error) {
	pair, err := u.TokenService.GenerateTokenPair(&token.TokenPairParams{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User: &dto.AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(token.AccessTokenExpirationTime.Seconds()),
	}, nil
}
