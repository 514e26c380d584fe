// Package identity implements login against the static user table and
// session resolution from issued tokens.
package identity

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/paperstock/backend/internal/domain/identity"
	"github.com/paperstock/backend/internal/domain/shared"
	"github.com/paperstock/backend/internal/infrastructure/auth"
)

// LoginInput carries the login form fields
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password"`
}

// UserInfo is the outward representation of a user
type UserInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Identifier string `json:"identifier"`
}

// LoginResult is a successful login: the user and a signed session token
type LoginResult struct {
	Token     string    `json:"token"`
	TokenType string    `json:"tokenType"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserInfo  `json:"user"`
}

// AuthService handles authentication against the static user directory
type AuthService struct {
	directory    *identity.Directory
	tokenService *auth.TokenService
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(directory *identity.Directory, tokenService *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		directory:    directory,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Login authenticates an identifier against the user table and issues a
// session token. An unknown identifier and a wrong password both surface as
// the same invalid-credentials error.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.directory.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt with unknown identifier", zap.String("identifier", input.Identifier))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid login credentials")
		}
		return nil, err
	}

	if !user.CheckPassword(input.Password) {
		s.logger.Warn("Login attempt with wrong password", zap.String("identifier", input.Identifier))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid login credentials")
	}

	session, err := s.tokenService.Issue(user.ID, user.Name, string(user.Role), user.Identifier)
	if err != nil {
		s.logger.Error("Failed to issue session token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to issue session token")
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return &LoginResult{
		Token:     session.Token,
		TokenType: session.TokenType,
		ExpiresAt: session.ExpiresAt,
		User:      toUserInfo(user),
	}, nil
}

// CurrentUser resolves a session token back to its user. The directory is
// re-consulted so a token for a removed account stops resolving.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*UserInfo, error) {
	claims, err := s.tokenService.Validate(token)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SESSION", "Session is invalid or expired")
	}

	user, err := s.directory.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_SESSION", "Session is invalid or expired")
		}
		return nil, err
	}

	info := toUserInfo(user)
	return &info, nil
}

// ListUsers returns the full user table in configured order
func (s *AuthService) ListUsers(ctx context.Context) ([]UserInfo, error) {
	users, err := s.directory.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserInfo, 0, len(users))
	for i := range users {
		out = append(out, toUserInfo(&users[i]))
	}
	return out, nil
}

func toUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:         u.ID,
		Name:       u.Name,
		Role:       string(u.Role),
		Identifier: u.Identifier,
	}
}
