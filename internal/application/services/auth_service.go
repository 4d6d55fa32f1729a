package services

import (
	"context"

	"rifq-petcare/internal/application/command"
	"rifq-petcare/internal/domain/aggregate"
)

// AuthService orchestrates account operations
type AuthService struct {
	authHandlers *command.AuthHandlers
}

func NewAuthService(authHandlers *command.AuthHandlers) *AuthService {
	return &AuthService{authHandlers: authHandlers}
}

func (s *AuthService) SignUp(ctx context.Context, cmd command.SignUp) (*command.AuthResult, error) {
	return s.authHandlers.HandleSignUp(ctx, cmd)
}

func (s *AuthService) Login(ctx context.Context, cmd command.Login) (*command.AuthResult, error) {
	return s.authHandlers.HandleLogin(ctx, cmd)
}

func (s *AuthService) UpdateProfile(ctx context.Context, cmd command.UpdateProfile) (*aggregate.User, error) {
	return s.authHandlers.HandleUpdateProfile(ctx, cmd)
}
