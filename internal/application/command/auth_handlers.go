package command

import (
	"context"
	"time"

	"go.uber.org/zap"

	"rifq-petcare/internal/domain/aggregate"
	"rifq-petcare/internal/domain/event"
	"rifq-petcare/internal/domain/repository"
	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/pkg/logger"

	jwtutil "rifq-petcare/pkg/jwt"
	pkgerrors "rifq-petcare/pkg/errors"
)

// AuthResult is the outcome of a successful signup or login
type AuthResult struct {
	Token string          `json:"token"`
	User  *aggregate.User `json:"user"`
}

// AuthHandlers manages account creation, login and profile edits
type AuthHandlers struct {
	users    repository.UserRepository
	eventBus bus.EventBus
	jwt      *jwtutil.JWTManager
}

// NewAuthHandlers creates the auth command handlers
func NewAuthHandlers(users repository.UserRepository, eventBus bus.EventBus, jwtManager *jwtutil.JWTManager) *AuthHandlers {
	return &AuthHandlers{
		users:    users,
		eventBus: eventBus,
		jwt:      jwtManager,
	}
}

// HandleSignUp registers an account and signs the user in
func (h *AuthHandlers) HandleSignUp(ctx context.Context, cmd SignUp) (*AuthResult, error) {
	user, err := aggregate.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Phone, cmd.Password)
	if err != nil {
		return nil, err
	}

	if err := h.users.Create(ctx, user); err != nil {
		return nil, err
	}

	ev := &event.UserSignedUp{
		UserID:    user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Timestamp: time.Now(),
	}
	if err := h.eventBus.Publish(ctx, ev); err != nil {
		logger.L().Warn("event publish failed", zap.String("event", ev.EventType()), zap.Error(err))
	}

	return h.issueToken(user)
}

// HandleLogin verifies credentials and issues a token
func (h *AuthHandlers) HandleLogin(ctx context.Context, cmd Login) (*AuthResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, pkgerrors.NewValidationError("email and password are required")
	}

	user, err := h.users.GetByEmail(ctx, cmd.Email)
	if err != nil {
		return nil, pkgerrors.NewUnauthorizedError("invalid email or password")
	}
	if !user.CheckPassword(cmd.Password) {
		return nil, pkgerrors.NewUnauthorizedError("invalid email or password")
	}

	return h.issueToken(user)
}

// HandleUpdateProfile edits the signed-in user's profile
func (h *AuthHandlers) HandleUpdateProfile(ctx context.Context, cmd UpdateProfile) (*aggregate.User, error) {
	user, err := h.users.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := user.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.Phone, cmd.ProfileImage); err != nil {
		return nil, err
	}
	if err := h.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (h *AuthHandlers) issueToken(user *aggregate.User) (*AuthResult, error) {
	token, err := h.jwt.GenerateToken(user.ID, user.Email, user.FullName())
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to issue token")
	}
	return &AuthResult{Token: token, User: user}, nil
}
