package command

import (
	"context"
	"testing"
	"time"

	"rifq-petcare/internal/infrastructure/bus"
	"rifq-petcare/internal/infrastructure/memory"

	jwtutil "rifq-petcare/pkg/jwt"
)

func newAuthHandlers() *AuthHandlers {
	jwtManager := jwtutil.NewJWTManager("test-secret", time.Hour)
	return NewAuthHandlers(memory.NewUserRepository(), bus.NewInMemoryEventBus(), jwtManager)
}

func TestSignUpAndLogin(t *testing.T) {
	h := newAuthHandlers()
	ctx := context.Background()

	result, err := h.HandleSignUp(ctx, SignUp{
		FirstName: "أحمد",
		LastName:  "محمد",
		Email:     "ahmed@example.com",
		Phone:     "0551234567",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("HandleSignUp: %v", err)
	}
	if result.Token == "" {
		t.Error("signup should issue a token")
	}
	if result.User.PasswordHash == "" || result.User.PasswordHash == "secret123" {
		t.Error("password must be stored hashed")
	}

	login, err := h.HandleLogin(ctx, Login{Email: "ahmed@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("HandleLogin: %v", err)
	}
	if login.User.ID != result.User.ID {
		t.Error("login returned a different user")
	}

	if _, err := h.HandleLogin(ctx, Login{Email: "ahmed@example.com", Password: "wrong"}); err == nil {
		t.Error("expected error for wrong password")
	}
	if _, err := h.HandleLogin(ctx, Login{Email: "nobody@example.com", Password: "secret123"}); err == nil {
		t.Error("expected error for unknown email")
	}
}

func TestSignUpValidatesEmailFormat(t *testing.T) {
	h := newAuthHandlers()

	_, err := h.HandleSignUp(context.Background(), SignUp{
		FirstName: "أحمد",
		LastName:  "محمد",
		Email:     "not-an-email",
		Password:  "secret123",
	})
	if err == nil {
		t.Error("signup must validate email format")
	}
}

func TestUpdateProfile(t *testing.T) {
	h := newAuthHandlers()
	ctx := context.Background()

	result, err := h.HandleSignUp(ctx, SignUp{
		FirstName: "أحمد",
		LastName:  "محمد",
		Email:     "ahmed@example.com",
		Password:  "secret123",
	})
	if err != nil {
		t.Fatalf("HandleSignUp: %v", err)
	}

	user, err := h.HandleUpdateProfile(ctx, UpdateProfile{
		UserID:    result.User.ID,
		FirstName: "خالد",
		LastName:  "محمد",
		Phone:     "0559999999",
	})
	if err != nil {
		t.Fatalf("HandleUpdateProfile: %v", err)
	}
	if user.FirstName != "خالد" || user.Phone != "0559999999" {
		t.Errorf("profile not updated: %+v", user)
	}
}
