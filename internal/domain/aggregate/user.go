package aggregate

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	pkgerrors "rifq-petcare/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Preferences are the user's app toggles
type Preferences struct {
	Notifications bool `json:"notifications" bson:"notifications"`
	DarkMode      bool `json:"darkMode" bson:"dark_mode"`
}

// User is the account profile document
type User struct {
	ID           string      `json:"id" bson:"_id"`
	FirstName    string      `json:"firstName" bson:"first_name"`
	LastName     string      `json:"lastName" bson:"last_name"`
	Email        string      `json:"email" bson:"email"`
	Phone        string      `json:"phone" bson:"phone"`
	PasswordHash string      `json:"-" bson:"password_hash"`
	ProfileImage string      `json:"profileImage" bson:"profile_image"`
	Preferences  Preferences `json:"preferences" bson:"preferences"`
	CreatedAt    time.Time   `json:"createdAt" bson:"created_at"`
}

// NewUser registers an account. Signup validates email format, unlike the
// checkout form which only checks presence.
func NewUser(firstName, lastName, email, phone, password string) (*User, error) {
	if firstName == "" {
		return nil, pkgerrors.NewValidationError("first name is required")
	}
	if lastName == "" {
		return nil, pkgerrors.NewValidationError("last name is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, pkgerrors.NewValidationError("invalid email address")
	}
	if len(password) < 6 {
		return nil, pkgerrors.NewValidationError("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to hash password")
	}

	return &User{
		ID:           uuid.New().String(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Preferences:  Preferences{Notifications: true},
		CreatedAt:    time.Now(),
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// FullName joins first and last name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UpdateProfile replaces editable profile fields
func (u *User) UpdateProfile(firstName, lastName, phone, profileImage string) error {
	if firstName == "" {
		return pkgerrors.NewValidationError("first name is required")
	}
	if lastName == "" {
		return pkgerrors.NewValidationError("last name is required")
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.Phone = phone
	u.ProfileImage = profileImage
	return nil
}
