package catalog

import "time"

// UserRole is the numeric role enum used by the user records the API serves.
// Distinct from the string role carried in the login response.
type UserRole int

const (
	UserRoleMember UserRole = 0
	UserRoleAdmin  UserRole = 1
)

// User is a registered library user.
type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"passwordHash"`
	Role             UserRole  `json:"role"`
	RegistrationDate time.Time `json:"registrationDate"`
	Loans            []Loan    `json:"loans,omitempty"`
	Fines            []Fine    `json:"fines,omitempty"`
	CreatedTime      time.Time `json:"createdTime"`
	UpdatedTime      time.Time `json:"updatedTime"`
}

// EditUser is the write model for registration and profile updates.
type EditUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// LoginRequest is the credential payload for /Users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
