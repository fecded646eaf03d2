package models

import "time"

type User struct {
	ID             int        `json:"id"`
	Email          string     `json:"email"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	BirthDate      *string    `json:"birth_date"`
	Position       string     `json:"position"`
	Department     string     `json:"department"`
	PhoneNumber    string     `json:"phone_number"`
	EmploymentDate string     `json:"employment_date"`
	Avatar         string     `json:"avatar,omitempty"`
	Role           string     `json:"role"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// TokenPair is what /login/ returns next to the user profile and what the
// session persists to durable storage.
type TokenPair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

type AuthResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

// Employee is the /employees/ projection of a user account.
type Employee = User

type Role struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type NewEmployee struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name" validate:"required"`
	Position       string `json:"position"`
	Department     string `json:"department"`
	PhoneNumber    string `json:"phone_number"`
	Role           string `json:"role" validate:"required"`
	EmploymentDate string `json:"employment_date,omitempty"`
}
