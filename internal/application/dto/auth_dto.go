package dto

import "time"

// RegisterRequest entrada para registro. Bio y Specialty solo aplican cuando
// role es Designer (crean el perfil de merchant en el mismo registro).
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=Customer Designer Admin"`
	FirstName string `json:"first_name" validate:"omitempty,max=50"`
	LastName  string `json:"last_name" validate:"omitempty,max=50"`
	Bio       string `json:"bio,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Role       string    `json:"role"`
	DateJoined time.Time `json:"date_joined"`
	MerchantID int64     `json:"merchant_id,omitempty"` // solo diseñadores
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT, rol y userId (contrato del cliente web).
type LoginResponse struct {
	Token  string `json:"token"`
	Role   string `json:"role"`
	UserID int64  `json:"userId"`
}
