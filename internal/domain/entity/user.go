package entity

import (
	"fmt"
	"time"
)

// Role es el rol cerrado de un usuario. Se fija en el registro y no cambia.
type Role string

// Roles válidos para User.
const (
	RoleCustomer Role = "Customer"
	RoleDesigner Role = "Designer"
	RoleAdmin    Role = "Admin"
)

// ParseRole valida y normaliza un rol recibido por la API.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleDesigner, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// User representa un usuario del sistema (cliente, diseñador o administrador).
type User struct {
	UserID       int64
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	Role         Role
	DateJoined   time.Time
}

// Principal es el contexto autenticado adjunto a cada petición protegida:
// identidad, rol y (solo para diseñadores) el merchant asociado.
type Principal struct {
	UserID     int64
	Role       Role
	MerchantID int64 // 0 si el rol no es Designer
}
