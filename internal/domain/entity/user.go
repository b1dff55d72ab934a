package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User usuario interno del sistema (personal de tienda u oficina central).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, staff
	StoreID      *int   // tienda asignada; nil para usuarios de oficina central
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
