package domain

import (
	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
)

// UserSession adalah identitas tunggal yang aktif di device: authenticated
// customer/distributor, atau guest. Maksimal satu session per device.
type UserSession struct {
	ID            string             `json:"id"`
	Email         string             `json:"email"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	Role          catalogDomain.Role `json:"role"`
	Authenticated bool               `json:"authenticated"`
	PasswordHash  string             `json:"-"` // Jangan pernah serialize, baik ke client maupun storage
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Role opsional; default customer. Hanya customer atau distributor.
	Role string `json:"role"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=customer distributor"`
}

type AuthResponse struct {
	Session UserSession `json:"session"`
	Token   string      `json:"token"`
}
