package domain

import (
	"github.com/shopspring/decimal"
)

// Role menentukan tier harga dan navigasi yang tersedia untuk user.
type Role string

const (
	RoleGuest       Role = "guest"
	RoleCustomer    Role = "customer"
	RoleDistributor Role = "distributor"
)

// ParseRole memvalidasi string role dari luar (request, token claim).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleGuest, RoleCustomer, RoleDistributor:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Product adalah data referensi katalog. Immutable: aplikasi hanya membaca,
// tidak pernah mengubah record produk.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	DistributorPrice *float64 `json:"distributor_price,omitempty"` // Harga grosir, <= Price jika ada
	Category         string   `json:"category"`
	ImageURL         string   `json:"image_url"`
	Stock            int      `json:"stock"`
	Rating           float64  `json:"rating"`
	Reviews          int      `json:"reviews"`
}

// UnitPrice mengembalikan harga satuan untuk role tertentu.
// Harga distributor hanya berlaku untuk RoleDistributor dan hanya jika produk punya.
// Tier selalu diturunkan ulang dari role saat dipanggil, tidak pernah di-cache.
func (p Product) UnitPrice(role Role) decimal.Decimal {
	switch role {
	case RoleDistributor:
		if p.DistributorPrice != nil {
			return decimal.NewFromFloat(*p.DistributorPrice)
		}
	}
	return decimal.NewFromFloat(p.Price)
}
