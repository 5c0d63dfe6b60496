package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
)

func fptr(v float64) *float64 { return &v }

func productA() catalogDomain.Product {
	return catalogDomain.Product{
		ID:       "prod-a",
		Name:     "Product A",
		Price:    10,
		Category: "Test",
		Stock:    5,
	}
}

func productB() catalogDomain.Product {
	return catalogDomain.Product{
		ID:               "prod-b",
		Name:             "Product B",
		Price:            20,
		DistributorPrice: fptr(15),
		Category:         "Test",
		Stock:            100,
	}
}

func TestCart_AddItem(t *testing.T) {
	t.Run("Add increases item count by the requested quantity", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 3)

		assert.Equal(t, 3, cart.ItemCount())
		assert.Len(t, cart.Items, 1)
	})

	t.Run("Adding the same product accumulates quantity", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 2)
		cart.AddItem(productA(), 2)

		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 4, cart.ItemCount())
	})

	t.Run("Accumulated quantity saturates at stock", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 3)
		cart.AddItem(productA(), 4) // stok 5, minta total 7

		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("Initial add is clamped to stock", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 99)

		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("Insertion order is preserved", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productB(), 1)
		cart.AddItem(productA(), 1)

		assert.Equal(t, "prod-b", cart.Items[0].Product.ID)
		assert.Equal(t, "prod-a", cart.Items[1].Product.ID)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("Removes the matching item", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 2)
		cart.RemoveItem("prod-a")

		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.ItemCount())
	})

	t.Run("No-op when product is absent", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 2)
		cart.RemoveItem("does-not-exist")

		assert.Equal(t, 2, cart.ItemCount())
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	t.Run("Quantity below one removes the item", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 3)
		cart.UpdateQuantity("prod-a", 0)

		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.ItemCount())
	})

	t.Run("Quantity is clamped to stock", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 3)
		cart.UpdateQuantity("prod-a", 10)

		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("No-op when product is not in the cart", func(t *testing.T) {
		cart := NewCart()
		cart.UpdateQuantity("prod-a", 3)

		assert.Empty(t, cart.Items)
	})
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productA(), 2)
	cart.AddItem(productB(), 2)
	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.ItemCount())
}

func TestCart_Total(t *testing.T) {
	t.Run("Customer pays list price", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productB(), 2)

		assert.Equal(t, "40", cart.Total(catalogDomain.RoleCustomer).String())
	})

	t.Run("Guest pays list price", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productB(), 2)

		assert.Equal(t, "40", cart.Total(catalogDomain.RoleGuest).String())
	})

	t.Run("Distributor pays distributor price when present", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productB(), 2)

		assert.Equal(t, "30", cart.Total(catalogDomain.RoleDistributor).String())
	})

	t.Run("Distributor falls back to list price without distributor price", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productA(), 2)

		assert.Equal(t, "20", cart.Total(catalogDomain.RoleDistributor).String())
	})

	t.Run("Role change reprices the whole cart at read time", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(productB(), 1)

		assert.Equal(t, "20", cart.Total(catalogDomain.RoleCustomer).String())
		assert.Equal(t, "15", cart.Total(catalogDomain.RoleDistributor).String())
		assert.Equal(t, "20", cart.Total(catalogDomain.RoleCustomer).String())
	})
}

// Skenario lengkap: add, total, lalu update yang ter-clamp ke stok.
func TestCart_AddThenClampScenario(t *testing.T) {
	cart := NewCart()

	cart.AddItem(productA(), 3) // price 10, stock 5
	assert.Equal(t, "30", cart.Total(catalogDomain.RoleCustomer).String())
	assert.Equal(t, 3, cart.ItemCount())

	cart.UpdateQuantity("prod-a", 10) // clamp ke 5
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, "50", cart.Total(catalogDomain.RoleCustomer).String())
}
