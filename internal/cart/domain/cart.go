package domain

import (
	"github.com/shopspring/decimal"

	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
)

// CartItem: satu produk dengan quantity. Invarian: 1 <= Quantity <= Product.Stock,
// dan maksimal satu CartItem per product ID di dalam cart.
type CartItem struct {
	Product  catalogDomain.Product `json:"product"`
	Quantity int                   `json:"quantity"`
}

// Cart adalah list CartItem dengan urutan insert dipertahankan untuk tampilan.
// Hidup hanya di memori; reload aplikasi mengosongkannya.
type Cart struct {
	Items []CartItem `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

func clampQuantity(quantity, stock int) int {
	if quantity > stock {
		quantity = stock
	}
	if quantity < 1 {
		quantity = 1
	}
	return quantity
}

func (c *Cart) indexOf(productID string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddItem menambah quantity produk di cart, atau menyisipkan item baru.
// Permintaan melebihi stok tidak dianggap error: quantity jenuh di Product.Stock.
func (c *Cart) AddItem(product catalogDomain.Product, quantity int) {
	if idx := c.indexOf(product.ID); idx >= 0 {
		c.Items[idx].Quantity = clampQuantity(c.Items[idx].Quantity+quantity, product.Stock)
		return
	}
	c.Items = append(c.Items, CartItem{
		Product:  product,
		Quantity: clampQuantity(quantity, product.Stock),
	})
}

// RemoveItem menghapus item produk; no-op kalau tidak ada.
func (c *Cart) RemoveItem(productID string) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// UpdateQuantity mengeset quantity item. quantity < 1 berarti hapus item.
// No-op kalau produk tidak ada di cart.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	idx := c.indexOf(productID)
	if idx < 0 {
		return
	}
	c.Items[idx].Quantity = clampQuantity(quantity, c.Items[idx].Product.Stock)
}

func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// Total menjumlahkan harga item dengan tier harga dari role pemanggil.
// Role dibaca saat dipanggil, tidak pernah disimpan di CartItem, jadi
// pergantian role otomatis me-reprice seluruh cart.
func (c *Cart) Total(role catalogDomain.Role) decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		line := item.Product.UnitPrice(role).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// ItemCount menjumlahkan quantity seluruh item, bukan jumlah produk distinct.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
