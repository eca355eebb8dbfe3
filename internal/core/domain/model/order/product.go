package order

// Product is anything that can report a total price in minor units.
type Product interface {
	TotalPrice() int64
}

var (
	_ Product = Item{}
	_ Product = (*Order)(nil)
)
