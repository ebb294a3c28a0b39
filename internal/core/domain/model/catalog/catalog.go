// Package catalog holds the read models for the menu and floor data the
// terminal fetches at startup: categories, products with their variants and
// modifiers, and tables. All of it is server-owned reference data; the
// client renders it and copies prices into cart lines at selection time.
package catalog

// Catalog bundles the reference data for one store.
type Catalog struct {
	Categories []Category
	Products   []Product
	Tables     []Table
}

// Category is a menu section.
type Category struct {
	ID          string
	Name        string
	Description string
	SortOrder   int
}

// Product is a sellable menu entry with its base price in the smallest
// currency unit.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	BasePrice   int
	ImageURL    string
	IsAvailable bool
	Variants    []Variant
	Modifiers   []Modifier
}

// Variant is a product variation priced as an adjustment on the base price.
type Variant struct {
	ID              string
	Name            string
	PriceAdjustment int
}

// Modifier is an add-on with its own price and a per-line quantity cap.
type Modifier struct {
	ID     string
	Name   string
	Price  int
	MaxQty int
}

// Table is a physical table; Status is one of "available", "occupied" or
// "reserved" and is only displayed, never interpreted by the core.
type Table struct {
	ID       string
	Number   int
	Capacity int
	Status   string
	QRCode   string
}

// UnitPrice resolves the price of one unit of the product with the given
// variant: the base price plus the variant's adjustment when the variant
// exists. Unknown variant IDs resolve to the base price.
func (p Product) UnitPrice(variantID string) int {
	if variantID == "" {
		return p.BasePrice
	}
	for _, v := range p.Variants {
		if v.ID == variantID {
			return p.BasePrice + v.PriceAdjustment
		}
	}
	return p.BasePrice
}
