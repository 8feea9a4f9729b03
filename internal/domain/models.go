package domain

// Product is one refurbished catalog entry. The catalog is seeded at startup
// and treated as immutable by everything downstream.
type Product struct {
	ID            int64    `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	Category      string   `db:"category" json:"category"`
	Brand         string   `db:"brand" json:"brand"`
	Condition     string   `db:"condition" json:"condition"`
	Price         float64  `db:"price" json:"price"`
	OriginalPrice *float64 `db:"original_price" json:"originalPrice,omitempty"`
	Image         string   `db:"image" json:"image"`
	// Discount is a stored display fraction in [0,1]; it is not derived from
	// price/original_price and the two are never cross-checked.
	Discount float64 `db:"discount" json:"discount"`
	Rating   float64 `db:"rating" json:"rating"`
	Stock    int     `db:"stock" json:"stock"`
	Featured bool    `db:"featured" json:"featured"`
}

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortDiscount  SortKey = "discount"
)

// FilterSpec is one listing session's query over the catalog. Empty string
// fields mean "no filter"; the price bounds are inclusive.
type FilterSpec struct {
	Search    string  `json:"search"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	Condition string  `json:"condition"`
	PriceMin  float64 `json:"priceMin"`
	PriceMax  float64 `json:"priceMax"`
	SortBy    SortKey `json:"sortBy"`
}

// Facets carries the distinct filter values the listing UI offers.
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Conditions []string `json:"conditions"`
	PriceMin   float64  `json:"priceMin"`
	PriceMax   float64  `json:"priceMax"`
}

// CartLine is a (product, quantity) pair inside a cart. At most one line
// exists per product id.
type CartLine struct {
	ProductID     int64    `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Brand         string   `json:"brand"`
	Condition     string   `json:"condition"`
	Quantity      int      `json:"quantity"`
}

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

type Availability struct {
	Status string `json:"status"` // IN_STOCK | LOW_STOCK | OUT_OF_STOCK
	Qty    int    `json:"qty,omitempty"`
}
