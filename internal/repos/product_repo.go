package repos

import (
	"ecycle/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Catalog returns every product in catalog order. The filter engine works on
// this sequence in memory; nothing here paginates or filters.
func (r *ProductRepo) Catalog() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT
    id, name, category, brand, condition, price, original_price,
    COALESCE(image,'') AS image, discount, rating, stock, featured
  FROM products
  ORDER BY id
`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT
    id, name, category, brand, condition, price, original_price,
    COALESCE(image,'') AS image, discount, rating, stock, featured
  FROM products
  WHERE id = ?
`, id)
	return p, err
}
