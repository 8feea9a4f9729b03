package services

import (
	"sort"
	"strings"

	"ecycle/internal/domain"
	"ecycle/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) Catalog() ([]domain.Product, error) {
	return s.Prods.Catalog()
}

func (s *CatalogService) Get(id int64) (domain.Product, error) {
	return s.Prods.Get(id)
}

// DefaultSpec is the reset state of a listing session: no text or enum
// filters, the price range spanning the whole catalog, featured first.
func DefaultSpec(catalog []domain.Product) domain.FilterSpec {
	spec := domain.FilterSpec{SortBy: domain.SortFeatured}
	for i, p := range catalog {
		if i == 0 || p.Price < spec.PriceMin {
			spec.PriceMin = p.Price
		}
		if i == 0 || p.Price > spec.PriceMax {
			spec.PriceMax = p.Price
		}
	}
	return spec
}

// Visible applies the filter spec to the catalog and returns the ordered
// result as a new slice. All predicates AND together; an empty spec field
// holds vacuously. Neither input is mutated and nothing is cached, so the
// result is recomputed in full on every call.
func Visible(catalog []domain.Product, spec domain.FilterSpec) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(spec.Search))

	out := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		if spec.Category != "" && p.Category != spec.Category {
			continue
		}
		if spec.Brand != "" && p.Brand != spec.Brand {
			continue
		}
		if spec.Condition != "" && p.Condition != spec.Condition {
			continue
		}
		if p.Price < spec.PriceMin || p.Price > spec.PriceMax {
			continue
		}
		out = append(out, p)
	}

	// Stable sorts: ties keep catalog order.
	switch spec.SortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case domain.SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case domain.SortDiscount:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Discount > out[j].Discount })
	default: // featured
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}
	return out
}

// Facets extracts the distinct filter values the listing drawer offers, in
// first-seen catalog order, plus the catalog price bounds.
func Facets(catalog []domain.Product) domain.Facets {
	f := domain.Facets{
		Categories: []string{},
		Brands:     []string{},
		Conditions: []string{},
	}
	seenCat := map[string]bool{}
	seenBrand := map[string]bool{}
	seenCond := map[string]bool{}
	for i, p := range catalog {
		if !seenCat[p.Category] {
			seenCat[p.Category] = true
			f.Categories = append(f.Categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			f.Brands = append(f.Brands, p.Brand)
		}
		if !seenCond[p.Condition] {
			seenCond[p.Condition] = true
			f.Conditions = append(f.Conditions, p.Condition)
		}
		if i == 0 || p.Price < f.PriceMin {
			f.PriceMin = p.Price
		}
		if i == 0 || p.Price > f.PriceMax {
			f.PriceMax = p.Price
		}
	}
	return f
}

// SortKeyFromString maps a raw query value to a sort key, defaulting to
// featured for anything unrecognized.
func SortKeyFromString(s string) domain.SortKey {
	switch domain.SortKey(s) {
	case domain.SortPriceAsc, domain.SortPriceDesc, domain.SortRating, domain.SortDiscount:
		return domain.SortKey(s)
	default:
		return domain.SortFeatured
	}
}
