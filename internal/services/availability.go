package services

import "ecycle/internal/domain"

// CheckAvailability converts a catalog stock count to the coarse status the
// listing UI shows.
func CheckAvailability(stock int) domain.Availability {
	status := "OUT_OF_STOCK"
	switch {
	case stock >= 5:
		status = "IN_STOCK"
	case stock > 0:
		status = "LOW_STOCK"
	}
	return domain.Availability{Status: status, Qty: stock}
}
