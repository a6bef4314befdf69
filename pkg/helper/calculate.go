package helper

import "math"

// CalculateOffset returns (page-1)*limit, clamped to math.MaxInt when the product overflows.
func CalculateOffset(page, limit int) int {
	if page <= 0 || limit <= 0 {
		return 0
	}

	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}

	return (page - 1) * limit
}

func CalculateTotalPages(totalItems, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 1
	}

	return (totalItems-1)/limit + 1
}
