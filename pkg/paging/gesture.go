package paging

import "math"

// Target resolves a finished drag to the page it should settle on.
//
// current is the committed page before the drag, count the number of pages,
// dragOffset the final live translation and pageWidth the width of one page
// in the same units. See the package documentation for the formula.
func Target(current, count int, dragOffset, pageWidth float64) int {
	if count <= 0 {
		return 0
	}

	current = ClampIndex(current, count)

	if pageWidth <= 0 || math.IsNaN(pageWidth) || math.IsInf(pageWidth, 0) {
		// Not laid out yet.
		return current
	}

	raw := float64(current) - dragOffset/pageWidth

	switch {
	case math.IsNaN(raw):
		return current
	case raw >= float64(count-1):
		return count - 1
	case raw <= 0:
		return 0
	}

	return ClampIndex(int(math.Round(raw)), count)
}

// ClampIndex clamps i into [0, count-1], or returns 0 when count is not
// positive.
func ClampIndex(i, count int) int {
	if count <= 0 {
		return 0
	}

	return min(max(i, 0), count-1)
}

// RestingOffset is the strip translation that shows page index at rest.
func RestingOffset(index int, pageWidth float64) float64 {
	if pageWidth <= 0 {
		return 0
	}

	return -float64(index) * pageWidth
}
