// SPDX-License-Identifier: Apache-2.0

package pagination

// Bounds enforced at the HTTP boundary before any value reaches this
// package. Requests outside these ranges are rejected with a validation
// error by the handler layer.
const (
	// MaxOffset is the highest accepted offset value.
	MaxOffset = 10000

	// MaxLimit is the highest accepted page size.
	MaxLimit = 2000

	// DefaultLimit is the page size used when the caller does not specify one.
	DefaultLimit = 10
)

// Pagination describes one page of a windowed result set: the window itself
// (offset/limit), derived page numbers, and the navigation links.
//
// A Pagination value is derived, immutable once constructed and never
// persisted.
type Pagination struct {
	Offset        int   `json:"offset"`
	Limit         int   `json:"limit"`
	PageNumber    int   `json:"page_number"`
	TotalPages    int   `json:"total_pages"`
	TotalElements int   `json:"total_elements"`
	Links         Links `json:"links"`
}

// ComputePageNumber calculates the 1-based page number for the given
// 0-based offset and page size:
//
//	page = ceil((offset+1) / limit)
//
// Returns ErrInvalidLimit when limit <= 0 and ErrInvalidOffset when
// offset < 0.
func ComputePageNumber(offset, limit int) (int, error) {
	if limit <= 0 {
		return 0, ErrInvalidLimit
	}

	if offset < 0 {
		return 0, ErrInvalidOffset
	}

	return ceilDiv(offset+1, limit), nil
}

// ComputeTotalPages calculates how many pages are required to hold
// totalElements records at the given page size:
//
//	pages = ceil(totalElements / limit)
//
// Returns ErrInvalidLimit when limit <= 0 and ErrInvalidTotalElements when
// totalElements < 0.
func ComputeTotalPages(limit, totalElements int) (int, error) {
	if limit <= 0 {
		return 0, ErrInvalidLimit
	}

	if totalElements < 0 {
		return 0, ErrInvalidTotalElements
	}

	return ceilDiv(totalElements, limit), nil
}

// GetPagination assembles a full Pagination value from the request window,
// the total match count and the request URL the links are derived from.
//
// It validates the window through ComputePageNumber and ComputeTotalPages;
// BuildLinks itself performs no validation and relies on the checks done
// here.
func GetPagination(offset, limit, totalElements int, url string) (Pagination, error) {
	totalPages, err := ComputeTotalPages(limit, totalElements)
	if err != nil {
		return Pagination{}, err
	}

	pageNumber, err := ComputePageNumber(offset, limit)
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{
		Offset:        offset,
		Limit:         limit,
		PageNumber:    pageNumber,
		TotalPages:    totalPages,
		TotalElements: totalElements,
		Links:         BuildLinks(url, totalPages, limit, offset, totalElements),
	}, nil
}

// ceilDiv returns ceil(a/b) for positive b without going through floats.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
