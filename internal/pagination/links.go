// SPDX-License-Identifier: Apache-2.0

package pagination

import (
	"fmt"
	"strings"
)

// Hyperlink is a single navigable reference in a Links set.
type Hyperlink struct {
	Href string `json:"href"`
}

// Links is the set of navigation hyperlinks for one page of a result set.
// Actual always points at the current page; the remaining links are omitted
// from JSON when absent (empty result sets carry only Actual).
type Links struct {
	First  *Hyperlink `json:"first,omitempty"`
	Prev   *Hyperlink `json:"prev,omitempty"`
	Actual Hyperlink  `json:"actual"`
	Next   *Hyperlink `json:"next,omitempty"`
	Last   *Hyperlink `json:"last,omitempty"`
}

// BuildLinks generates the navigation links for the page window described by
// (limit, offset) over totalElements records spread across totalPages pages.
//
// The limit and offset query parameters are appended to baseURL, joined with
// "&" when the URL already carries a query string and "?" otherwise.
//
// Link policy:
//   - totalElements == 0: only Actual is set.
//   - Prev falls back to the current page link on the first page, and Next
//     does the same on the last page. Boundary pages therefore expose
//     self-referencing neighbours instead of null ones.
//   - Last uses max(0, (totalPages-2)*limit). The offset lands on the
//     second-to-last page; kept verbatim for compatibility with the
//     historical API responses.
//
// All numeric inputs are expected to be validated by the caller (see
// GetPagination); BuildLinks does not re-check them.
func BuildLinks(baseURL string, totalPages, limit, offset, totalElements int) Links {
	separator := "?"
	if strings.Contains(baseURL, "?") {
		separator = "&"
	}

	baseHref := fmt.Sprintf("%s%slimit=%d", baseURL, separator, limit)
	hrefAt := func(offset int) string {
		return fmt.Sprintf("%s&offset=%d", baseHref, offset)
	}

	actual := Hyperlink{Href: hrefAt(offset)}
	if totalElements == 0 {
		return Links{Actual: actual}
	}

	lastPage := totalPages - 1
	lastPageOffset := lastPage * limit

	prev := actual
	if offset > 0 {
		prev = Hyperlink{Href: hrefAt(max(0, offset-limit))}
	}

	next := actual
	if offset < lastPageOffset {
		next = Hyperlink{Href: hrefAt(min(lastPageOffset, offset+limit))}
	}

	return Links{
		First:  &Hyperlink{Href: hrefAt(0)},
		Prev:   &prev,
		Actual: actual,
		Next:   &next,
		Last:   &Hyperlink{Href: hrefAt(max(0, (lastPage-1)*limit))},
	}
}
