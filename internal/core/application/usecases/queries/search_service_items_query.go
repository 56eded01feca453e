package queries

import (
	"errors"
	"strings"

	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrSearchServiceItemsQueryIsNotConstructed = errors.New(
		"SearchServiceItemsQuery must be created via NewSearchServiceItemsQuery constructor",
	)

	// ErrKeywordIsRequired indicates an empty or blank search keyword.
	ErrKeywordIsRequired = errs.NewValueIsRequiredError("keyword")
)

// SearchServiceItemsQuery finds service items whose name or description
// contains the keyword, case-insensitively.
type SearchServiceItemsQuery struct {
	keyword string

	guard guard.ConstructorGuard
}

// NewSearchServiceItemsQuery creates a keyword search query.
func NewSearchServiceItemsQuery(keyword string) (SearchServiceItemsQuery, error) {
	if strings.TrimSpace(keyword) == "" {
		return SearchServiceItemsQuery{}, ErrKeywordIsRequired
	}

	return SearchServiceItemsQuery{
		keyword: keyword,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchServiceItemsQuery) Validate() error {
	return q.guard.Validate(ErrSearchServiceItemsQueryIsNotConstructed)
}

// Keyword returns the search term.
func (q SearchServiceItemsQuery) Keyword() string {
	return q.keyword
}
