package store

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidQuery reports a list query referencing unknown fields or
// operators. Wrapped errors carry the offending detail.
var ErrInvalidQuery = errors.New("store: invalid query")

const (
	// DefaultLimit caps list results when the caller does not ask for a
	// specific page size.
	DefaultLimit = 100
	// MaxLimit is a hard ceiling on page size.
	MaxLimit = 1000
)

type SearchOperator string

const (
	SearchContains   SearchOperator = "contains"
	SearchStartsWith SearchOperator = "starts_with"
	SearchEndsWith   SearchOperator = "ends_with"
)

type FilterOperator string

const (
	FilterEq  FilterOperator = "eq"
	FilterNe  FilterOperator = "ne"
	FilterLt  FilterOperator = "lt"
	FilterLte FilterOperator = "lte"
	FilterGt  FilterOperator = "gt"
	FilterGte FilterOperator = "gte"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Field names accepted by the query DSL. These are the wire-level names the
// client API uses, not column names; drivers map them to storage columns.
var (
	searchableFields = map[string]struct{}{
		"email":           {},
		"name":            {},
		"domainWhitelist": {},
	}

	filterableFields = map[string]struct{}{
		"id":              {},
		"name":            {},
		"email":           {},
		"inviterId":       {},
		"status":          {},
		"domainWhitelist": {},
		"expiresAt":       {},
		"createdAt":       {},
	}

	// orderedFields are the only fields range operators apply to.
	orderedFields = map[string]struct{}{
		"expiresAt": {},
		"createdAt": {},
	}
)

// ListQuery describes one list call: pagination plus at most one search
// clause and one filter clause (ANDed when both present) and one sort key.
type ListQuery struct {
	Limit  int
	Offset int

	SearchField    string
	SearchOperator SearchOperator
	SearchValue    string

	FilterField    string
	FilterOperator FilterOperator
	FilterValue    string

	SortBy        string
	SortDirection SortDirection
}

// HasSearch reports whether a search clause is present.
func (q ListQuery) HasSearch() bool { return q.SearchField != "" }

// HasFilter reports whether a filter clause is present.
func (q ListQuery) HasFilter() bool { return q.FilterField != "" }

// Normalize applies defaults and validates field/operator combinations.
// It must be called before handing the query to a driver.
func (q *ListQuery) Normalize() error {
	if q.Limit < 0 || q.Offset < 0 {
		return fmt.Errorf("%w: negative limit or offset", ErrInvalidQuery)
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}

	if q.HasSearch() {
		if _, ok := searchableFields[q.SearchField]; !ok {
			return fmt.Errorf("%w: unsearchable field %q", ErrInvalidQuery, q.SearchField)
		}
		switch q.SearchOperator {
		case SearchContains, SearchStartsWith, SearchEndsWith:
		case "":
			q.SearchOperator = SearchContains
		default:
			return fmt.Errorf("%w: unknown search operator %q", ErrInvalidQuery, q.SearchOperator)
		}
	} else if q.SearchOperator != "" || q.SearchValue != "" {
		return fmt.Errorf("%w: search clause without searchField", ErrInvalidQuery)
	}

	if q.HasFilter() {
		if _, ok := filterableFields[q.FilterField]; !ok {
			return fmt.Errorf("%w: unfilterable field %q", ErrInvalidQuery, q.FilterField)
		}
		switch q.FilterOperator {
		case FilterEq, FilterNe:
		case FilterLt, FilterLte, FilterGt, FilterGte:
			if _, ok := orderedFields[q.FilterField]; !ok {
				return fmt.Errorf(
					"%w: operator %q requires an ordered field, got %q",
					ErrInvalidQuery, q.FilterOperator, q.FilterField,
				)
			}
		case "":
			q.FilterOperator = FilterEq
		default:
			return fmt.Errorf("%w: unknown filter operator %q", ErrInvalidQuery, q.FilterOperator)
		}

		if _, ok := orderedFields[q.FilterField]; ok {
			if _, err := time.Parse(time.RFC3339, q.FilterValue); err != nil {
				return fmt.Errorf(
					"%w: filter on %q needs an RFC 3339 timestamp value",
					ErrInvalidQuery, q.FilterField,
				)
			}
		}
	} else if q.FilterOperator != "" || q.FilterValue != "" {
		return fmt.Errorf("%w: filter clause without filterField", ErrInvalidQuery)
	}

	if q.SortBy != "" {
		if _, ok := filterableFields[q.SortBy]; !ok {
			return fmt.Errorf("%w: unsortable field %q", ErrInvalidQuery, q.SortBy)
		}
	} else {
		q.SortBy = "createdAt"
	}
	switch q.SortDirection {
	case SortAsc, SortDesc:
	case "":
		q.SortDirection = SortAsc
	default:
		return fmt.Errorf("%w: unknown sort direction %q", ErrInvalidQuery, q.SortDirection)
	}

	return nil
}
