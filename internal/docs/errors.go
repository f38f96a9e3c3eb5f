package docs

import "errors"

var (
	// ErrNotFound is returned by Lookup when a section/item pair does not exist.
	ErrNotFound = errors.New("documentation page not found")

	// ErrInvalidCatalog is returned when sections fail validation.
	ErrInvalidCatalog = errors.New("invalid catalog")
)
