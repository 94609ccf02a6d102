package engine

import "errors"

var (
	// ErrStoreOpen indicates a data store could not be opened.
	ErrStoreOpen = errors.New("cannot open data store")

	// ErrEnumerate indicates a data store's catalog could not be listed.
	ErrEnumerate = errors.New("cannot enumerate data store")

	// ErrMismatch indicates the check found mismatches or duplicates.
	ErrMismatch = errors.New("mismatches found")
)
