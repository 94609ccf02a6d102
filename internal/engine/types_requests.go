package engine

// CheckRequest represents a request to cross-validate two stores.
type CheckRequest struct {
	// RawGeo is the path of the raw data store
	RawGeo string

	// Geo is the path of the finished data store
	Geo string
}

// InventoryRequest represents a request to export a store's catalog.
type InventoryRequest struct {
	// Store is the path of the data store to list
	Store string

	// Output is an optional file to write the manifest to
	Output string
}
