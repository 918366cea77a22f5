package ports

// Navigator abstracts the surface that moves the user between locations.
// The UI layer provides the implementation; the core only decides where to go.
type Navigator interface {
	// Navigate performs a soft transition that keeps transient state alive.
	Navigate(path string)

	// Assign performs a hard navigation equivalent to a full page load,
	// discarding all transient state. The 401 path uses this deliberately
	// so a dead session always restarts from a clean slate.
	Assign(path string)
}
