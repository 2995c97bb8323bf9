// Package pagination normalizes page-size inputs for the admin listing
// RPCs. Clients routinely send zero or absurd page sizes; the service
// clamps them once here instead of in every handler.
package pagination

// PageSizeConfig holds the service defaults for one listing RPC.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize resolves the page size a listing actually uses: the
// default when the client sent none, capped at Max, never below 1.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}
