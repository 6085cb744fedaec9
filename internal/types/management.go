package types

import "fmt"

// ManagementType discriminates the six shared reference lists. It replaces the
// stringly-typed section parameter the backend route uses; the only place the
// wire name appears is APIPath.
type ManagementType int

const (
	ManagementBrands ManagementType = iota
	ManagementProducts
	ManagementLocations
	ManagementStatuses
	ManagementSources
	ManagementOwnership
)

// ManagementTypes lists all reference list types in display order.
var ManagementTypes = []ManagementType{
	ManagementBrands,
	ManagementProducts,
	ManagementLocations,
	ManagementStatuses,
	ManagementSources,
	ManagementOwnership,
}

// APIPath returns the backend path segment for the type.
func (t ManagementType) APIPath() string {
	switch t {
	case ManagementBrands:
		return "brands"
	case ManagementProducts:
		return "products"
	case ManagementLocations:
		return "locations"
	case ManagementStatuses:
		return "statuses"
	case ManagementSources:
		return "sources"
	case ManagementOwnership:
		return "ownership"
	}
	panic(fmt.Sprintf("unknown management type %d", int(t)))
}

// Title returns the human label used by pages and tables.
func (t ManagementType) Title() string {
	switch t {
	case ManagementBrands:
		return "Brands"
	case ManagementProducts:
		return "Products"
	case ManagementLocations:
		return "Locations"
	case ManagementStatuses:
		return "Lead Statuses"
	case ManagementSources:
		return "Lead Sources"
	case ManagementOwnership:
		return "Ownership Rules"
	}
	panic(fmt.Sprintf("unknown management type %d", int(t)))
}

// InlineCreatable reports whether sales users may add values of this type from
// the lead form. Statuses, sources and ownership rules stay admin-only.
func (t ManagementType) InlineCreatable() bool {
	switch t {
	case ManagementBrands, ManagementProducts, ManagementLocations:
		return true
	case ManagementStatuses, ManagementSources, ManagementOwnership:
		return false
	}
	panic(fmt.Sprintf("unknown management type %d", int(t)))
}

// ManagementRecord is one entry of a reference list. New values become global
// as soon as the backend accepts them.
type ManagementRecord struct {
	ID     string         `json:"id"`
	Type   ManagementType `json:"-"`
	Name   string         `json:"name"`
	Status string         `json:"status"`
}
