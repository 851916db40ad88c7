package location

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Type classifies a location node by administrative granularity.
// The hierarchy is expected to narrow from country down to zone, the unit
// delivery agents are assigned to. The ordering is conventional and not
// enforced on parent links.
type Type string

const (
	TypeCountry  Type = "country"
	TypeState    Type = "state"
	TypeCity     Type = "city"
	TypeDistrict Type = "district"
	TypeZone     Type = "zone"
)

// AllTypes lists the valid location types from coarsest to finest.
func AllTypes() []Type {
	return []Type{TypeCountry, TypeState, TypeCity, TypeDistrict, TypeZone}
}

func typeLabels() map[Type]string {
	return map[Type]string{
		TypeCountry:  "Country",
		TypeState:    "State/Province",
		TypeCity:     "City",
		TypeDistrict: "District",
		TypeZone:     "Zone",
	}
}

// Validate returns an error for types outside the known set.
func (t Type) Validate() error {
	if _, ok := typeLabels()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("location type",
			fmt.Errorf("%q is not a valid location type", string(t)))
	}
	return nil
}

// Label returns the display label for the type. It is total: unknown values
// echo their raw string so callers never need a fallback.
func (t Type) Label() string {
	if label, ok := typeLabels()[t]; ok {
		return label
	}
	return string(t)
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}
