package route

import (
	"fmt"
	"slices"
	"strings"

	"logistics/internal/pkg/errs"
)

// Truck identifies a vehicle of the fleet. Only the trucks returned by
// AllowedTrucks can carry routes.
type Truck string

//nolint:gochecknoglobals // fixed fleet
var allowedTrucks = []Truck{"CAM-001", "CAM-002", "CAM-003", "CAM-004", "CAM-005"}

// AllowedTrucks returns a copy of the truck whitelist in fleet order.
func AllowedTrucks() []Truck {
	return slices.Clone(allowedTrucks)
}

// AllowedTrucksList renders the whitelist as "CAM-001, CAM-002, ...".
func AllowedTrucksList() string {
	names := make([]string, len(allowedTrucks))
	for i, t := range allowedTrucks {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// ParseTruck trims s and checks it against the whitelist.
func ParseTruck(s string) (Truck, error) {
	t := Truck(strings.TrimSpace(s))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate returns nil for whitelisted trucks.
func (t Truck) Validate() error {
	if t == "" {
		return errs.NewValueIsRequiredError("assigned_truck")
	}
	if !slices.Contains(allowedTrucks, t) {
		return errs.NewValueIsInvalidErrorWithCause("assigned_truck",
			fmt.Errorf("%q is not one of %s", string(t), AllowedTrucksList()))
	}
	return nil
}

func (t Truck) String() string {
	return string(t)
}
