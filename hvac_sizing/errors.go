package hvac_sizing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingData is returned when a surface, buffer space or equipment lacks a value the calculation needs.
	ErrMissingData = errors.New("missing data")

	// ErrUnknownSpace is returned for an adjacency or duct location that is not a known space type.
	ErrUnknownSpace = errors.New("unknown space type")

	// ErrMultipleEquipment is returned when a unit has more than one heating or more than one cooling system.
	ErrMultipleEquipment = errors.New("multiple equipment")

	// ErrInvalidInput is returned for values outside their valid range.
	ErrInvalidInput = errors.New("invalid input")
)

// LoadCalcError locates a fatal error within a unit.
type LoadCalcError struct {
	Unit    string
	Zone    string
	Surface string
	Err     error
}

func (e *LoadCalcError) Error() string {
	var loc []string
	if e.Unit != "" {
		loc = append(loc, "unit "+e.Unit)
	}
	if e.Zone != "" {
		loc = append(loc, "zone "+e.Zone)
	}
	if e.Surface != "" {
		loc = append(loc, "surface "+e.Surface)
	}
	if len(loc) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", strings.Join(loc, ", "), e.Err)
}

func (e *LoadCalcError) Unwrap() error {
	return e.Err
}

// withUnit fills in the unit name of a LoadCalcError, or wraps a bare error.
func withUnit(unit string, err error) error {
	if err == nil {
		return nil
	}
	var lce *LoadCalcError
	if errors.As(err, &lce) {
		if lce.Unit == "" {
			lce.Unit = unit
		}
		return lce
	}
	return &LoadCalcError{Unit: unit, Err: err}
}
