package allocation

import (
	"errors"
	"fmt"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrBlankName           = errors.New("participant name must not be blank")
	ErrNegativeCount       = errors.New("unit count must not be negative")
	ErrInvalidSnapshot     = errors.New("invalid bill snapshot")
)

// DuplicateNameError is returned when a participant name is already taken
// on the bill, compared case-insensitively.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("participant %q already exists", e.Name)
}

// InvalidItemError is returned when an item has a negative price, a
// non-positive quantity or a blank name.
type InvalidItemError struct {
	Name   string
	Reason string
}

func (e *InvalidItemError) Error() string {
	if e.Name == "" {
		return "invalid item: " + e.Reason
	}
	return fmt.Sprintf("invalid item %q: %s", e.Name, e.Reason)
}

// OverAssignmentError is returned when an assignment would push the assigned
// units of an item above its quantity.
type OverAssignmentError struct {
	ItemID    string
	Quantity  int
	Requested int
}

func (e *OverAssignmentError) Error() string {
	return fmt.Sprintf("item %s: %d units assigned but only %d available", e.ItemID, e.Requested, e.Quantity)
}
