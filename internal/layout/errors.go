package layout

import "errors"

var (
	ErrUnknownStrategy   = errors.New("unknown renumbering strategy")
	ErrZoneNotFound      = errors.New("zone not found")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrGestureInProgress = errors.New("a gesture is already in progress")
	ErrNoGesture         = errors.New("no gesture in progress")
	ErrNotFreeform       = errors.New("seats can only be moved in freeform zones")
	ErrMixedSelection    = errors.New("selected seats belong to different zones")
)
