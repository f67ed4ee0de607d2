package reservation

// Status is a free-form string. The values below are the ones observed in
// use; nothing validates transitions between them, and update accepts any
// value verbatim. Room-side statuses live in the room service's vocabulary
// (see shared.RoomStatus*) but leak into reservations through the API.
type Status string

const (
	StatusConfirmed  Status = "confirmed"
	StatusReserved   Status = "reserved"
	StatusCheckedOut Status = "checked-out"
	StatusAvailable  Status = "available"
)

func (s Status) String() string {
	return string(s)
}

// IsKnown reports whether the value is part of the observed vocabulary.
// Informational only; no code path rejects unknown statuses.
func (s Status) IsKnown() bool {
	switch s {
	case StatusConfirmed, StatusReserved, StatusCheckedOut, StatusAvailable:
		return true
	default:
		return false
	}
}
