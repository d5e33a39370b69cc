package model

// EventStatus follows an event from first planning through wrap-up.
type EventStatus int16

const (
	StatusPlanning             EventStatus = 0
	StatusSubmittedForApproval EventStatus = 1
	StatusActive               EventStatus = 2 // approved and visible to the public
	StatusInProgress           EventStatus = 3
	StatusWrapUp               EventStatus = 4
	StatusCompleted            EventStatus = 5
	StatusCancelled            EventStatus = 6
)

func (s EventStatus) String() string {
	switch s {
	case StatusPlanning:
		return "Planning"
	case StatusSubmittedForApproval:
		return "SubmittedForApproval"
	case StatusActive:
		return "Active"
	case StatusInProgress:
		return "InProgress"
	case StatusWrapUp:
		return "WrapUp"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

func (s EventStatus) Valid() bool {
	return s >= StatusPlanning && s <= StatusCancelled
}

// transitions is the single source of truth for status changes through the
// generic update endpoint. Entering Active is reserved for the Approve
// action and is deliberately absent here.
var transitions = map[EventStatus][]EventStatus{
	StatusPlanning:             {StatusSubmittedForApproval, StatusCancelled},
	StatusSubmittedForApproval: {StatusPlanning, StatusCancelled},
	StatusActive:               {StatusInProgress, StatusPlanning, StatusCancelled},
	StatusInProgress:           {StatusWrapUp, StatusCompleted, StatusCancelled},
	StatusWrapUp:               {StatusCompleted, StatusCancelled},
	StatusCompleted:            {},
	StatusCancelled:            {},
}

// CanTransition reports whether an update may move an event from to next.
// Keeping the same status is always allowed.
func CanTransition(from, next EventStatus) bool {
	if from == next {
		return true
	}
	for _, allowed := range transitions[from] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanApprove gates the dedicated Approve action.
func CanApprove(from EventStatus) bool {
	return from == StatusSubmittedForApproval
}
