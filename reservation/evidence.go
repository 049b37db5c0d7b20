package reservation

// TransitionError represents a refused lifecycle transition
type TransitionError struct {
	Code    string
	Message string
}

func (e TransitionError) Error() string {
	return e.Message
}

// Predefined transition errors
var (
	ErrTerminalStatus = TransitionError{
		Code:    "TERMINAL_STATUS",
		Message: "reservation is checked in and cannot transition further",
	}
	ErrInvalidTransition = TransitionError{
		Code:    "INVALID_TRANSITION",
		Message: "status transitions are strictly forward with no skipping",
	}
	ErrCheckInPhotoRequired = TransitionError{
		Code:    "CHECK_IN_PHOTO_REQUIRED",
		Message: "check-in requires at least one photo",
	}
)

// Evidence carries the attachments accompanying a transition request
type Evidence struct {
	CheckInPhotos []string
}

// RequestTransition validates a lifecycle transition before any mutation
// is dispatched. Combined staff photos, already attached plus those in
// the evidence, satisfy the check-in precondition.
func RequestTransition(r Reservation, target Status, evidence Evidence) error {
	if r.Status().IsTerminal() {
		return ErrTerminalStatus
	}
	if !r.Status().CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	if target == StatusCheckedIn && len(r.CheckInPhotos())+len(evidence.CheckInPhotos) == 0 {
		return ErrCheckInPhotoRequired
	}
	return nil
}
