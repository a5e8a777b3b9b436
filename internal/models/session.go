package models

type SessionState string

const (
	SessionIdle          SessionState = "idle"
	SessionCapturing     SessionState = "capturing"
	SessionIdentifying   SessionState = "identifying"
	SessionPendingResult SessionState = "pending_result"
	SessionCommitted     SessionState = "committed"
	SessionDiscarded     SessionState = "discarded"
)

// Active reports whether a capture session occupies the state machine.
func (s SessionState) Active() bool {
	return s != SessionIdle && s != ""
}

// SessionStatus is the read model of the capture session published to the
// presentation layer.
type SessionStatus struct {
	SessionID  string          `json:"sessionId,omitempty"`
	State      SessionState    `json:"state"`
	Success    *bool           `json:"success,omitempty"`
	Animal     *AnimalTemplate `json:"animal,omitempty"`
	Error      string          `json:"error,omitempty"`
	CapturedID string          `json:"capturedId,omitempty"`
}
