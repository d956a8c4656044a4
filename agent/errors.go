package agent

import "fmt"

// FailureKind classifies why an action could not complete.
type FailureKind int

const (
	// TransportFailure means the HTTP request never produced a response.
	TransportFailure FailureKind = iota
	// LaunchFailure means the OS refused to open the browser.
	LaunchFailure
)

func (k FailureKind) String() string {
	switch k {
	case TransportFailure:
		return "transport"
	case LaunchFailure:
		return "launch"
	default:
		return "unknown"
	}
}

// ActionError is returned by every failed backend action.
type ActionError struct {
	Action Action
	Kind   FailureKind
	Err    error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("Failed to %s: %v", e.Action.verb(), e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
