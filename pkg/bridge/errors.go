package bridge

import "errors"

// Sentinel errors for the lifecycle stages. Stage errors wrap these so
// callers can classify failures with errors.Is while still seeing the
// underlying cause in the message.
var (
	// ErrPortAllocation indicates the OS could not provide a free TCP port.
	ErrPortAllocation = errors.New("port allocation failed")

	// ErrLaunch indicates the driver failed to produce a live browser or page.
	ErrLaunch = errors.New("browser launch failed")

	// ErrClientInit indicates protocol client registration or connection failed.
	ErrClientInit = errors.New("protocol client initialization failed")

	// ErrNotAvailable indicates an accessor could not produce a handle even
	// after a full lifecycle attempt.
	ErrNotAvailable = errors.New("handle not available")
)
