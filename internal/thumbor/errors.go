package thumbor

import "errors"

var (
	// ErrMissingEndpoint is returned when neither an explicit nor an ambient
	// image-server URL is available.
	ErrMissingEndpoint = errors.New("thumbor server URL not specified: provide one explicitly or through an enclosing scope")

	// ErrMalformedSourceURL is returned when the source image URL cannot be
	// parsed as an absolute URL.
	ErrMalformedSourceURL = errors.New("malformed source image URL")

	// ErrEmptyBreakpointSet is returned when a responsive set is requested
	// for zero breakpoints.
	ErrEmptyBreakpointSet = errors.New("breakpoint set is empty")

	// ErrInvalidBreakpoint is returned for a breakpoint width that is not positive.
	ErrInvalidBreakpoint = errors.New("breakpoint width must be positive")

	// ErrMalformedFilter is returned by ParseFilter.
	ErrMalformedFilter = errors.New("malformed filter expression")
)
