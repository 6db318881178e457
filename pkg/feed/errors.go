package feed

import "errors"

var (
	// ErrFeedUnavailable indicates a transport-level failure talking to the
	// pricing feed, including non-2xx responses. The whole batch is lost.
	ErrFeedUnavailable = errors.New("feed: pricing feed unavailable")

	// ErrMalformedResponse indicates the feed answered but the body does not
	// match the expected schema. No partial parsing is attempted.
	ErrMalformedResponse = errors.New("feed: malformed feed response")
)
