package swiftifaces

import (
	"errors"
	"fmt"
)

const (
	// initialBufferSize is the commonly sufficient starting size for
	// adapter enumeration; the Win32 docs recommend 15KB.
	initialBufferSize = 15000

	// maxBufferAttempts bounds the resize loop. The OS reports the
	// required size after one overflow, so needing more than a couple
	// of rounds means it is misbehaving.
	maxBufferAttempts = 3
)

// ErrBufferExhausted is returned when the OS keeps reporting an
// insufficient buffer after maxBufferAttempts rounds.
var ErrBufferExhausted = errors.New("buffer size negotiation exhausted")

// fetchBuffered runs the caller-managed buffer protocol: call receives
// a buffer and its size in bytes. On an error matching overflow the
// buffer is regrown to the size call reported back and the call is
// retried, at most attempts times; any other error is terminal.
func fetchBuffered(initial uint32, attempts int, overflow error, call func(buf []byte, size *uint32) error) ([]byte, error) {
	size := initial
	for range attempts {
		buf := make([]byte, size)
		err := call(buf, &size)
		switch {
		case err == nil:
			return buf, nil
		case errors.Is(err, overflow):
			continue
		default:
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w after %d attempts", ErrBufferExhausted, attempts)
}
