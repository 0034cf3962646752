package swiftifaces

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTestOverflow = errors.New("buffer too small")

func TestFetchBuffered_SucceedsFirstAttempt(t *testing.T) {
	attempts := 0
	buf, err := fetchBuffered(64, maxBufferAttempts, errTestOverflow, func(buf []byte, size *uint32) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Len(t, buf, 64)
	assert.Equal(t, 1, attempts)
}

func TestFetchBuffered_RegrowsOnceToReportedSize(t *testing.T) {
	const required = 256

	attempts := 0
	var sizes []int
	buf, err := fetchBuffered(64, maxBufferAttempts, errTestOverflow, func(buf []byte, size *uint32) error {
		attempts++
		sizes = append(sizes, len(buf))
		if attempts == 1 {
			*size = required
			return errTestOverflow
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, []int{64, required}, sizes)
	assert.Len(t, buf, required)
}

func TestFetchBuffered_BoundedWhenOverflowPersists(t *testing.T) {
	attempts := 0
	_, err := fetchBuffered(64, maxBufferAttempts, errTestOverflow, func(buf []byte, size *uint32) error {
		attempts++
		*size = uint32(len(buf) * 2)
		return errTestOverflow
	})

	require.ErrorIs(t, err, ErrBufferExhausted)
	assert.Equal(t, maxBufferAttempts, attempts)
}

func TestFetchBuffered_TerminalErrorNotRetried(t *testing.T) {
	errDenied := errors.New("access denied")

	attempts := 0
	_, err := fetchBuffered(64, maxBufferAttempts, errTestOverflow, func(buf []byte, size *uint32) error {
		attempts++
		return errDenied
	})

	require.ErrorIs(t, err, errDenied)
	assert.Equal(t, 1, attempts)
}
