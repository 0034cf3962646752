//go:build darwin

package swiftifaces

import "golang.org/x/sys/unix"

// Darwin has no IFF_LOWER_UP; IFF_RUNNING is the BSD carrier bit.
const (
	flagUp       = unix.IFF_UP
	flagLoopback = unix.IFF_LOOPBACK
	flagCarrier  = unix.IFF_RUNNING
)
