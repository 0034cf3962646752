//go:build linux

package swiftifaces

import "golang.org/x/sys/unix"

const (
	flagUp       = unix.IFF_UP
	flagLoopback = unix.IFF_LOOPBACK
	flagCarrier  = unix.IFF_LOWER_UP
)
