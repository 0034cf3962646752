//go:build !linux && !darwin && !windows

package swiftifaces

import "net"

// Ipv4Interface is a stub for unsupported platforms.
type Ipv4Interface struct {
	Name string
	IP   net.IP
}

func (a Ipv4Interface) IsLoopback() bool { return false }

func (a Ipv4Interface) IsLowerUp() bool { return false }

func (a Ipv4Interface) IsUp() bool { return false }
