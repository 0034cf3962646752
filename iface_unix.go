//go:build linux || darwin

package swiftifaces

import "net"

// Ipv4Interface is one IPv4 address of a network interface, carrying
// the raw interface flags it was enumerated with.
type Ipv4Interface struct {
	Name  string
	IP    net.IP
	Flags uint32
}

// IsLoopback reports whether the interface is a loopback interface.
func (a Ipv4Interface) IsLoopback() bool {
	return a.Flags&flagLoopback != 0
}

// IsLowerUp reports whether the interface has detected acquisition of
// carrier.
func (a Ipv4Interface) IsLowerUp() bool {
	return a.Flags&flagCarrier != 0
}

// IsUp reports whether the interface is administratively up and has a
// carrier.
func (a Ipv4Interface) IsUp() bool {
	return a.Flags&flagUp != 0 && a.IsLowerUp()
}
