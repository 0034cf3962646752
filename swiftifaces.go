// Package swiftifaces enumerates the host's active IPv4 network
// interfaces and exposes them through a single record type with
// semantic predicates, regardless of which OS facility backs the
// enumeration.
package swiftifaces

import "fmt"

// Interfaces collects the host's IPv4 network interfaces.
//
// The result is a point-in-time snapshot in OS enumeration order; the
// order is not sorted and not guaranteed stable across calls. Each call
// performs one OS enumeration and shares no state with other calls, so
// Interfaces is safe to invoke concurrently.
func Interfaces() ([]Ipv4Interface, error) {
	return enumerate()
}

// IsLinkLocal reports whether the address is link-local (169.254.0.0/16).
func (a Ipv4Interface) IsLinkLocal() bool {
	return a.IP.IsLinkLocalUnicast()
}

// IsUsable reports whether the interface is a reasonable candidate for
// carrying traffic: up, not loopback and not link-local.
func (a Ipv4Interface) IsUsable() bool {
	return a.IsUp() && !a.IsLoopback() && !a.IsLinkLocal()
}

func (a Ipv4Interface) String() string {
	return fmt.Sprintf("Ipv4Interface{Name: %q, IP: %v}", a.Name, a.IP)
}
