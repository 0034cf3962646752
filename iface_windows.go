//go:build windows

package swiftifaces

import (
	"net"

	"golang.org/x/sys/windows"
)

// Ipv4Interface is one IPv4 address of a network adapter, carrying the
// raw adapter type and operational status it was enumerated with.
type Ipv4Interface struct {
	Name       string
	IP         net.IP
	IfType     uint32
	OperStatus uint32
}

// IsLoopback reports whether the adapter is the software loopback.
func (a Ipv4Interface) IsLoopback() bool {
	return a.IfType == windows.IF_TYPE_SOFTWARE_LOOPBACK
}

// IsUp reports whether the adapter is up and able to pass packets.
func (a Ipv4Interface) IsUp() bool {
	return a.OperStatus == windows.IfOperStatusUp
}

// IsLowerUp reports whether the adapter link layer is up. Windows does
// not expose a separate carrier bit; operational status up implies the
// lower layers are up.
func (a Ipv4Interface) IsLowerUp() bool {
	return a.IsUp()
}
