//go:build windows

package swiftifaces

import (
	"errors"
	"fmt"
	"net"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

// GetAdaptersAddresses flags; golang.org/x/sys/windows only exports the
// include-prefix one.
const (
	gaaFlagSkipAnycast   = 0x0002
	gaaFlagSkipDNSServer = 0x0008
)

// enumerate retrieves the adapter list via GetAdaptersAddresses and
// translates it record by record. The enumeration is restricted to
// IPv4 unicast entries up front; anycast and DNS server records are
// never requested.
func enumerate() ([]Ipv4Interface, error) {
	buf, err := fetchBuffered(initialBufferSize, maxBufferAttempts, windows.ERROR_BUFFER_OVERFLOW, func(buf []byte, size *uint32) error {
		head := (*windows.IpAdapterAddresses)(unsafe.Pointer(unsafe.SliceData(buf)))
		return windows.GetAdaptersAddresses(windows.AF_INET, gaaFlagSkipAnycast|gaaFlagSkipDNSServer, 0, head, size)
	})
	if errors.Is(err, windows.ERROR_NO_DATA) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get adapter addresses: %w", err)
	}

	head := (*windows.IpAdapterAddresses)(unsafe.Pointer(unsafe.SliceData(buf)))
	adapters := collectLinked(head, func(a *windows.IpAdapterAddresses) *windows.IpAdapterAddresses {
		return a.Next
	})

	var ifaces []Ipv4Interface
	for i := range adapters {
		if iface, ok := toInterface(&adapters[i]); ok {
			ifaces = append(ifaces, iface)
		}
	}

	// The copied nodes still point at name and address payloads inside
	// buf; it must stay reachable until translation is done.
	runtime.KeepAlive(buf)

	return ifaces, nil
}

// toInterface maps one adapter record to at most one Ipv4Interface.
// Adapters without a decodable name or an IPv4 unicast address are
// skipped, not reported.
func toInterface(adapter *windows.IpAdapterAddresses) (Ipv4Interface, bool) {
	if adapter.FriendlyName == nil {
		return Ipv4Interface{}, false
	}
	name := windows.UTF16PtrToString(adapter.FriendlyName)

	unicast := adapter.FirstUnicastAddress
	if unicast == nil {
		return Ipv4Interface{}, false
	}

	ip := unicast.Address.IP()
	if ip == nil {
		return Ipv4Interface{}, false
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return Ipv4Interface{}, false
	}

	return Ipv4Interface{
		Name: name,
		// IP() aliases the enumeration buffer; the record must own its
		// address bytes outright.
		IP:         append(net.IP(nil), ip4...),
		IfType:     adapter.IfType,
		OperStatus: adapter.OperStatus,
	}, true
}
