//go:build darwin

package swiftifaces

import (
	"fmt"
	"net"

	"golang.org/x/net/route"
	"golang.org/x/sys/unix"
)

// enumerate fetches the interface list from the routing information
// base and collects the IPv4 address records attached to it.
func enumerate() ([]Ipv4Interface, error) {
	rib, err := route.FetchRIB(unix.AF_UNSPEC, route.RIBTypeInterface, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interface RIB: %w", err)
	}

	msgs, err := route.ParseRIB(route.RIBTypeInterface, rib)
	if err != nil {
		return nil, fmt.Errorf("failed to parse interface RIB: %w", err)
	}

	return fromMessages(msgs), nil
}

// ifInfo is the per-link state an address record is joined against.
type ifInfo struct {
	name  string
	flags uint32
}

// fromMessages joins interface messages with the address messages that
// reference them by index. Address records without a known link or a
// 4-byte address payload are skipped, not reported.
func fromMessages(msgs []route.Message) []Ipv4Interface {
	links := make(map[int]ifInfo)
	for _, m := range msgs {
		if im, ok := m.(*route.InterfaceMessage); ok {
			links[im.Index] = ifInfo{name: im.Name, flags: uint32(im.Flags)}
		}
	}

	var ifaces []Ipv4Interface
	for _, m := range msgs {
		am, ok := m.(*route.InterfaceAddrMessage)
		if !ok {
			continue
		}
		if iface, ok := toInterface(links, am); ok {
			ifaces = append(ifaces, iface)
		}
	}
	return ifaces
}

// toInterface maps one address message to at most one Ipv4Interface.
func toInterface(links map[int]ifInfo, am *route.InterfaceAddrMessage) (Ipv4Interface, bool) {
	link, ok := links[am.Index]
	if !ok {
		return Ipv4Interface{}, false
	}

	if len(am.Addrs) <= unix.RTAX_IFA {
		return Ipv4Interface{}, false
	}
	sa, ok := am.Addrs[unix.RTAX_IFA].(*route.Inet4Addr)
	if !ok {
		return Ipv4Interface{}, false
	}

	return Ipv4Interface{
		Name:  link.name,
		IP:    net.IPv4(sa.IP[0], sa.IP[1], sa.IP[2], sa.IP[3]).To4(),
		Flags: link.flags,
	}, true
}
