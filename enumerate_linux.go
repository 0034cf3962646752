//go:build linux

package swiftifaces

import (
	"fmt"

	"github.com/vishvananda/netlink"
)

// enumerate walks the kernel's link list over netlink and collects the
// IPv4 addresses attached to each link.
func enumerate() ([]Ipv4Interface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	var ifaces []Ipv4Interface
	for _, link := range links {
		attrs := link.Attrs()
		if attrs == nil {
			continue
		}

		addrs, err := netlink.AddrList(link, netlink.FAMILY_V4)
		if err != nil {
			return nil, fmt.Errorf("failed to list addresses of %s: %w", attrs.Name, err)
		}

		for _, addr := range addrs {
			if iface, ok := toInterface(attrs, addr); ok {
				ifaces = append(ifaces, iface)
			}
		}
	}

	return ifaces, nil
}

// toInterface maps one link/address pair to at most one Ipv4Interface.
// Records without a 4-byte address payload are skipped, not reported.
func toInterface(attrs *netlink.LinkAttrs, addr netlink.Addr) (Ipv4Interface, bool) {
	if addr.IPNet == nil {
		return Ipv4Interface{}, false
	}

	ip := addr.IPNet.IP.To4()
	if ip == nil {
		return Ipv4Interface{}, false
	}

	return Ipv4Interface{
		Name:  attrs.Name,
		IP:    ip,
		Flags: attrs.RawFlags,
	}, true
}
