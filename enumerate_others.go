//go:build !linux && !darwin && !windows

package swiftifaces

import "errors"

var errNotImplemented = errors.New("not implemented")

// enumerate is a stub for unsupported platforms.
func enumerate() ([]Ipv4Interface, error) {
	return nil, errNotImplemented
}
