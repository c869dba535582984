// Package hostaddr decides which host name the root endpoint embeds in the
// link it hands out.
package hostaddr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Mode selects how the host identifier is obtained.
type Mode string

const (
	ModeStatic  Mode = "static"
	ModeResolve Mode = "resolve"
)

// DefaultHost is used by static mode when no host is configured.
const DefaultHost = "localhost"

// ErrNoAddress is returned when no usable interface address exists.
var ErrNoAddress = errors.New("no non-loopback IPv4 address found")

// Resolver yields the host identifier for outgoing links.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// AddressResolutionError reports that the local network stack could not
// supply an address. It is not retried.
type AddressResolutionError struct {
	Err error
}

func (e *AddressResolutionError) Error() string {
	return fmt.Sprintf("resolving local host address: %v", e.Err)
}

func (e *AddressResolutionError) Unwrap() error { return e.Err }

// Static always returns the same host.
type Static struct {
	Host string
}

// Resolve implements Resolver.
func (s Static) Resolve(context.Context) (string, error) {
	if s.Host == "" {
		return DefaultHost, nil
	}
	return s.Host, nil
}

// Local resolves the first non-loopback IPv4 address of this machine.
type Local struct {
	// InterfaceAddrs lists interface addresses; nil means net.InterfaceAddrs.
	InterfaceAddrs func() ([]net.Addr, error)
}

// Resolve implements Resolver. Every failure is an *AddressResolutionError.
func (l Local) Resolve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &AddressResolutionError{Err: err}
	}

	list := l.InterfaceAddrs
	if list == nil {
		list = net.InterfaceAddrs
	}
	addrs, err := list()
	if err != nil {
		return "", &AddressResolutionError{Err: err}
	}

	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip == nil || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
			continue
		}
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), nil
		}
	}
	return "", &AddressResolutionError{Err: ErrNoAddress}
}

// ValidateHost reports whether h can stand alone as the host part of an
// http URL: an IP address or an RFC 1123 host name, with no scheme, port,
// path or whitespace.
func ValidateHost(h string) error {
	if ip := net.ParseIP(h); ip == nil && !isHostname(h) {
		return fmt.Errorf("%q is not an IP address or host name", h)
	}
	if _, err := url.Parse("http://" + net.JoinHostPort(h, "8080")); err != nil {
		return fmt.Errorf("%q does not form a valid URL: %w", h, err)
	}
	return nil
}

func isHostname(h string) bool {
	h = strings.TrimSuffix(h, ".")
	if h == "" || len(h) > 253 {
		return false
	}
	for _, label := range strings.Split(h, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			switch {
			case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
			default:
				return false
			}
		}
	}
	return true
}

// New builds the Resolver for mode. host is only used by static mode.
func New(mode Mode, host string) (Resolver, error) {
	switch mode {
	case "", ModeStatic:
		return Static{Host: host}, nil
	case ModeResolve:
		return Local{}, nil
	default:
		return nil, fmt.Errorf("unknown host mode %q: must be one of static, resolve", mode)
	}
}
