package demo

import (
	"context"
	"net"
	"net/url"
	"strconv"

	"github.com/ziadkadry99/demolink/internal/hostaddr"
)

// DefaultPort is the port named in links when none is configured.
const DefaultPort = 8080

// LinkBuilder produces the absolute URL of the /test endpoint.
type LinkBuilder struct {
	Resolver hostaddr.Resolver
	Port     int
}

// TestURL returns http://<host>:<port>/test.
func (b *LinkBuilder) TestURL(ctx context.Context) (string, error) {
	resolver := b.Resolver
	if resolver == nil {
		resolver = hostaddr.Static{}
	}
	host, err := resolver.Resolve(ctx)
	if err != nil {
		return "", err
	}

	port := b.Port
	if port == 0 {
		port = DefaultPort
	}

	u := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/test",
	}
	return u.String(), nil
}
