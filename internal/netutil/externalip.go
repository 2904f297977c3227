// Package netutil discovers the node's public address so it can be
// advertised to other nodes.
package netutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultLookupHost = "checkip.dyndns.org"

	addressKeyword = "Address: "
	bodyEnd        = "</body>"
)

// ErrAddressNotFound is returned when the lookup response has no address line.
var ErrAddressNotFound = errors.New("external address not found in response")

// IPLookup asks a checkip-style HTTP service for the caller's public address.
type IPLookup struct {
	client *resty.Client
	url    string
}

// NewIPLookup returns a lookup against host, which is either a bare host name
// (queried over plain http on port 80) or a full URL.
func NewIPLookup(host string) *IPLookup {
	url := host
	if !strings.Contains(host, "://") {
		url = "http://" + host + "/"
	}
	return &IPLookup{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    url,
	}
}

// ExternalIP fetches the lookup page and extracts the reported address.
func (l *IPLookup) ExternalIP(ctx context.Context) (string, error) {
	resp, err := l.client.R().SetContext(ctx).Get(l.url)
	if err != nil {
		return "", fmt.Errorf("external ip lookup: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("external ip lookup: %s", resp.Status())
	}
	return parseAddress(resp.String())
}

// parseAddress returns the text between "Address: " and "</body>" on the
// first line holding both.
func parseAddress(body string) (string, error) {
	for _, line := range strings.Split(body, "\n") {
		start := strings.Index(line, addressKeyword)
		if start < 0 {
			continue
		}
		end := strings.Index(line, bodyEnd)
		if end < 0 {
			continue
		}
		start += len(addressKeyword)
		if end < start {
			continue
		}
		return strings.TrimSpace(line[start:end]), nil
	}
	return "", ErrAddressNotFound
}
