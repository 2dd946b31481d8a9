package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// maxJobPageBytes caps how much of a job posting page is read.
const maxJobPageBytes = 5 << 20

// ErrBlockedAddress is returned when a job posting URL resolves to a
// loopback, private, link-local or otherwise non-public address.
var ErrBlockedAddress = errors.New("job posting address is not public")

// JobFetcher downloads a job posting and reduces it to plain text.
type JobFetcher struct {
	client *http.Client
}

// NewJobFetcher returns a fetcher that only connects to public addresses.
// The check runs on every dial, so redirects and DNS answers are covered too.
func NewJobFetcher(timeout time.Duration) *JobFetcher {
	return newJobFetcher(timeout, false)
}

func newJobFetcher(timeout time.Duration, allowPrivate bool) *JobFetcher {
	dialer := &net.Dialer{Timeout: timeout}
	if !allowPrivate {
		dialer.Control = publicOnly
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &JobFetcher{client: &http.Client{Timeout: timeout, Transport: transport}}
}

func publicOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, address)
	}
	if isNonPublic(addr.Unmap()) {
		return fmt.Errorf("%w: %s", ErrBlockedAddress, addr)
	}
	return nil
}

func isNonPublic(addr netip.Addr) bool {
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsInterfaceLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified()
}

func (f *JobFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse job posting URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported job posting URL scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build job posting request: %w", err)
	}
	req.Header.Set("Accept", "text/html,text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch job posting: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxJobPageBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse job posting: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer").Remove()

	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	if text == "" {
		return "", fmt.Errorf("job posting at %s has no text", rawURL)
	}

	return text, nil
}
