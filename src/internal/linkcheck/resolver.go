package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/maksimkurb/quick-nav/src/internal/log"
)

const (
	defaultDNSPort   = "53"
	resolvConfPath   = "/etc/resolv.conf"
	dnsClientTimeout = 3 * time.Second
)

// ErrNXDomain is returned when the resolver reports that a host does not exist.
var ErrNXDomain = errors.New("no such host")

// Resolver resolves a host name to its addresses.
type Resolver interface {
	Resolve(ctx context.Context, host string) ([]string, error)
}

// DNSResolver queries a single DNS server for A and AAAA records over UDP.
type DNSResolver struct {
	address string
	client  *dns.Client
}

// NewDNSResolver creates a resolver for address (host or host:port).
// An empty address selects the first nameserver of /etc/resolv.conf.
func NewDNSResolver(address string) (*DNSResolver, error) {
	if address == "" {
		conf, err := dns.ClientConfigFromFile(resolvConfPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", resolvConfPath, err)
		}
		if len(conf.Servers) == 0 {
			return nil, fmt.Errorf("no nameservers in %s", resolvConfPath)
		}
		address = net.JoinHostPort(conf.Servers[0], conf.Port)
	} else if _, _, err := net.SplitHostPort(address); err != nil {
		address = net.JoinHostPort(address, defaultDNSPort)
	}

	if _, _, err := net.SplitHostPort(address); err != nil {
		return nil, fmt.Errorf("invalid resolver address: %w", err)
	}

	return &DNSResolver{
		address: address,
		client: &dns.Client{
			Net:     "udp",
			Timeout: dnsClientTimeout,
		},
	}, nil
}

// Address returns the host:port of the queried server.
func (r *DNSResolver) Address() string {
	return r.address
}

// Resolve returns the A and AAAA addresses of host. IP literals resolve to themselves.
// A failed query of one type is ignored when the other one returned addresses.
func (r *DNSResolver) Resolve(ctx context.Context, host string) ([]string, error) {
	if ip := net.ParseIP(host); ip != nil {
		return []string{ip.String()}, nil
	}

	var (
		addrs    []string
		firstErr error
	)
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		found, err := r.query(ctx, host, qtype)
		if err != nil {
			log.Debugf("%s query for %s failed: %v", dns.TypeToString[qtype], host, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		addrs = append(addrs, found...)
	}

	if len(addrs) > 0 {
		return addrs, nil
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, fmt.Errorf("%s: no A or AAAA records", host)
}

func (r *DNSResolver) query(ctx context.Context, host string, qtype uint16) ([]string, error) {
	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(host), qtype)
	req.RecursionDesired = true

	log.Debugf("[%04x] Querying %s for %s %s", req.Id, r.address, host, dns.TypeToString[qtype])

	resp, _, err := r.client.ExchangeContext(ctx, req, r.address)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", host, err)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, fmt.Errorf("%s: %w", host, ErrNXDomain)
	default:
		return nil, fmt.Errorf("%s: resolver answered %s", host, dns.RcodeToString[resp.Rcode])
	}

	var addrs []string
	for _, rr := range resp.Answer {
		switch v := rr.(type) {
		case *dns.A:
			addrs = append(addrs, v.A.String())
		case *dns.AAAA:
			addrs = append(addrs, v.AAAA.String())
		}
	}
	return addrs, nil
}
