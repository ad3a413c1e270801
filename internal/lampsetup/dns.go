package lampsetup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"
)

const dnsTimeout = 2 * time.Second

// Resolver looks up A records, allowing mock implementations in tests.
type Resolver interface {
	LookupIPv4(ctx context.Context, host string) ([]string, error)
}

// NetResolver wraps net.Resolver, optionally pinned to one DNS server.
type NetResolver struct {
	resolver *net.Resolver
}

// NewNetResolver uses the system resolver when server is empty. Otherwise
// server must be "host:port", e.g. "1.1.1.1:53".
func NewNetResolver(server string) *NetResolver {
	if server == "" {
		return &NetResolver{resolver: net.DefaultResolver}
	}
	return &NetResolver{resolver: &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, _ string) (net.Conn, error) {
			d := net.Dialer{Timeout: dnsTimeout}
			return d.DialContext(ctx, network, server)
		},
	}}
}

func (r *NetResolver) LookupIPv4(ctx context.Context, host string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, dnsTimeout)
	defer cancel()

	ips, err := r.resolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ips))
	for _, ip := range ips {
		out = append(out, ip.String())
	}
	return out, nil
}

type DNSResult struct {
	Domain     string
	ServerIP   string
	ResolvedIP string
	Match      bool
}

// DNSChecker compares a domain's A record with the host's primary address.
type DNSChecker struct {
	resolver Resolver
	runner   Runner
	logger   *slog.Logger
}

func NewDNSChecker(resolver Resolver, runner Runner, logger *slog.Logger) *DNSChecker {
	return &DNSChecker{resolver: resolver, runner: runner, logger: logger}
}

// Check never fails on lookup problems: an unknown address simply does not
// match. Only context cancellation is returned.
func (c *DNSChecker) Check(ctx context.Context, domain string) (DNSResult, error) {
	res := DNSResult{Domain: domain}

	serverIP, err := c.ServerIP(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		c.logger.Warn("could not determine server IP", "err", err)
	}
	res.ServerIP = serverIP

	records, err := c.resolver.LookupIPv4(ctx, domain)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			c.logger.Info("no A record", "domain", domain)
		} else {
			c.logger.Warn("A record lookup failed", "domain", domain, "err", err)
		}
	}

	if len(records) > 0 {
		res.ResolvedIP = records[0]
	}
	for _, ip := range records {
		if ip == serverIP && serverIP != "" {
			res.ResolvedIP = ip
			res.Match = true
			break
		}
	}
	c.logger.Info("dns check", "domain", domain, "server_ip", res.ServerIP, "resolved_ip", res.ResolvedIP, "match", res.Match)
	return res, nil
}

// ServerIP returns the first address printed by `hostname -I`.
func (c *DNSChecker) ServerIP(ctx context.Context) (string, error) {
	out, err := c.runner.Output(ctx, "hostname", "-I")
	if err != nil {
		return "", fmt.Errorf("hostname -I: %w", err)
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return "", errors.New("hostname -I returned no addresses")
	}
	return fields[0], nil
}
