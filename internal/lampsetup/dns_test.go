package lampsetup

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDNSChecker_Check(t *testing.T) {
	tests := []struct {
		name       string
		hostnameI  string
		records    []string
		lookupErr  error
		wantMatch  bool
		wantServer string
		wantIP     string
	}{
		{
			name:       "single record matches",
			hostnameI:  "203.0.113.10 10.0.0.5 \n",
			records:    []string{"203.0.113.10"},
			wantMatch:  true,
			wantServer: "203.0.113.10",
			wantIP:     "203.0.113.10",
		},
		{
			name:       "any record may match",
			hostnameI:  "203.0.113.10\n",
			records:    []string{"198.51.100.1", "203.0.113.10"},
			wantMatch:  true,
			wantServer: "203.0.113.10",
			wantIP:     "203.0.113.10",
		},
		{
			name:       "mismatch reports first record",
			hostnameI:  "203.0.113.10\n",
			records:    []string{"198.51.100.1", "198.51.100.2"},
			wantServer: "203.0.113.10",
			wantIP:     "198.51.100.1",
		},
		{
			name:       "no record is a mismatch",
			hostnameI:  "203.0.113.10\n",
			lookupErr:  &net.DNSError{Err: "no such host", Name: "example.com", IsNotFound: true},
			wantServer: "203.0.113.10",
		},
		{
			name:       "lookup failure is a mismatch",
			hostnameI:  "203.0.113.10\n",
			lookupErr:  errors.New("i/o timeout"),
			wantServer: "203.0.113.10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newFakeRunner()
			runner.outputs["hostname -I"] = tt.hostnameI
			resolver := &mockResolver{records: tt.records, err: tt.lookupErr}

			checker := NewDNSChecker(resolver, runner, testLogger())
			res, err := checker.Check(context.Background(), "example.com")

			require.NoError(t, err)
			assert.Equal(t, "example.com", res.Domain)
			assert.Equal(t, tt.wantMatch, res.Match)
			assert.Equal(t, tt.wantServer, res.ServerIP)
			assert.Equal(t, tt.wantIP, res.ResolvedIP)
			assert.Equal(t, []string{"example.com"}, resolver.lookups)
		})
	}
}

func TestDNSChecker_UnknownServerIP(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["hostname -I"] = "   \n"
	resolver := &mockResolver{records: []string{"203.0.113.10"}}

	res, err := NewDNSChecker(resolver, runner, testLogger()).Check(context.Background(), "example.com")
	require.NoError(t, err)
	assert.False(t, res.Match)
	assert.Empty(t, res.ServerIP)
	assert.Equal(t, "203.0.113.10", res.ResolvedIP)
}

func TestDNSChecker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := newFakeRunner()
	runner.fail["hostname -I"] = context.Canceled

	_, err := NewDNSChecker(&mockResolver{}, runner, testLogger()).Check(ctx, "example.com")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDNSChecker_ServerIP(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["hostname -I"] = "192.168.1.20 172.17.0.1 fe80::1\n"

	ip, err := NewDNSChecker(&mockResolver{}, runner, testLogger()).ServerIP(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.20", ip)
}
