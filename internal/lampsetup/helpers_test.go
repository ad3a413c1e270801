package lampsetup

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// fakeRunner records every command and answers from canned tables.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []string
	outputs map[string]string
	fail    map[string]error
	onRun   func(name string, args []string) error
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: map[string]string{},
		fail:    map[string]error{},
	}
}

func (r *fakeRunner) record(name string, args []string) string {
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.mu.Lock()
	r.calls = append(r.calls, cmdline)
	r.mu.Unlock()
	return cmdline
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	cmdline := r.record(name, args)
	if err, ok := r.fail[cmdline]; ok {
		return err
	}
	if r.onRun != nil {
		return r.onRun(name, args)
	}
	return nil
}

func (r *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	cmdline := r.record(name, args)
	if err, ok := r.fail[cmdline]; ok {
		return "", err
	}
	out, ok := r.outputs[cmdline]
	if !ok {
		return "", fmt.Errorf("unexpected command %q", cmdline)
	}
	return out, nil
}

func (r *fakeRunner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// indexOf returns the position of the first call starting with prefix.
func (r *fakeRunner) indexOf(prefix string) int {
	for i, c := range r.Calls() {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

type mockResolver struct {
	records []string
	err     error
	lookups []string
}

func (m *mockResolver) LookupIPv4(_ context.Context, host string) ([]string, error) {
	m.lookups = append(m.lookups, host)
	return m.records, m.err
}

// scriptedPrompter replays fixed answers and records what was asked.
type scriptedPrompter struct {
	domain    string
	domainErr error
	confirms  map[Question]bool
	asked     []Question
}

func (p *scriptedPrompter) AskDomain(context.Context) (string, error) {
	if p.domainErr != nil {
		return "", p.domainErr
	}
	return p.domain, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, q Question, _ string, def bool) (bool, error) {
	p.asked = append(p.asked, q)
	if v, ok := p.confirms[q]; ok {
		return v, nil
	}
	return def, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.WebRoot = filepath.Join(dir, "www")
	cfg.SitesDir = filepath.Join(dir, "sites-available")
	cfg.BinDir = filepath.Join(dir, "bin")
	cfg.WorkDir = filepath.Join(dir, "work")
	return cfg
}

func newTestHost(t *testing.T, runner Runner) (*Host, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewHost(testConfig(t), runner, &out, testLogger()), &out
}
