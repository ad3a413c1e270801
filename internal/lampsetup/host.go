package lampsetup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Host bundles everything a provisioning step needs to act on the machine.
type Host struct {
	Config     Config
	Runner     Runner
	HTTPClient *http.Client
	Out        io.Writer
	Logger     *slog.Logger
}

func NewHost(cfg Config, runner Runner, out io.Writer, logger *slog.Logger) *Host {
	return &Host{
		Config:     cfg,
		Runner:     runner,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		Out:        out,
		Logger:     logger,
	}
}

// Step is one unit of a provisioning plan.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunSteps executes steps in order and stops at the first failure.
func RunSteps(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := step.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// exec runs one command for step, wrapping a failure in a StepError.
func (h *Host) exec(ctx context.Context, step, name string, args ...string) error {
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	h.Logger.Info("run", "step", step, "cmd", cmdline)
	if err := h.Runner.Run(ctx, name, args...); err != nil {
		h.Logger.Error("command failed", "step", step, "cmd", cmdline, "err", err)
		return &StepError{Step: step, Command: cmdline, Err: err}
	}
	return nil
}

func (h *Host) execAll(ctx context.Context, step string, cmds [][]string) error {
	for _, c := range cmds {
		if err := h.exec(ctx, step, c[0], c[1:]...); err != nil {
			return err
		}
	}
	return nil
}

func (h *Host) printf(format string, args ...any) {
	fmt.Fprintf(h.Out, format, args...)
}

// Plan builds the full ordered step list for opts. Site provisioning is
// included only when Apache is selected or already installed.
func (h *Host) Plan(ctx context.Context, opts Options) []Step {
	steps := h.PackageSteps(opts.Packages)
	if opts.Packages.Apache || h.ApacheInstalled(ctx) {
		steps = append(steps, h.SiteStep(opts.Domain))
	} else {
		steps = append(steps, h.skipSiteStep())
	}
	if opts.Composer {
		steps = append(steps, h.ComposerStep())
	}
	return steps
}

func (h *Host) skipSiteStep() Step {
	return Step{
		Name: "Virtual host (skipped, Apache not installed)",
		Run: func(context.Context) error {
			h.Logger.Warn("skipping virtual host: apache2 is neither selected nor installed")
			h.printf("Skipping virtual host setup: Apache is not installed.\n")
			return nil
		},
	}
}
