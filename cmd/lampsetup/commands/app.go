package commands

import (
	"io"
	"log/slog"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
	"github.com/spf13/cobra"
)

// app wires configuration, logging and host access for one command.
type app struct {
	cfg    lampsetup.Config
	logger *slog.Logger
	closer io.Closer
	runner *lampsetup.ExecRunner
	host   *lampsetup.Host
	dns    *lampsetup.DNSChecker
}

// newApp loads the configuration. In quiet mode (the full-screen wizard)
// nothing may write to the terminal, so command output and logs go to the
// log file when one is configured and are discarded otherwise.
func newApp(cmd *cobra.Command, opts *rootOptions, quiet bool) (*app, error) {
	cfg, err := lampsetup.LoadConfig()
	if err != nil {
		return nil, err
	}
	if opts.dnsServer != "" {
		cfg.DNSServer = opts.dnsServer
	}

	var logFallback io.Writer = cmd.ErrOrStderr()
	if quiet {
		logFallback = io.Discard
	}
	logger, closer, err := lampsetup.NewLogger(cfg.Log, logFallback)
	if err != nil {
		return nil, err
	}

	stdout, stderr, out := cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.OutOrStdout()
	if quiet {
		stdout, stderr, out = io.Discard, io.Discard, io.Discard
		if w, ok := closer.(io.Writer); ok {
			stdout, stderr = w, w
		}
	}

	runner := lampsetup.NewExecRunner(stdout, stderr, logger)
	return &app{
		cfg:    cfg,
		logger: logger,
		closer: closer,
		runner: runner,
		host:   lampsetup.NewHost(cfg, runner, out, logger),
		dns:    lampsetup.NewDNSChecker(lampsetup.NewNetResolver(cfg.DNSServer), runner, logger),
	}, nil
}

func (a *app) Close() {
	_ = a.closer.Close()
}
