package commands

import (
	"context"
	"errors"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
	"github.com/spf13/cobra"
)

// exitInterrupted is the conventional status for a run ended by SIGINT.
const exitInterrupted = 130

type rootOptions struct {
	answersPath string
	dnsServer   string
	domain      string
	newServer   bool
}

// NewRootCommand creates the lampsetup command tree. Without a subcommand
// it runs the line-oriented provisioning flow.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "lampsetup",
		Short: "Provision Apache, PHP, MySQL and a virtual host on this machine",
		Long: `lampsetup provisions a LAMP web host on the local Debian/Ubuntu machine.

It asks for a domain, checks that the domain points at this server,
installs Apache, PHP and MySQL (all at once or one by one), creates the
virtual host and document root, and optionally installs Composer.

Run it as root. There is no rollback: the first failing command stops the run.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.answersPath, "answers", "", "YAML or TOML file with pre-supplied answers")
	root.PersistentFlags().StringVar(&opts.dnsServer, "dns-server", "", "DNS server (host:port) for the A record lookup")
	addProvisionFlags(root, opts)

	root.AddCommand(
		newRunCommand(opts),
		newSetupCommand(opts),
		newDoctorCommand(),
		newSitesCommand(),
	)
	return root
}

func loadAnswers(cmd *cobra.Command, opts *rootOptions) (lampsetup.Answers, error) {
	var answers lampsetup.Answers
	if opts.answersPath != "" {
		a, err := lampsetup.LoadAnswers(opts.answersPath)
		if err != nil {
			return answers, err
		}
		answers = a
	}
	if opts.domain != "" {
		answers.Domain = opts.domain
	}
	if f := cmd.Flags().Lookup("new-server"); f != nil && f.Changed {
		v := opts.newServer
		answers.NewServer = &v
	}
	return answers, nil
}

// interrupted maps a run ended by SIGINT to exit status 130. A child killed
// by the cancelled context reports its own error, so ctx is checked too.
func interrupted(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return ExitWithCode(exitInterrupted, err)
	}
	return err
}
