package commands

import (
	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Provision this host with line-oriented prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd, opts)
		},
	}
	addProvisionFlags(cmd, opts)
	return cmd
}

func addProvisionFlags(cmd *cobra.Command, opts *rootOptions) {
	cmd.Flags().StringVar(&opts.domain, "domain", "", "domain to provision (skips the domain prompt)")
	cmd.Flags().BoolVar(&opts.newServer, "new-server", false, "install the full stack without per-package prompts")
}

func runProvision(cmd *cobra.Command, opts *rootOptions) error {
	answers, err := loadAnswers(cmd, opts)
	if err != nil {
		return err
	}

	a, err := newApp(cmd, opts, false)
	if err != nil {
		return err
	}
	defer a.Close()

	prompter := lampsetup.NewAnswersPrompter(answers,
		lampsetup.NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
	p := lampsetup.NewProvisioner(a.host, prompter, a.dns)
	if _, err := p.Run(cmd.Context()); err != nil {
		return interrupted(cmd.Context(), err)
	}
	return nil
}
