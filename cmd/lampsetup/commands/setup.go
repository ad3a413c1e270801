package commands

import (
	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/tui"
	"github.com/spf13/cobra"
)

func newSetupCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactive full-screen setup wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			answers, err := loadAnswers(cmd, opts)
			if err != nil {
				return err
			}
			a, err := newApp(cmd, opts, true)
			if err != nil {
				return err
			}
			defer a.Close()

			_, err = tui.StartWizard(cmd.Context(), tui.Deps{Host: a.host, DNS: a.dns}, answers)
			return interrupted(cmd.Context(), err)
		},
	}
	addProvisionFlags(cmd, opts)
	return cmd
}
