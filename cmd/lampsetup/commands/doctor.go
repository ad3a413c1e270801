package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run advisory preflight checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := lampsetup.LoadConfig()
			if err != nil {
				return err
			}
			runner := lampsetup.NewExecRunner(io.Discard, io.Discard, nil)
			lampsetup.RunDoctor(cmd.Context(), cmd.OutOrStdout(), cfg, runner)
			return nil
		},
	}
}

func newSitesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List virtual hosts in the Apache sites directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := lampsetup.LoadConfig()
			if err != nil {
				return err
			}
			sites, err := lampsetup.ListSites(cfg.SitesDir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sites) == 0 {
				fmt.Fprintf(out, "no virtual hosts in %s\n", cfg.SitesDir)
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SERVER NAME\tDOCUMENT ROOT\tFILE")
			for _, s := range sites {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.ServerName, s.DocumentRoot, s.ConfigPath)
			}
			return w.Flush()
		},
	}
}
