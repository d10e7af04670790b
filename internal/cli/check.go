package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel.dev/internal/normalize"
)

func (a *app) checkCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report problems in the content file",
		Long: `check lists duplicate, empty and non-canonical slugs, titles without a
quoted spot, and entries that are not objects. Duplicate slugs resolve to the
last record in the slug index. With --strict any finding is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := normalize.Load(a.fs, a.cfg.ContentPath)
			if err != nil {
				return err
			}

			report := normalize.Check(catalog)
			out := cmd.OutOrStdout()
			for _, f := range report.Findings {
				fmt.Fprintln(out, f.String())
			}
			fmt.Fprintf(out, "%d projects, %d issues\n", len(catalog.Projects), len(report.Findings))

			if strict && !report.OK() {
				return fmt.Errorf("%d content issues in %s", len(report.Findings), a.cfg.ContentPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any issue is found")
	return cmd
}
