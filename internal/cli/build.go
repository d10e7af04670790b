package cli

import (
	"github.com/spf13/cobra"

	"reel.dev/internal/normalize"
)

func (a *app) buildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the normalized data files",
		Long: `build loads the content file, normalizes every project and writes
projects.json, projectBySlug.json and featuredHomeSlugs.json to the output
directory. Content issues are logged as warnings and do not fail the build.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBuild()
		},
	}
	cmd.Flags().String("out", "", "output directory for the data files")
	a.bind("output_dir", cmd.Flags().Lookup("out"))
	return cmd
}

func (a *app) runBuild() error {
	catalog, err := normalize.Load(a.fs, a.cfg.ContentPath)
	if err != nil {
		return err
	}

	for _, f := range normalize.Check(catalog).Findings {
		a.log.Warn("content issue", "index", f.Index, "slug", f.Slug, "kind", string(f.Kind), "detail", f.Detail)
	}

	if err := normalize.WriteOutput(a.fs, a.cfg.OutputDir, normalize.Emit(catalog)); err != nil {
		return err
	}

	a.log.Info("wrote data files",
		"dir", a.cfg.OutputDir,
		"projects", len(catalog.Projects),
		"featured", len(catalog.FeaturedSlugs),
	)
	return nil
}
