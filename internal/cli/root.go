package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"reel.dev/internal/config"
	"reel.dev/internal/logger"
)

// app carries state shared by the commands of one invocation
type app struct {
	fs      afero.Fs
	v       *viper.Viper
	cfgFile string

	cfg *config.Config
	log logger.Logger
}

// Execute runs the root command against the real filesystem
func Execute() error {
	return newRootCommand(afero.NewOsFs()).Execute()
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New()}

	root := &cobra.Command{
		Use:   "reel",
		Short: "Normalize and serve portfolio project data",
		Long: `reel reads the portfolio's projects.json, derives brand and spot from
each title, fills canonical fields and their legacy aliases, and writes the
data files the site templates consume. It can also check the content for
problems and serve it as a JSON API next to the built site.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./reel.yaml)")
	flags.String("content", "", "path to the projects.json content file")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("log-json", false, "log as JSON")
	a.bind("content_path", flags.Lookup("content"))
	a.bind("log_level", flags.Lookup("log-level"))
	a.bind("log_json", flags.Lookup("log-json"))

	root.AddCommand(a.buildCommand(), a.checkCommand(), a.serveCommand())
	return root
}

// bind ties a flag to a config key; the flag is always defined by the caller
func (a *app) bind(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag for %s: %v", key, err))
	}
}

func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		Output:     cmd.ErrOrStderr(),
		JSON:       cfg.LogJSON,
		TimeFormat: "15:04:05",
	})

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("using config file", "path", used)
	}
	return nil
}
