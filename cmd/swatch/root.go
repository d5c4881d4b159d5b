package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dreamware/swatch/internal/client"
	"github.com/dreamware/swatch/internal/config"
	"github.com/dreamware/swatch/internal/logging"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries state shared by all subcommands for one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "swatch",
		Short: "swatch - colored blocks and a favorite color",
		Long: `swatch serves an index page, renders a colored block for any color name,
and lets visitors set and read a single process-wide favorite color.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	root.SetVersionTemplate("swatch version {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: swatch.{yaml,toml,json} in . or $HOME/.config/swatch)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("server", "http://127.0.0.1:8080", "base URL of the swatch server for client commands")
	bindFlag(a.v, "log.level", flags, "log-level")
	bindFlag(a.v, "log.format", flags, "log-format")
	bindFlag(a.v, "server", flags, "server")

	root.AddCommand(
		newServeCmd(a),
		newFavoriteCmd(a),
		newColorCmd(a),
		newHealthCmd(a),
	)
	return root
}

// load resolves configuration and builds the logger before any subcommand runs.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	return nil
}

func (a *app) client() *client.Client {
	return client.New(a.cfg.Server, a.cfg.Client.Timeout)
}

func bindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}
