package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/dodge3d/config"
	"github.com/lixenwraith/dodge3d/logging"
)

const (
	defaultLogFormat = "json"
	defaultLogLevel  = "info"
)

// Global flags available to all subcommands
type globalFlags struct {
	configFile string
	logFormat  string
	logLevel   string
}

// NewRootCmd creates the root command for the dodge3d CLI
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "dodge3d",
		Short: "dodge3d - an arena shooter simulation core",
		Long: `dodge3d simulates an AR arena shooter: the player fires at a turret
that aims back at the camera, while pickups grant ammo, reload and health buffs.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configFile, "config", "", "YAML config file path")
	pf.StringVar(&g.logFormat, "log-format", defaultLogFormat, "log format (json or text)")
	pf.StringVar(&g.logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	config.BindFlags(pf)

	cmd.AddCommand(NewRunCmd(g))
	cmd.AddCommand(NewPlayCmd(g))
	cmd.AddCommand(NewConfigCmd(g))

	return cmd
}

// loadConfig layers the config file, environment and changed flags
func (g *globalFlags) loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(config.Source{
		File:  g.configFile,
		Env:   true,
		Flags: cmd.Flags(),
	})
}

// newLogger builds the process logger writing to the command's stderr
func (g *globalFlags) newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	return g.newLoggerTo(cmd.ErrOrStderr())
}

func (g *globalFlags) newLoggerTo(w io.Writer) (*slog.Logger, error) {
	format := strings.ToLower(g.logFormat)
	if format != "json" && format != "text" {
		return nil, oops.In("cli").Code("invalid_flag").With("log_format", g.logFormat).Errorf("log format must be json or text")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, oops.In("cli").Code("invalid_flag").With("log_level", g.logLevel).Wrapf(err, "parse log level")
	}

	return logging.Setup("dodge3d", version, logging.Options{Format: format, Level: level}, w), nil
}
