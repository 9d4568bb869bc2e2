package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hidal-go/graphval/config"
	"github.com/hidal-go/graphval/factory"
	"github.com/hidal-go/graphval/logger"
)

// app is the state shared by all subcommands. It is populated before a subcommand runs.
type app struct {
	cfgPath  string
	logLevel string

	cfg *config.Config
	log zerolog.Logger
	reg *factory.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:          "graphval",
		Short:        "Convert property values between graph property types",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the configuration")
	root.AddCommand(newTypesCmd(a), newConvertCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	log, err := logger.New(cmd.ErrOrStderr(), cmd.Name(), cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	opts, err := cfg.FactoryOptions()
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.reg = factory.NewRegistry(opts)
	a.log.Debug().Str("decoder", cfg.Decoder).Int("namespaces", len(opts.Namespaces)).Msg("configured")
	return nil
}
