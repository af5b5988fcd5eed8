package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	log zerolog.Logger

	flagConfig string
	flagHex    bool
)

func newRootCmd() *cobra.Command {
	var cfg *Config

	root := &cobra.Command{
		Use:           "noctis",
		Short:         "Privacy vault primitives: commitments, nullifiers and withdrawal traces",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(flagConfig)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cmd.Flags().Changed("hex") {
				cfg.HexOutput = flagHex
			}
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "noctis.json", "config file path")
	root.PersistentFlags().BoolVar(&flagHex, "hex", false, "print field elements as 0x-prefixed hex")

	root.AddCommand(
		newCommitCmd(func() *Config { return cfg }),
		newNullifierCmd(func() *Config { return cfg }),
		newZerosCmd(func() *Config { return cfg }),
		newTraceCmd(),
	)
	return root
}
