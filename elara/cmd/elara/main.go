package main

import (
	"fmt"
	"os"

	"github.com/elaranetwork/elara/elara/cmd/elara/internal/address"
	"github.com/elaranetwork/elara/elara/cmd/elara/internal/keygen"
	"github.com/elaranetwork/elara/elara/cmd/elara/internal/signature"
	"github.com/elaranetwork/elara/elara/common/logging"
	"github.com/elaranetwork/elara/elara/internal/cobrax"
	"github.com/spf13/cobra"
)

type config struct {
	LogLevel string `yaml:"logLevel"`
	KeysPath string `yaml:"keysPath"`
}

func main() {
	logging.SetLogSeverityFromEnv()
	logging.ApplyComponentsFilterEnv()

	// The config file seeds flag defaults, so it must be located before
	// argument parsing.
	cfg := &config{LogLevel: "info", KeysPath: "keys.yaml"}
	if err := cobrax.LoadConfigFromFile(cobrax.GetConfigNameFromArgs(), cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "elara",
		Short: "The CLI tool for Ethereum-compatible keys and signatures",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.TrySetupGlobalLevel(cfg.LogLevel)
		},
		SilenceUsage: true,
	}
	cobrax.AddConfigFlag(rootCmd.PersistentFlags())
	cobrax.AddLogLevelFlag(rootCmd.PersistentFlags(), &cfg.LogLevel)
	cobrax.ExitOnHelp(rootCmd)

	rootCmd.AddCommand(
		keygen.GetCommand(),
		address.GetCommand(cfg.KeysPath),
		signature.GetCommand(),
		cobrax.VersionCmd("elara"),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
