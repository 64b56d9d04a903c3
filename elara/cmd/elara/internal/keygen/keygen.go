package keygen

import (
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	keygenCmd := &cobra.Command{
		Use:          "keygen",
		Short:        "Generate a new key or inspect a provided hex private key",
		SilenceUsage: true,
	}

	keygenCmd.AddCommand(
		NewCommand(),
		FromHexCommand(),
	)
	return keygenCmd
}
