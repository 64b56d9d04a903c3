package keygen

import (
	"fmt"

	"github.com/elaranetwork/elara/elara/internal/types"
	"github.com/spf13/cobra"
)

func FromHexCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-hex",
		Short: "Show the address of a provided hex private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFromHex(cmd, args)
		},
		SilenceUsage: true,
	}
	return cmd
}

func runFromHex(_ *cobra.Command, args []string) error {
	key, err := types.PrivateKeyFromHex(args[0])
	if err != nil {
		return err
	}
	address, err := key.PublicKeyAddress()
	if err != nil {
		return err
	}

	fmt.Printf("Address: %s\n", address.Hex())
	return nil
}
