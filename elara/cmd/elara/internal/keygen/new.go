package keygen

import (
	"fmt"

	"github.com/elaranetwork/elara/elara/internal/types"
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new key",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args)
		},
		SilenceUsage: true,
	}
	return cmd
}

func runNew(_ *cobra.Command, _ []string) error {
	key, err := types.GeneratePrivateKey()
	if err != nil {
		return err
	}
	address, err := key.PublicKeyAddress()
	if err != nil {
		return err
	}

	fmt.Printf("Private key: %s\n", key.Hex())
	fmt.Printf("Address: %s\n", address.Hex())
	return nil
}
