package address

import (
	"fmt"

	"github.com/elaranetwork/elara/elara/internal/keys"
	"github.com/spf13/cobra"
)

var keysPath string

func GetCommand(defaultKeysPath string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Show the address of the signer key, generating the key on first use",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddress(cmd, args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&keysPath, "keys-path", defaultKeysPath, "path of the signer key file")
	return cmd
}

func runAddress(_ *cobra.Command, _ []string) error {
	manager := keys.NewSignerKeysManager(keysPath)
	if err := manager.InitKeys(); err != nil {
		return err
	}
	address, err := manager.GetAddress()
	if err != nil {
		return err
	}

	fmt.Printf("Address: %s\n", address.Hex())
	return nil
}
