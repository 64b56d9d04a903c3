package signature

import (
	"fmt"

	"github.com/elaranetwork/elara/elara/common/hexutil"
	"github.com/elaranetwork/elara/elara/internal/types"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "signature",
		Short:        "Inspect transaction signatures",
		SilenceUsage: true,
	}
	cmd.AddCommand(CheckCommand())
	return cmd
}

func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a signature given in its 65-byte canonical hex form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
		SilenceUsage: true,
	}
	return cmd
}

func runCheck(_ *cobra.Command, args []string) error {
	raw, err := hexutil.Decode(args[0])
	if err != nil {
		return err
	}
	sig, err := types.SignatureFromCanonical(raw)
	if err != nil {
		return err
	}

	fmt.Printf("Valid: %t\n", sig.IsValid())
	if id := sig.NetworkID(); id != nil {
		fmt.Printf("Chain id: %s\n", id)
	} else {
		fmt.Println("Chain id: none (legacy signature)")
	}
	if err := sig.CheckLowSHomestead(); err != nil {
		fmt.Printf("Low s (homestead): rejected: %s\n", err)
	} else {
		fmt.Println("Low s (homestead): ok")
	}
	if err := sig.CheckLowSMetropolis(); err != nil {
		fmt.Printf("Low s (metropolis): rejected: %s\n", err)
	} else {
		fmt.Println("Low s (metropolis): ok")
	}
	return nil
}
