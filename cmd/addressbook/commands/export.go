package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the address book and recycle bin to a plain JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Storage.Export(cmd.Context(), args[0], wire.Model); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d persons to %s\n", wire.Model.AddressBook().Len(), args[0])
			return nil
		},
	}
}
