package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the address book and recycle bin with a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Storage.Import(cmd.Context(), args[0], wire.Model); err != nil {
				return err
			}
			if err := wire.Storage.LastSaveError(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d persons from %s\n", wire.Model.AddressBook().Len(), args[0])
			return nil
		},
	}
}
