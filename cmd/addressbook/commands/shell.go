package commands

import (
	"github.com/spf13/cobra"

	"addressbook/internal/ui"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "shell",
		Short:       "Open the interactive address book",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{logToFile: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.Run(cmd.Context(), ui.Options{
				Logic:   wire.Logic,
				Storage: wire.Storage,
				Model:   wire.Model,
				Bus:     wire.Bus,
				Log:     wire.Log.With("component", "ui"),
				Watch:   wire.Config.Watch,
			})
		},
	}
}
