package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/nibble/lsp"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start a Language Server Protocol server reporting rule file errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version)
			return server.RunStdio()
		},
	}
}
