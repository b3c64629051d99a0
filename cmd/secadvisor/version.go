package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-secadvisor/internal/sdkheaders"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of secadvisor",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "secadvisor version %s\n", sdkheaders.Version)
		},
	}
}
