package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hyper-lang/hyper/internal/config"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool and language versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "hyper %s (language %s)\n", Version, config.LanguageVersion)
		},
	}
}
