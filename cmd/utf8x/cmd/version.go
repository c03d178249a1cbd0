package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/msto63/utf8x/pkg/core/version"
	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()

			if asJSON {
				return json.NewEncoder(out).Encode(info)
			}

			fmt.Fprintf(out, "utf8x v%s\n", info.CLI)
			fmt.Fprintf(out, "  Library:    v%s\n", info.Library)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
