package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vireo-demo",
		Short: "Demo server for the vireo reactive rendering engine",
		Long: `vireo-demo mounts a small reactive component tree on the server and
streams host mutations to connected WebSocket clients as binary patch
frames. It exists to exercise the engine end to end; the interesting
code lives in the library packages.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("vireo-demo %s (%s)\n", version, commit)
		},
	}
}
