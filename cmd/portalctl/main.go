package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	token      string
	userID     int64
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           "portalctl",
		Short:         "Operator CLI for installation processes",
		Long:          "portalctl lists, inspects and moves installation processes through their seven stages using the portal backend.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", os.Getenv("PORTAL_CONFIG"), "path to the YAML config file")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("PORTAL_TOKEN"), "portal bearer token (default $PORTAL_TOKEN)")
	cmd.PersistentFlags().Int64Var(&opts.userID, "user-id", 0, "portal user id recorded in the process history")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newStagesCmd())
	cmd.AddCommand(newProcessesCmd(opts))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portalctl %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
