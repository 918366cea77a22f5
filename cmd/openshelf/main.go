// Command openshelf is the terminal front end for the library-management
// API: sign in, browse the catalog, and manage resources through the same
// session, pipeline, and guard the web client used.
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
	cli := &cli{}

	rootCmd := &cobra.Command{
		Use:   "openshelf",
		Short: "Library management console",
		Long: `openshelf is the command-line client for the library-management API.

Sessions persist across invocations, so one login carries over until it
expires, is revoked by the server, or you log out. Admin commands are
gated on the Admin role.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return cli.init(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cli.close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cli.query, "query", "q", "",
		"JMESPath expression applied to JSON output")

	rootCmd.AddCommand(
		loginCmd(cli),
		registerCmd(cli),
		logoutCmd(cli),
		whoamiCmd(cli),
		browseCmd(cli),
		booksCmd(cli),
		adminCmd(cli),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("openshelf %s (%s)\n", version, commit)
		},
	}
}
