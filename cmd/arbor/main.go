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
	date    = "unknown"
)

const banner = `
  ╔═╗┬─┐┌┐ ┌─┐┬─┐
  ╠═╣├┬┘├┴┐│ │├┬┘
  ╩ ╩┴└─└─┘└─┘┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "Render object-tree page descriptions to HTML",
		Long: `Arbor is a server-side HTML renderer for Go.

It turns plain nested-object page descriptions into escaped,
well-formed HTML, with optional CSS scope encapsulation.

  • Automatic HTML escaping everywhere
  • Scoped stylesheets via generated attribute tokens
  • Live-reload preview server
  • Publish to a local directory or S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		inspectCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Arbor ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
