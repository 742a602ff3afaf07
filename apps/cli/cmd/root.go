package cmd

import (
	"os"

	"github.com/abdul-hamid-achik/gurl/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	configFlag   string
	timeoutFlag  string
	headerFlags  []string
	noColorFlag  bool
	insecureFlag bool
	proxyFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "gurl",
	Short: "A friendly command-line HTTP client",
	Long: `gurl issues a single HTTP request and renders the response for
humans: a colored status line, headers, and pretty-printed JSON bodies.

Examples:
  gurl get https://httpbin.org/get
  gurl post https://httpbin.org/post name=alice role=admin`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		renderer := output.NewConsoleRenderer(
			output.WithWriter(os.Stderr),
			output.WithNoColor(noColorFlag),
		)
		renderer.FormatError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", getEnvString("GURL_CONFIG", ""), "Path to config file (env: GURL_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&timeoutFlag, "timeout", getEnvString("GURL_TIMEOUT", ""), "Request timeout (e.g. 30s, 1m); empty leaves it to the transport (env: GURL_TIMEOUT)")
	rootCmd.PersistentFlags().StringArrayVarP(&headerFlags, "header", "H", nil, "Extra header as name:value, repeatable")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", getEnvBool("GURL_NO_COLOR", false), "Disable colored output (env: GURL_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&insecureFlag, "insecure", "k", getEnvBool("GURL_INSECURE", false), "Disable SSL certificate validation (env: GURL_INSECURE)")
	rootCmd.PersistentFlags().StringVar(&proxyFlag, "proxy", getEnvString("GURL_PROXY", ""), "Proxy URL for the request (env: GURL_PROXY)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(versionCmd)
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
