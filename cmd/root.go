package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/demolink/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "demolink",
	Short: "Demonstration web service with a link endpoint and a sample user",
	Long: `demolink serves two JSON endpoints wrapped in a {data, message}
envelope: GET / returns a link to /test, and GET /test returns a fixed
sample user record.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
