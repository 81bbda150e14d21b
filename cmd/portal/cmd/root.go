package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Portal manages branched content with reviews",
	Long: `Portal manages editorial content on isolated branches.

Contributors author and edit content items on a branch, inspect a diff
of the branch against the published baseline, and move the branch
through a review workflow until the approval quorum is reached and the
branch may be published.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
	addStorePathFlag(rootCmd)
	addLogLevelFlag(rootCmd)
	addTracingFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("store", ".portal/data")
	if os.Getenv("PORTAL_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("PORTAL_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.portal")
		viper.AddConfigPath("/etc/portal")
		viper.SetConfigName("portal")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}
	if portalFlags.root.storePath != "" {
		viper.Set("store", portalFlags.root.storePath)
	}
}
