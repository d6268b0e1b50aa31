package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/entraops/azrm/global"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "azrm",
	Short: "azrm moves Azure role assignments between subscriptions and tenants.",
	Long: `azrm exports the role assignments, custom role definitions and group
memberships of every subscription a credential can reach, and replays an
exported assignment set against a target subscription, re-resolving each
principal in the target directory.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.azrm.yaml)")
	rootCmd.PersistentFlags().String(global.AzTenantId, "", "Azure AD tenant id")
	rootCmd.PersistentFlags().String(global.AzClientId, "", "client id for the client-secret credential")
	rootCmd.PersistentFlags().String(global.AzSecret, "", "client secret; omit to use the default credential chain")
	rootCmd.PersistentFlags().Int("workers", 5, "maximum concurrent provider calls")
	rootCmd.PersistentFlags().Duration("call-timeout", 2*time.Minute, "timeout applied to provider calls")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "error binding flags:", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".azrm" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".azrm")
	}

	viper.SetEnvPrefix("AZRM")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	if viper.GetBool("verbose") {
		global.SetLogLevel(hclog.Debug)
	}
}
