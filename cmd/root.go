package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Meet Mangaonkar's portfolio site.",
	Long: `portfolio serves a single-page portfolio with its projects, achievements,
gallery and certificates, plus a small privacy-conscious analytics dashboard.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "", "Set log level. Available: debug, info, warn, error, fatal")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("loglevel"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.ReadFile(viper.GetViper(), cfgFile); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	config.SetDefaults(viper.GetViper())

	// Init log library
	if !logging.SetLogLevel(viper.GetString("log_level")) {
		logging.Log.Warnf("Unknown log level %q, using info", viper.GetString("log_level"))
	}
}

// loadConfig returns the validated configuration for a subcommand.
func loadConfig() (config.Config, error) {
	return config.Load(viper.GetViper())
}
