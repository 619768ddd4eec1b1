package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/bgraf/trackstat/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trackstat",
	Short: "Distance, elevation and duration of GPX tracks",
	// Failures are reported per track, usage is noise at that point.
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trackstat.yaml)")

	flags := rootCmd.PersistentFlags()
	flags.StringP("track-dir", "d", "", "Directory scanned for tracks when no path is given")
	flags.Bool("recursive", false, "Descend into subdirectories")
	flags.StringP("format", "f", "text", "Output format: text, json or yaml")
	flags.String("locale", "en_US", "Locale of dates in text output")

	bindFlag(config.KeyTrackDirectory, flags.Lookup("track-dir"))
	bindFlag(config.KeyRecursive, flags.Lookup("recursive"))
	bindFlag(config.KeyOutputFormat, flags.Lookup("format"))
	bindFlag(config.KeyLocale, flags.Lookup("locale"))
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in working and home directory with name ".trackstat" (without extension).
		if dir, err := os.Getwd(); err == nil {
			viper.AddConfigPath(dir)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".trackstat")
	}

	viper.SetEnvPrefix("trackstat")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
