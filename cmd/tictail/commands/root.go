package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tictail/tictail-go/internal/constants"
)

const (
	configDirName  = ".tictail"
	configFileName = "config"
	configFileType = "yml"
	envPrefix      = "TICTAIL"
)

// AddGlobalFlags registers the persistent flags and binds them to viper.
func AddGlobalFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.tictail/config.yml)")
	flags.StringP("token", "t", "", "API access token")
	flags.String("base-url", "", "API base URL (default https://api.tictail.com)")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log HTTP requests to stderr")
	flags.Bool("skip-tls-verify", false, "skip TLS certificate verification")

	_ = viper.BindPFlag(keyConfig, flags.Lookup("config"))
	_ = viper.BindPFlag(keyToken, flags.Lookup("token"))
	_ = viper.BindPFlag(keyBaseURL, flags.Lookup("base-url"))
	_ = viper.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag(keyVerbose, flags.Lookup("verbose"))
	_ = viper.BindPFlag(keySkipTLSVerify, flags.Lookup("skip-tls-verify"))
}

// InitConfig loads the config file and TICTAIL_* environment variables.
func InitConfig() {
	if cfgFile := viper.GetString(keyConfig); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := defaultConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigType(configFileType)
		viper.SetConfigName(configFileName)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(keyVerbose) {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}
