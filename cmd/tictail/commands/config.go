package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tictail/tictail-go/internal/constants"
	"gopkg.in/yaml.v3"
)

// Config is what the CLI persists between runs.
type Config struct {
	Token         string `json:"token,omitempty"           yaml:"token,omitempty"`
	BaseURL       string `json:"base_url,omitempty"        yaml:"base_url,omitempty"`
	Store         string `json:"store,omitempty"           yaml:"store,omitempty"`
	Output        string `json:"output,omitempty"          yaml:"output,omitempty"`
	SkipTLSVerify bool   `json:"skip_tls_verify,omitempty" yaml:"skip_tls_verify,omitempty"`
}

// configKeys are the keys accepted by config set and unset.
var configKeys = []string{keyToken, keyBaseURL, keyStore, keyOutput, keySkipTLSVerify}

func loadConfig() *Config {
	return &Config{
		Token:         viper.GetString(keyToken),
		BaseURL:       viper.GetString(keyBaseURL),
		Store:         viper.GetString(keyStore),
		Output:        viper.GetString(keyOutput),
		SkipTLSVerify: viper.GetBool(keySkipTLSVerify),
	}
}

func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, configFileName+"."+configFileType), nil
}

func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func validateConfigKey(key string) error {
	for _, known := range configKeys {
		if key == known {
			return nil
		}
	}

	return fmt.Errorf("%q (valid keys: %v): %w", key, configKeys, constants.ErrUnknownConfigKey)
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the Tictail CLI config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the access token masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.Token != "" {
				config.Token = constants.MaskedSecret
			}

			out := cmd.OutOrStdout()

			switch viper.GetString(keyOutput) {
			case constants.FormatJSON:
				return writeJSON(out, config)
			case constants.FormatYAML:
				return writeYAML(out, config)
			default:
				table := tablewriter.NewWriter(out)
				table.Header("Property", "Value")
				_ = table.Append("Config File", orNotAvailable(viper.ConfigFileUsed()))
				_ = table.Append("Token", orNotAvailable(config.Token))
				_ = table.Append("Base URL", orNotAvailable(config.BaseURL))
				_ = table.Append("Store", orNotAvailable(config.Store))
				_ = table.Append("Output", orNotAvailable(config.Output))
				_ = table.Append("Skip TLS Verify", strconv.FormatBool(config.SkipTLSVerify))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: token, base_url, store, output, skip_tls_verify",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			err := validateConfigKey(key)
			if err != nil {
				return err
			}

			if key == keySkipTLSVerify {
				enabled, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("invalid value for %s: %w", key, err)
				}

				viper.Set(key, enabled)
			} else {
				viper.Set(key, value)
			}

			err = saveConfig(loadConfig())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value so the default applies again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			err := validateConfigKey(key)
			if err != nil {
				return err
			}

			if key == keySkipTLSVerify {
				viper.Set(key, false)
			} else {
				viper.Set(key, "")
			}

			err = saveConfig(loadConfig())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", key)

			return nil
		},
	}
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
