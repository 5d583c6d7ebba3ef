package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tictail/tictail-go/internal/constants"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store an access token",
		Long: `Verify an access token against /me and save it, together with the
store it belongs to, in the config file. The token is read from --token or
prompted for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := readToken(cmd)
			if err != nil {
				return err
			}

			client, err := newClient(cmd, token)
			if err != nil {
				return err
			}

			store, err := client.Me().Get(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to verify access token: %w", err)
			}

			config := loadConfig()
			config.Token = token
			config.Store, _ = store.GetString(constants.DefaultIdentifier)

			err = saveConfig(config)
			if err != nil {
				return err
			}

			name, _ := store.GetString("name")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in to store %s (%s)\n", name, config.Store)

			return nil
		},
	}
}

// readToken takes --token when given, otherwise prompts without echo on a
// terminal or reads a line from stdin.
func readToken(cmd *cobra.Command) (string, error) {
	if flag := cmd.Flag("token"); flag != nil && flag.Changed {
		token := strings.TrimSpace(flag.Value.String())
		if token == "" {
			return "", constants.ErrTokenRequired
		}

		return token, nil
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Access token: ")

	var token string

	if fd := int(os.Stdin.Fd()); cmd.InOrStdin() == os.Stdin && term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read access token: %w", err)
		}

		token = string(raw)
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read access token: %w", err)
		}

		token = line
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", constants.ErrTokenRequired
	}

	return token, nil
}
