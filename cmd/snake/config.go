package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

With --write, save it to ~/.snake/configs/snake.yaml, where it is picked up
automatically. An existing file is never overwritten.

Examples:
  snake config > my-snake.yaml
  snake config --write`,
	Args: cobra.NoArgs,
	// Skip loading the user config so a broken file can be replaced.
	PersistentPreRunE: setupLogging,
	RunE:              runConfig,
}

func init() {
	configCmd.Flags().BoolVarP(&flagConfigWrite, "write", "w", false, "Write the defaults to the user config path")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data := config.GetDefaultYAML()
	if !flagConfigWrite {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	path := config.UserConfigPath("snake.yaml")
	if path == "" {
		return errors.New("cannot determine home directory")
	}
	if err := writeDefaultConfig(path, data); err != nil {
		return err
	}
	logger.Info("config written", "path", path)
	return nil
}

// writeDefaultConfig writes data to path, refusing to replace an existing file.
func writeDefaultConfig(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	return nil
}
