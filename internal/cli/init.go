package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/inspector/internal/journal"
	"github.com/mesh-intelligence/inspector/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Journal string `yaml:"journal"`
	DataDir string `yaml:"data_dir,omitempty"`
	Prompt  string `yaml:"prompt"`
	LogFile string `yaml:"log_file,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and the edit journal",
		Long: "Write a default config.yaml if none exists, create the data directory,\n" +
			"and create the edit journal unless it is disabled. With --user the\n" +
			"per-user directories are used and the data directory is recorded in\n" +
			"config.yaml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd)
		},
	}
}

func runInit(cmd *cobra.Command) error {
	where := flags.where()
	configDir, err := where.ConfigDir()
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError("create config directory: %w", err)
	}

	pinned := flags.dataDir
	if pinned == "" && flags.user {
		if pinned, err = where.DataDir(""); err != nil {
			return sysError("resolve data dir: %w", err)
		}
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, pinned); err != nil {
		return sysError("write config: %w", err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return sysError("create data directory: %w", err)
	}
	if cfg.JournalEnabled() {
		j, err := journal.Open(cfg)
		if err != nil {
			return sysError("initialize journal: %w", err)
		}
		if err := j.Close(); err != nil {
			return sysError("close journal: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inspector initialized\nconfig: %s\ndata:   %s\n", configPath, cfg.DataDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Journal: types.JournalSQLite,
		DataDir: dataDir,
		Prompt:  defaultPrompt,
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}
