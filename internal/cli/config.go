package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/inspector/internal/paths"
	"github.com/mesh-intelligence/inspector/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyJournal = "journal"
	cfgKeyDataDir = "data_dir"
	cfgKeyPrompt  = "prompt"
	cfgKeyLogFile = "log_file"

	defaultJournal = types.JournalSQLite
	defaultPrompt  = "> "
)

// loadConfig reads config.yaml from configDir using Viper. A missing file is
// not an error; defaults apply. INSPECTOR_JOURNAL and INSPECTOR_LOG_FILE
// override the file.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyJournal, defaultJournal)
	v.SetDefault(cfgKeyPrompt, defaultPrompt)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.BindEnv(cfgKeyJournal, "INSPECTOR_JOURNAL"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(cfgKeyLogFile, "INSPECTOR_LOG_FILE"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func (f rootFlags) where() paths.Where {
	return paths.Where{ConfigFlag: f.configDir, DataFlag: f.dataDir, User: f.user}
}

// resolveConfig builds the session Config from flags, environment and
// config.yaml, in that order of precedence.
func resolveConfig() (types.Config, error) {
	where := flags.where()
	configDir, err := where.ConfigDir()
	if err != nil {
		return types.Config{}, sysError("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return types.Config{}, err
	}
	dataDir, err := where.DataDir(v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, sysError("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Journal: v.GetString(cfgKeyJournal),
		DataDir: dataDir,
		Prompt:  v.GetString(cfgKeyPrompt),
		LogFile: v.GetString(cfgKeyLogFile),
	}
	if flags.noJournal {
		cfg.Journal = types.JournalNone
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("%s %q in %s: %w", cfgKeyJournal, cfg.Journal, configDir, err)
	}
	return cfg, nil
}
