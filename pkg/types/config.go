package types

import "errors"

// Config holds the session settings a driver loads from config.yaml.
type Config struct {
	Journal string `json:"journal" yaml:"journal"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	Prompt  string `json:"prompt" yaml:"prompt"`
	LogFile string `json:"log_file" yaml:"log_file"`
}

// Supported journal backends.
const (
	JournalSQLite = "sqlite"
	JournalNone   = "none"
)

// Config validation errors.
var (
	ErrJournalEmpty   = errors.New("journal must not be empty")
	ErrJournalUnknown = errors.New("unknown journal backend")
)

// knownJournals lists the journal backends that Validate accepts.
var knownJournals = map[string]bool{
	JournalSQLite: true,
	JournalNone:   true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Journal == "" {
		return ErrJournalEmpty
	}
	if !knownJournals[c.Journal] {
		return ErrJournalUnknown
	}
	return nil
}

// JournalEnabled reports whether edits should be recorded.
func (c Config) JournalEnabled() bool {
	return c.Journal != JournalNone
}
