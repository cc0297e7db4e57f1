package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/benchrange-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// fileConfig is the on-disk TOML shape.
type fileConfig struct {
	Benchmark benchmarkConfig `toml:"benchmark"`
	Data      dataConfig      `toml:"data"`
}

type benchmarkConfig struct {
	// Command is the default benchmark program.
	Command string `toml:"command"`

	// Args are fixed arguments passed before the dated argument.
	Args []string `toml:"args"`
}

type dataConfig struct {
	// Dir overrides the default data directory.
	Dir string `toml:"dir"`
}

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     fileConfig
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.benchrange/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".benchrange")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	// Load existing data if file exists
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// BenchmarkCommand returns the configured default benchmark command line.
// Nil when no command is configured.
func (s *ConfigStore) BenchmarkCommand() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data.Benchmark.Command == "" {
		return nil
	}
	cmd := make([]string, 0, len(s.data.Benchmark.Args)+1)
	cmd = append(cmd, s.data.Benchmark.Command)
	cmd = append(cmd, s.data.Benchmark.Args...)
	return cmd
}

// SetBenchmarkCommand stores and persists the default benchmark command line.
func (s *ConfigStore) SetBenchmarkCommand(command []string) error {
	if len(command) == 0 {
		return fmt.Errorf("empty benchmark command")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Benchmark.Command = command[0]
	s.data.Benchmark.Args = command[1:]
	return s.save()
}

// DataDir returns the configured data directory, or empty when unset.
func (s *ConfigStore) DataDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Data.Dir
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// load reads the TOML file into memory. Caller need not hold the lock;
// load is only used during construction.
func (s *ConfigStore) load() error {
	raw, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(raw, &s.data); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}
	return nil
}

// save writes the in-memory config back to disk. Caller holds the lock.
func (s *ConfigStore) save() error {
	raw, err := toml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(s.filePath, raw, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", s.filePath, err)
	}
	return nil
}
