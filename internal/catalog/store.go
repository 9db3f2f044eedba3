package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/g-caf/bootleg-expensify-sub000/internal/logging"
)

// Store loads pattern catalogs from YAML files, falling back to the
// built-in defaults when no file is configured or present. A missing file
// is not an error; an unparsable one is.
type Store struct {
	// File is the catalog YAML path. Relative paths are searched in the
	// working directory, ./config/, and ~/.receipt-extract/.
	File   string
	logger logging.Logger
}

// NewStore creates a catalog store for the given file path.
func NewStore(file string, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Store{File: file, logger: logger}
}

// findFile looks for the catalog file in standard locations.
func (s *Store) findFile() (string, bool) {
	if s.File == "" {
		return "", false
	}
	if filepath.IsAbs(s.File) {
		if _, err := os.Stat(s.File); err == nil {
			return s.File, true
		}
		return "", false
	}

	locations := []string{
		s.File,
		filepath.Join("config", s.File),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".receipt-extract", s.File))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, true
		}
	}
	return "", false
}

// Load reads and compiles the catalog. When the configured file is absent
// the built-in default catalog is returned.
func (s *Store) Load() (*Catalog, error) {
	path, found := s.findFile()
	if !found {
		if s.File != "" {
			s.logger.WithField("file", s.File).Warn("Catalog file not found, using built-in defaults")
		}
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("error parsing catalog file: %w", err)
	}

	cat, err := Compile(fc)
	if err != nil {
		return nil, fmt.Errorf("error compiling catalog from %s: %w", path, err)
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "profiles", Value: len(cat.Profiles)},
		logging.Field{Key: "stores", Value: len(cat.StoreNames)},
	).Debug("Loaded pattern catalog")

	return cat, nil
}

// Save writes a FileConfig back to the configured path, creating parent
// directories as needed. Useful for exporting the built-in defaults as a
// starting point for customization.
func (s *Store) Save(fc FileConfig) error {
	if s.File == "" {
		return fmt.Errorf("no catalog file configured")
	}

	path := s.File
	if existing, found := s.findFile(); found {
		path = existing
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("error marshaling catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing catalog: %w", err)
	}

	s.logger.WithField("file", path).Debug("Saved pattern catalog")
	return nil
}
