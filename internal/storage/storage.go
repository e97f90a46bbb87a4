// Package storage reads and writes the catalog as a JSON file.
package storage

import (
	"fmt"
	"os"

	"github.com/jacksmith/stores/internal/catalog"
	"github.com/jacksmith/stores/internal/model"
	"go.uber.org/zap"
)

// corruptSuffix is appended to a malformed data file when it is set aside.
const corruptSuffix = ".corrupt"

// LoadStatus describes how a load completed.
type LoadStatus int

const (
	// StatusLoaded means the file was read and parsed.
	StatusLoaded LoadStatus = iota
	// StatusNotFound means the file does not exist.
	StatusNotFound
	// StatusMalformed means the file exists but could not be parsed.
	StatusMalformed
)

func (s LoadStatus) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusNotFound:
		return "not found"
	case StatusMalformed:
		return "malformed"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult is the outcome of Load. Catalog is never nil.
type LoadResult struct {
	Catalog  *catalog.Catalog
	Status   LoadStatus
	ParseErr error // set when Status is StatusMalformed
}

// Storage persists a catalog to a single JSON file.
type Storage struct {
	path     string
	log      *zap.Logger
	setAside bool // the file on disk is malformed and must be kept before overwriting
}

// Open returns a Storage for the file at path. The file need not exist.
// A nil logger discards log output.
func Open(path string, log *zap.Logger) *Storage {
	if log == nil {
		log = zap.NewNop()
	}
	return &Storage{path: path, log: log.With(zap.String("path", path))}
}

// Path returns the data file path.
func (s *Storage) Path() string {
	return s.path
}

// Load reads the catalog from disk.
// A missing or malformed file yields an empty catalog and no error; the
// malformed file is left untouched. An error is returned only when the
// file exists but cannot be read.
func (s *Storage) Load() (*LoadResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("data file not found, starting empty")
			return &LoadResult{Catalog: catalog.New(), Status: StatusNotFound}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	stores, err := model.UnmarshalStores(data)
	if err != nil {
		s.log.Warn("data file is malformed, starting empty", zap.Error(err))
		s.setAside = true
		return &LoadResult{Catalog: catalog.New(), Status: StatusMalformed, ParseErr: err}, nil
	}

	s.setAside = false
	s.log.Info("data file loaded", zap.Int("stores", len(stores)))
	return &LoadResult{Catalog: catalog.New(stores...), Status: StatusLoaded}, nil
}

// Save writes the whole catalog to disk, replacing the file.
// If the last Load found the file malformed, that file is first renamed
// with a .corrupt suffix so its contents survive.
func (s *Storage) Save(c *catalog.Catalog) error {
	if s.setAside {
		backup := s.path + corruptSuffix
		if err := os.Rename(s.path, backup); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to set aside malformed %s: %w", s.path, err)
		}
		s.log.Warn("malformed data file set aside", zap.String("backup", backup))
		s.setAside = false
	}

	data, err := model.MarshalStores(c.Stores())
	if err != nil {
		return err
	}

	// No atomic rename: a crash mid-write can truncate the file.
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.log.Debug("data file saved", zap.Int("stores", c.Len()))
	return nil
}
