package transcript

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/linepaint/internal/history"
	"gopkg.in/yaml.v3"
)

const (
	sessionsDir  = "sessions"
	metaFile     = "meta.yaml"
	historyFile  = "history.txt"
	nameTemplate = "session_%d"
)

// Store keeps archived sessions under <baseDir>/sessions/<name>/, each a
// transcript plus a metadata sidecar.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(filepath.Join(s.baseDir, sessionsDir), 0755)
}

type Meta struct {
	Name    string    `yaml:"name"`
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Pen     string    `yaml:"pen"`
	Entries int       `yaml:"entries"`
	SavedAt time.Time `yaml:"saved_at"`
}

func (s *Store) dir(name string) string {
	return filepath.Join(s.baseDir, sessionsDir, name)
}

// checkName keeps archive names to one directory under sessions/.
func checkName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Save archives log under meta.Name, generating a name when it is empty.
// It returns the name used.
func (s *Store) Save(meta Meta, log *history.Log) (string, error) {
	if meta.Name == "" {
		meta.Name = fmt.Sprintf(nameTemplate, time.Now().Unix())
	}
	if err := checkName(meta.Name); err != nil {
		return "", err
	}
	meta.Entries = log.Len()
	meta.SavedAt = time.Now().UTC()

	dir := s.dir(meta.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(&meta)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, metaFile), data, 0644); err != nil {
		return "", err
	}

	if err := Save(filepath.Join(dir, historyFile), log); err != nil {
		return "", err
	}
	return meta.Name, nil
}

func (s *Store) Load(name string) (*Meta, *history.Log, error) {
	if err := checkName(name); err != nil {
		return nil, nil, err
	}
	dir := s.dir(name)
	data, err := os.ReadFile(filepath.Join(dir, metaFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, nil, err
	}

	var meta Meta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", metaFile, err)
	}

	log, err := Load(filepath.Join(dir, historyFile))
	if err != nil {
		return nil, nil, err
	}
	return &meta, log, nil
}

// List returns archived sessions, oldest first.
func (s *Store) List() ([]Meta, error) {
	entries, err := os.ReadDir(filepath.Join(s.baseDir, sessionsDir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []Meta
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir(e.Name()), metaFile))
		if err != nil {
			continue
		}
		var meta Meta
		if err := yaml.Unmarshal(data, &meta); err != nil {
			continue
		}
		out = append(out, meta)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].SavedAt.Before(out[j].SavedAt)
	})
	return out, nil
}
