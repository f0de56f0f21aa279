// Package store persists engagement state under a single root
// directory, one subdirectory per engagement. The configuration record
// is YAML; the work program and execution results are JSON. All saves
// are write-temp-then-rename so a concurrent reader never observes a
// partially written record.
//
// Known limitation: there is no cross-process locking. Two concurrent
// invocations against the same root race with last-writer-wins
// semantics.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/audithound/audithound/pkg/defaults"
	"github.com/audithound/audithound/pkg/engagement"
	"github.com/audithound/audithound/pkg/executor"
	"github.com/audithound/audithound/pkg/jsonutil"
	"github.com/audithound/audithound/pkg/program"
)

// Store manages all engagements under one root directory.
type Store struct {
	root string
}

// DefaultRoot resolves the store root: the dir argument if non-empty,
// then the AUDITHOUND_HOME environment variable, then .audithound in
// the working directory.
func DefaultRoot(dir string) string {
	if dir != "" {
		return dir
	}
	if env := os.Getenv(defaults.EnvHome); env != "" {
		return env
	}
	return defaults.HomeDirName
}

// Open returns a store rooted at dir, creating the layout if needed.
func Open(dir string) (*Store, error) {
	s := &Store{root: dir}
	if err := os.MkdirAll(s.engagementsDir(), 0o755); err != nil {
		return nil, fmt.Errorf("store: creating root: %w", err)
	}
	return s, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// NormalizeName maps an engagement name to its directory name:
// lowercase with spaces and path separators replaced by dashes.
func NormalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, " ", "-")
	n = strings.ReplaceAll(n, "/", "-")
	return n
}

func (s *Store) engagementsDir() string {
	return filepath.Join(s.root, defaults.EngagementsDirName)
}

func (s *Store) engagementDir(name string) string {
	return filepath.Join(s.engagementsDir(), NormalizeName(name))
}

func (s *Store) configPath(name string) string {
	return filepath.Join(s.engagementDir(name), defaults.ConfigFileName)
}

func (s *Store) markerPath() string {
	return filepath.Join(s.root, defaults.CurrentMarkerName)
}

// Create allocates a new engagement with default risk profile and
// automation settings, persists it, and marks it current. Fails with
// ErrAlreadyExists when a record for the normalized name exists.
func (s *Store) Create(name, entity, framework string) (*engagement.Engagement, error) {
	dir := s.engagementDir(name)
	if _, err := os.Stat(s.configPath(name)); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, NormalizeName(name))
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: creating engagement dir: %w", err)
	}

	e := engagement.New(name, entity, framework)
	if err := s.Save(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Save atomically overwrites the engagement's configuration record and
// updates the current-engagement marker.
func (s *Store) Save(e *engagement.Engagement) error {
	data, err := yaml.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: encoding engagement: %w", err)
	}
	if err := os.MkdirAll(s.engagementDir(e.Name), 0o755); err != nil {
		return fmt.Errorf("store: creating engagement dir: %w", err)
	}
	if err := writeAtomic(s.configPath(e.Name), data); err != nil {
		return err
	}
	// Marker update is best-effort; Current falls back to mtime.
	_ = writeAtomic(s.markerPath(), []byte(NormalizeName(e.Name)+"\n"))
	return nil
}

// Load reads one engagement's configuration record by name.
func (s *Store) Load(name string) (*engagement.Engagement, error) {
	return s.loadConfig(s.configPath(name))
}

func (s *Store) loadConfig(path string) (*engagement.Engagement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoEngagement, path)
		}
		return nil, fmt.Errorf("store: reading engagement: %w", err)
	}
	var e engagement.Engagement
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedConfig, path, err)
	}
	if e.Name == "" || !e.Status.IsValid() {
		return nil, fmt.Errorf("%w: %s: missing name or status", ErrMalformedConfig, path)
	}
	return &e, nil
}

// Current resolves the current engagement: the explicit marker when it
// names a live engagement, otherwise the record with the newest
// modification time. Fails with ErrNoEngagement when nothing exists.
func (s *Store) Current() (*engagement.Engagement, error) {
	if data, err := os.ReadFile(s.markerPath()); err == nil {
		name := strings.TrimSpace(string(data))
		if name != "" {
			if e, err := s.Load(name); err == nil {
				return e, nil
			} else if errors.Is(err, ErrMalformedConfig) {
				return nil, err
			}
			// Dangling marker: fall through to the mtime scan.
		}
	}

	entries, err := os.ReadDir(s.engagementsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoEngagement
		}
		return nil, fmt.Errorf("store: scanning engagements: %w", err)
	}

	var (
		newest    string
		newestMod time.Time
	)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := os.Stat(s.configPath(entry.Name()))
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestMod) {
			newest = entry.Name()
			newestMod = info.ModTime()
		}
	}
	if newest == "" {
		return nil, ErrNoEngagement
	}
	return s.Load(newest)
}

// SaveProgram atomically persists the engagement's work program,
// fully replacing any previous one.
func (s *Store) SaveProgram(e *engagement.Engagement, wp *program.WorkProgram) error {
	data, err := jsonutil.MarshalIndent(wp, "  ")
	if err != nil {
		return fmt.Errorf("store: encoding work program: %w", err)
	}
	return writeAtomic(filepath.Join(s.engagementDir(e.Name), defaults.ProgramFileName), data)
}

// LoadProgram reads the engagement's work program. Fails with
// ErrNoWorkProgram when plan has not run yet.
func (s *Store) LoadProgram(e *engagement.Engagement) (*program.WorkProgram, error) {
	path := filepath.Join(s.engagementDir(e.Name), defaults.ProgramFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoWorkProgram, NormalizeName(e.Name))
		}
		return nil, fmt.Errorf("store: reading work program: %w", err)
	}
	var wp program.WorkProgram
	if err := jsonutil.Unmarshal(data, &wp); err != nil {
		return nil, fmt.Errorf("store: decoding work program: %w", err)
	}
	return &wp, nil
}

// SaveResults atomically persists the execution results record.
func (s *Store) SaveResults(e *engagement.Engagement, results map[string]executor.Result) error {
	data, err := jsonutil.MarshalIndent(results, "  ")
	if err != nil {
		return fmt.Errorf("store: encoding results: %w", err)
	}
	return writeAtomic(filepath.Join(s.engagementDir(e.Name), defaults.ResultsFileName), data)
}

// LoadResults reads the execution results record. An absent record is
// not an error; it yields an empty map.
func (s *Store) LoadResults(e *engagement.Engagement) (map[string]executor.Result, error) {
	path := filepath.Join(s.engagementDir(e.Name), defaults.ResultsFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]executor.Result{}, nil
		}
		return nil, fmt.Errorf("store: reading results: %w", err)
	}
	results := make(map[string]executor.Result)
	if err := jsonutil.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("store: decoding results: %w", err)
	}
	return results, nil
}

// EvidenceDir returns (and creates) the evidence location reserved for
// one workstream.
func (s *Store) EvidenceDir(e *engagement.Engagement, workstream string) (string, error) {
	dir := filepath.Join(s.engagementDir(e.Name), defaults.EvidenceDirName,
		executor.NormalizeName(workstream))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: creating evidence dir: %w", err)
	}
	return dir, nil
}

// WriteReport persists a rendered report document under the
// engagement's reports area and returns its path.
func (s *Store) WriteReport(e *engagement.Engagement, filename string, content []byte) (string, error) {
	dir := filepath.Join(s.engagementDir(e.Name), defaults.ReportsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: creating reports dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := writeAtomic(path, content); err != nil {
		return "", err
	}
	return path, nil
}

// writeAtomic writes to a temp file first, then renames into place.
func writeAtomic(path string, data []byte) error {
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tempFile, path); err != nil {
		return fmt.Errorf("store: renaming %s: %w", filepath.Base(path), err)
	}
	return nil
}
