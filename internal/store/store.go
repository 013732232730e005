package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/macma/seamtrace/internal/signature"
)

// Store persists signature runs under a base directory, one
// subdirectory per run holding metadata.json and signatures.json.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Manifold  string    `json:"manifold"`
	Timestamp time.Time `json:"timestamp"`
	Drift     string    `json:"drift"`
	TMax      float64   `json:"t_max"`
	Samples   int       `json:"samples"`
	Tolerance float64   `json:"tolerance"`
}

// Save writes one run. The run ID carries the manifold tag for human
// listing plus a random suffix so concurrent batch runs never collide.
func (s *Store) Save(meta RunMetadata, b *signature.Bundle) (string, error) {
	runID := fmt.Sprintf("%s_%s", b.Manifold, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Manifold = b.Manifold
	meta.Timestamp = time.Now().UTC()
	meta.Samples = b.Len()

	if err := writeJSONFile(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := ExportJSON(filepath.Join(runDir, "signatures.json"), b); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSignatures reads back the exported bundle fields of a run.
func (s *Store) LoadSignatures(runID string) (*ExportData, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "signatures.json"))
	if err != nil {
		return nil, err
	}
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, err
	}
	return &export, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue // skip foreign directories
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func writeJSONFile(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
