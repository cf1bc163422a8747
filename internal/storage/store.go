package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/barrow/internal/barrowman"
)

// Store persists computation runs under a base directory, one
// subdirectory per run holding metadata.json and contributions.csv.
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
	ID            string                            `json:"id"`
	Rocket        string                            `json:"rocket"`
	Timestamp     time.Time                         `json:"timestamp"`
	OverallCoP    float64                           `json:"overall_cop_m"`
	Contributions map[string]barrowman.Contribution `json:"contributions"`
	Warnings      []string                          `json:"warnings,omitempty"`
}

func (s *Store) Save(rocketName string, res *barrowman.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", slug(rocketName), time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Rocket:        rocketName,
		Timestamp:     time.Now(),
		OverallCoP:    res.XCP,
		Contributions: res.Contributions,
	}
	for _, w := range res.Warnings {
		meta.Warnings = append(meta.Warnings, w.String())
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	encoder := json.NewEncoder(metaFile)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(meta); err != nil {
		metaFile.Close()
		return "", err
	}
	if err := metaFile.Close(); err != nil {
		return "", err
	}

	if err := s.writeContributions(runDir, res); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeContributions(runDir string, res *barrowman.Result) error {
	file, err := os.Create(filepath.Join(runDir, "contributions.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"component", "x_cp_m", "cn_alpha", "moment"}); err != nil {
		return err
	}

	labels := make([]string, 0, len(res.Contributions))
	for label := range res.Contributions {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		c := res.Contributions[label]
		row := []string{
			label,
			strconv.FormatFloat(c.XCP, 'f', 6, 64),
			strconv.FormatFloat(c.CNAlpha, 'f', 6, 64),
			strconv.FormatFloat(c.XCP*c.CNAlpha, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	meta := &RunMetadata{}
	if err := json.Unmarshal(data, meta); err != nil {
		return nil, fmt.Errorf("read run %s: %w", runID, err)
	}
	return meta, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func slug(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ', r == '-', r == '_':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "rocket"
	}
	return string(out)
}
