package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// Store persists recorded runs under a base directory, one directory
// per run holding metadata.json and samples.csv.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata describes a stored run.
type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	Stiffness  float64            `json:"stiffness"`
	Damping    float64            `json:"damping"`
	Rest       float64            `json:"rest"`
	StepMillis int64              `json:"step_millis"`
	Samples    int                `json:"samples"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes the recorder's contents as a new run and returns its id.
func (s *Store) Save(meta RunMetadata, rec *Recorder) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Samples = rec.Len()
	meta.Metrics = rec.Metrics()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"wall_ms", "step", "position", "velocity"}); err != nil {
		return "", err
	}
	for _, sample := range rec.Samples() {
		row := []string{
			strconv.FormatInt(sample.WallClock, 10),
			strconv.FormatInt(sample.StepCount, 10),
			strconv.FormatFloat(sample.Position, 'g', -1, 64),
			strconv.FormatFloat(sample.Velocity, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, w.Error()
}

// List returns metadata for all stored runs, oldest first.
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
		meta, err := s.loadMetadata(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

// LoadPositions reads the position series of a stored run.
func (s *Store) LoadPositions(runID string) ([]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("trace: run %s has no samples", runID)
	}

	positions := make([]float64, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < 3 {
			return nil, fmt.Errorf("trace: run %s has a malformed row", runID)
		}
		p, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, nil
}

func (s *Store) loadMetadata(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, err
	}
	err = json.Unmarshal(data, &meta)
	return meta, err
}
