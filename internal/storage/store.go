package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/san-kum/skysynth/internal/catalog"
	"github.com/san-kum/skysynth/internal/config"
	"github.com/san-kum/skysynth/internal/fits"
	"github.com/san-kum/skysynth/internal/grid"
	"github.com/san-kum/skysynth/internal/synth"

	fitsio "github.com/astrogo/fitsio"
)

// Store keeps generated datasets on disk, one directory per dataset
// holding metadata.json, image.fits, catalog.csv and scene.yaml.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type DatasetMetadata struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Timestamp  time.Time `json:"timestamp"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Seed       int64     `json:"seed"`
	Oversample int       `json:"oversample"`
	Unit       string    `json:"unit,omitempty"`
	Sources    int       `json:"sources"`
	Mean       float64   `json:"mean"`
	Min        float64   `json:"min"`
	Max        float64   `json:"max"`
}

// Save writes the dataset and the scene that produced it, returning
// the dataset ID.
func (s *Store) Save(scene *config.Scene, ds *synth.Dataset) (string, error) {
	name := scene.Name
	if name == "" {
		name = "scene"
	}
	name = strings.ReplaceAll(name, string(os.PathSeparator), "-")

	id := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	lo, hi := ds.Image.MinMax()
	meta := DatasetMetadata{
		ID:         id,
		Name:       name,
		Timestamp:  time.Now(),
		Width:      ds.Image.Width,
		Height:     ds.Image.Height,
		Seed:       scene.Seed,
		Oversample: scene.Oversample,
		Unit:       scene.Unit,
		Sources:    len(ds.Catalog.Sources),
		Mean:       ds.Image.Mean(),
		Min:        lo,
		Max:        hi,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()
	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	var cards []fitsio.Card
	if scene.Unit != "" {
		cards = append(cards, fits.UnitCard(scene.Unit))
	}
	imgFile, err := os.Create(filepath.Join(dir, "image.fits"))
	if err != nil {
		return "", err
	}
	if err := fits.WriteImage(imgFile, ds.Image, cards...); err != nil {
		imgFile.Close()
		return "", err
	}
	if err := imgFile.Close(); err != nil {
		return "", err
	}

	catFile, err := os.Create(filepath.Join(dir, "catalog.csv"))
	if err != nil {
		return "", err
	}
	if err := catalog.WriteCSV(catFile, ds.Catalog); err != nil {
		catFile.Close()
		return "", err
	}
	if err := catFile.Close(); err != nil {
		return "", err
	}

	if err := config.Save(filepath.Join(dir, "scene.yaml"), scene); err != nil {
		return "", err
	}
	return id, nil
}

// List returns metadata for every readable dataset, skipping entries
// that are missing or corrupt.
func (s *Store) List() ([]DatasetMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []DatasetMetadata{}, nil
		}
		return nil, err
	}

	sets := make([]DatasetMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta DatasetMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sets = append(sets, meta)
	}
	return sets, nil
}

func (s *Store) Load(id string) (*DatasetMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta DatasetMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadImage(id string) (*grid.Grid, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "image.fits"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return fits.ReadImage(f)
}

func (s *Store) LoadCatalog(id string) (*catalog.Catalog, error) {
	f, err := os.Open(filepath.Join(s.baseDir, id, "catalog.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.ReadCSV(f)
}

func (s *Store) LoadScene(id string) (*config.Scene, error) {
	return config.Load(filepath.Join(s.baseDir, id, "scene.yaml"))
}
