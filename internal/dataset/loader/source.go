package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bikeshare-data/internal/common/logger"
	"github.com/bikeshare-data/internal/dataset/parser"
	"github.com/bikeshare-data/pkg/bikeshare/models"
)

var (
	// ErrFileAccess wraps any failure to open or read a city's trips.
	ErrFileAccess = errors.New("dataset not accessible")
	// ErrUnknownCity is returned for a name missing from models.Cities.
	ErrUnknownCity = errors.New("unknown city")
)

// Source produces the full, unfiltered trip table of a city.
type Source interface {
	Name() string
	Trips(ctx context.Context, city string) (*models.Dataset, error)
}

// CSVSource reads one CSV export per city from a directory.
type CSVSource struct {
	dataDir string
	parser  *parser.Parser
	logger  logger.Logger
}

func NewCSVSource(dataDir string, logger logger.Logger) *CSVSource {
	return &CSVSource{
		dataDir: dataDir,
		parser:  parser.New(logger),
		logger:  logger,
	}
}

func (s *CSVSource) Name() string {
	return "csv"
}

// Path returns the file backing city.
func (s *CSVSource) Path(city string) (string, error) {
	file, ok := models.Cities[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	return filepath.Join(s.dataDir, file), nil
}

func (s *CSVSource) Trips(ctx context.Context, city string) (*models.Dataset, error) {
	path, err := s.Path(city)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}
	defer f.Close()

	ds := &models.Dataset{City: city}
	callbacks := parser.ParseCallbacks{
		OnHeader: func(h parser.Header) error {
			ds.HasGender = h.HasGender
			ds.HasBirthYear = h.HasBirthYear
			return nil
		},
		OnTrip: func(trip *models.Trip) error {
			ds.Trips = append(ds.Trips, *trip)
			return nil
		},
	}

	stats, err := s.parser.Parse(ctx, f, callbacks)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrFileAccess, path, err)
	}

	if stats.Skipped > 0 {
		s.logger.Warn("Some trip records were skipped", "path", path, "skipped", stats.Skipped)
	}
	s.logger.Debug("Trips read", "path", path, "records", stats.Records)
	return ds, nil
}
