package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/bikeshare-data/internal/common/logger"
	"github.com/bikeshare-data/pkg/bikeshare/models"
)

// Loader turns a validated (city, month, day) selection into a filtered
// Dataset.
type Loader struct {
	source Source
	logger logger.Logger
}

func New(source Source, logger logger.Logger) *Loader {
	return &Loader{
		source: source,
		logger: logger,
	}
}

// Load reads every trip of city and keeps those matching month and day.
// Either filter may be models.All. An empty result is not an error.
func (l *Loader) Load(ctx context.Context, city, month, day string) (*models.Dataset, error) {
	started := time.Now()

	all, err := l.source.Trips(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("loading %s trips: %w", city, err)
	}

	filtered := all.Filter(month, day)

	l.logger.Info("Dataset loaded",
		"source", l.source.Name(),
		"city", city,
		"month", month,
		"day", day,
		"rows", all.Len(),
		"filtered_rows", filtered.Len(),
		"elapsed", time.Since(started).String(),
	)
	return filtered, nil
}
