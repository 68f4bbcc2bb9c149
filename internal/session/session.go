package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bikeshare-data/internal/common/logger"
	"github.com/bikeshare-data/pkg/bikeshare/models"
)

// Loader produces the filtered dataset for a selection.
type Loader interface {
	Load(ctx context.Context, city, month, day string) (*models.Dataset, error)
}

// Reporter prints statistics for a non-empty dataset.
type Reporter interface {
	All(ds *models.Dataset)
}

type Config struct {
	PageSize int
}

// Session runs filter, load, page and report cycles until the user stops.
type Session struct {
	prompter *Prompter
	pager    *Pager
	loader   Loader
	reporter Reporter
	logger   logger.Logger
	out      io.Writer
}

func New(in io.Reader, out io.Writer, cfg Config, loader Loader, reporter Reporter, logger logger.Logger) *Session {
	p := NewPrompter(in, out)
	return &Session{
		prompter: p,
		pager:    NewPager(p, cfg.PageSize),
		loader:   loader,
		reporter: reporter,
		logger:   logger,
		out:      out,
	}
}

// Run loops until the user declines to restart or input ends, both of which
// return nil. Load failures are returned as is.
func (s *Session) Run(ctx context.Context) error {
	for cycle := 1; ; cycle++ {
		again, err := s.cycle(ctx, cycle)
		if errors.Is(err, ErrInputClosed) {
			s.logger.Info("Input closed, ending session", "cycle", cycle)
			s.farewell()
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			s.logger.Info("Session finished", "cycles", cycle)
			s.farewell()
			return nil
		}
	}
}

func (s *Session) cycle(ctx context.Context, n int) (bool, error) {
	f, err := CollectFilters(s.prompter)
	if err != nil {
		return false, err
	}
	s.logger.Debug("Filters selected", "cycle", n, "city", f.City, "month", f.Month, "day", f.Day)

	ds, err := s.loader.Load(ctx, f.City, f.Month, f.Day)
	if err != nil {
		return false, err
	}

	if ds.Empty() {
		fmt.Fprintln(s.out, "\nNo data available for the selected filters. Please try different filters.")
	} else {
		if _, err := s.pager.Run(ds); err != nil {
			return false, err
		}
		s.reporter.All(ds)
	}

	answer, err := s.prompter.Ask("\nWould you like to restart? Enter yes or no.\n")
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}

func (s *Session) farewell() {
	fmt.Fprintln(s.out, "Goodbye!")
}
