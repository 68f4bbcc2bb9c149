package parser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/bikeshare-data/internal/common/logger"
	"github.com/bikeshare-data/pkg/bikeshare/models"
)

// Column headers of the city exports. They must match exactly.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime,
	ColTripDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

type Parser struct {
	logger logger.Logger
}

func New(logger logger.Logger) *Parser {
	return &Parser{logger: logger}
}

// Header describes which optional columns a file carries.
type Header struct {
	HasGender    bool
	HasBirthYear bool
}

type ParseCallbacks struct {
	OnHeader func(header Header) error
	OnTrip   func(trip *models.Trip) error
}

// Stats summarizes one Parse call.
type Stats struct {
	Records int
	Skipped int
}

// Parse reads a trip CSV from r. Rows whose start time or duration cannot
// be parsed are skipped with a warning.
func (p *Parser) Parse(ctx context.Context, r io.Reader, callbacks ParseCallbacks) (Stats, error) {
	var stats Stats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Variable number of fields
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return stats, fmt.Errorf("reading header: %w", err)
	}

	headerMap := make(map[string]int, len(header))
	for i, h := range header {
		headerMap[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}

	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return stats, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}

	_, hasGender := headerMap[ColGender]
	_, hasBirthYear := headerMap[ColBirthYear]
	if callbacks.OnHeader != nil {
		h := Header{HasGender: hasGender, HasBirthYear: hasBirthYear}
		if err := callbacks.OnHeader(h); err != nil {
			return stats, err
		}
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return stats, fmt.Errorf("reading record at line %d: %w", line, err)
		}

		if stats.Records%10000 == 0 {
			select {
			case <-ctx.Done():
				return stats, ctx.Err()
			default:
			}
		}

		trip, err := p.parseTrip(stats.Records+stats.Skipped, record, headerMap)
		if err != nil {
			stats.Skipped++
			p.logger.Warn("Skipping trip record", "line", line, "error", err)
			continue
		}

		if callbacks.OnTrip != nil {
			if err := callbacks.OnTrip(trip); err != nil {
				return stats, err
			}
		}

		stats.Records++
		if stats.Records%100000 == 0 {
			p.logger.Debug("Progress", "records", stats.Records)
		}
	}

	p.logger.Debug("Trip file parsed", "records", stats.Records, "skipped", stats.Skipped)
	return stats, nil
}

func (p *Parser) parseTrip(index int, record []string, headerMap map[string]int) (*models.Trip, error) {
	start, err := models.ParseStartTime(p.getString(record, headerMap, ColStartTime))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ColStartTime, err)
	}

	duration, err := strconv.ParseFloat(p.getString(record, headerMap, ColTripDuration), 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ColTripDuration, err)
	}

	trip := models.NewTrip(index, start)
	trip.EndTime = p.getString(record, headerMap, ColEndTime)
	trip.Duration = duration
	trip.StartStation = p.getString(record, headerMap, ColStartStation)
	trip.EndStation = p.getString(record, headerMap, ColEndStation)
	trip.UserType = p.getString(record, headerMap, ColUserType)
	trip.Gender = p.getString(record, headerMap, ColGender)
	trip.BirthYear = p.getYear(record, headerMap, ColBirthYear)
	return &trip, nil
}

// Helper functions to safely get values from CSV records
func (p *Parser) getString(record []string, headerMap map[string]int, field string) string {
	if idx, ok := headerMap[field]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// getYear accepts "1989" and the "1989.0" spreadsheets emit. Missing or
// malformed values yield 0.
func (p *Parser) getYear(record []string, headerMap map[string]int, field string) int {
	str := p.getString(record, headerMap, field)
	if str == "" {
		return 0
	}
	val, err := strconv.ParseFloat(str, 64)
	if err != nil || val <= 0 {
		return 0
	}
	return int(math.Floor(val))
}
