package loader

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bikeshare-data/internal/common/db"
	"github.com/bikeshare-data/pkg/bikeshare/models"
)

const tripsQuery = `
	SELECT start_time, COALESCE(end_time, ''), trip_duration,
	       start_station, end_station, COALESCE(user_type, ''),
	       gender, birth_year
	FROM bikeshare.trips
	WHERE city = $1
	ORDER BY id`

// PostgresSource reads trips from the bikeshare.trips table. It only
// issues SELECTs.
type PostgresSource struct {
	db *db.DB
}

func NewPostgresSource(database *db.DB) *PostgresSource {
	return &PostgresSource{db: database}
}

func (s *PostgresSource) Name() string {
	return "postgres"
}

func (s *PostgresSource) Trips(ctx context.Context, city string) (*models.Dataset, error) {
	if !models.IsCity(city) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}

	rows, err := s.db.DB().QueryContext(ctx, tripsQuery, city)
	if err != nil {
		return nil, fmt.Errorf("%w: querying trips: %w", ErrFileAccess, err)
	}
	defer rows.Close()

	ds := &models.Dataset{City: city}
	for rows.Next() {
		var (
			start     time.Time
			endTime   string
			duration  float64
			startSt   string
			endSt     string
			userType  string
			gender    sql.NullString
			birthYear sql.NullInt64
		)
		if err := rows.Scan(&start, &endTime, &duration, &startSt, &endSt, &userType, &gender, &birthYear); err != nil {
			return nil, fmt.Errorf("%w: scanning trip: %w", ErrFileAccess, err)
		}

		// timestamp without time zone: keep the wall clock.
		start = time.Date(start.Year(), start.Month(), start.Day(), start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), time.UTC)

		trip := models.NewTrip(len(ds.Trips), start)
		trip.EndTime = endTime
		trip.Duration = duration
		trip.StartStation = startSt
		trip.EndStation = endSt
		trip.UserType = userType
		if gender.Valid && gender.String != "" {
			trip.Gender = gender.String
			ds.HasGender = true
		}
		if birthYear.Valid && birthYear.Int64 > 0 {
			trip.BirthYear = int(birthYear.Int64)
			ds.HasBirthYear = true
		}
		ds.Trips = append(ds.Trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating trips: %w", ErrFileAccess, err)
	}

	s.db.Logger().Debug("Trips read", "city", city, "records", len(ds.Trips))
	return ds, nil
}
