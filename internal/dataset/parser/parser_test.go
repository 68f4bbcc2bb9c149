package parser

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bikeshare-data/internal/common/logger"
	"github.com/bikeshare-data/pkg/bikeshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) ([]models.Trip, Header, Stats, error) {
	t.Helper()
	var (
		trips  []models.Trip
		header Header
	)
	p := New(logger.New(nil))
	stats, err := p.Parse(context.Background(), strings.NewReader(input), ParseCallbacks{
		OnHeader: func(h Header) error {
			header = h
			return nil
		},
		OnTrip: func(trip *models.Trip) error {
			trips = append(trips, *trip)
			return nil
		},
	})
	return trips, header, stats, err
}

func TestParseDetectsOptionalColumns(t *testing.T) {
	input := "\ufeff,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n" +
		"1,2017-01-02 09:07:57,2017-01-02 09:20:53,776,A,B,Subscriber,Female,1992.0\n"

	trips, header, stats, err := collect(t, input)
	require.NoError(t, err)

	assert.True(t, header.HasGender)
	assert.True(t, header.HasBirthYear)
	assert.Equal(t, 1, stats.Records)
	require.Len(t, trips, 1)
	assert.Equal(t, "Female", trips[0].Gender)
	assert.Equal(t, 1992, trips[0].BirthYear)
	assert.Equal(t, "2017-01-02 09:20:53", trips[0].EndTime)
}

func TestParseWithoutOptionalColumns(t *testing.T) {
	input := "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,A,B,Customer\n"

	trips, header, _, err := collect(t, input)
	require.NoError(t, err)

	assert.False(t, header.HasGender)
	assert.False(t, header.HasBirthYear)
	require.Len(t, trips, 1)
	assert.Equal(t, "", trips[0].Gender)
	assert.Equal(t, 0, trips[0].BirthYear)
	assert.InDelta(t, 489.066, trips[0].Duration, 1e-9)
}

func TestParseSkipsBadRows(t *testing.T) {
	input := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-02 09:07:57,100,A,B,Subscriber\n" +
		"yesterday,100,A,B,Subscriber\n" +
		"2017-01-03 10:00:00,abc,A,B,Subscriber\n" +
		"2017-01-04 11:00:00,200,A,B,Subscriber\n"

	trips, _, stats, err := collect(t, input)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Records)
	assert.Equal(t, 2, stats.Skipped)
	require.Len(t, trips, 2)
	assert.Equal(t, 0, trips[0].Index)
	assert.Equal(t, 3, trips[1].Index)
}

func TestParseMissingColumn(t *testing.T) {
	_, _, _, err := collect(t, "Start Time,Trip Duration,Start Station,User Type\n")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseEmptyInput(t *testing.T) {
	_, _, _, err := collect(t, "")
	assert.Error(t, err)
}

func TestParseCallbackErrorStops(t *testing.T) {
	input := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-02 09:07:57,100,A,B,Subscriber\n" +
		"2017-01-02 10:07:57,100,A,B,Subscriber\n"

	stop := errors.New("stop")
	calls := 0
	p := New(logger.New(nil))
	_, err := p.Parse(context.Background(), strings.NewReader(input), ParseCallbacks{
		OnTrip: func(*models.Trip) error {
			calls++
			return stop
		},
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestParseHonoursCancelledContext(t *testing.T) {
	input := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-02 09:07:57,100,A,B,Subscriber\n"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(logger.New(nil))
	_, err := p.Parse(ctx, strings.NewReader(input), ParseCallbacks{})
	assert.ErrorIs(t, err, context.Canceled)
}
