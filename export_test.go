package lapsim

import (
	"bytes"
	"encoding/csv"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLapCSV(t *testing.T) {
	lap, err := RunLap(cannedLap(t), testVehicle(t), DefaultTrack(5))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteLapCSV(&buf, lap))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+4*5)
	assert.Equal(t, []string{"segment", "t", "x", "y", "v"}, records[0])
	assert.Equal(t, []string{"slope", "3", "31", "", "12"}, records[4])
	// The loop reports its angle as x.
	assert.Equal(t, []string{"loop", "3", "6.3", "", "13"}, records[9])
	assert.Equal(t, []string{"ravine", "0.3", "4", "-1.2", ftoa(math.Hypot(13, 3))}, records[14])
	assert.Equal(t, []string{"finish", "0", "-5", "", "0"}, records[16])
}

func TestWriteResultsCSV(t *testing.T) {
	results := []Result{
		{Time: 10, Splits: [4]float64{1, 2, 3, 4}, Vehicle: "Toyota Supra", Boost: PhaseLoop, Wing: true},
		{Time: math.Inf(1), Vehicle: "Broken", Skirt: true, Err: errors.New("mass must be positive")},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"vehicle", "boost", "wing", "skirt", "time", "slope", "loop", "ravine", "finish", "error"}, records[0])
	assert.Equal(t, []string{"Toyota Supra", "loop", "true", "false", "10", "1", "2", "3", "4", ""}, records[1])
	assert.Equal(t, []string{"Broken", "none", "false", "true", "", "", "", "", "", "mass must be positive"}, records[2])
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCSVErrors(t *testing.T) {
	lap, err := RunLap(cannedLap(t), testVehicle(t), DefaultTrack(5))
	require.NoError(t, err)
	assert.EqualError(t, WriteLapCSV(brokenWriter{}, lap), "disk full")

	results := []Result{{Time: 10, Vehicle: "Toyota Supra"}}
	assert.EqualError(t, WriteResultsCSV(brokenWriter{}, results), "disk full")
}
