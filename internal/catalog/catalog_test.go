package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testMeasurement() *Measurement {
	return &Measurement{
		Molecule:    "TEMPO",
		Method:      "cw",
		Temperature: 295,
		Solvent:     "toluene",
		Date:        "2024-03-12",
		Device:      "EMXnano",
	}
}

func TestOpenIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening applies pragmas and schema again without error.
	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestInsertAndGet(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	m := testMeasurement()
	id, err := s.Insert(ctx, m)
	require.NoError(t, err)
	assert.Equal(t, id, m.ID)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "TEMPO", got.Molecule)
	assert.Equal(t, "cw", got.Method)
	assert.Equal(t, 295.0, got.Temperature)
	assert.False(t, got.Corrected)
	assert.False(t, got.Evaluated)
}

func TestGetNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltered(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rows := []*Measurement{
		{Molecule: "TEMPO", Method: "cw", Temperature: 295},
		{Molecule: "TEMPO", Method: "pulsed", Temperature: 80},
		{Molecule: "BDPA", Method: "cw", Temperature: 295},
	}
	for _, m := range rows {
		_, err := s.Insert(ctx, m)
		require.NoError(t, err)
	}

	got, err := s.List(ctx, Filter{Molecule: "TEMPO"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.List(ctx, Filter{Molecule: "TEMPO", Method: "cw"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 295.0, got[0].Temperature)

	low, high := 70.0, 100.0
	got, err = s.List(ctx, Filter{TempMin: &low, TempMax: &high})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "pulsed", got[0].Method)

	got, err = s.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestListOrdering(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for _, temp := range []float64{295, 80, 150} {
		_, err := s.Insert(ctx, &Measurement{Molecule: "X", Method: "cw", Temperature: temp})
		require.NoError(t, err)
	}

	got, err := s.List(ctx, Filter{OrderBy: "temperature"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 80.0, got[0].Temperature)
	assert.Equal(t, 295.0, got[2].Temperature)

	got, err = s.List(ctx, Filter{OrderBy: "temperature", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, 295.0, got[0].Temperature)

	_, err = s.List(ctx, Filter{OrderBy: "path; DROP TABLE measurements"})
	assert.Error(t, err)
}

func TestUpdates(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, testMeasurement())
	require.NoError(t, err)

	require.NoError(t, s.SetPath(ctx, id, "/archive/data/M1"))
	require.NoError(t, s.SetCorrected(ctx, id, true))
	require.NoError(t, s.SetEvaluated(ctx, id, true))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "/archive/data/M1", got.Path)
	assert.True(t, got.Corrected)
	assert.True(t, got.Evaluated)

	assert.ErrorIs(t, s.SetPath(ctx, 999, "x"), ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Insert(ctx, testMeasurement())
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), ErrNotFound)
}
