package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a measurement id does not exist.
var ErrNotFound = errors.New("measurement not found")

// Measurement is one catalog row. Path points at the measurement's archive
// directory; Corrected and Evaluated track the processing state.
type Measurement struct {
	ID            int64
	Molecule      string
	Method        string
	Temperature   float64
	Solvent       string
	Concentration string
	Date          string
	MeasuredBy    string
	Location      string
	Device        string
	Series        string
	Path          string
	Corrected     bool
	Evaluated     bool
}

const measurementColumns = `id, molecule, method, temperature, solvent, concentration,
	date, measured_by, location, device, series, path, corrected, evaluated`

// Insert adds a measurement and returns its assigned id.
func (s *Store) Insert(ctx context.Context, m *Measurement) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO measurements
			(molecule, method, temperature, solvent, concentration, date,
			 measured_by, location, device, series, path, corrected, evaluated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Molecule, m.Method, m.Temperature, m.Solvent, m.Concentration, m.Date,
		m.MeasuredBy, m.Location, m.Device, m.Series, m.Path, m.Corrected, m.Evaluated)
	if err != nil {
		return 0, fmt.Errorf("inserting measurement: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	m.ID = id
	return id, nil
}

// Get returns the measurement with the given id.
func (s *Store) Get(ctx context.Context, id int64) (*Measurement, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+measurementColumns+` FROM measurements WHERE id = ?`, id)
	m, err := scanMeasurement(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("measurement %d: %w", id, ErrNotFound)
	}
	return m, err
}

// Filter narrows a List query. Zero values mean "no constraint". OrderBy must
// be one of the whitelisted column names.
type Filter struct {
	Molecule string
	Method   string
	Device   string
	TempMin  *float64
	TempMax  *float64
	OrderBy  string
	Desc     bool
}

// orderColumns whitelists the sortable columns.
var orderColumns = map[string]bool{
	"id": true, "molecule": true, "method": true,
	"temperature": true, "date": true,
}

// List returns the measurements matching the filter, ordered by id unless
// the filter says otherwise.
func (s *Store) List(ctx context.Context, f Filter) ([]*Measurement, error) {
	var where []string
	var args []any
	if f.Molecule != "" {
		where = append(where, "molecule = ?")
		args = append(args, f.Molecule)
	}
	if f.Method != "" {
		where = append(where, "method = ?")
		args = append(args, f.Method)
	}
	if f.Device != "" {
		where = append(where, "device = ?")
		args = append(args, f.Device)
	}
	if f.TempMin != nil {
		where = append(where, "temperature >= ?")
		args = append(args, *f.TempMin)
	}
	if f.TempMax != nil {
		where = append(where, "temperature <= ?")
		args = append(args, *f.TempMax)
	}

	query := `SELECT ` + measurementColumns + ` FROM measurements`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	orderBy := "id"
	if f.OrderBy != "" {
		if !orderColumns[f.OrderBy] {
			return nil, fmt.Errorf("cannot order by %q", f.OrderBy)
		}
		orderBy = f.OrderBy
	}
	query += " ORDER BY " + orderBy
	if f.Desc {
		query += " DESC"
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing measurements: %w", err)
	}
	defer rows.Close()

	var out []*Measurement
	for rows.Next() {
		m, err := scanMeasurement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SetPath records the archive directory of a measurement.
func (s *Store) SetPath(ctx context.Context, id int64, path string) error {
	return s.update(ctx, id, "path = ?", path)
}

// SetCorrected flips the corrected flag.
func (s *Store) SetCorrected(ctx context.Context, id int64, corrected bool) error {
	return s.update(ctx, id, "corrected = ?", corrected)
}

// SetEvaluated flips the evaluated flag.
func (s *Store) SetEvaluated(ctx context.Context, id int64, evaluated bool) error {
	return s.update(ctx, id, "evaluated = ?", evaluated)
}

// Delete removes a measurement row. The archive directory is not touched.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM measurements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting measurement %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("measurement %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) update(ctx context.Context, id int64, set string, arg any) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE measurements SET `+set+`, updated_at = datetime('now') WHERE id = ?`, arg, id)
	if err != nil {
		return fmt.Errorf("updating measurement %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("measurement %d: %w", id, ErrNotFound)
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMeasurement(row scanner) (*Measurement, error) {
	var m Measurement
	err := row.Scan(&m.ID, &m.Molecule, &m.Method, &m.Temperature, &m.Solvent,
		&m.Concentration, &m.Date, &m.MeasuredBy, &m.Location, &m.Device,
		&m.Series, &m.Path, &m.Corrected, &m.Evaluated)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
