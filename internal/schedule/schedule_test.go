package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/passbi/flightplanner/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	input := `id,origin,departure,destination,arrival,fare
# comment lines are ignored
4, 0, 0, 2, 180, 500
11,2,200,3,290,100
`
	flights, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.Flight{
		{ID: 4, Origin: 0, Departure: 0, Destination: 2, Arrival: 180, Fare: 500},
		{ID: 11, Origin: 2, Departure: 200, Destination: 3, Arrival: 290, Fare: 100},
	}, flights)
}

func TestReadCSVErrors(t *testing.T) {
	t.Run("Non numeric field", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("id,origin,departure,destination,arrival,fare\n1,zero,0,1,10,5\n"))
		assert.Error(t, err)
	})

	t.Run("Empty input", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestReadYAML(t *testing.T) {
	input := `
flights:
  - id: 1
    origin: 0
    departure: 0
    destination: 1
    arrival: 120
    fare: 300
  - {id: 2, origin: 0, departure: 60, destination: 1, arrival: 180, fare: 250}
`
	flights, err := ReadYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.Flight{
		{ID: 1, Origin: 0, Departure: 0, Destination: 1, Arrival: 120, Fare: 300},
		{ID: 2, Origin: 0, Departure: 60, Destination: 1, Arrival: 180, Fare: 250},
	}, flights)

	t.Run("Empty document", func(t *testing.T) {
		flights, err := ReadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, flights)
	})

	t.Run("Malformed document", func(t *testing.T) {
		_, err := ReadYAML(strings.NewReader("flights: {id: ["))
		assert.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected int
		err      error
	}{
		{"CSV schedule", "testdata/dense_network.csv", 11, nil},
		{"YAML schedule", "testdata/small.yaml", 2, nil},
		{"Unsupported extension", "testdata/flights.txt", 0, ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flights, err := LoadFile(tt.path)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, flights, tt.expected)
		})
	}

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/missing.csv")
		assert.Error(t, err)
	})
}

type failingQuerier struct{ err error }

func (q failingQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, q.err
}

func TestLoadFromDBQueryError(t *testing.T) {
	boom := errors.New("connection refused")
	flights, err := LoadFromDB(context.Background(), failingQuerier{err: boom})
	assert.Nil(t, flights)
	assert.ErrorIs(t, err, boom)
}

// flightRows serves a fixed result set in the shape of the flight table.
type flightRows struct {
	columns []string
	values  [][]any
	pos     int
	closed  bool
}

func (r *flightRows) Close()                        { r.closed = true }
func (r *flightRows) Err() error                    { return nil }
func (r *flightRows) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }
func (r *flightRows) RawValues() [][]byte           { return nil }
func (r *flightRows) Conn() *pgx.Conn               { return nil }

func (r *flightRows) FieldDescriptions() []pgconn.FieldDescription {
	fields := make([]pgconn.FieldDescription, len(r.columns))
	for i, name := range r.columns {
		fields[i] = pgconn.FieldDescription{Name: name}
	}
	return fields
}

func (r *flightRows) Next() bool {
	if r.closed || r.pos >= len(r.values) {
		return false
	}
	r.pos++
	return true
}

func (r *flightRows) Values() ([]any, error) { return r.values[r.pos-1], nil }

func (r *flightRows) Scan(dest ...any) error {
	if len(dest) == 1 {
		if scanner, ok := dest[0].(pgx.RowScanner); ok {
			return scanner.ScanRow(r)
		}
	}

	row := r.values[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: %d targets for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		v := row[i].(int64)
		switch d := d.(type) {
		case *int64:
			*d = v
		case *int:
			*d = int(v)
		default:
			return fmt.Errorf("scan: unsupported target %T for column %s", d, r.columns[i])
		}
	}
	return nil
}

type stubQuerier struct {
	rows *flightRows
	sql  string
}

func (q *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	return q.rows, nil
}

func TestLoadFromDB(t *testing.T) {
	rows := &flightRows{
		columns: []string{"id", "origin_city", "departure_time", "destination_city", "arrival_time", "fare"},
		values: [][]any{
			{int64(4), int64(0), int64(0), int64(2), int64(180), int64(500)},
			{int64(11), int64(2), int64(200), int64(3), int64(290), int64(100)},
		},
	}
	q := &stubQuerier{rows: rows}

	flights, err := LoadFromDB(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, []models.Flight{
		{ID: 4, Origin: 0, Departure: 0, Destination: 2, Arrival: 180, Fare: 500},
		{ID: 11, Origin: 2, Departure: 200, Destination: 3, Arrival: 290, Fare: 100},
	}, flights)
	assert.Contains(t, q.sql, "FROM flight")
	assert.True(t, rows.closed)

	t.Run("Empty table", func(t *testing.T) {
		flights, err := LoadFromDB(context.Background(), &stubQuerier{rows: &flightRows{columns: rows.columns}})
		require.NoError(t, err)
		assert.Empty(t, flights)
	})

	t.Run("Unmapped column", func(t *testing.T) {
		extra := &flightRows{
			columns: append(append([]string{}, rows.columns...), "airline"),
			values:  [][]any{{int64(1), int64(0), int64(0), int64(1), int64(10), int64(5), int64(7)}},
		}
		flights, err := LoadFromDB(context.Background(), &stubQuerier{rows: extra})
		assert.Nil(t, flights)
		assert.Error(t, err)
	})
}
