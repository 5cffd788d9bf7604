package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type call struct {
	query string
	args  []any
}

// stubSQL records every statement and answers from canned rows. QueryRow
// drains queue in order before falling back to row.
type stubSQL struct {
	calls   []call
	rows    [][]any
	queue   [][]any
	row     []any
	rowErr  error
	execTag pgconn.CommandTag
	err     error
}

func (s *stubSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.calls = append(s.calls, call{query, args})
	return s.execTag, s.err
}

func (s *stubSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	s.calls = append(s.calls, call{query, args})
	if s.rowErr != nil {
		return errRow{s.rowErr}
	}
	if len(s.queue) > 0 {
		next := s.queue[0]
		s.queue = s.queue[1:]
		return &stubRows{rows: [][]any{next}, idx: 1}
	}
	if s.row == nil {
		return errRow{pgx.ErrNoRows}
	}
	return &stubRows{rows: [][]any{s.row}, idx: 1}
}

func (s *stubSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	s.calls = append(s.calls, call{query, args})
	if s.err != nil {
		return nil, s.err
	}
	return &stubRows{rows: s.rows}, nil
}

func (s *stubSQL) last() call {
	return s.calls[len(s.calls)-1]
}

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

type stubRows struct {
	rows   [][]any
	idx    int
	closed bool
}

func (r *stubRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

// Scan copies the current row into dest; nil values leave the target zeroed.
func (r *stubRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return pgx.ErrNoRows
	}
	row := r.rows[r.idx-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan arity: got %d targets for %d columns", len(dest), len(row))
	}
	for i, v := range row {
		if v == nil {
			continue
		}
		target := reflect.ValueOf(dest[i]).Elem()
		value := reflect.ValueOf(v)
		if !value.Type().AssignableTo(target.Type()) {
			if !value.Type().ConvertibleTo(target.Type()) {
				return fmt.Errorf("column %d: cannot assign %s to %s", i, value.Type(), target.Type())
			}
			value = value.Convert(target.Type())
		}
		target.Set(value)
	}
	return nil
}

func (r *stubRows) Close()                                       { r.closed = true }
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}
func (r *stubRows) RawValues() [][]byte { return nil }
func (r *stubRows) Conn() *pgx.Conn     { return nil }
