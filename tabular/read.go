// SPDX-License-Identifier: MIT
// Package: epinet/tabular
//
// read.go — CSV readers for contacts, matrices and series.
//
// Contract:
//   - Blank lines and comment lines are skipped; fields are space-trimmed.
//   - Every record must have the column count of its reader
//     (contacts: 3, series: 2, matrix: width of the first record).
//   - An input with no data records yields ErrEmpty.

package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/epinet/builder"
)

var (
	// ErrMalformed indicates a record that cannot be parsed.
	ErrMalformed = errors.New("tabular: malformed record")

	// ErrEmpty indicates an input without data records.
	ErrEmpty = errors.New("tabular: no data records")
)

// ReadContacts parses "a,b,seconds" records into contacts.
func ReadContacts(r io.Reader, opts ...Option) ([]builder.Contact, error) {
	var out []builder.Contact
	err := each(r, newConfig(opts...), 3, func(rec int, fields []string) error {
		a, err := parseID(rec, 1, fields[0])
		if err != nil {
			return err
		}
		b, err := parseID(rec, 2, fields[1])
		if err != nil {
			return err
		}
		s, err := parseFloat(rec, 3, fields[2])
		if err != nil {
			return err
		}
		out = append(out, builder.Contact{A: a, B: b, Seconds: s})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadContacts: %w", err)
	}

	return out, nil
}

// ReadSeries parses "t,f" records into parallel time and value slices.
func ReadSeries(r io.Reader, opts ...Option) (ts, ys []float64, err error) {
	err = each(r, newConfig(opts...), 2, func(rec int, fields []string) error {
		t, err := parseFloat(rec, 1, fields[0])
		if err != nil {
			return err
		}
		y, err := parseFloat(rec, 2, fields[1])
		if err != nil {
			return err
		}
		ts, ys = append(ts, t), append(ys, y)

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("ReadSeries: %w", err)
	}

	return ts, ys, nil
}

// ReadMatrix parses a rectangular numeric table; rows become matrix rows.
func ReadMatrix(r io.Reader, opts ...Option) (*mat.Dense, error) {
	var (
		data []float64
		rows int
	)
	// Width 0 lets encoding/csv fix the width from the first record.
	err := each(r, newConfig(opts...), 0, func(rec int, fields []string) error {
		for j, f := range fields {
			v, err := parseFloat(rec, j+1, f)
			if err != nil {
				return err
			}
			data = append(data, v)
		}
		rows++

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}

	return mat.NewDense(rows, len(data)/rows, data), nil
}

// each streams data records to fn. rec is the 1-based record number in the
// input, header included.
func each(r io.Reader, c config, width int, fn func(rec int, fields []string) error) error {
	cr := csv.NewReader(r)
	cr.Comma = c.delimiter
	cr.Comment = c.comment
	cr.FieldsPerRecord = width
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		rec   int
		data  int
		first = c.header
	)
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%v: %w", err, ErrMalformed)
		}
		rec++
		if first {
			first = false
			continue
		}
		if err = fn(rec, fields); err != nil {
			return err
		}
		data++
	}
	if data == 0 {
		return ErrEmpty
	}

	return nil
}

func parseID(rec, field int, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("record %d field %d %q: %w", rec, field, s, ErrMalformed)
	}

	return v, nil
}

func parseFloat(rec, field int, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("record %d field %d %q: %w", rec, field, s, ErrMalformed)
	}

	return v, nil
}
