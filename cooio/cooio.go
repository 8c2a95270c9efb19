// SPDX-License-Identifier: MIT

// Package cooio reads coordinate triplets from text and writes dense
// matrices back out. It is host-side plumbing for the densefill tool; the
// scatter kernel itself takes slices.
//
// Triplet format, one entry per line:
//
//	# comment            (lines starting with '#' or '%' are skipped)
//	<row> <col> <value>  (0-based indices; separators: spaces, tabs or commas)
package cooio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/densefill/matrix"
	"github.com/katalvlaran/densefill/scatter"
)

// ErrSyntax is returned for a line that is not a valid triplet.
var ErrSyntax = errors.New("cooio: syntax error")

// ReadTriplets parses r into an entry list with int32 indices.
// Indices are not checked against any shape here; Fill does that.
func ReadTriplets(r io.Reader) (*scatter.Entries[int32], error) {
	e := scatter.NewEntries[int32](0)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		row, col, v, err := parseTriplet(text)
		if err != nil {
			return nil, fmt.Errorf("cooio: line %d: %w", line, err)
		}
		e.Append(row, col, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cooio: read: %w", err)
	}

	return e, nil
}

// parseTriplet splits one non-comment line into (row, col, value).
func parseTriplet(text string) (row, col int32, v float64, err error) {
	fields := strings.FieldsFunc(text, func(r rune) bool { return unicode.IsSpace(r) || r == ',' })
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("want 3 fields, got %d: %w", len(fields), ErrSyntax)
	}
	r64, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("row %q: %w", fields[0], ErrSyntax)
	}
	c64, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("col %q: %w", fields[1], ErrSyntax)
	}
	v, err = strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("value %q: %w", fields[2], ErrSyntax)
	}

	return int32(r64), int32(c64), v, nil
}

// WriteDense writes m one row per line, values separated by a single space
// in the shortest representation that round-trips ('g', -1).
func WriteDense(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	rows, cols := m.Shape()
	data := m.Data()
	buf := make([]byte, 0, 32)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], data[j*rows+i], 'g', -1, 64)
			_, _ = bw.Write(buf)
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
