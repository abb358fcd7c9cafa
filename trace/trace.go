// Package trace reads textual memory-access traces. Each record carries a
// load/store marker and a hexadecimal 32-bit physical address, one per line:
//
//	# 0 7fffed80 1
//
// The leading "#" and the trailing instruction count are optional.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// A Record is one decoded trace entry.
type Record struct {
	// Store is true for a store access, false for a load.
	Store bool
	// Addr is the 32-bit physical address accessed.
	Addr uint32
}

// A Reader decodes trace records from an input stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Next returns the next record in the trace. It returns io.EOF when the
// input is exhausted. Blank lines are skipped; any malformed record is an
// error carrying its line number.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" {
			continue
		}

		rec, err := parseRecord(text)
		if err != nil {
			return Record{}, fmt.Errorf("trace line %d: %w", r.line, err)
		}
		return rec, nil
	}

	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read trace: %w", err)
	}
	return Record{}, io.EOF
}

func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) > 0 && fields[0] == "#" {
		fields = fields[1:]
	}
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("malformed record %q", line)
	}

	var store bool
	switch fields[0] {
	case "0":
		store = false
	case "1":
		store = true
	default:
		return Record{}, fmt.Errorf("invalid operation %q (want 0 or 1)", fields[0])
	}

	addr, err := strconv.ParseUint(fields[1], 16, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid address %q: %w", fields[1], err)
	}

	return Record{Store: store, Addr: uint32(addr)}, nil
}
