package assess

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// Record is one emitted row of the output table.
type Record struct {
	// PctIdentity reported by the aligner (0-100)
	PctIdentity float64

	// Coverage is the ungapped reference length over the ungapped
	// assembled length
	Coverage float64

	// Length of the assembled sequence without gaps
	Length int

	// Isolate is the reference isolate's label
	Isolate string

	// RefLength is the count of reference bases spanned by the alignment
	RefLength int

	// Path of the alignment report behind this row
	Path string

	// GapFreeID is the identity over reference bases only, written as a
	// trailing column for scaffold assemblies
	GapFreeID float64
}

// newRecord maps a selected candidate onto an output row.
func newRecord(c Candidate) Record {
	return Record{
		PctIdentity: c.PctIdentity,
		Coverage:    c.Coverage,
		Length:      c.Length,
		Isolate:     c.Isolate,
		RefLength:   c.RefLength,
		Path:        c.Path,
		GapFreeID:   c.GapFreeID,
	}
}

// line renders the record as one tab-separated row. Identities carry two
// decimals, the coverage ratio keeps its minimal float form.
func (r Record) line(kind AssemblyKind) string {
	row := fmt.Sprintf("%.2f\t%s\t%d\t%s\t%d\t%s",
		r.PctIdentity,
		strconv.FormatFloat(r.Coverage, 'f', -1, 64),
		r.Length,
		r.Isolate,
		r.RefLength,
		r.Path,
	)
	if kind == Scaffold {
		row += fmt.Sprintf("\t%.2f", r.GapFreeID)
	}

	return row
}

// writeTable is the sole writer of the output table. It appends one line
// per record received until the channel is closed, then flushes. Because
// every worker funnels into this one consumer there is never a second
// writer on the file and no lock is needed. A failed append breaks that
// guarantee, so the first write error stops writing; the channel is still
// drained to unblock the producers and the error is returned with the
// count of rows written before it.
func writeTable(path string, kind AssemblyKind, records <-chan Record) (int, error) {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
	if err != nil {
		// unblock the producers before reporting
		for range records {
		}
		return 0, fmt.Errorf("failed to open the output table at %s: %v", path, err)
	}

	w := bufio.NewWriter(out)
	var written int
	var writeErr error
	for r := range records {
		if writeErr != nil {
			continue // draining
		}
		if _, err := fmt.Fprintln(w, r.line(kind)); err != nil {
			writeErr = fmt.Errorf("failed to write to the output table at %s: %v", path, err)
			continue
		}
		written++
	}

	if err := w.Flush(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("failed to flush the output table at %s: %v", path, err)
	}
	if err := out.Close(); err != nil && writeErr == nil {
		writeErr = fmt.Errorf("failed to close the output table at %s: %v", path, err)
	}

	return written, writeErr
}
