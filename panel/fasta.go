// SPDX-License-Identifier: MIT

package panel

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ErrNoRecords is returned when a FASTA source holds no sequences.
var ErrNoRecords = errors.New("panel: no FASTA records")

// Record is one named sequence.
type Record struct {
	ID  string
	Seq string
}

// ReadFASTA parses every record of r. IDs are the first word of the header
// line; sequence lines are joined without whitespace. Letters are returned as
// written, validation happens in the forward pass.
func ReadFASTA(r io.Reader) ([]Record, error) {
	template := linear.NewSeq("", nil, alphabet.DNA)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	var recs []Record
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("panel: unexpected sequence type %T", sc.Seq())
		}
		recs = append(recs, Record{ID: s.ID, Seq: string(s.Seq)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("panel: read FASTA: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	return recs, nil
}

// LoadFASTA opens path and reads it with ReadFASTA.
func LoadFASTA(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("panel: %w", err)
	}
	defer f.Close()

	recs, err := ReadFASTA(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return recs, nil
}

// Sequences returns the Seq field of each record, in order.
func Sequences(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Seq
	}

	return out
}

// IDs returns the ID field of each record, in order.
func IDs(recs []Record) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}

	return out
}
