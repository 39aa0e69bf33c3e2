package sequence

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// Nucleotides accepted in FASTA input (N for unknown bases).
const Nucleotides = "ACGTN"

// ErrNoRecords indicates a FASTA stream without any record.
var ErrNoRecords = errors.New("sequence: no FASTA records")

// Record is one FASTA entry.
type Record struct {
	ID  string
	Seq []byte
}

// ReadFASTA reads all records from r.
func ReadFASTA(r io.Reader) ([]Record, error) {
	template := &linear.Seq{Annotation: seq.Annotation{Alpha: alphabet.DNA}}
	reader := fasta.NewReader(r, template)

	var records []Record
	for {
		s, err := reader.Read()
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read record %d: %w", len(records)+1, err)
		}
		if ls, ok := s.(*linear.Seq); ok && ls != nil {
			rec := Record{ID: ls.ID, Seq: lettersToUpper(ls.Seq)}
			if verr := Validate(rec.Seq, Nucleotides); verr != nil {
				return nil, fmt.Errorf("record %q: %w", rec.ID, verr)
			}
			records = append(records, rec)
		}
		if err == io.EOF {
			break
		}
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

// ReadFirstFASTA opens path and returns its first record.
func ReadFirstFASTA(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	records, err := ReadFASTA(f)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}

	return records[0], nil
}

func lettersToUpper(l alphabet.Letters) []byte {
	b := make([]byte, len(l))
	for i, c := range l {
		b[i] = byte(c)
	}

	return bytes.ToUpper(b)
}
