package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"draftboard/internal/model"
	"draftboard/internal/schema"
)

// FileSource reads a CSV board from disk.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file:" + f.Path }

func (f *FileSource) Fetch(_ context.Context) (schema.Table, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return schema.Table{}, fmt.Errorf("open board: %w", err)
	}
	defer fh.Close()
	return ReadCSV(fh)
}

// ReadCSV parses a header row plus data rows. Short rows leave trailing columns absent.
// Repeated header names are rejected since rows are keyed by header.
func ReadCSV(r io.Reader) (schema.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return schema.Table{}, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return schema.Table{}, fmt.Errorf("read header: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	seen := make(map[string]int, len(headers))
	for i, h := range headers {
		if j, dup := seen[h]; dup {
			return schema.Table{}, fmt.Errorf("read header: column %d duplicates column %d (%q)", i+1, j+1, h)
		}
		seen[h] = i
	}

	tbl := schema.Table{Headers: headers}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return schema.Table{}, fmt.Errorf("read row %d: %w", line, err)
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = rec[i]
			}
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, nil
}

// WriteCSV writes records using the header names in cols, in canonical field order.
// Fields without a header are not written; absent values become empty cells.
func WriteCSV(w io.Writer, cols map[model.Field]string, records []model.PlayerRecord) error {
	var fields []model.Field
	var headers []string
	for _, f := range model.Fields {
		if h, ok := cols[f]; ok {
			fields = append(fields, f)
			headers = append(headers, strings.TrimSpace(h))
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = cellValue(&records[i], f)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes records to path, replacing any existing file.
func SaveCSV(path string, cols map[model.Field]string, records []model.PlayerRecord) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(fh, cols, records); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func cellValue(r *model.PlayerRecord, f model.Field) string {
	switch f {
	case model.FieldFullName:
		return r.FullName
	case model.FieldPosition:
		return r.Position
	case model.FieldTeam:
		return r.Team
	}
	if v := r.Number(f); v != nil {
		return strconv.FormatFloat(*v, 'f', -1, 64)
	}
	return ""
}
