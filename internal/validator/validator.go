package validator

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/arcanaland/duelist/internal/catalog"
	"github.com/arcanaland/duelist/internal/errors"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
	Rows     int // Data rows read
}

type Validator struct {
	DatasetPath string
	Delimiter   rune
	NameWidth   int // Names longer than this are reported; 0 disables the check
	Results     ValidationResults

	seenIDs map[string]int // id -> first row
}

func NewValidator(datasetPath string) *Validator {
	return &Validator{
		DatasetPath: datasetPath,
		Delimiter:   ',',
		Results:     ValidationResults{},
		seenIDs:     make(map[string]int),
	}
}

// Validate reads the whole dataset and records every problem found. The
// returned error is reserved for files that cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	file, err := os.Open(v.DatasetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return v.Results, errors.NewFileNotFound(v.DatasetPath)
		}
		return v.Results, fmt.Errorf("error opening dataset: %w", err)
	}
	defer file.Close()

	return v.ValidateReader(file)
}

// ValidateReader is Validate over an already opened dataset.
func (v *Validator) ValidateReader(r io.Reader) (ValidationResults, error) {
	reader := catalog.NewReader(r, v.Delimiter)

	header, err := reader.Read()
	if err == io.EOF {
		v.Results.Warnings = append(v.Results.Warnings, "dataset is empty")
		return v.Results, nil
	}
	if err != nil {
		return v.Results, fmt.Errorf("error reading header: %w", err)
	}
	v.validateHeader(header)

	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		v.Results.Rows++
		if err != nil {
			if pErr, ok := err.(*csv.ParseError); ok {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("row %d (line %d): %v", v.Results.Rows, pErr.Line, pErr.Err))
				continue
			}
			return v.Results, fmt.Errorf("error reading dataset: %w", err)
		}

		line, _ := reader.FieldPos(0)
		v.validateRow(fields, v.Results.Rows, line)
	}

	if v.Results.Rows == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "dataset has a header but no cards")
	}

	return v.Results, nil
}

// validateHeader checks the header against the expected column layout
func (v *Validator) validateHeader(header []string) {
	if len(header) != catalog.FieldCount {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("header has %d columns, expected %d (%s)",
				len(header), catalog.FieldCount, strings.Join(catalog.Header, ", ")))
		return
	}

	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(name), catalog.Header[i]) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("header column %d is %q, expected %q", i+1, name, catalog.Header[i]))
		}
	}
}

// validateRow checks a single data row
func (v *Validator) validateRow(fields []string, row, line int) {
	where := fmt.Sprintf("row %d (line %d)", row, line)

	if len(fields) != catalog.FieldCount {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%s: expected %d fields, got %d", where, catalog.FieldCount, len(fields)))
		return
	}

	if _, err := catalog.ParsePrice(fields[6]); err != nil {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: %v", where, err))
	}

	id := fields[0]
	if strings.TrimSpace(id) == "" {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s: empty id", where))
	} else if first, ok := v.seenIDs[id]; ok {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: duplicate id %s (first seen in row %d)", where, id, first))
	} else {
		v.seenIDs[id] = row
	}

	name := fields[1]
	if strings.TrimSpace(name) == "" {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("%s: empty name", where))
	} else if v.NameWidth > 0 && utf8.RuneCountInString(name) > v.NameWidth {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s: name %q is longer than %d characters and will be truncated on display",
				where, name, v.NameWidth))
	}
}
