// Package render serializes an assembled fixture dataset into the formats
// consumed downstream: the wrapped JSON document the FP&A application imports,
// plus CSV and XLSX for spreadsheet-based inspection.
//
// All renderers marshal the complete dataset in memory before writing a single
// byte, so a failure never leaves a partially serialized artifact behind.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dvloznov/fpa-fixtures/internal/fixture"
)

// WriteJSON renders the dataset as the wrapped, indented JSON document the
// FP&A application imports and writes it to w in one piece.
func WriteJSON(w io.Writer, ds *fixture.Dataset) error {
	buf, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteJSON: marshal dataset: %w", err)
	}
	buf = append(buf, '\n')
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("WriteJSON: write: %w", err)
	}
	return nil
}

// ReadJSON parses a previously rendered JSON artifact back into a dataset,
// preserving record order.
func ReadJSON(r io.Reader) (*fixture.Dataset, error) {
	var ds fixture.Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("ReadJSON: decode dataset: %w", err)
	}
	return &ds, nil
}
