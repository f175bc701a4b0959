package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// marshalNDJSON renders records as newline-delimited JSON, one object per
// line, matching the layout warehouse bulk imports expect.
func marshalNDJSON(records []any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// writeSnapshots writes every table of a run as <bucketDir>/<runID>/<table>.json.
// Each run gets its own directory so reruns never clobber earlier output.
func writeSnapshots(bucketDir, runID string, tables []tableData) error {
	runDir := filepath.Join(bucketDir, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return fmt.Errorf("could not create run directory: %w", err)
	}

	for _, table := range tables {
		data, err := marshalNDJSON(table.records)
		if err != nil {
			return fmt.Errorf("could not serialize %s: %w", table.name, err)
		}
		path := filepath.Join(runDir, table.name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("could not write %s: %w", table.name, err)
		}
	}
	return nil
}
