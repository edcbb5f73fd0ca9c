// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// exportLimit bounds how many runs an export pulls; run history on a
// single machine never approaches it.
const exportLimit = 100000

// ExportYAML writes the full run history to dir/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	records, err := s.exportRecords(ctx)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the full run history to dir/export.json.
func (s *Store) ExportJSON(ctx context.Context) error {
	records, err := s.exportRecords(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dir, "export.json"), data, 0o644)
}

func (s *Store) exportRecords(ctx context.Context) ([]RunRecord, error) {
	summaries, err := s.List(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	records := make([]RunRecord, 0, len(summaries))
	for _, sum := range summaries {
		rec, err := s.Get(ctx, sum.ID)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}
