package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/scylladb/termtables"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func render[T any](w io.Writer, format string, headers []string, rows []T, cells func(T) []any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}
	table := termtables.CreateTable()
	hs := make([]any, len(headers))
	for i, h := range headers {
		hs[i] = h
	}
	table.AddHeaders(hs...)
	for _, r := range rows {
		table.AddRow(cells(r)...)
	}
	_, err := fmt.Fprintln(w, table.Render())
	return err
}
