package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/tally"
)

// WriteCSV writes one row per group with a fixed header of "group" followed
// by the metric names. Groups come sorted ascending by the primary metric;
// the total is the last row.
func WriteCSV(w io.Writer, t *tally.Table) error {
	writer := csv.NewWriter(w)

	header := append([]string{"group"}, t.Metrics()...)

	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	rows := append(t.Groups(), tally.TotalKey)
	for _, group := range rows {
		record := make([]string, 0, len(header))
		record = append(record, group)

		for _, metric := range t.Metrics() {
			record = append(record, strconv.FormatInt(t.Get(group, metric), 10))
		}

		writeErr := writer.Write(record)
		if writeErr != nil {
			return fmt.Errorf("write csv row %s: %w", group, writeErr)
		}
	}

	writer.Flush()

	if flushErr := writer.Error(); flushErr != nil {
		return fmt.Errorf("flush csv: %w", flushErr)
	}

	return nil
}

// WriteJSON writes the nested group to metric structure as indented JSON.
func WriteJSON(w io.Writer, t *tally.Table) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(t.AsMap())
	if err != nil {
		return fmt.Errorf("encode json report: %w", err)
	}

	return nil
}

// WriteYAML writes the nested group to metric structure as YAML.
func WriteYAML(w io.Writer, t *tally.Table) error {
	encoder := yaml.NewEncoder(w)

	err := encoder.Encode(t.AsMap())
	if err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	if closeErr := encoder.Close(); closeErr != nil {
		return fmt.Errorf("close yaml encoder: %w", closeErr)
	}

	return nil
}
