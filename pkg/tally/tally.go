// Package tally holds the counter table: per-group metric counts accumulated
// during one traversal and read back during formatting.
package tally

import (
	"errors"
	"fmt"
	"sort"
)

// TotalKey is the reserved group aggregating across all other groups.
const TotalKey = "total"

// Metric names.
const (
	MetricFiles    = "files"
	MetricLines    = "lines"
	MetricBlanks   = "blanks"
	MetricBytes    = "bytes"
	MetricNetLines = "net-lines"
)

// ErrTotalsMismatch is returned when the total group disagrees with the sum
// of the other groups.
var ErrTotalsMismatch = errors.New("total does not match sum of groups")

// Table maps group keys to metric counts. It is created empty for a run,
// mutated additively during traversal, and read-only during formatting.
type Table struct {
	metrics []string
	primary string
	groups  map[string]map[string]int64
}

// NewTreeTable creates a counter table for tree mode: files, lines, blanks
// and bytes per group, sorted by lines.
func NewTreeTable() *Table {
	return newTable(
		[]string{MetricFiles, MetricLines, MetricBlanks, MetricBytes},
		MetricLines,
	)
}

// NewHistoryTable creates a counter table for history mode: a single signed
// net-lines metric per group.
func NewHistoryTable() *Table {
	return newTable([]string{MetricNetLines}, MetricNetLines)
}

func newTable(metrics []string, primary string) *Table {
	return &Table{
		metrics: metrics,
		primary: primary,
		groups:  make(map[string]map[string]int64),
	}
}

// Metrics returns the metric names in column order.
func (t *Table) Metrics() []string {
	return t.metrics
}

// PrimaryMetric returns the metric reports sort by.
func (t *Table) PrimaryMetric() string {
	return t.primary
}

// AddBlob folds one blob into the table: one file of the given byte size
// with the given content and blank line counts, credited to the group and to
// the total.
func (t *Table) AddBlob(group string, bytes, lines, blanks int64) {
	for _, key := range []string{group, TotalKey} {
		row := t.row(key)
		row[MetricFiles]++
		row[MetricLines] += lines
		row[MetricBlanks] += blanks
		row[MetricBytes] += bytes
	}
}

// AddNet folds one signed net line delta into the table. A zero delta is a
// no-op, not a zero-increment: it creates no group entry.
func (t *Table) AddNet(group string, net int64) {
	if net == 0 {
		return
	}

	t.row(group)[MetricNetLines] += net
	t.row(TotalKey)[MetricNetLines] += net
}

func (t *Table) row(group string) map[string]int64 {
	row, ok := t.groups[group]
	if !ok {
		row = make(map[string]int64, len(t.metrics))
		t.groups[group] = row
	}

	return row
}

// Get returns one counter. Missing groups and metrics read as zero.
func (t *Table) Get(group, metric string) int64 {
	return t.groups[group][metric]
}

// Len returns the number of groups, the total excluded.
func (t *Table) Len() int {
	n := len(t.groups)
	if _, ok := t.groups[TotalKey]; ok {
		n--
	}

	return n
}

// Groups returns the non-total group keys sorted ascending by the primary
// metric, ties broken by name.
func (t *Table) Groups() []string {
	keys := make([]string, 0, len(t.groups))

	for key := range t.groups {
		if key == TotalKey {
			continue
		}

		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		left, right := t.Get(keys[i], t.primary), t.Get(keys[j], t.primary)
		if left != right {
			return left < right
		}

		return keys[i] < keys[j]
	})

	return keys
}

// AsMap returns a copy of the table as nested group to metric maps, the total
// included. Mutating the copy does not affect the table.
func (t *Table) AsMap() map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(t.groups))

	for group, row := range t.groups {
		rowCopy := make(map[string]int64, len(row))
		for metric, count := range row {
			rowCopy[metric] = count
		}

		out[group] = rowCopy
	}

	return out
}

// CheckTotals verifies that for every metric the total group equals the sum
// across all non-total groups.
func (t *Table) CheckTotals() error {
	for _, metric := range t.metrics {
		var sum int64

		for group, row := range t.groups {
			if group == TotalKey {
				continue
			}

			sum += row[metric]
		}

		if total := t.Get(TotalKey, metric); total != sum {
			return fmt.Errorf("%w: metric %s has total %d, groups sum to %d",
				ErrTotalsMismatch, metric, total, sum)
		}
	}

	return nil
}
