package count

import "bytes"

// countLines splits blob content into lines and counts content lines and
// blank lines. A line is blank when it is empty or all whitespace. A blob
// with no bytes has no lines; a trailing newline does not open a final
// empty line.
func countLines(data []byte) (lines, blanks int64) {
	if len(data) == 0 {
		return 0, 0
	}

	rows := bytes.Split(data, []byte("\n"))
	if len(rows) > 0 && len(rows[len(rows)-1]) == 0 && data[len(data)-1] == '\n' {
		rows = rows[:len(rows)-1]
	}

	for _, row := range rows {
		if len(bytes.TrimSpace(row)) == 0 {
			blanks++
		} else {
			lines++
		}
	}

	return lines, blanks
}
