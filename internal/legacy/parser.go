// Package legacy reads the pipe-delimited data file written by earlier
// versions of the tracker.
package legacy

import (
	"bufio"
	"io"
	"strings"
	"time"
)

// TimestampLayout is the layout of the third column.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one line of the legacy file: packer|order|timestamp.
type Record struct {
	PackerName  string
	OrderNumber string
	RecordedAt  time.Time
}

// Parse reads every record in r. Blank lines are ignored. Lines with fewer
// than three fields, blank names or an unparseable timestamp are counted in
// skipped. Fields past the third are ignored. Timestamps are read as UTC.
func Parse(r io.Reader) (records []Record, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 3 {
			skipped++
			continue
		}

		packer := strings.TrimSpace(parts[0])
		order := strings.TrimSpace(parts[1])
		if packer == "" || order == "" {
			skipped++
			continue
		}

		recordedAt, perr := time.Parse(TimestampLayout, strings.TrimSpace(parts[2]))
		if perr != nil {
			skipped++
			continue
		}

		records = append(records, Record{
			PackerName:  packer,
			OrderNumber: order,
			RecordedAt:  recordedAt,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, skipped, err
	}
	return records, skipped, nil
}
