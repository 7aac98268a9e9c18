package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dilutedml/dknn"
)

// readPoints loads labeled points from a CSV file with x,y,class records.
// A header row is tolerated; an empty x and y pair marks a missing point and
// is kept as the sentinel so incomplete batches are rejected downstream, not
// silently patched here.
func readPoints(path string) ([]dknn.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3
	r.TrimLeadingSpace = true

	var points []dknn.Point
	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if line == 1 && isHeader(record) {
			continue
		}
		if record[0] == "" && record[1] == "" {
			points = append(points, dknn.Missing())
			continue
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad x %q: %w", path, line, record[0], err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad y %q: %w", path, line, record[1], err)
		}
		class, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad class %q: %w", path, line, record[2], err)
		}
		points = append(points, dknn.Point{X: x, Y: y, Class: class})
	}
	return points, nil
}

func isHeader(record []string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	return err != nil && strings.TrimSpace(record[0]) != ""
}
