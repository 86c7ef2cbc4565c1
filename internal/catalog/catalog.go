package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// builtinCities is the demo dataset: one label per option, kept in a
// stable order so keyboard walks are reproducible.
var builtinCities = []string{
	"Albuquerque, New Mexico",
	"Anchorage, Alaska",
	"Atlanta, Georgia",
	"Austin, Texas",
	"Baltimore, Maryland",
	"Boise, Idaho",
	"Boston, Massachusetts",
	"Buffalo, New York",
	"Charlotte, North Carolina",
	"Chicago, Illinois",
	"Cleveland, Ohio",
	"Columbus, Ohio",
	"Dallas, Texas",
	"Denver, Colorado",
	"Detroit, Michigan",
	"El Paso, Texas",
	"Fresno, California",
	"Honolulu, Hawaii",
	"Houston, Texas",
	"Indianapolis, Indiana",
	"Jacksonville, Florida",
	"Kansas City, Missouri",
	"Las Vegas, Nevada",
	"Los Angeles, California",
	"Louisville, Kentucky",
	"Memphis, Tennessee",
	"Miami, Florida",
	"Milwaukee, Wisconsin",
	"Minneapolis, Minnesota",
	"Nashville, Tennessee",
	"New Orleans, Louisiana",
	"New York, New York",
	"Oakland, California",
	"Oklahoma City, Oklahoma",
	"Omaha, Nebraska",
	"Philadelphia, Pennsylvania",
	"Phoenix, Arizona",
	"Portland, Maine",
	"Portland, Oregon",
	"Raleigh, North Carolina",
	"Sacramento, California",
	"Salt Lake City, Utah",
	"San Antonio, Texas",
	"San Diego, California",
	"San Francisco, California",
	"San Jose, California",
	"Seattle, Washington",
	"St. Louis, Missouri",
	"Tucson, Arizona",
	"Tulsa, Oklahoma",
	"Washington, District of Columbia",
}

// Builtin returns a copy of the built-in city dataset
func Builtin() []string {
	return append([]string(nil), builtinCities...)
}

// LoadFile reads one option label per line, trimming whitespace and
// skipping blank lines, comment lines and duplicates.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options file: %w", err)
	}
	defer f.Close()

	seen := make(map[string]bool)
	var labels []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		labels = append(labels, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("options file %s contains no labels", path)
	}

	return labels, nil
}
