// Package mirca parses the MIRCA2000 condensed crop-calendar text format
// (SPEC_FULL.md §6), the one file-format interface the core owns. The
// record layout is transcribed from
// original_source/wsim.agriculture/src/parse_mirca.cpp. Reading is
// exposed over io.Reader for testability, plus a path-based convenience
// wrapper grounded on the teacher's mmio.ReadTextLines-based file
// loading (grid/grid.go's ReadGDEF).
package mirca

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// Record is one planting/harvest window for one subcrop of one crop
// class within one spatial unit.
type Record struct {
	UnitCode     int
	CropClass    int
	Subcrop      int
	Area         float64
	PlantMonth   int
	HarvestMonth int
}

// DefaultHeaderLines is the number of header lines the MIRCA2000
// condensed format carries before data records begin.
const DefaultHeaderLines = 4

// Parse reads a MIRCA condensed crop calendar from r, skipping
// headerLines lines first. Each record line begins with whitespace
// separated unit_code, crop_class, n_subcrops, followed by n_subcrops
// triples of area, plant_month, harvest_month. Parsing fails at the
// first unparseable token, producing no partial output
// (SPEC_FULL.md §7).
func Parse(r io.Reader, headerLines int) ([]Record, error) {
	scanner := bufio.NewScanner(r)

	for i := 0; i < headerLines; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("mirca: input ended while skipping header line %d of %d", i+1, headerLines)
		}
	}

	var records []Record
	lineNo := headerLines
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		i := 0
		next := func(what string) (string, error) {
			if i >= len(fields) {
				return "", fmt.Errorf("mirca: line %d: missing %s", lineNo, what)
			}
			v := fields[i]
			i++
			return v, nil
		}

		unitTok, err := next("unit_code")
		if err != nil {
			return nil, err
		}
		unitCode, err := strconv.Atoi(unitTok)
		if err != nil {
			return nil, fmt.Errorf("mirca: line %d: invalid unit_code %q: %w", lineNo, unitTok, err)
		}

		cropTok, err := next("crop_class")
		if err != nil {
			return nil, err
		}
		cropClass, err := strconv.Atoi(cropTok)
		if err != nil {
			return nil, fmt.Errorf("mirca: line %d: invalid crop_class %q: %w", lineNo, cropTok, err)
		}

		nTok, err := next("n_subcrops")
		if err != nil {
			return nil, err
		}
		nSubcrops, err := strconv.Atoi(nTok)
		if err != nil {
			return nil, fmt.Errorf("mirca: line %d: invalid n_subcrops %q: %w", lineNo, nTok, err)
		}

		for sub := 1; sub <= nSubcrops; sub++ {
			areaTok, err := next("area")
			if err != nil {
				return nil, err
			}
			area, err := strconv.ParseFloat(areaTok, 64)
			if err != nil {
				return nil, fmt.Errorf("mirca: line %d: invalid area %q: %w", lineNo, areaTok, err)
			}

			plantTok, err := next("plant_month")
			if err != nil {
				return nil, err
			}
			plantMonth, err := strconv.Atoi(plantTok)
			if err != nil {
				return nil, fmt.Errorf("mirca: line %d: invalid plant_month %q: %w", lineNo, plantTok, err)
			}

			harvestTok, err := next("harvest_month")
			if err != nil {
				return nil, err
			}
			harvestMonth, err := strconv.Atoi(harvestTok)
			if err != nil {
				return nil, fmt.Errorf("mirca: line %d: invalid harvest_month %q: %w", lineNo, harvestTok, err)
			}

			records = append(records, Record{
				UnitCode:     unitCode,
				CropClass:    cropClass,
				Subcrop:      sub,
				Area:         area,
				PlantMonth:   plantMonth,
				HarvestMonth: harvestMonth,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mirca: %w", err)
	}

	return records, nil
}

// ParseFile loads and parses a MIRCA condensed crop calendar file by
// path, following the teacher's mmio.ReadTextLines-based file loading
// convention (grid/grid.go's ReadGDEF).
func ParseFile(path string, headerLines int) ([]Record, error) {
	lines := mmio.ReadTextLines(path)
	return Parse(strings.NewReader(strings.Join(lines, "\n")), headerLines)
}
