// Package schedule loads flight lists from files and databases.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/passbi/flightplanner/internal/models"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported schedule format")

// File is the YAML layout of a schedule
type File struct {
	Flights []models.Flight `yaml:"flights"`
}

// LoadFile reads a schedule from disk, picking the parser by extension
func LoadFile(path string) ([]models.Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule: %w", err)
	}
	defer f.Close()

	var flights []models.Flight
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		flights, err = ReadCSV(f)
	case ".yaml", ".yml":
		flights, err = ReadYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	log.Info().Str("file", path).Int("flights", len(flights)).Msg("Loaded schedule")
	return flights, nil
}

// ReadCSV parses a flight table with the header
// id,origin,departure,destination,arrival,fare
func ReadCSV(r io.Reader) ([]models.Flight, error) {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	csvReader.Comment = '#'

	flights := []models.Flight{}
	if err := gocsv.UnmarshalCSV(csvReader, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

// ReadYAML parses a document with a top level `flights` list
func ReadYAML(r io.Reader) ([]models.Flight, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Flight{}, nil
		}
		return nil, err
	}
	if file.Flights == nil {
		file.Flights = []models.Flight{}
	}
	return file.Flights, nil
}
