package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/LexiconIndonesia/mdpsc-crawler/common"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Header is the column order of the output table.
var Header = []string{
	"Case Number",
	"Case Description",
	"Case Date",
	"Document Description",
	"Document Filename",
	"Document Date",
	"File Location of Downloaded Document",
}

// Fields renders a dataset row in Header order.
func Fields(r models.DatasetRow) []string {
	return []string{
		r.Case.ID.Label(),
		r.Case.Description,
		r.Case.FiledDate,
		r.Document.Row.Description,
		r.Document.File.Name,
		r.Document.Row.Date,
		r.Document.File.Path,
	}
}

// Writer serializes accumulated dataset rows into a single CSV file.
type Writer struct {
	log zerolog.Logger
}

// NewWriter creates a new dataset writer
func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{log: log}
}

// Write writes the header plus all rows to a CSV file at path.
func (w *Writer) Write(path string, rows []models.DatasetRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", common.ErrOutputWrite, path, err)
	}
	defer file.Close()

	records := append(
		[][]string{Header},
		lo.Map(rows, func(r models.DatasetRow, _ int) []string { return Fields(r) })...,
	)

	cw := csv.NewWriter(file)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("%w: write %s: %v", common.ErrOutputWrite, path, err)
	}

	w.log.Info().Str("path", path).Int("rows", len(rows)).Msg("Wrote dataset")
	return nil
}
