package dataset

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/LexiconIndonesia/mdpsc-crawler/common"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/models"
	"github.com/rs/zerolog"
)

func sampleRow() models.DatasetRow {
	return models.DatasetRow{
		Case: models.CaseRecord{
			ID:          models.RulemakingCase(95),
			Description: "In the Matter of Electric Vehicles",
			FiledDate:   "01/02/2020",
		},
		Document: models.DocumentFile{
			Row: models.DocumentRow{
				Ordinal:     3,
				Description: "Initial Comments",
				Date:        "02/03/2020",
				ListingPath: "/DMS/files/3",
			},
			File: models.DownloadedFile{
				Name: "comments.pdf",
				Path: "output/rm95/3/comments.pdf",
			},
		},
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_mart.csv")
	writer := NewWriter(zerolog.Nop())

	if err := writer.Write(path, []models.DatasetRow{sampleRow()}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d records", len(records))
	}
	if !reflect.DeepEqual(records[0], Header) {
		t.Errorf("Unexpected header: %v", records[0])
	}

	want := []string{
		"rm95",
		"In the Matter of Electric Vehicles",
		"01/02/2020",
		"Initial Comments",
		"comments.pdf",
		"02/03/2020",
		"output/rm95/3/comments.pdf",
	}
	if !reflect.DeepEqual(records[1], want) {
		t.Errorf("Unexpected row: %v", records[1])
	}
}

func TestWriteEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data_mart.csv")
	writer := NewWriter(zerolog.Nop())

	if err := writer.Write(path, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	file, _ := os.Open(path)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("Expected only the header, got %d records", len(records))
	}
}

func TestWriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "data_mart.csv")
	writer := NewWriter(zerolog.Nop())

	err := writer.Write(path, []models.DatasetRow{sampleRow()})
	if !errors.Is(err, common.ErrOutputWrite) {
		t.Errorf("Expected output write failure, got %v", err)
	}
}
