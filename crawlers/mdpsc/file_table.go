package mdpsc

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LexiconIndonesia/mdpsc-crawler/common"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/models"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// FileTableParser walks a case's public file table and downloads the files
// behind each row.
type FileTableParser struct {
	config    Config
	outputDir string
	downloads *ListingDownloader
	log       zerolog.Logger
}

// NewFileTableParser creates a new FileTableParser
func NewFileTableParser(config Config, outputDir string, downloads *ListingDownloader, log zerolog.Logger) *FileTableParser {
	return &FileTableParser{
		config:    config,
		outputDir: outputDir,
		downloads: downloads,
		log:       log,
	}
}

// Parse iterates the table body rows in document order. The three columns
// are number, subject, and date; the number cell carries the link to the
// row's file listing. Rows with any other cell count are logged and skipped
// without aborting the case, but still consume their ordinal. A row whose
// number cell has no file reference malforms the whole table and aborts the
// case as a structural parse failure. Rows whose listing yields no files
// contribute nothing.
func (p *FileTableParser) Parse(ctx context.Context, table *goquery.Selection, id models.CaseID) ([]models.DocumentFile, error) {
	var out []models.DocumentFile
	var abort error

	table.Find("tbody tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		ordinal := i + 1

		cells := row.Find("td")
		if cells.Length() != 3 {
			p.log.Error().Str("case", id.Label()).Int("row", ordinal).Msg("Document data table is incorrectly formatted")
			return true
		}

		listingPath, ok := cells.Eq(0).Find("span").First().Attr(p.config.FileAttr)
		if !ok {
			abort = fmt.Errorf("%w: row %d has no %s reference", common.ErrStructuralParse, ordinal, p.config.FileAttr)
			return false
		}

		docRow := models.DocumentRow{
			Ordinal:     ordinal,
			Description: strings.TrimSpace(cells.Eq(1).Text()),
			Date:        strings.TrimSpace(cells.Eq(2).Text()),
			ListingPath: listingPath,
		}

		// The ordinal keeps same-named files from different rows apart.
		dir := filepath.Join(p.outputDir, id.Label(), strconv.Itoa(ordinal))

		p.log.Info().Str("case", id.Label()).Int("row", ordinal).Msg("Retrieving files for row")
		files, err := p.downloads.Download(ctx, p.config.BaseURL+listingPath, dir)
		if err != nil {
			abort = err
			return false
		}

		for _, file := range files {
			out = append(out, models.DocumentFile{Row: docRow, File: file})
		}
		return true
	})

	if abort != nil {
		return nil, abort
	}
	return out, nil
}
