package mdpsc

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/LexiconIndonesia/mdpsc-crawler/common"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/models"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/utils"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// CaseExtractor extracts case-level metadata and document rows from a case
// detail page. Numbered and rulemaking cases share the same page format.
type CaseExtractor struct {
	config    Config
	client    *http.Client
	userAgent string
	table     *FileTableParser
	log       zerolog.Logger
}

// NewCaseExtractor creates a new CaseExtractor
func NewCaseExtractor(config Config, client *http.Client, userAgent string, table *FileTableParser, log zerolog.Logger) *CaseExtractor {
	return &CaseExtractor{
		config:    config,
		client:    client,
		userAgent: userAgent,
		table:     table,
		log:       log,
	}
}

// stripFiledDate trims the filed-date text and, when it contains a colon,
// keeps only what follows the first one. The field reads "Date Filed : ...".
func stripFiledDate(s string) string {
	s = strings.TrimSpace(s)
	if _, after, found := strings.Cut(s, ":"); found {
		return strings.TrimSpace(after)
	}
	return s
}

// Extract downloads all files of a case and returns one dataset row per
// downloaded file, with the case id, caption, and filed date stitched onto
// every row. An unreachable page or missing element degrades the case to
// zero rows with a logged error. The only error returned is a filesystem
// failure from below, which is terminal for the whole run.
func (e *CaseExtractor) Extract(ctx context.Context, id models.CaseID) ([]models.DatasetRow, error) {
	url := e.config.BaseURL + id.PagePath()
	e.log.Info().Str("case", id.Label()).Str("url", url).Msg("Processing case")

	doc, err := utils.GetDocument(ctx, e.client, url, e.userAgent)
	if err != nil {
		e.log.Error().Err(err).Str("case", id.Label()).Msg("Failed to read case page")
		return nil, nil
	}

	filedDate := doc.Find("#" + e.config.FiledDateID)
	if filedDate.Length() == 0 {
		e.log.Error().Str("case", id.Label()).Msg("Case page has no filed date")
		return nil, nil
	}

	caption := doc.Find("#" + e.config.CaseCaptionID)
	if caption.Length() == 0 {
		e.log.Error().Str("case", id.Label()).Msg("Case page has no caption")
		return nil, nil
	}

	filesTable := doc.Find("#" + e.config.FileTableID)
	if filesTable.Length() == 0 {
		e.log.Error().Str("case", id.Label()).Msg("Case page has no file table")
		return nil, nil
	}

	files, err := e.table.Parse(ctx, filesTable.First(), id)
	if err != nil {
		if errors.Is(err, common.ErrFilesystem) {
			return nil, err
		}
		e.log.Error().Err(err).Str("case", id.Label()).Msg("Failed to process case page")
		return nil, nil
	}

	record := models.CaseRecord{
		ID:          id,
		Description: strings.TrimSpace(caption.First().Text()),
		FiledDate:   stripFiledDate(filedDate.First().Text()),
	}

	rows := lo.Map(files, func(f models.DocumentFile, _ int) models.DatasetRow {
		return models.DatasetRow{Case: record, Document: f}
	})

	e.log.Info().Str("case", id.Label()).Int("rows", len(rows)).Msg("Finished processing case")
	return rows, nil
}
