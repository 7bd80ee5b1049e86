package mdpsc

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/LexiconIndonesia/mdpsc-crawler/common"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/config"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/dataset"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/models"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/storage"
	"github.com/rs/zerolog"
)

// Crawler drives one full run against the MD PSC site: resolve the latest id
// of each case class, walk a fixed number of ids downward, download every
// case's files, and write the accumulated metadata as one CSV. All work is
// strictly sequential in descending-id order per class so the log reads in
// site order.
type Crawler struct {
	config        Config
	casesPerClass int
	outputDir     string
	csvPath       string
	storage       storage.Storage
	resolver      *CaseResolver
	extractor     *CaseExtractor
	writer        *dataset.Writer
	log           zerolog.Logger
}

// NewCrawler wires a Crawler from the run configuration.
func NewCrawler(cfg config.Config, log zerolog.Logger) (*Crawler, error) {
	siteConfig := DefaultConfig(cfg.Crawl.BaseURL, cfg.Crawl.RulemakingFloor)
	if err := siteConfig.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	client := &http.Client{Timeout: cfg.Crawl.RequestTimeout()}
	store := storage.NewLocalStorage(log.With().Str("component", "storage").Logger())

	downloads := NewListingDownloader(siteConfig, client, cfg.Crawl.UserAgent, store,
		log.With().Str("component", "downloader").Logger())
	table := NewFileTableParser(siteConfig, cfg.Output.Dir, downloads,
		log.With().Str("component", "file_table").Logger())
	extractor := NewCaseExtractor(siteConfig, client, cfg.Crawl.UserAgent, table,
		log.With().Str("component", "case_page").Logger())
	resolver := NewCaseResolver(siteConfig, client, cfg.Crawl.UserAgent,
		log.With().Str("component", "resolver").Logger())

	return &Crawler{
		config:        siteConfig,
		casesPerClass: cfg.Crawl.CasesPerClass,
		outputDir:     cfg.Output.Dir,
		csvPath:       filepath.Join(cfg.Output.Dir, cfg.Output.CSVName),
		storage:       store,
		resolver:      resolver,
		extractor:     extractor,
		writer:        dataset.NewWriter(log.With().Str("component", "dataset").Logger()),
		log:           log,
	}, nil
}

// Setup creates the output root. Without a destination no downstream work is
// useful, so a creation failure is terminal.
func (c *Crawler) Setup(ctx context.Context) error {
	if err := c.storage.EnsureDir(c.outputDir); err != nil {
		c.log.Error().Err(err).Str("dir", c.outputDir).Msg("Error creating directory for output")
		return fmt.Errorf("%w: create directory %s: %v", common.ErrFilesystem, c.outputDir, err)
	}
	return nil
}

// Teardown cleans up resources
func (c *Crawler) Teardown(ctx context.Context) error {
	return nil
}

// CrawlAll processes the most recent cases of both classes and writes the
// dataset. Per-case and per-file failures degrade their own unit and are
// only logged; a filesystem failure below stops the run before the CSV is
// written, leaving already-downloaded files on disk. A CSV write failure is
// logged and swallowed.
func (c *Crawler) CrawlAll(ctx context.Context) error {
	var rows []models.DatasetRow

	if latest, ok := c.resolver.LatestCase(ctx).Get(); !ok {
		c.log.Error().Msg("Could not identify the latest case")
	} else {
		c.log.Debug().Int("case_id", latest).Msg("Identified latest case id")
		if err := c.walkClass(ctx, models.NumericCase(latest), &rows); err != nil {
			return err
		}
	}

	latestRm := c.resolver.LatestRulemakingCase(ctx)
	c.log.Debug().Int("case_id", latestRm).Msg("Identified latest rulemaking case id")
	if err := c.walkClass(ctx, models.RulemakingCase(latestRm), &rows); err != nil {
		return err
	}

	if err := c.writer.Write(c.csvPath, rows); err != nil {
		c.log.Error().Err(err).Msg("Error writing csv output")
	}
	return nil
}

// walkClass processes casesPerClass ids in strictly decreasing order,
// starting at start.
func (c *Crawler) walkClass(ctx context.Context, start models.CaseID, rows *[]models.DatasetRow) error {
	id := start
	for i := 0; i < c.casesPerClass; i++ {
		if err := c.storage.EnsureDir(filepath.Join(c.outputDir, id.Label())); err != nil {
			c.log.Error().Err(err).Str("case", id.Label()).Msg("Error creating directory for output")
			return fmt.Errorf("%w: create case directory %s: %v", common.ErrFilesystem, id.Label(), err)
		}

		caseRows, err := c.extractor.Extract(ctx, id)
		if err != nil {
			return err
		}
		*rows = append(*rows, caseRows...)

		id = id.Prev()
	}
	return nil
}
