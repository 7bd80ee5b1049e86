package mdpsc

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/LexiconIndonesia/mdpsc-crawler/common"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/models"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/storage"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/utils"
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// ListingDownloader downloads every file referenced by a file-listing page.
type ListingDownloader struct {
	config    Config
	client    *http.Client
	userAgent string
	storage   storage.Storage
	log       zerolog.Logger
}

// NewListingDownloader creates a new ListingDownloader
func NewListingDownloader(config Config, client *http.Client, userAgent string, store storage.Storage, log zerolog.Logger) *ListingDownloader {
	return &ListingDownloader{
		config:    config,
		client:    client,
		userAgent: userAgent,
		storage:   store,
		log:       log,
	}
}

// Download fetches the listing page at listingURL, downloads each referenced
// file into dir, and returns the files that made it to disk. An unreachable
// or empty listing yields zero files. A single file's failure excludes only
// that file; its siblings are still attempted. A failure to create dir is
// terminal for the whole run, wrapped as a filesystem failure.
func (d *ListingDownloader) Download(ctx context.Context, listingURL string, dir string) ([]models.DownloadedFile, error) {
	doc, err := utils.GetDocument(ctx, d.client, listingURL, d.userAgent)
	if err != nil {
		d.log.Error().Err(err).Str("url", listingURL).Msg("Failed to read file listing page")
		return nil, nil
	}

	refs := doc.Find(fmt.Sprintf("span[%s]", d.config.FileAttr))
	if refs.Length() == 0 {
		return nil, nil
	}

	// Create the folder only when files were found.
	if err := d.storage.EnsureDir(dir); err != nil {
		d.log.Error().Err(err).Str("dir", dir).Msg("Error creating directory for output")
		return nil, fmt.Errorf("%w: create directory %s: %v", common.ErrFilesystem, dir, err)
	}

	var files []models.DownloadedFile
	refs.Each(func(_ int, ref *goquery.Selection) {
		relPath, _ := ref.Attr(d.config.FileAttr)
		name := strings.TrimSpace(ref.Text())
		dest := filepath.Join(dir, name)

		if err := d.fetchFile(ctx, d.config.BaseURL+relPath, dest); err != nil {
			d.log.Error().Err(err).Str("path", dest).Msg("Failed to download file")
			return
		}
		d.log.Info().Str("path", dest).Msg("Successfully downloaded file")
		files = append(files, models.DownloadedFile{Name: name, Path: dest})
	})
	return files, nil
}

func (d *ListingDownloader) fetchFile(ctx context.Context, fileURL string, dest string) error {
	body, err := utils.Get(ctx, d.client, fileURL, d.userAgent)
	if err != nil {
		return err
	}
	defer body.Close()

	if _, err := d.storage.WriteStream(dest, body); err != nil {
		return fmt.Errorf("save %s: %w", dest, err)
	}
	return nil
}
