package mdpsc

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/LexiconIndonesia/mdpsc-crawler/common/storage"
	"github.com/rs/zerolog"
)

func serve(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}
}

func serveStatus(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}
}

func casePage(filedDate, caption string, tableRows ...string) string {
	return fmt.Sprintf(`<html><body>
<span id="ContentPlaceHolder1_hFiledDate">%s</span>
<span id="ContentPlaceHolder1_hCaseCaption">%s</span>
<table id="caserulepublicdata"><tbody>%s</tbody></table>
</body></html>`, filedDate, caption, strings.Join(tableRows, "\n"))
}

func tableRow(listingPath, description, date string) string {
	return fmt.Sprintf(`<tr><td><span data-pdf="%s">1</span></td><td>%s</td><td>%s</td></tr>`,
		listingPath, description, date)
}

func listingPage(entries ...[2]string) string {
	var spans []string
	for _, e := range entries {
		spans = append(spans, fmt.Sprintf(`<span data-pdf="%s">%s</span>`, e[0], e[1]))
	}
	return "<html><body>" + strings.Join(spans, "") + "</body></html>"
}

func notFoundPage() string {
	return `<html><body><div id="ContentPlaceHolder1_divCaseRulePublicNotFound">Data not found</div></body></html>`
}

func newDownloader(server *httptest.Server) *ListingDownloader {
	cfg := DefaultConfig(server.URL, 91)
	store := storage.NewLocalStorage(zerolog.Nop())
	return NewListingDownloader(cfg, server.Client(), "test-agent", store, zerolog.Nop())
}

func newExtractor(server *httptest.Server, outputDir string) *CaseExtractor {
	cfg := DefaultConfig(server.URL, 91)
	downloads := newDownloader(server)
	table := NewFileTableParser(cfg, outputDir, downloads, zerolog.Nop())
	return NewCaseExtractor(cfg, server.Client(), "test-agent", table, zerolog.Nop())
}
