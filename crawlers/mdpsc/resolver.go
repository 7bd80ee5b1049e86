package mdpsc

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/LexiconIndonesia/mdpsc-crawler/common/models"
	"github.com/LexiconIndonesia/mdpsc-crawler/common/utils"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

// CaseResolver determines the most recent case id for each case class.
type CaseResolver struct {
	config    Config
	client    *http.Client
	userAgent string
	log       zerolog.Logger
}

// NewCaseResolver creates a new CaseResolver
func NewCaseResolver(config Config, client *http.Client, userAgent string, log zerolog.Logger) *CaseResolver {
	return &CaseResolver{
		config:    config,
		client:    client,
		userAgent: userAgent,
		log:       log,
	}
}

// LatestCase returns the id of the most recent numbered case, read from the
// recent-cases listing page. Returns None if the page is unreachable or the
// expected element is missing or not a number.
func (r *CaseResolver) LatestCase(ctx context.Context) mo.Option[int] {
	url := r.config.BaseURL + r.config.RecentCasesPath
	doc, err := utils.GetDocument(ctx, r.client, url, r.userAgent)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to load recent cases page")
		return mo.None[int]()
	}

	latest := doc.Find("#" + r.config.LatestCaseID)
	if latest.Length() == 0 {
		r.log.Error().Msg("Unable to identify the most recent case")
		return mo.None[int]()
	}

	id, err := strconv.Atoi(strings.TrimSpace(latest.First().Text()))
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to parse the most recent case id")
		return mo.None[int]()
	}
	return mo.Some(id)
}

// LatestRulemakingCase returns the id of the most recent rulemaking case.
// There is no listing page for rulemaking cases, so starting from the last
// known id it probes rm{id+1} until a page carries the not-found marker or
// fails to load. The returned id is always the last confirmed-existing one,
// never the first missing one, and is never below the floor.
//
// TODO: the probe has no iteration cap; a site change that drops the
// not-found marker would keep it walking until a request fails.
func (r *CaseResolver) LatestRulemakingCase(ctx context.Context) int {
	id := r.config.RulemakingFloor
	for {
		next := models.RulemakingCase(id + 1)
		doc, err := utils.GetDocument(ctx, r.client, r.config.BaseURL+next.PagePath(), r.userAgent)
		if err != nil {
			r.log.Error().Err(err).Str("case", next.Label()).Msg("Failed to load rulemaking page")
			return id
		}

		if doc.Find("#"+r.config.NotFoundID).Length() > 0 {
			return id
		}
		id++
	}
}
