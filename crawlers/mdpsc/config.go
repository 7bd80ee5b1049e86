package mdpsc

import (
	"errors"
)

// Config holds the site-structure identifiers the crawler depends on. The
// scraper relies entirely on the existing markup structure; a change to any
// of these ids on the site breaks the corresponding extraction.
type Config struct {
	BaseURL         string `json:"base_url"`
	RecentCasesPath string `json:"recent_cases_path"`

	// LatestCaseID is the element id of the newest entry on the recent-cases page.
	LatestCaseID string `json:"latest_case_id"`
	// FiledDateID is the element id of the filed-date field on a case page.
	FiledDateID string `json:"filed_date_id"`
	// CaseCaptionID is the element id of the case caption on a case page.
	CaseCaptionID string `json:"case_caption_id"`
	// FileTableID is the element id of the public file table on a case page.
	FileTableID string `json:"file_table_id"`
	// NotFoundID is the element id marking a rulemaking page with no case behind it.
	NotFoundID string `json:"not_found_id"`
	// FileAttr is the attribute carrying a relative file path; its element's
	// text is the display file name.
	FileAttr string `json:"file_attr"`

	// RulemakingFloor is the last rulemaking id known to exist, the starting
	// point of the latest-id probe.
	RulemakingFloor int `json:"rulemaking_floor"`
}

// DefaultConfig returns the crawler configuration for the MD PSC site.
func DefaultConfig(baseURL string, rulemakingFloor int) Config {
	return Config{
		BaseURL:         baseURL,
		RecentCasesPath: "/DMS/recentcases",
		LatestCaseID:    "ContentPlaceHolder1_RptRecentCasesList_lnkbtnCaseNum_0",
		FiledDateID:     "ContentPlaceHolder1_hFiledDate",
		CaseCaptionID:   "ContentPlaceHolder1_hCaseCaption",
		FileTableID:     "caserulepublicdata",
		NotFoundID:      "ContentPlaceHolder1_divCaseRulePublicNotFound",
		FileAttr:        "data-pdf",
		RulemakingFloor: rulemakingFloor,
	}
}

// Validate validates the Config
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}
	if c.LatestCaseID == "" || c.FiledDateID == "" || c.CaseCaptionID == "" ||
		c.FileTableID == "" || c.NotFoundID == "" {
		return errors.New("missing element identifier")
	}
	if c.FileAttr == "" {
		return errors.New("file reference attribute is required")
	}
	if c.RulemakingFloor < 0 {
		return errors.New("rulemaking floor must not be negative")
	}
	return nil
}
