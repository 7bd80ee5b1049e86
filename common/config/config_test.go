package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Crawl.BaseURL != "https://webpscxb.psc.state.md.us" {
		t.Errorf("Unexpected base URL: %s", cfg.Crawl.BaseURL)
	}
	if cfg.Crawl.CasesPerClass != 5 {
		t.Errorf("Expected 5 cases per class, got %d", cfg.Crawl.CasesPerClass)
	}
	if cfg.Crawl.RulemakingFloor != 91 {
		t.Errorf("Expected rulemaking floor 91, got %d", cfg.Crawl.RulemakingFloor)
	}
	if cfg.Crawl.RequestTimeout() != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %s", cfg.Crawl.RequestTimeout())
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("Unexpected output dir: %s", cfg.Output.Dir)
	}
	if cfg.Output.CSVName != "data_mart.csv" {
		t.Errorf("Unexpected csv name: %s", cfg.Output.CSVName)
	}
	if cfg.Output.LogPath != "md_case_scrape.log" {
		t.Errorf("Unexpected log path: %s", cfg.Output.LogPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MDPSC_BASE_URL", "http://localhost:9999")
	t.Setenv("MDPSC_CASES_PER_CLASS", "2")
	t.Setenv("MDPSC_OUTPUT_DIR", "/tmp/psc")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	if cfg.Crawl.BaseURL != "http://localhost:9999" {
		t.Errorf("Base URL not overridden: %s", cfg.Crawl.BaseURL)
	}
	if cfg.Crawl.CasesPerClass != 2 {
		t.Errorf("Cases per class not overridden: %d", cfg.Crawl.CasesPerClass)
	}
	if cfg.Output.Dir != "/tmp/psc" {
		t.Errorf("Output dir not overridden: %s", cfg.Output.Dir)
	}
	// Untouched keys keep their defaults.
	if cfg.Crawl.RulemakingFloor != 91 {
		t.Errorf("Rulemaking floor changed unexpectedly: %d", cfg.Crawl.RulemakingFloor)
	}
}

func TestLoadFromEnvIgnoresBadInt(t *testing.T) {
	t.Setenv("MDPSC_CASES_PER_CLASS", "not-a-number")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	if cfg.Crawl.CasesPerClass != 5 {
		t.Errorf("Expected default 5 for unparsable value, got %d", cfg.Crawl.CasesPerClass)
	}
}
