package config

import (
	"os"
	"strconv"
	"time"
)

func loadEnvString(key string, result *string) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	*result = s
}

func loadEnvInt(key string, result *int) {
	s, ok := os.LookupEnv(key)

	if !ok {
		return
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return
	}
	*result = n
}

/* Configuration */

/* Crawl Configuration */

type CrawlConfig struct {
	BaseURL         string `json:"base_url"`
	CasesPerClass   int    `json:"cases_per_class"`
	RulemakingFloor int    `json:"rulemaking_floor"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	UserAgent       string `json:"user_agent"`
}

func (c CrawlConfig) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func defaultCrawlConfig() CrawlConfig {
	return CrawlConfig{
		BaseURL:         "https://webpscxb.psc.state.md.us",
		CasesPerClass:   5,
		RulemakingFloor: 91,
		TimeoutSeconds:  30,
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	}
}

func (c *CrawlConfig) loadFromEnv() {
	loadEnvString("MDPSC_BASE_URL", &c.BaseURL)
	loadEnvInt("MDPSC_CASES_PER_CLASS", &c.CasesPerClass)
	loadEnvInt("MDPSC_RULEMAKING_FLOOR", &c.RulemakingFloor)
	loadEnvInt("MDPSC_TIMEOUT_SECONDS", &c.TimeoutSeconds)
	loadEnvString("MDPSC_USER_AGENT", &c.UserAgent)
}

/* Output Configuration */

type OutputConfig struct {
	Dir     string `json:"dir"`
	CSVName string `json:"csv_name"`
	LogPath string `json:"log_path"`
}

func defaultOutputConfig() OutputConfig {
	return OutputConfig{
		Dir:     "output",
		CSVName: "data_mart.csv",
		LogPath: "md_case_scrape.log",
	}
}

func (o *OutputConfig) loadFromEnv() {
	loadEnvString("MDPSC_OUTPUT_DIR", &o.Dir)
	loadEnvString("MDPSC_CSV_NAME", &o.CSVName)
	loadEnvString("MDPSC_LOG_PATH", &o.LogPath)
}

type Config struct {
	Crawl  CrawlConfig
	Output OutputConfig
}

func (c *Config) LoadFromEnv() {
	c.Crawl.loadFromEnv()
	c.Output.loadFromEnv()
}

func DefaultConfig() Config {
	return Config{
		Crawl:  defaultCrawlConfig(),
		Output: defaultOutputConfig(),
	}
}
