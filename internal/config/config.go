package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	// Local JSON store directory, used when the database is not configured.
	DataDir string

	JWTSecret   string
	AdminEmails []string

	// Shared secret for the cron trigger endpoints.
	CronSecret string

	Log      string
	LogLevel string
	Env      string // dev|prod

	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	RazorpayKeyID         string
	RazorpayKeySecret     string
	RazorpayWebhookSecret string

	SiteURL          string
	RevalidateSecret string

	// Requests per minute allowed on the public ATS score endpoint.
	ToolRateLimit int
}

// LoadConfig reads .env and environment variables and applies defaults.
// Logs nothing, so it carries no dependency on logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	rateLimit, err := strconv.Atoi(def(os.Getenv("TOOL_RATE_LIMIT"), "20"))
	if err != nil || rateLimit <= 0 {
		rateLimit = 20
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		DataDir: def(os.Getenv("DATA_DIR"), "data"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminEmails: splitList(os.Getenv("ADMIN_EMAILS")),
		CronSecret:  os.Getenv("CRON_SECRET"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  def(os.Getenv("GEMINI_MODEL"), "gemini-2.0-flash"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  def(os.Getenv("OPENAI_MODEL"), "gpt-4o-mini"),

		RazorpayKeyID:         os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:     os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayWebhookSecret: os.Getenv("RAZORPAY_WEBHOOK_SECRET"),

		SiteURL:          strings.TrimRight(os.Getenv("SITE_URL"), "/"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),

		ToolRateLimit: rateLimit,
	}

	return cfg, nil
}

// Validate returns warnings plus a fatal error when something critical is off.
func (c *Config) Validate() (warnings []string, err error) {
	if !c.HasDatabase() {
		warnings = append(warnings, "DB is not configured, falling back to local JSON store in "+c.DataDir)
	}

	if strings.TrimSpace(c.JWTSecret) == "" && strings.TrimSpace(c.CronSecret) == "" {
		return warnings, fmt.Errorf("neither JWT_SECRET nor CRON_SECRET is set, generation endpoints would be unreachable")
	}

	if c.GeminiAPIKey == "" && c.OpenAIAPIKey == "" {
		warnings = append(warnings, "no LLM credentials set, generation will publish placeholder articles only")
	}

	if c.RazorpayWebhookSecret == "" {
		warnings = append(warnings, "RAZORPAY_WEBHOOK_SECRET is not set, payment webhook will reject all events")
	}

	if c.SiteURL == "" {
		warnings = append(warnings, "SITE_URL is empty, cache revalidation is disabled")
	}

	return warnings, nil
}

// HasDatabase reports whether the remote store is configured.
func (c *Config) HasDatabase() bool {
	return c.DbHost != "" && c.DbUser != "" && c.DbName != ""
}

// GetDSN returns the full DSN (with password).
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe returns the DSN without the password (for logs).
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
