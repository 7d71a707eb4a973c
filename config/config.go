package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	FrontendURL string
	// CORS allow list; FrontendURL is always included
	CORSAllowedOrigins []string
	// Mail transport: "smtp" or "mailgun"
	MailProvider           string
	SMTPHost               string
	SMTPPort               string
	SMTPSecure             bool // implicit TLS
	SMTPStartTLS           bool // upgrade plain connections, ignored with SMTPSecure
	SMTPUsername           string
	SMTPPassword           string
	SMTPInsecureSkipVerify bool
	SMTPLocalName          string
	MailSendTimeout        time.Duration
	MailgunDomain          string
	MailgunAPIKey          string
	// Email template constants
	FromName     string
	FromEmail    string
	ContactEmail string
	OwnerName    string
	OwnerTitle   string
	SiteName     string
	// Request bodies above this many bytes are refused with 413
	MaxBodyBytes int64
	// Rate Limiting Configuration
	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
	// Redis Configuration (optional, rate limiting falls back to memory)
	RedisURL      string
	RedisPassword string
	// Startup: how many consecutive ports to try when PORT is busy
	PortRetryAttempts int
}

func LoadConfig() (*Config, error) {
	// Load .env file (local development only, ignored when absent)
	_ = godotenv.Load()

	env := getEnv("APP_ENV", getEnv("NODE_ENV", "development"))
	frontendURL := strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5174"), "/")
	smtpUser := getEnv("EMAIL_USER", "")

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: env,
		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel(env)),
		FrontendURL: frontendURL,
		CORSAllowedOrigins: mergeOrigins(frontendURL, getEnvList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:5174",
		})),
		// Mail transport
		MailProvider:           strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		SMTPHost:               getEnv("EMAIL_HOST", "smtp.gmail.com"),
		SMTPPort:               getEnv("EMAIL_PORT", "587"),
		SMTPSecure:             getEnvBool("EMAIL_SECURE", false),
		SMTPStartTLS:           getEnvBool("EMAIL_STARTTLS", true),
		SMTPUsername:           smtpUser,
		SMTPPassword:           getEnv("EMAIL_PASS", ""),
		SMTPInsecureSkipVerify: getEnvBool("EMAIL_INSECURE_SKIP_VERIFY", false),
		SMTPLocalName:          getEnv("EMAIL_LOCAL_NAME", ""),
		MailSendTimeout:        getEnvDuration("MAIL_SEND_TIMEOUT", 30*time.Second),
		MailgunDomain:          getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:          getEnv("MAILGUN_API_KEY", ""),
		// Templates
		FromName:     getEnv("FROM_NAME", "Portfolio Contact Form"),
		FromEmail:    getEnv("EMAIL_FROM", smtpUser), // most relays require the login as sender
		ContactEmail: getEnv("CONTACT_EMAIL", "kaiz.nitullano@example.com"),
		OwnerName:    getEnv("OWNER_NAME", "Kaiz Nitullano"),
		OwnerTitle:   getEnv("OWNER_TITLE", "Full-Stack Developer & UI/UX Designer"),
		SiteName:     getEnv("SITE_NAME", "portfolio website"),
		MaxBodyBytes: int64(getEnvInt("BODY_LIMIT_BYTES", 10<<20)),
		// Rate limiting (1 minute window, 20 requests)
		RateLimitWindow:      time.Duration(getEnvInt("RATE_LIMIT_WINDOW_MS", 60000)) * time.Millisecond,
		RateLimitMaxRequests: getEnvInt("RATE_LIMIT_MAX_REQUESTS", 20),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Startup
		PortRetryAttempts: getEnvInt("PORT_RETRY_ATTEMPTS", 10),
	}

	if cfg.MailProvider == "smtp" && (cfg.SMTPUsername == "" || cfg.SMTPPassword == "") {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS missing. Contact form will be unavailable.")
	}
	if cfg.FromEmail == "" {
		log.Println("WARNING: EMAIL_FROM/EMAIL_USER missing. Contact form will be unavailable.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether error details must be hidden from clients
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func defaultLogLevel(env string) string {
	if env == "production" {
		return "info"
	}
	return "debug"
}

// mergeOrigins returns origins with first prepended, without duplicates
func mergeOrigins(first string, origins []string) []string {
	out := []string{first}
	for _, o := range origins {
		o = strings.TrimRight(o, "/")
		if o == "" || o == first {
			continue
		}
		out = append(out, o)
	}
	return out
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("30s", "1m")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return fallback
	}
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
