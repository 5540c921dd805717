package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env        string
	ServerPort string

	PostgresDSN string

	JWTSecret      string
	AdminAllowList []string
	SecureCookies  bool
	AllowedOrigins []string

	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
	// StoragePublicBase is the base URL public object URLs are derived from,
	// e.g. https://storage.example.com/storage/v1/object/public
	StoragePublicBase string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	// OwnerEmail is always appended to the contact recipient set.
	OwnerEmail string
	// QuoteEmail receives quote submissions.
	QuoteEmail string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubject    string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "5000"),

		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=infracore port=5432 sslmode=disable"),

		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		AdminAllowList: splitList(os.Getenv("ADMIN_ALLOW_LIST")),
		SecureCookies:  getEnvBool("SECURE_COOKIES", false),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		StorageEndpoint:   getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:  os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey:  os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:     getEnv("STORAGE_BUCKET", "products"),
		StorageUseSSL:     getEnvBool("STORAGE_USE_SSL", true),
		StoragePublicBase: getEnv("STORAGE_PUBLIC_BASE", "http://localhost:9000"),

		SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:   getEnvInt("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("EMAIL_USER"),
		SMTPPass:   os.Getenv("EMAIL_PASS"),
		OwnerEmail: os.Getenv("OWNER_EMAIL"),
		QuoteEmail: os.Getenv("TO_EMAIL"),

		VAPIDPublicKey:  os.Getenv("VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: os.Getenv("VAPID_PRIVATE_KEY"),
		VAPIDSubject:    getEnv("VAPID_SUBJECT", "mailto:admin@ashainfracore.com"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
