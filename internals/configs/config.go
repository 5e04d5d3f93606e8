package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	AppName         string
	BaseURL         string
	SendgridAPIKey  string
	MailFromAddress string
	MailFromName    string
	LogoPath        string
	StorageBackend  string
	SupabaseURL     string
	SupabaseKey     string
	SupabaseBucket  string
	OSSEndpoint     string
	OSSKeyID        string
	OSSKeySecret    string
	OSSBucket       string
	SessionSecure   bool
)

// LoadEnv reads .env when present, otherwise relies on the process env
// (deployments like Railway inject everything).
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	}

	AppName = GetEnv("APP_NAME", "ICSLIS OJT System")
	BaseURL = GetEnv("BASE_URL", "http://localhost:3000")
	SendgridAPIKey = GetEnv("SENDGRID_API_KEY")
	MailFromAddress = GetEnv("MAIL_FROM_ADDRESS", "no-reply@cca.edu.ph")
	MailFromName = GetEnv("MAIL_FROM_NAME", AppName)
	LogoPath = GetEnv("MAIL_LOGO_PATH", "ICSLIS LOGO.png")
	StorageBackend = GetEnv("STORAGE_BACKEND", "supabase")
	SupabaseURL = GetEnv("SUPABASE_URL")
	SupabaseKey = GetEnv("SUPABASE_SERVICE_ROLE_KEY")
	SupabaseBucket = GetEnv("SUPABASE_BUCKET", "OJTSystemProfile")
	OSSEndpoint = GetEnv("OSS_ENDPOINT")
	OSSKeyID = GetEnv("OSS_ACCESS_KEY_ID")
	OSSKeySecret = GetEnv("OSS_ACCESS_KEY_SECRET")
	OSSBucket = GetEnv("OSS_BUCKET")
	SessionSecure = GetEnvBool("SESSION_COOKIE_SECURE", false)

	if SendgridAPIKey == "" {
		log.Println("[WARN] SENDGRID_API_KEY not set, emails go to console")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
