package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	Issuer             string
	TokenTTLHours      int
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	ServerPort         string
	MinioEndpoint      string
	MinioAccessKey     string
	MinioSecretKey     string
	MinioUseSSL        bool
	MinioBucket        string
	MinioPublicURL     string
	ModerationFile     string
	AuditRetentionDays int
	AllowedOrigins     []string
	MaxAvatarBytes     int64 = 5 << 20
	IsProduction       bool
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "gigboard")
	TokenTTLHours = getEnvInt("TOKEN_TTL_HOURS", 24)
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "gigboard")
	ServerPort = getEnv("SERVER_PORT", "8080")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "gigboard-uploads")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MinioPublicURL = getEnv("MINIO_PUBLIC_URL", "")

	ModerationFile = getEnv("MODERATION_FILE", "config/moderation.yaml")
	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 90)
	AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"))
	IsProduction = getEnv("APP_ENV", "development") == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
