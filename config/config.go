package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultRosterURL = "https://raw.githubusercontent.com/LuisLaiton/Asesorias-Polcolan/Luis-Felipe-Laiton-Cortes/data/tutorships.json"

type Config struct {
	ServerPort     string
	Environment    string
	LogLevel       string
	RosterSource   string // http или minio
	RosterURL      string
	FetchTimeout   time.Duration
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOUseSSL    bool
	RosterBucket   string // Бакет с документом консультаций
	RosterObject   string // Путь к документу в бакете
	CacheTTL       time.Duration
	GridRowOrder   string // first-seen или chronological
	OccupancyMark  string
	AllowedOrigins []string
	RefreshPerMin  int
}

func Load() *Config {
	cacheMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "10"))
	fetchSeconds, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "10"))
	refreshPerMin, _ := strconv.Atoi(getEnv("REFRESH_RATE_PER_MINUTE", "6"))
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		RosterSource:   strings.ToLower(getEnv("ROSTER_SOURCE", "http")),
		RosterURL:      getEnv("ROSTER_URL", defaultRosterURL),
		FetchTimeout:   time.Duration(fetchSeconds) * time.Second,
		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "minio:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOUseSSL:    useSSL,
		RosterBucket:   getEnv("ROSTER_BUCKET", "tutorships"),
		RosterObject:   getEnv("ROSTER_OBJECT", "tutorships.json"),
		CacheTTL:       time.Duration(cacheMinutes) * time.Minute,
		GridRowOrder:   strings.ToLower(getEnv("GRID_ROW_ORDER", "first-seen")),
		OccupancyMark:  getEnv("GRID_OCCUPANCY_MARK", "X"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		RefreshPerMin:  refreshPerMin,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
