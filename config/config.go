package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/salahou-dine/hon-hon/utils"
)

const (
	ProviderMock   = "mock"
	ProviderPlaces = "places"
)

type Config struct {
	AppName string
	Env     string
	Port    string

	JWTSecret          string
	AccessTokenTTL     time.Duration
	GuestTokensPerHour int

	// Драйвер БД: postgres | sqlite
	DBDriver   string
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SeedDemo   bool

	RedisAddr     string
	RedisPassword string

	// Провайдер направлений: mock | places
	DestProvider string
	PlacesAPIURL string
	PlacesAPIKey string
	DestCacheTTL time.Duration
	WarmupCron   string
	CORSOrigins  []string
	Timezone     string
	MetricsToken string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string

	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Log.Info().Msg("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv читает только переменные окружения, без .env (удобно в тестах)
func FromEnv() *Config {
	dbHost := os.Getenv("DB_HOST")
	return &Config{
		AppName: getenvOrDefault("APP_NAME", "RAM Companion API"),
		Env:     getenvOrDefault("ENV", "dev"),
		Port:    getenvOrDefault("PORT", "8080"),

		JWTSecret:          getenvOrDefault("JWT_SECRET", "change_me"),
		AccessTokenTTL:     time.Duration(getenvInt("ACCESS_TOKEN_EXPIRE_MIN", 60)) * time.Minute,
		GuestTokensPerHour: getenvInt("GUEST_TOKENS_PER_HOUR", 30),

		DBDriver:   strings.ToLower(getenvOrDefault("DB_DRIVER", defaultDriver(dbHost))),
		SQLitePath: getenvOrDefault("SQLITE_PATH", "companion.db"),
		DBHost:     dbHost,
		DBPort:     getenvOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		SeedDemo:   os.Getenv("SEED_DEMO") == "true",

		RedisAddr:     getenvOrDefault("REDIS_ADDR", getenvOrDefault("DB_HOST", "localhost")+":6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DestProvider: strings.ToLower(getenvOrDefault("DEST_PROVIDER", ProviderMock)),
		PlacesAPIURL: os.Getenv("PLACES_API_URL"),
		PlacesAPIKey: os.Getenv("PLACES_API_KEY"),
		DestCacheTTL: time.Duration(getenvInt("DEST_CACHE_TTL_MIN", 30)) * time.Minute,
		WarmupCron:   getenvOrDefault("WARMUP_CRON", "0 2 * * *"),
		CORSOrigins:  utils.SplitCSV(getenvOrDefault("CORS_ORIGINS", "*")),
		Timezone:     getenvOrDefault("TZ_NAME", "Africa/Casablanca"),
		MetricsToken: os.Getenv("METRICS_TOKEN"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: os.Getenv("SMTP_PORT"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),

		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:   os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect: os.Getenv("GOOGLE_REDIRECT_URI"),
	}
}

// SMTP настройки почты для utils.SendEmail
func (c *Config) SMTP() utils.SMTPSettings {
	return utils.SMTPSettings{Host: c.SMTPHost, Port: c.SMTPPort, User: c.SMTPUser, Pass: c.SMTPPass}
}

// DSN строка подключения для выбранного драйвера
func (c *Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return "host=" + c.DBHost + " user=" + c.DBUser + " password=" + c.DBPassword +
		" dbname=" + c.DBName + " port=" + c.DBPort + " sslmode=disable"
}

// GoogleEnabled true если заданы ключи OAuth
func (c *Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleSecret != ""
}

// без DB_HOST поднимаемся на локальном sqlite
func defaultDriver(dbHost string) string {
	if dbHost == "" {
		return "sqlite"
	}
	return "postgres"
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt только положительные значения, иначе def
func getenvInt(key string, def int) int {
	if v := utils.ParseIntDefault(os.Getenv(key), def); v > 0 {
		return v
	}
	return def
}
