package configs

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"https://holiday-api-ruby.vercel.app",
}

var (
	Port                  string
	DBDriver              string
	SQLitePath            string
	MongoURI              string
	MongoDatabase         string
	AllowedOrigins        []string
	UpcomingHorizonMonths int
	StaticHolidaysFile    string
	RateLimitMax          int
	GormLogLevel          gormLogger.LogLevel

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	Port = GetEnv("PORT", "3000")
	DBDriver = strings.ToLower(GetEnv("DB_DRIVER", DriverPostgres))
	SQLitePath = GetEnv("SQLITE_PATH", "holidays.db")
	MongoURI = GetEnv("MONGO_URI", "mongodb://localhost:27017")
	MongoDatabase = GetEnv("MONGO_DATABASE", "holiday_api")
	AllowedOrigins = GetEnvList("CORS_ALLOWED_ORIGINS", DefaultAllowedOrigins)
	UpcomingHorizonMonths = GetEnvInt("UPCOMING_HORIZON_MONTHS", 3)
	StaticHolidaysFile = GetEnv("STATIC_HOLIDAYS_FILE")
	RateLimitMax = GetEnvInt("RATE_LIMIT_MAX", 100)
	GormLogLevel = parseGormLogLevel(GetEnv("GORM_LOG_LEVEL", "warn"))

	DBUser = GetEnv("DB_USER")
	DBPassword = GetEnv("DB_PASSWORD")
	DBHost = GetEnv("DB_HOST", "localhost")
	DBPort = GetEnv("DB_PORT", "5432")
	DBName = GetEnv("DB_NAME")
	// kalau pakai PgBouncer, arahkan host/port ke PgBouncer
	DBSSLMode = GetEnv("DB_SSLMODE", "require")

	switch DBDriver {
	case DriverPostgres, DriverSQLite, DriverMongo, DriverMemory:
		log.Printf("✅ DB_DRIVER=%s", DBDriver)
	default:
		log.Printf("❌ DB_DRIVER %q tidak dikenal, pakai %s", DBDriver, DriverPostgres)
		DBDriver = DriverPostgres
	}
	if StaticHolidaysFile == "" {
		log.Println("ℹ️ STATIC_HOLIDAYS_FILE kosong, pakai seed bawaan")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt falls back to def when the value is missing or not a positive int.
func GetEnvInt(key string, def int) int {
	raw := strings.TrimSpace(GetEnv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s=%q bukan angka valid, pakai %d", key, raw, def)
		return def
	}
	return n
}

// GetEnvList splits a comma-separated value; empty entries are dropped.
func GetEnvList(key string, def []string) []string {
	raw := GetEnv(key)
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}

func parseGormLogLevel(s string) gormLogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger(level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !errors.Is(err, gormLogger.ErrRecordNotFound):
		sql, rows := fc()
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		sql, rows := fc()
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		sql, rows := fc()
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
