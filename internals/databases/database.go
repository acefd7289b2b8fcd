package database

import (
	"fmt"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"holiday_backend/internals/configs"
)

var DB *gorm.DB

// PostgresDSN builds the connection URL from the DB_* settings, with a 3s
// statement_timeout.
func PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=holiday_api&options=-c statement_timeout=3000",
		configs.DBUser,
		configs.DBPassword,
		configs.DBHost,
		configs.DBPort,
		configs.DBName,
		configs.DBSSLMode,
	)
}

// ConnectDB opens Postgres from the DB_* settings loaded by configs.LoadEnv.
func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	dsn := PostgresDSN()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(configs.GormLogLevel),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// ConnectSQLite opens a pure-Go SQLite file for local runs without Postgres.
func ConnectSQLite(path string) {
	log.Printf("🔌 Koneksi ke SQLite (%s)...", path)

	db, err := OpenSQLite(path, configs.NewGormLogger(configs.GormLogLevel))
	if err != nil {
		log.Fatalf("❌ Gagal buka SQLite: %v", err)
	}
	DB = db
	log.Println("✅ SQLite connected.")
}

// OpenSQLite is shared with the repository tests (path ":memory:").
func OpenSQLite(path string, logger gormLogger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps ":memory:" alive
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond) // beri waktu server naik
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
