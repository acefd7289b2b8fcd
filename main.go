package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holiday_backend/internals/configs"
	database "holiday_backend/internals/databases"
	"holiday_backend/internals/features/holidays/holidays/dto"
	"holiday_backend/internals/features/holidays/holidays/repository"
	"holiday_backend/internals/features/holidays/holidays/service"
	routes "holiday_backend/internals/route"
	"holiday_backend/internals/seeds"
	holidaySeeds "holiday_backend/internals/seeds/holidays"
)

func main() {
	configs.LoadEnv()

	repo, closeRepo := openRepository()
	defer closeRepo()

	// `holiday_backend seed` imports the static set and exits
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		svc := service.NewHolidayService(repo, dto.NewValidator())
		if err := seeds.RunAllSeeds(ctx, svc, configs.StaticHolidaysFile); err != nil {
			log.Printf("❌ Seed gagal: %v", err)
			closeRepo()
			os.Exit(1)
		}
		return
	}

	app := routes.NewApp(routes.Deps{
		Repo:           repo,
		Seeds:          holidaySeeds.Source(configs.StaticHolidaysFile),
		UpcomingMonths: configs.UpcomingHorizonMonths,
		AllowedOrigins: configs.AllowedOrigins,
		RateLimitMax:   configs.RateLimitMax,
		AccessLog:      true,
	})

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", configs.Port)
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup koneksi storage
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
}

// openRepository picks the holiday store from DB_DRIVER. The returned func
// releases the underlying connection.
func openRepository() (repository.HolidayRepository, func()) {
	switch configs.DBDriver {
	case configs.DriverMemory:
		log.Println("⚠️ DB_DRIVER=memory, data hilang saat restart")
		return repository.NewMemoryHolidayRepository(), func() {}

	case configs.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		repo, err := repository.NewMongoHolidayRepository(ctx, configs.MongoURI, configs.MongoDatabase)
		if err != nil {
			log.Fatalf("❌ Gagal konek MongoDB: %s", repository.DescribeStoreError(err))
		}
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Printf("⚠️ Gagal membuat index MongoDB: %v", err)
		}
		log.Println("✅ MongoDB connected.")
		return repo, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = repo.Close(ctx)
		}

	case configs.DriverSQLite:
		database.ConnectSQLite(configs.SQLitePath)

	default:
		// 🔌 DB connect + pool + warm-up
		database.ConnectDB()
		database.TunePool()
		database.WarmUpQueries()
	}

	repo := repository.NewGormHolidayRepository(database.DB)
	if err := repo.AutoMigrate(); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %s", repository.DescribeStoreError(err))
	}
	return repo, database.Close
}
