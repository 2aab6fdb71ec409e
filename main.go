package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hitekgroup/hitek-site-backend/api"
	"github.com/hitekgroup/hitek-site-backend/config"
	"github.com/hitekgroup/hitek-site-backend/database"
	"github.com/hitekgroup/hitek-site-backend/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		config.GetString(cfg, "DB_HOST", "localhost"),
		config.GetString(cfg, "DB_USER", "postgres"),
		config.GetString(cfg, "DB_PASSWORD", ""),
		config.GetString(cfg, "DB_NAME", "hitek"),
		config.GetString(cfg, "DB_PORT", "5432"),
		config.GetString(cfg, "DB_SSLMODE", "disable"),
	)

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		fmt.Printf("Error enabling pgcrypto extension: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	if err := database.SeedAdmin(db,
		config.GetString(cfg, "ADMIN_EMAIL", ""),
		config.GetString(cfg, "ADMIN_PASSWORD", ""),
	); err != nil {
		fmt.Printf("Error seeding admin profile: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	store, err := storage.NewBucketStore(storage.Config{
		Endpoint:  config.GetString(cfg, "STORAGE_ENDPOINT", "localhost:9000"),
		AccessKey: config.GetString(cfg, "STORAGE_ACCESS_KEY", ""),
		SecretKey: config.GetString(cfg, "STORAGE_SECRET_KEY", ""),
		Bucket:    config.GetString(cfg, "STORAGE_BUCKET", "hitek-uploads"),
		Region:    config.GetString(cfg, "STORAGE_REGION", ""),
		UseSSL:    config.GetBool(cfg, "STORAGE_USE_SSL", false),
		PublicURL: config.GetString(cfg, "STORAGE_PUBLIC_URL", ""),
	})
	if err != nil {
		fmt.Printf("Error initializing object storage: %v\n", err)
		os.Exit(1)
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, store)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
