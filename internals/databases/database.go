package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fieldtrack_backend/internals/configs"
	projectModel "fieldtrack_backend/internals/features/projects/model"
	timeModel "fieldtrack_backend/internals/features/timetracking/model"
	workerModel "fieldtrack_backend/internals/features/workers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=fieldtrack&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 works with PgBouncer transaction pooling
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// unique violations become gorm.ErrDuplicatedKey (clock-in relies on this)
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
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

// Migrate creates the schema plus the constraint that guarantees at most one
// open time entry per worker. The application also checks before inserting,
// but this index is what actually holds under concurrent clock-ins.
func Migrate() {
	if err := DB.AutoMigrate(
		&workerModel.WorkerModel{},
		&projectModel.ProjectModel{},
		&timeModel.TimeEntryModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_time_entries_open_per_worker
		ON time_entries (time_entry_worker_id)
		WHERE time_entry_end_time IS NULL
	`).Error; err != nil {
		log.Fatalf("❌ Failed to create open-entry unique index: %v", err)
	}

	log.Println("✅ Schema migrated.")
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
