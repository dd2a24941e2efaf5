package config

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harshitsingh20/HRMS-Lite-Backend/models"
)

var DB *gorm.DB

// ConnectDatabase membuka koneksi Postgres via GORM. Database kadang belum
// siap saat container baru naik, jadi koneksi dicoba ulang beberapa kali
// sebelum menyerah.
func ConnectDatabase(cfg *AppConfig) {
	dsn := cfg.DatabaseDSN()

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= 5; attempt++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			TranslateError: true,
		})
		if err == nil {
			break
		}
		log.Printf("Koneksi database gagal (percobaan %d/5): %v", attempt, err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	log.Println("Connected to PostgreSQL!")
}

// InitDatabase menjalankan migrasi skema. Unique index dan foreign key
// cascade dideklarasikan di tag model, jadi constraint ditegakkan oleh
// database, bukan hanya oleh kode aplikasi.
func InitDatabase() {
	if err := DB.AutoMigrate(
		&models.Employee{},
		&models.Attendance{},
	); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

func DisconnectDatabase() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting sql.DB handle on shutdown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
		return
	}
	log.Println("Disconnected from PostgreSQL")
}
