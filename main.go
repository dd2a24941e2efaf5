package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/harshitsingh20/HRMS-Lite-Backend/config"
	"github.com/harshitsingh20/HRMS-Lite-Backend/repository"
	"github.com/harshitsingh20/HRMS-Lite-Backend/router"
	"github.com/harshitsingh20/HRMS-Lite-Backend/seeder"

	_ "github.com/harshitsingh20/HRMS-Lite-Backend/docs" // Import docs untuk swagger
	_ "time/tzdata"
)

// @title HRMS Lite API
// @version 1.0
// @description API untuk manajemen karyawan dan absensi harian (hadir/absen per tanggal)
//
// @contact.name API Support
// @contact.url https://github.com/harshitsingh20/HRMS-Lite-Backend
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3001
// @BasePath /api
// @schemes http https
//
// @tag.name Employees
// @tag.description Employee management endpoints
//
// @tag.name Attendance
// @tag.description Attendance management endpoints
func main() {

	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file tidak ditemukan, menggunakan environment variables sistem")
	}

	cfg := config.LoadConfig()

	config.ConnectDatabase(cfg)
	config.InitDatabase()

	defer config.DisconnectDatabase()

	if cfg.SeedData {
		seeder.SeedEmployees(repository.NewEmployeeRepository(config.DB))
	}

	app := fiber.New()

	// Setup CORS menggunakan konfigurasi dari cors.go
	config.SetupCORS(app)

	app.Use(logger.New())

	// Setup routes (termasuk Swagger di dalamnya)
	router.SetupRoutes(app, config.DB)

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API Documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("Health Check: http://localhost:%s/api/health", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
