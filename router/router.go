package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"

	_ "github.com/harshitsingh20/HRMS-Lite-Backend/docs"
	"github.com/harshitsingh20/HRMS-Lite-Backend/handlers"
	"github.com/harshitsingh20/HRMS-Lite-Backend/repository"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// Inisialisasi Handlers
	employeeHandler := handlers.NewEmployeeHandler(employeeRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo)

	// Root & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "HRMS Lite API - Ready to use",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Employee routes
	employeeGroup := api.Group("/employees")
	employeeGroup.Post("", employeeHandler.CreateEmployee)
	employeeGroup.Get("", employeeHandler.GetAllEmployees)
	employeeGroup.Get("/:id", employeeHandler.GetEmployeeByID)
	employeeGroup.Put("/:id", employeeHandler.UpdateEmployee)
	employeeGroup.Delete("/:id", employeeHandler.DeleteEmployee)

	// Attendance routes
	attendanceGroup := api.Group("/attendance")
	attendanceGroup.Post("", attendanceHandler.MarkAttendance)
	attendanceGroup.Get("", attendanceHandler.GetAllAttendance)
	attendanceGroup.Get("/employee/:id", attendanceHandler.GetEmployeeAttendance)
	attendanceGroup.Delete("/:id", attendanceHandler.DeleteAttendance)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- GET /api/health")
	log.Println("- POST /api/employees")
	log.Println("- GET /api/employees")
	log.Println("- GET /api/employees/:id")
	log.Println("- PUT /api/employees/:id")
	log.Println("- DELETE /api/employees/:id")
	log.Println("- POST /api/attendance")
	log.Println("- GET /api/attendance")
	log.Println("- GET /api/attendance/employee/:id")
	log.Println("- DELETE /api/attendance/:id")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
