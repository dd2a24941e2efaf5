package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/harshitsingh20/HRMS-Lite-Backend/models"
	util "github.com/harshitsingh20/HRMS-Lite-Backend/pkg/utils"
	"github.com/harshitsingh20/HRMS-Lite-Backend/repository"
)

type EmployeeHandler struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{
		employeeRepo: employeeRepo,
	}
}

// CreateEmployee godoc
// @Summary Create Employee
// @Description Menambahkan karyawan baru. employee_id dan email harus unik.
// @Tags Employees
// @Accept json
// @Produce json
// @Param employee body models.EmployeeCreatePayload true "Data karyawan baru"
// @Success 201 {object} models.CreateEmployeeSuccessResponse "Karyawan berhasil ditambahkan"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 409 {object} models.ConflictErrorResponse "ID karyawan atau email sudah terdaftar"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.CreateEmployee(ctx, &payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Karyawan berhasil ditambahkan",
		"data":    employee,
	})
}

// GetAllEmployees godoc
// @Summary Get All Employees
// @Description Mendapatkan semua karyawan, diurutkan dari yang terbaru dibuat.
// @Tags Employees
// @Accept json
// @Produce json
// @Success 200 {object} models.GetAllEmployeesSuccessResponse "Data karyawan berhasil diambil"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /employees [get]
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, err := h.employeeRepo.GetAllEmployees(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Data karyawan berhasil diambil",
		"data":    employees,
		"total":   len(employees),
	})
}

// GetEmployeeByID godoc
// @Summary Get Employee by ID
// @Description Mendapatkan detail karyawan berdasarkan ID.
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} models.GetEmployeeSuccessResponse "Karyawan berhasil ditemukan"
// @Failure 400 {object} models.ErrorResponse "Format ID tidak valid"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployeeByID(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Karyawan berhasil ditemukan",
		"data":    employee,
	})
}

// UpdateEmployee godoc
// @Summary Update Employee
// @Description Mengubah data karyawan. Hanya field yang dikirim yang berubah; field lain dibiarkan.
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body models.EmployeeUpdatePayload true "Data update karyawan"
// @Success 200 {object} models.GetEmployeeSuccessResponse "Karyawan berhasil diupdate"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body, ID, atau validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 409 {object} models.ConflictErrorResponse "Email sudah terdaftar"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.employeeRepo.UpdateEmployee(ctx, employeeID, &payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Karyawan berhasil diupdate",
		"data":    employee,
	})
}

// DeleteEmployee godoc
// @Summary Delete Employee
// @Description Menghapus karyawan beserta seluruh catatan absensinya.
// @Tags Employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} models.DeleteSuccessResponse "Karyawan berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "Format ID tidak valid"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Karyawan berhasil dihapus",
	})
}
