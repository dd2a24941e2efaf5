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

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{attendanceRepo: attendanceRepo}
}

// MarkAttendance godoc
// @Summary Mark Attendance
// @Description Mencatat absensi karyawan untuk satu tanggal. Kalau pasangan (karyawan, tanggal) sudah punya record, status-nya ditimpa — tidak pernah ada record ganda.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param attendance body models.AttendanceMarkPayload true "Data absensi"
// @Success 200 {object} models.MarkAttendanceSuccessResponse "Absensi berhasil diperbarui"
// @Success 201 {object} models.MarkAttendanceSuccessResponse "Absensi berhasil dicatat"
// @Failure 400 {object} models.ValidationErrorResponse "Invalid request body atau validation error"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /attendance [post]
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	var payload models.AttendanceMarkPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	employeeID, err := uuid.Parse(payload.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	record, created, err := h.attendanceRepo.MarkAttendance(ctx, employeeID, payload.Date, payload.Status)
	if err != nil {
		return errorResponse(c, err)
	}

	status := fiber.StatusOK
	message := "Absensi berhasil diperbarui"
	if created {
		status = fiber.StatusCreated
		message = "Absensi berhasil dicatat"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    record,
	})
}

// GetAllAttendance godoc
// @Summary Get All Attendance
// @Description Mendapatkan absensi semua karyawan, dilengkapi kode dan nama karyawan pemiliknya. Bisa difilter per tanggal.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param date query string false "Filter tanggal (YYYY-MM-DD)"
// @Success 200 {object} models.GetAttendanceSuccessResponse "Data absensi berhasil diambil"
// @Failure 400 {object} models.ErrorResponse "Format tanggal tidak valid"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /attendance [get]
func (h *AttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	dateFilter := c.Query("date", "")
	if dateFilter != "" {
		if _, err := time.Parse(models.DateLayout, dateFilter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format tanggal tidak valid, gunakan YYYY-MM-DD"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.GetAllAttendance(ctx, dateFilter)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Data absensi berhasil diambil",
		"data":    records,
		"total":   len(records),
	})
}

// GetEmployeeAttendance godoc
// @Summary Get Employee Attendance
// @Description Mendapatkan riwayat absensi satu karyawan. Filter bulan (YYYY-MM) hanya memasang batas bawah: semua record sejak tanggal 1 bulan itu ikut terbawa.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param month query string false "Filter bulan (YYYY-MM)"
// @Success 200 {object} models.GetAttendanceSuccessResponse "Riwayat absensi berhasil diambil"
// @Failure 400 {object} models.ErrorResponse "Format ID atau bulan tidak valid"
// @Failure 404 {object} models.NotFoundErrorResponse "Karyawan tidak ditemukan"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /attendance/employee/{id} [get]
func (h *AttendanceHandler) GetEmployeeAttendance(c *fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID karyawan tidak valid"})
	}

	monthFilter := c.Query("month", "")
	if monthFilter != "" {
		if _, err := time.Parse("2006-01", monthFilter); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format bulan tidak valid, gunakan YYYY-MM"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.GetAttendanceByEmployee(ctx, employeeID, monthFilter)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Riwayat absensi berhasil diambil",
		"data":    records,
		"total":   len(records),
	})
}

// DeleteAttendance godoc
// @Summary Delete Attendance
// @Description Menghapus satu catatan absensi. Karyawan pemiliknya tidak tersentuh.
// @Tags Attendance
// @Accept json
// @Produce json
// @Param id path string true "Attendance ID (UUID)"
// @Success 200 {object} models.DeleteSuccessResponse "Absensi berhasil dihapus"
// @Failure 400 {object} models.ErrorResponse "Format ID tidak valid"
// @Failure 404 {object} models.NotFoundErrorResponse "Absensi tidak ditemukan"
// @Failure 503 {object} models.ErrorResponse "Database tidak tersedia"
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format ID absensi tidak valid"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.attendanceRepo.DeleteAttendance(ctx, attendanceID); err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Absensi berhasil dihapus",
	})
}
