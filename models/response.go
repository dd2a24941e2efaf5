package models

// Success Response Models

// CreateEmployeeSuccessResponse represents successful employee creation response
type CreateEmployeeSuccessResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Karyawan berhasil ditambahkan"`
	Data    Employee `json:"data"`
}

// GetEmployeeSuccessResponse represents successful get employee response
type GetEmployeeSuccessResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Karyawan berhasil ditemukan"`
	Data    Employee `json:"data"`
}

// GetAllEmployeesSuccessResponse represents successful get all employees response
type GetAllEmployeesSuccessResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"Data karyawan berhasil diambil"`
	Data    []Employee `json:"data"`
	Total   int        `json:"total" example:"10"`
}

// DeleteSuccessResponse represents successful delete response
type DeleteSuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Karyawan berhasil dihapus"`
}

// MarkAttendanceSuccessResponse represents successful attendance marking response
type MarkAttendanceSuccessResponse struct {
	Success bool                   `json:"success" example:"true"`
	Message string                 `json:"message" example:"Absensi berhasil dicatat"`
	Data    AttendanceWithEmployee `json:"data"`
}

// GetAttendanceSuccessResponse represents successful attendance listing response
type GetAttendanceSuccessResponse struct {
	Success bool                     `json:"success" example:"true"`
	Message string                   `json:"message" example:"Data absensi berhasil diambil"`
	Data    []AttendanceWithEmployee `json:"data"`
	Total   int                      `json:"total" example:"25"`
}

// Error Response Models

// ErrorResponse represents basic error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Errors string `json:"errors" example:"email: format email tidak valid"`
}

// NotFoundErrorResponse represents not found error response
type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Karyawan tidak ditemukan"`
}

// ConflictErrorResponse represents uniqueness conflict error response
type ConflictErrorResponse struct {
	Error string `json:"error" example:"ID karyawan sudah terdaftar"`
}
