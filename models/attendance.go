package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DateLayout adalah format tanggal kalender yang dipakai di seluruh aplikasi.
// Disimpan sebagai string ISO supaya perbandingan leksikografis sama dengan
// urutan kronologis.
const DateLayout = "2006-01-02"

type Attendance struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_employee_date"`
	Date       string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date"`
	Status     string    `json:"status" gorm:"size:20;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

func (Attendance) TableName() string {
	return "attendance"
}

type AttendanceMarkPayload struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" validate:"required,oneof=Present Absent"`
}

// AttendanceWithEmployee adalah hasil baca absensi yang di-join dengan data
// karyawan pemiliknya. emp_id dan full_name diambil saat query, bukan disalin
// ke tabel absensi.
type AttendanceWithEmployee struct {
	ID         uuid.UUID `json:"id" gorm:"column:id"`
	EmployeeID uuid.UUID `json:"employee_id" gorm:"column:employee_id"`
	EmpID      string    `json:"emp_id" gorm:"column:emp_id"`
	FullName   string    `json:"full_name" gorm:"column:full_name"`
	Date       string    `json:"date" gorm:"column:date"`
	Status     string    `json:"status" gorm:"column:status"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at"`
}
