package models

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	EmployeeID string    `json:"employee_id" gorm:"size:50;uniqueIndex;not null"`
	FullName   string    `json:"full_name" gorm:"size:255;not null"`
	Email      string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Department string    `json:"department" gorm:"size:255;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null"`

	// Relasi 1-N ke absensi. Hapus karyawan = hapus seluruh absensinya.
	AttendanceRecords []Attendance `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (Employee) TableName() string {
	return "employees"
}

type EmployeeCreatePayload struct {
	EmployeeID string `json:"employee_id" validate:"required,notblank,max=50"`
	FullName   string `json:"full_name" validate:"required,notblank,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Department string `json:"department" validate:"required,notblank,max=255"`
}

type EmployeeUpdatePayload struct {
	FullName   string `json:"full_name,omitempty" validate:"omitempty,notblank,max=255"`
	Email      string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Department string `json:"department,omitempty" validate:"omitempty,notblank,max=255"`
}
