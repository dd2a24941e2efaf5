package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/harshitsingh20/HRMS-Lite-Backend/models"
	"github.com/harshitsingh20/HRMS-Lite-Backend/pkg/apperr"
)

type AttendanceRepository interface {
	MarkAttendance(ctx context.Context, employeeID uuid.UUID, date string, status string) (*models.Attendance, bool, error)
	GetAllAttendance(ctx context.Context, dateFilter string) ([]models.AttendanceWithEmployee, error)
	GetAttendanceByEmployee(ctx context.Context, employeeID uuid.UUID, monthFilter string) ([]models.Attendance, error)
	DeleteAttendance(ctx context.Context, id uuid.UUID) error
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// MarkAttendance adalah upsert: kalau pasangan (employee_id, date) sudah punya
// record, status-nya ditimpa; kalau belum, record baru dibuat. Nilai balik
// kedua true kalau record baru dibuat. Seluruhnya berjalan dalam satu
// transaksi; unique index (employee_id, date) jadi backstop kalau dua mark
// bersamaan sama-sama lolos pencarian — penulis kedua yang menang.
func (r *attendanceRepository) MarkAttendance(ctx context.Context, employeeID uuid.UUID, date string, status string) (*models.Attendance, bool, error) {
	var record models.Attendance
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
			return apperr.StoreUnavailable("gagal memeriksa karyawan", err)
		}
		if count == 0 {
			return apperr.NotFound("karyawan tidak ditemukan")
		}

		err := tx.Where("employee_id = ? AND date = ?", employeeID, date).First(&record).Error
		if err == nil {
			record.Status = status
			if err := tx.Model(&record).Update("status", status).Error; err != nil {
				return apperr.StoreUnavailable("gagal mengupdate absensi", err)
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.StoreUnavailable("gagal mencari absensi berdasarkan karyawan dan tanggal", err)
		}

		record = models.Attendance{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Date:       date,
			Status:     status,
			CreatedAt:  time.Now().UTC(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": status}),
		}, clause.Returning{}).Create(&record).Error; err != nil {
			return apperr.StoreUnavailable("gagal membuat absensi", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &record, created, nil
}

// GetAllAttendance mengambil absensi semua karyawan, di-join dengan data
// karyawan pemiliknya saat dibaca. dateFilter kosong berarti semua tanggal.
func (r *attendanceRepository) GetAllAttendance(ctx context.Context, dateFilter string) ([]models.AttendanceWithEmployee, error) {
	query := r.db.WithContext(ctx).Table("attendance").
		Select("attendance.id, attendance.employee_id, employees.employee_id AS emp_id, employees.full_name, attendance.date, attendance.status, attendance.created_at").
		Joins("JOIN employees ON employees.id = attendance.employee_id")

	if dateFilter != "" {
		query = query.Where("attendance.date = ?", dateFilter)
	}

	records := make([]models.AttendanceWithEmployee, 0)
	if err := query.Order("attendance.date DESC").Scan(&records).Error; err != nil {
		return nil, apperr.StoreUnavailable("gagal mengambil data absensi", err)
	}
	return records, nil
}

// GetAttendanceByEmployee mengambil riwayat absensi satu karyawan. monthFilter
// ("YYYY-MM", boleh kosong) hanya memasang batas bawah: date >= tanggal 1
// bulan itu, tanpa batas atas.
func (r *attendanceRepository) GetAttendanceByEmployee(ctx context.Context, employeeID uuid.UUID, monthFilter string) ([]models.Attendance, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Employee{}).Where("id = ?", employeeID).Count(&count).Error; err != nil {
		return nil, apperr.StoreUnavailable("gagal memeriksa karyawan", err)
	}
	if count == 0 {
		return nil, apperr.NotFound("karyawan tidak ditemukan")
	}

	query := r.db.WithContext(ctx).Where("employee_id = ?", employeeID)
	if monthFilter != "" {
		query = query.Where("date >= ?", monthFilter+"-01")
	}

	records := make([]models.Attendance, 0)
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return nil, apperr.StoreUnavailable("gagal mengambil riwayat absensi", err)
	}
	return records, nil
}

func (r *attendanceRepository) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Attendance{}, "id = ?", id)
	if result.Error != nil {
		return apperr.StoreUnavailable("gagal menghapus absensi", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("absensi tidak ditemukan")
	}
	return nil
}
