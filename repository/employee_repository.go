package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshitsingh20/HRMS-Lite-Backend/models"
	"github.com/harshitsingh20/HRMS-Lite-Backend/pkg/apperr"
)

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, payload *models.EmployeeCreatePayload) (*models.Employee, error)
	FindEmployeeByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, payload *models.EmployeeUpdatePayload) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, id uuid.UUID) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// CreateEmployee menyimpan karyawan baru. Pengecekan keunikan employee_id dan
// email dilakukan terpisah supaya pemanggil tahu kolom mana yang bentrok, dan
// keduanya berjalan dalam satu transaksi dengan insert-nya. Unique index di
// database jadi backstop untuk create yang bersamaan.
func (r *employeeRepository) CreateEmployee(ctx context.Context, payload *models.EmployeeCreatePayload) (*models.Employee, error) {
	now := time.Now().UTC()
	employee := &models.Employee{
		ID:         uuid.New(),
		EmployeeID: strings.TrimSpace(payload.EmployeeID),
		FullName:   strings.TrimSpace(payload.FullName),
		Email:      strings.TrimSpace(payload.Email),
		Department: strings.TrimSpace(payload.Department),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Where("employee_id = ?", employee.EmployeeID).Count(&count).Error; err != nil {
			return apperr.StoreUnavailable("gagal memeriksa ID karyawan", err)
		}
		if count > 0 {
			return apperr.Conflict("ID karyawan sudah terdaftar")
		}

		if err := tx.Model(&models.Employee{}).Where("email = ?", employee.Email).Count(&count).Error; err != nil {
			return apperr.StoreUnavailable("gagal memeriksa email", err)
		}
		if count > 0 {
			return apperr.Conflict("email sudah terdaftar")
		}

		if err := tx.Create(employee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("ID karyawan atau email sudah terdaftar")
			}
			return apperr.StoreUnavailable("gagal membuat karyawan", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("karyawan tidak ditemukan")
		}
		return nil, apperr.StoreUnavailable("gagal menemukan karyawan berdasarkan ID", err)
	}
	return &employee, nil
}

func (r *employeeRepository) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&employees).Error
	if err != nil {
		return nil, apperr.StoreUnavailable("gagal mengambil data karyawan", err)
	}
	return employees, nil
}

// UpdateEmployee mengubah hanya field yang dikirim. updated_at selalu maju,
// termasuk saat tidak ada field yang dikirim sama sekali.
func (r *employeeRepository) UpdateEmployee(ctx context.Context, id uuid.UUID, payload *models.EmployeeUpdatePayload) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&employee, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("karyawan tidak ditemukan")
			}
			return apperr.StoreUnavailable("gagal menemukan karyawan berdasarkan ID", err)
		}

		updates := map[string]interface{}{
			"updated_at": time.Now().UTC(),
		}
		if fullName := strings.TrimSpace(payload.FullName); fullName != "" {
			updates["full_name"] = fullName
		}
		if department := strings.TrimSpace(payload.Department); department != "" {
			updates["department"] = department
		}
		if email := strings.TrimSpace(payload.Email); email != "" && email != employee.Email {
			var count int64
			if err := tx.Model(&models.Employee{}).Where("email = ? AND id <> ?", email, id).Count(&count).Error; err != nil {
				return apperr.StoreUnavailable("gagal memeriksa email", err)
			}
			if count > 0 {
				return apperr.Conflict("email sudah terdaftar")
			}
			updates["email"] = email
		}

		if err := tx.Model(&employee).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("email sudah terdaftar")
			}
			return apperr.StoreUnavailable("gagal mengupdate karyawan", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// DeleteEmployee menghapus karyawan beserta seluruh absensinya sebagai satu
// unit atomik: dua langkah eksplisit dalam satu transaksi, dengan FK
// ON DELETE CASCADE di skema sebagai backstop.
func (r *employeeRepository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return apperr.StoreUnavailable("gagal menghapus absensi karyawan", err)
		}

		result := tx.Delete(&models.Employee{}, "id = ?", id)
		if result.Error != nil {
			return apperr.StoreUnavailable("gagal menghapus karyawan", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("karyawan tidak ditemukan")
		}
		return nil
	})
}
