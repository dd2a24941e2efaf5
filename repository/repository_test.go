package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harshitsingh20/HRMS-Lite-Backend/models"
	"github.com/harshitsingh20/HRMS-Lite-Backend/pkg/apperr"
)

// Test integrasi repository butuh Postgres sungguhan karena perilaku yang
// diuji (unique constraint, transaksi, ON CONFLICT) ada di database, bukan
// di kode aplikasi. Set TEST_DATABASE_URL untuk menjalankannya.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak di-set, lewati test integrasi database")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Employee{}, &models.Attendance{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	cleanup := func() {
		db.Exec("DELETE FROM attendance")
		db.Exec("DELETE FROM employees")
	}
	cleanup()
	t.Cleanup(cleanup)
	return db
}

func createTestEmployee(t *testing.T, repo EmployeeRepository, code, email string) *models.Employee {
	t.Helper()
	employee, err := repo.CreateEmployee(context.Background(), &models.EmployeeCreatePayload{
		EmployeeID: code,
		FullName:   "Ann Lee",
		Email:      email,
		Department: "Eng",
	})
	if err != nil {
		t.Fatalf("create employee %s: %v", code, err)
	}
	return employee
}

func TestCreateAndGetEmployeeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	created, err := repo.CreateEmployee(ctx, &models.EmployeeCreatePayload{
		EmployeeID: "  E1  ",
		FullName:   "Ann Lee",
		Email:      "ann@x.com",
		Department: "Eng",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.EmployeeID != "E1" {
		t.Fatalf("employee_id must be trimmed, got %q", created.EmployeeID)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("expected server-generated id")
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("created_at and updated_at must be equal at creation")
	}

	got, err := repo.FindEmployeeByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.EmployeeID != created.EmployeeID || got.Email != created.Email ||
		got.FullName != created.FullName || got.Department != created.Department {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
}

func TestCreateEmployeeConflictsAreDistinguishable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	createTestEmployee(t, repo, "E1", "ann@x.com")

	_, err := repo.CreateEmployee(ctx, &models.EmployeeCreatePayload{
		EmployeeID: "E1", FullName: "Bob", Email: "bob@x.com", Department: "Eng",
	})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict on employee_id, got %v", err)
	}
	if err.Error() != "ID karyawan sudah terdaftar" {
		t.Fatalf("conflict must name the employee_id field, got %q", err.Error())
	}

	_, err = repo.CreateEmployee(ctx, &models.EmployeeCreatePayload{
		EmployeeID: "E2", FullName: "Bob", Email: "ann@x.com", Department: "Eng",
	})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict on email, got %v", err)
	}
	if err.Error() != "email sudah terdaftar" {
		t.Fatalf("conflict must name the email field, got %q", err.Error())
	}
}

func TestConcurrentCreateSameEmployeeID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)

	const workers = 8
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.CreateEmployee(context.Background(), &models.EmployeeCreatePayload{
				EmployeeID: "E-RACE",
				FullName:   "Racer",
				Email:      "racer" + uuid.NewString() + "@x.com",
				Department: "Eng",
			})
			results <- err
		}(i)
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
			continue
		}
		if !apperr.IsKind(err, apperr.KindConflict) {
			t.Fatalf("losers must fail with conflict, got %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("exactly one concurrent create may win, got %d", successes)
	}
}

func TestGetAllEmployeesOrderedNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	empty, err := repo.GetAllEmployees(ctx)
	if err != nil {
		t.Fatalf("list empty roster: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("empty roster must be an empty slice, got %v", empty)
	}

	first := createTestEmployee(t, repo, "E1", "e1@x.com")
	time.Sleep(10 * time.Millisecond)
	second := createTestEmployee(t, repo, "E2", "e2@x.com")

	all, err := repo.GetAllEmployees(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", all[0].EmployeeID, all[1].EmployeeID)
	}
}

func TestUpdateEmployeePartial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	employee := createTestEmployee(t, repo, "E1", "ann@x.com")
	time.Sleep(10 * time.Millisecond)

	updated, err := repo.UpdateEmployee(ctx, employee.ID, &models.EmployeeUpdatePayload{
		Department: "Finance",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Department != "Finance" {
		t.Fatalf("department not updated: %s", updated.Department)
	}
	if updated.FullName != "Ann Lee" || updated.Email != "ann@x.com" {
		t.Fatalf("omitted fields must be untouched: %+v", updated)
	}
	if !updated.UpdatedAt.After(employee.UpdatedAt) {
		t.Fatalf("updated_at must advance")
	}
}

func TestUpdateEmployeeEmptyPayloadAdvancesUpdatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	employee := createTestEmployee(t, repo, "E1", "ann@x.com")
	time.Sleep(10 * time.Millisecond)

	updated, err := repo.UpdateEmployee(ctx, employee.ID, &models.EmployeeUpdatePayload{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.FullName != employee.FullName || updated.Email != employee.Email || updated.Department != employee.Department {
		t.Fatalf("empty update must not change fields: %+v", updated)
	}
	if !updated.UpdatedAt.After(employee.UpdatedAt) {
		t.Fatalf("updated_at must advance even with no fields supplied")
	}
}

func TestUpdateEmployeeEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)
	ctx := context.Background()

	createTestEmployee(t, repo, "E1", "ann@x.com")
	other := createTestEmployee(t, repo, "E2", "bob@x.com")

	_, err := repo.UpdateEmployee(ctx, other.ID, &models.EmployeeUpdatePayload{Email: "ann@x.com"})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// Email yang sama dengan milik sendiri bukan konflik.
	if _, err := repo.UpdateEmployee(ctx, other.ID, &models.EmployeeUpdatePayload{Email: "bob@x.com"}); err != nil {
		t.Fatalf("re-submitting own email must not conflict: %v", err)
	}
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)

	_, err := repo.UpdateEmployee(context.Background(), uuid.New(), &models.EmployeeUpdatePayload{FullName: "X"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteEmployeeCascadesToAttendance(t *testing.T) {
	db := setupTestDB(t)
	employeeRepo := NewEmployeeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)
	ctx := context.Background()

	employee := createTestEmployee(t, employeeRepo, "E1", "ann@x.com")
	if _, _, err := attendanceRepo.MarkAttendance(ctx, employee.ID, "2024-03-01", models.StatusPresent); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if _, _, err := attendanceRepo.MarkAttendance(ctx, employee.ID, "2024-03-02", models.StatusAbsent); err != nil {
		t.Fatalf("mark: %v", err)
	}

	if err := employeeRepo.DeleteEmployee(ctx, employee.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := attendanceRepo.GetAttendanceByEmployee(ctx, employee.ID, ""); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	all, err := attendanceRepo.GetAllAttendance(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("attendance of a deleted employee must be gone, got %d records", len(all))
	}

	if err := employeeRepo.DeleteEmployee(ctx, employee.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}
}

func TestMarkAttendanceUpsert(t *testing.T) {
	db := setupTestDB(t)
	employeeRepo := NewEmployeeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)
	ctx := context.Background()

	employee := createTestEmployee(t, employeeRepo, "E1", "ann@x.com")

	record, created, err := attendanceRepo.MarkAttendance(ctx, employee.ID, "2024-03-01", models.StatusPresent)
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if !created {
		t.Fatalf("first mark must create")
	}
	if record.Status != models.StatusPresent {
		t.Fatalf("expected Present, got %s", record.Status)
	}

	again, created, err := attendanceRepo.MarkAttendance(ctx, employee.ID, "2024-03-01", models.StatusAbsent)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if created {
		t.Fatalf("second mark must update in place")
	}
	if again.ID != record.ID {
		t.Fatalf("upsert must reuse the record, got new id %s", again.ID)
	}
	if again.Status != models.StatusAbsent {
		t.Fatalf("last write must win, got %s", again.Status)
	}

	var count int64
	db.Model(&models.Attendance{}).Where("employee_id = ? AND date = ?", employee.ID, "2024-03-01").Count(&count)
	if count != 1 {
		t.Fatalf("exactly one record per (employee, date), got %d", count)
	}
}

func TestMarkAttendanceUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	attendanceRepo := NewAttendanceRepository(db)

	_, _, err := attendanceRepo.MarkAttendance(context.Background(), uuid.New(), "2024-03-01", models.StatusPresent)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestConcurrentMarkSameDayLeavesOneRecord(t *testing.T) {
	db := setupTestDB(t)
	employeeRepo := NewEmployeeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)

	employee := createTestEmployee(t, employeeRepo, "E1", "ann@x.com")

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := models.StatusPresent
			if i%2 == 0 {
				status = models.StatusAbsent
			}
			if _, _, err := attendanceRepo.MarkAttendance(context.Background(), employee.ID, "2024-03-01", status); err != nil {
				t.Errorf("concurrent mark: %v", err)
			}
		}(i)
	}
	wg.Wait()

	var count int64
	db.Model(&models.Attendance{}).Where("employee_id = ? AND date = ?", employee.ID, "2024-03-01").Count(&count)
	if count != 1 {
		t.Fatalf("concurrent marks must collapse to one record, got %d", count)
	}
}

func TestGetAllAttendanceJoinsEmployeeAndFiltersByDate(t *testing.T) {
	db := setupTestDB(t)
	employeeRepo := NewEmployeeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)
	ctx := context.Background()

	employee := createTestEmployee(t, employeeRepo, "E1", "ann@x.com")
	for _, date := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
		if _, _, err := attendanceRepo.MarkAttendance(ctx, employee.ID, date, models.StatusPresent); err != nil {
			t.Fatalf("mark %s: %v", date, err)
		}
	}

	all, err := attendanceRepo.GetAllAttendance(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].Date != "2024-03-03" || all[2].Date != "2024-03-01" {
		t.Fatalf("expected date descending, got %s..%s", all[0].Date, all[2].Date)
	}
	if all[0].EmpID != "E1" || all[0].FullName != "Ann Lee" {
		t.Fatalf("records must carry owning employee data, got %+v", all[0])
	}

	filtered, err := attendanceRepo.GetAllAttendance(ctx, "2024-03-02")
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Date != "2024-03-02" {
		t.Fatalf("date filter must match exactly, got %+v", filtered)
	}
}

func TestGetAttendanceByEmployeeMonthFilterIsLowerBoundOnly(t *testing.T) {
	db := setupTestDB(t)
	employeeRepo := NewEmployeeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)
	ctx := context.Background()

	employee := createTestEmployee(t, employeeRepo, "E1", "ann@x.com")
	for _, date := range []string{"2024-02-15", "2024-03-10", "2024-04-05"} {
		if _, _, err := attendanceRepo.MarkAttendance(ctx, employee.ID, date, models.StatusPresent); err != nil {
			t.Fatalf("mark %s: %v", date, err)
		}
	}

	records, err := attendanceRepo.GetAttendanceByEmployee(ctx, employee.ID, "2024-03")
	if err != nil {
		t.Fatalf("month filter: %v", err)
	}
	// Filter bulan sengaja hanya batas bawah: April ikut terbawa, Februari tidak.
	if len(records) != 2 {
		t.Fatalf("expected march and april records, got %d", len(records))
	}
	if records[0].Date != "2024-04-05" || records[1].Date != "2024-03-10" {
		t.Fatalf("expected date descending from april, got %+v", records)
	}
}

func TestDeleteAttendanceLeavesEmployee(t *testing.T) {
	db := setupTestDB(t)
	employeeRepo := NewEmployeeRepository(db)
	attendanceRepo := NewAttendanceRepository(db)
	ctx := context.Background()

	employee := createTestEmployee(t, employeeRepo, "E1", "ann@x.com")
	record, _, err := attendanceRepo.MarkAttendance(ctx, employee.ID, "2024-03-01", models.StatusPresent)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}

	if err := attendanceRepo.DeleteAttendance(ctx, record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := attendanceRepo.DeleteAttendance(ctx, record.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("second delete must be not found, got %v", err)
	}

	if _, err := employeeRepo.FindEmployeeByID(ctx, employee.ID); err != nil {
		t.Fatalf("employee must survive attendance delete: %v", err)
	}
}
