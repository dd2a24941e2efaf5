// file: seeder/employee_seeder.go

package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/harshitsingh20/HRMS-Lite-Backend/models"
	"github.com/harshitsingh20/HRMS-Lite-Backend/pkg/apperr"
	"github.com/harshitsingh20/HRMS-Lite-Backend/repository"
)

// SeedEmployees berfungsi untuk memasukkan data karyawan dummy ke database
func SeedEmployees(employeeRepo repository.EmployeeRepository) {
	log.Println("Memulai seeding karyawan...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	employeesData := []models.EmployeeCreatePayload{
		{EmployeeID: "EMP001", FullName: "Ann Lee", Email: "ann.lee@example.com", Department: "Engineering"},
		{EmployeeID: "EMP002", FullName: "Budi Santoso", Email: "budi.santoso@example.com", Department: "Human Resources"},
		{EmployeeID: "EMP003", FullName: "Citra Dewi", Email: "citra.dewi@example.com", Department: "Finance"},
		{EmployeeID: "EMP004", FullName: "Daniel Wijaya", Email: "daniel.wijaya@example.com", Department: "Marketing"},
	}

	for _, payload := range employeesData {
		_, err := employeeRepo.CreateEmployee(ctx, &payload)
		if err != nil {
			if apperr.IsKind(err, apperr.KindConflict) {
				fmt.Printf("Skipping: Karyawan '%s' sudah ada.\n", payload.EmployeeID)
				continue
			}
			log.Printf("Gagal menyimpan karyawan '%s': %v\n", payload.EmployeeID, err)
		} else {
			fmt.Printf("Karyawan '%s' berhasil ditambahkan.\n", payload.EmployeeID)
		}
	}

	log.Println("Seeding karyawan selesai.")
}
