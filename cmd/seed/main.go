// Seeds the default admin account and, with -sample, a demo dataset of
// plantations, blocks, employees and harvest records.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fapagri/config"
	"fapagri/database"
	"fapagri/entities"
)

func main() {
	sample := flag.Bool("sample", false, "also create sample plantation data")
	flag.Parse()

	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)

	if err := createAdmin(db); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	if *sample {
		if err := createSampleData(db); err != nil {
			log.Fatalf("create sample data: %v", err)
		}
	}
}

func createAdmin(db *gorm.DB) error {
	var existing entities.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err == nil {
		log.Print("admin user already exists")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entities.User{
		Username:       "admin",
		Email:          "admin@fapagri.com",
		FullName:       "Administrator",
		Role:           entities.RoleAdmin,
		HashedPassword: string(hash),
		IsActive:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Print("admin user created (admin/admin123)")
	return nil
}

func createSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Plantation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Print("sample data already exists")
		return nil
	}

	f := func(v float64) *float64 { return &v }
	y := func(v int) *int { return &v }

	plantations := []entities.Plantation{
		{Name: "Kebun Sawit Utama", LocationLat: f(-2.5489), LocationLng: f(117.8924),
			AreaHa: f(150.5), Address: "Kalimantan Tengah, Indonesia"},
		{Name: "Kebun Sawit Selatan", LocationLat: f(-3.2345), LocationLng: f(118.1234),
			AreaHa: f(87.3), Address: "Kalimantan Selatan, Indonesia"},
	}
	if err := db.Create(&plantations).Error; err != nil {
		return err
	}

	blocks := []entities.Block{
		{PlantationID: plantations[0].ID, Name: "Blok A1", AreaHa: f(25.0), PlantingYear: y(2018)},
		{PlantationID: plantations[0].ID, Name: "Blok A2", AreaHa: f(30.5), PlantingYear: y(2019)},
		{PlantationID: plantations[0].ID, Name: "Blok A3", AreaHa: f(28.0), PlantingYear: y(2020)},
		{PlantationID: plantations[1].ID, Name: "Blok B1", AreaHa: f(22.3), PlantingYear: y(2017)},
		{PlantationID: plantations[1].ID, Name: "Blok B2", AreaHa: f(35.0), PlantingYear: y(2018)},
	}
	if err := db.Create(&blocks).Error; err != nil {
		return err
	}

	employees := []entities.Employee{
		{Name: "Ahmad Subandi", EmployeeCode: "EMP001", Position: "Mandor", Phone: "081234567890", IsActive: true},
		{Name: "Siti Rahayu", EmployeeCode: "EMP002", Position: "Pemanen", Phone: "081234567891", IsActive: true},
		{Name: "Budi Santoso", EmployeeCode: "EMP003", Position: "Pemanen", Phone: "081234567892", IsActive: true},
		{Name: "Wati Suryani", EmployeeCode: "EMP004", Position: "Supervisor", Phone: "081234567893", IsActive: true},
	}
	if err := db.Create(&employees).Error; err != nil {
		return err
	}

	baseDate := time.Now().AddDate(0, 0, -30)
	for i := 0; i < 15; i++ {
		harvestDate := baseDate.AddDate(0, 0, i*2)
		notes := "Harvest normal, cuaca cerah"
		if i%2 != 0 {
			notes = "Harvest sedikit terlambat karena hujan"
		}
		rec := entities.HarvestRecord{
			BlockID:                 blocks[i%len(blocks)].ID,
			HarvesterID:             employees[i%len(employees)].ID,
			Date:                    harvestDate,
			TonnesFreshFruitBunches: 2.5 + float64(i%3)*1.2,
			BatchCode: fmt.Sprintf("LOT-%s-%s",
				harvestDate.Format("20060102"), strings.ToUpper(uuid.NewString()[:8])),
			GeoLat: f(-2.5489 + float64(i)*0.001),
			GeoLng: f(117.8924 + float64(i)*0.001),
			Notes:  notes,
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
	}

	log.Printf("sample data created: %d plantations, %d blocks, %d employees, 15 harvest records",
		len(plantations), len(blocks), len(employees))
	return nil
}
