package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"fapagri/entities"
)

var harvestExportHeader = []string{
	"Batch Code",
	"Date",
	"Block",
	"Plantation",
	"Harvester",
	"Employee Code",
	"Tonnes FFB",
	"Notes",
}

type ReportService interface {
	// HarvestWorkbook renders harvest records (optionally bounded by from/to
	// dates) into an XLSX workbook.
	HarvestWorkbook(from, to *time.Time) ([]byte, error)
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) ReportService { return &service{db: db} }

type exportRow struct {
	BatchCode      string
	Date           time.Time
	BlockName      string
	PlantationName string
	HarvesterName  string
	EmployeeCode   string
	Tonnes         float64
	Notes          string
}

func (s *service) HarvestWorkbook(from, to *time.Time) ([]byte, error) {
	q := s.db.Model(&entities.HarvestRecord{}).
		Joins("JOIN blocks ON harvest_records.block_id = blocks.id").
		Joins("LEFT JOIN plantations ON blocks.plantation_id = plantations.id").
		Joins("JOIN employees ON harvest_records.harvester_id = employees.id").
		Select(`harvest_records.batch_code AS batch_code,
			harvest_records.date AS date,
			blocks.name AS block_name,
			COALESCE(plantations.name, '') AS plantation_name,
			employees.name AS harvester_name,
			employees.employee_code AS employee_code,
			harvest_records.tonnes_fresh_fruit_bunches AS tonnes,
			harvest_records.notes AS notes`).
		Order("harvest_records.date ASC, harvest_records.id ASC")
	if from != nil {
		q = q.Where("harvest_records.date >= ?", *from)
	}
	if to != nil {
		q = q.Where("harvest_records.date <= ?", *to)
	}
	var rows []exportRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Harvests"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, h := range harvestExportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, r := range rows {
		values := []any{
			r.BatchCode,
			r.Date.Format("2006-01-02"),
			r.BlockName,
			r.PlantationName,
			r.HarvesterName,
			r.EmployeeCode,
			r.Tonnes,
			r.Notes,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
