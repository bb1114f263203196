package service

import (
	"time"

	"gorm.io/gorm"

	"fapagri/entities"
)

type DashboardStats struct {
	TotalPlantations      int64   `json:"total_plantations"`
	TotalBlocks           int64   `json:"total_blocks"`
	TotalHarvestToday     float64 `json:"total_harvest_today"`
	TotalHarvestThisMonth float64 `json:"total_harvest_this_month"`
}

type PlantationDashboard struct {
	Plantation       *entities.Plantation     `json:"plantation"`
	TotalBlocks      int64                    `json:"total_blocks"`
	TotalAreaHa      float64                  `json:"total_area_ha"`
	HarvestThisMonth float64                  `json:"harvest_this_month"`
	RecentHarvests   []entities.HarvestRecord `json:"recent_harvests"`
}

type DashboardService interface {
	Stats() (*DashboardStats, error)
	PlantationStats(plantationID string) (*PlantationDashboard, error)
}

// service computes everything on demand straight from the store. Dataset
// sizes stay small enough that no summary table is kept.
type service struct {
	db  *gorm.DB
	loc *time.Location
	now func() time.Time
}

func New(db *gorm.DB, loc *time.Location) DashboardService {
	if loc == nil {
		loc = time.Local
	}
	return &service{db: db, loc: loc, now: time.Now}
}

func (s *service) Stats() (*DashboardStats, error) {
	out := &DashboardStats{}
	if err := s.db.Model(&entities.Plantation{}).Count(&out.TotalPlantations).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&entities.Block{}).Count(&out.TotalBlocks).Error; err != nil {
		return nil, err
	}

	dayStart, monthStart := s.windows()
	dayEnd := dayStart.AddDate(0, 0, 1)

	if err := s.db.Model(&entities.HarvestRecord{}).
		Where("date >= ? AND date < ?", dayStart, dayEnd).
		Select("COALESCE(SUM(tonnes_fresh_fruit_bunches), 0)").
		Scan(&out.TotalHarvestToday).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&entities.HarvestRecord{}).
		Where("date >= ?", monthStart).
		Select("COALESCE(SUM(tonnes_fresh_fruit_bunches), 0)").
		Scan(&out.TotalHarvestThisMonth).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) PlantationStats(plantationID string) (*PlantationDashboard, error) {
	var p entities.Plantation
	if err := s.db.Where("id = ?", plantationID).First(&p).Error; err != nil {
		return nil, err
	}

	out := &PlantationDashboard{Plantation: &p, RecentHarvests: []entities.HarvestRecord{}}

	if err := s.db.Model(&entities.Block{}).
		Where("plantation_id = ?", plantationID).
		Count(&out.TotalBlocks).Error; err != nil {
		return nil, err
	}
	// sum of block areas, not the plantation's own declared area
	if err := s.db.Model(&entities.Block{}).
		Where("plantation_id = ?", plantationID).
		Select("COALESCE(SUM(area_ha), 0)").
		Scan(&out.TotalAreaHa).Error; err != nil {
		return nil, err
	}

	_, monthStart := s.windows()
	if err := s.db.Model(&entities.HarvestRecord{}).
		Joins("JOIN blocks ON harvest_records.block_id = blocks.id").
		Where("blocks.plantation_id = ? AND harvest_records.date >= ?", plantationID, monthStart).
		Select("COALESCE(SUM(harvest_records.tonnes_fresh_fruit_bunches), 0)").
		Scan(&out.HarvestThisMonth).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&entities.HarvestRecord{}).
		Select("harvest_records.*").
		Joins("JOIN blocks ON harvest_records.block_id = blocks.id").
		Where("blocks.plantation_id = ?", plantationID).
		Order("harvest_records.date DESC, harvest_records.id ASC").
		Limit(10).
		Find(&out.RecentHarvests).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// windows returns the start of today and of the current month, on the
// server's configured calendar (not a rolling 24h window).
func (s *service) windows() (dayStart, monthStart time.Time) {
	now := s.now().In(s.loc)
	dayStart = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	monthStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	return dayStart, monthStart
}
