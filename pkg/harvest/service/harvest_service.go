package service

import (
	"errors"
	"time"

	"fapagri/entities"
)

var (
	ErrBlockNotFound     = errors.New("Block not found")
	ErrHarvesterNotFound = errors.New("Harvester not found")
	ErrBatchNotFound     = errors.New("Batch not found")
)

type CreateInput struct {
	BlockID     string
	HarvesterID string
	Date        time.Time
	TonnesFFB   float64
	GeoLat      *float64
	GeoLng      *float64
	Notes       string
}

type HarvestService interface {
	Create(in CreateInput) (*entities.HarvestRecord, error)
	// Trace resolves a batch code to its record. An unknown code yields
	// ErrBatchNotFound; that is the expected miss outcome, not a fault.
	Trace(batchCode string) (*entities.HarvestRecord, error)
}
