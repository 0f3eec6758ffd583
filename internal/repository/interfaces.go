package repository

import (
	"coverage-api-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CoverageRepositoryInterface defines the interface for coverage repository operations
type CoverageRepositoryInterface interface {
	Create(coverage *models.Coverage) error
	GetByCID(cid int) (*models.Coverage, error)
	SearchByCEID(ceid string) (*models.Coverage, error)
	SearchByName(name string) (*models.Coverage, error)
	GetAll(limit, offset int) ([]models.Coverage, int64, error)
	Delete(cid int) error
	RecreateSchema(samples []models.Coverage) error
}
