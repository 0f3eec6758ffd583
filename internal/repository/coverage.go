package repository

import (
	"coverage-api-backend/internal/database/models"

	"gorm.io/gorm"
)

// CoverageRepository handles database operations for coverage assignments
type CoverageRepository struct {
	db *gorm.DB
}

// Ensure CoverageRepository implements CoverageRepositoryInterface
var _ CoverageRepositoryInterface = (*CoverageRepository)(nil)

// NewCoverageRepository creates a new coverage repository
func NewCoverageRepository(db *gorm.DB) *CoverageRepository {
	return &CoverageRepository{db: db}
}

// Create inserts a new coverage record; the database assigns the CID
func (r *CoverageRepository) Create(coverage *models.Coverage) error {
	return r.db.Create(coverage).Error
}

// GetByCID retrieves a coverage record by its exact primary key
func (r *CoverageRepository) GetByCID(cid int) (*models.Coverage, error) {
	var coverage models.Coverage
	if err := r.db.First(&coverage, "cid = ?", cid).Error; err != nil {
		return nil, err
	}
	return &coverage, nil
}

// SearchByCEID retrieves the first coverage record whose CEID contains the
// given fragment, case-insensitively, ordered by CID so the pick is stable.
func (r *CoverageRepository) SearchByCEID(ceid string) (*models.Coverage, error) {
	var coverage models.Coverage
	search := "%" + ceid + "%"
	if err := r.db.Where("ceid ILIKE ?", search).Order("cid ASC").First(&coverage).Error; err != nil {
		return nil, err
	}
	return &coverage, nil
}

// SearchByName retrieves the first coverage record whose short partner name
// contains the given fragment, case-insensitively. Returns nil without error
// when nothing matches.
func (r *CoverageRepository) SearchByName(name string) (*models.Coverage, error) {
	var coverages []models.Coverage
	search := "%" + name + "%"
	if err := r.db.Where("partname ILIKE ?", search).Order("cid ASC").Limit(1).Find(&coverages).Error; err != nil {
		return nil, err
	}
	if len(coverages) == 0 {
		return nil, nil
	}
	return &coverages[0], nil
}

// GetAll retrieves a page of coverage records plus the total count
func (r *CoverageRepository) GetAll(limit, offset int) ([]models.Coverage, int64, error) {
	var coverages []models.Coverage
	var total int64

	// Count total
	if err := r.db.Model(&models.Coverage{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Fetch page
	if err := r.db.Limit(limit).Offset(offset).Order("cid ASC").Find(&coverages).Error; err != nil {
		return nil, 0, err
	}

	return coverages, total, nil
}

// Delete removes the coverage record with the exact CID. Returns
// gorm.ErrRecordNotFound when no such record exists.
func (r *CoverageRepository) Delete(cid int) error {
	result := r.db.Delete(&models.Coverage{}, "cid = ?", cid)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RecreateSchema drops and recreates the coverages table, then inserts the
// given sample records. The whole operation runs in one transaction so a
// failure leaves the previous table intact.
func (r *CoverageRepository) RecreateSchema(samples []models.Coverage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(&models.Coverage{}) {
			if err := tx.Migrator().DropTable(&models.Coverage{}); err != nil {
				return err
			}
		}
		if err := tx.Migrator().CreateTable(&models.Coverage{}); err != nil {
			return err
		}
		for i := range samples {
			if err := tx.Create(&samples[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
