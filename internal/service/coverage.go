package service

import (
	"errors"
	"fmt"

	"coverage-api-backend/internal/database/models"
	apperrors "coverage-api-backend/internal/errors"
	"coverage-api-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Pagination policy for the listing endpoint. Requests above MaxPerPage are
// rejected outright rather than clamped.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 255
)

// CoverageService handles business logic for coverage assignments
type CoverageService struct {
	repo      repository.CoverageRepositoryInterface
	validator *validator.Validate
}

// Ensure CoverageService implements CoverageServiceInterface
var _ CoverageServiceInterface = (*CoverageService)(nil)

// NewCoverageService creates a new coverage service
func NewCoverageService(repo repository.CoverageRepositoryInterface, validator *validator.Validate) *CoverageService {
	return &CoverageService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCoverageRequest represents the request to create a coverage record.
// Every field must be present (pointers distinguish absent from empty) and
// no value may exceed 255 characters.
type CreateCoverageRequest struct {
	ShortName   *string `json:"shortname" validate:"required,max=255"`
	CEID        *string `json:"ceid" validate:"required,max=255"`
	Motion      *string `json:"motion" validate:"required,max=255"`
	PTSAuto     *string `json:"ptsauto" validate:"required,max=255"`
	PTSDA       *string `json:"ptsda" validate:"required,max=255"`
	MgrDAAT     *string `json:"mgrdaat" validate:"required,max=255"`
	PTSPower    *string `json:"ptspower" validate:"required,max=255"`
	PTSStorage  *string `json:"ptsstorage" validate:"required,max=255"`
	PTSSecurity *string `json:"ptssecurity" validate:"required,max=255"`
	PTSSustain  *string `json:"ptssustain" validate:"required,max=255"`
	PTSCross    *string `json:"ptscross" validate:"required,max=255"`
	PTSFinance  *string `json:"ptsfinance" validate:"required,max=255"`
	PTSCloud    *string `json:"ptscloud" validate:"required,max=255"`
	PTSData     *string `json:"ptsdata" validate:"required,max=255"`
	PTSAI       *string `json:"ptsai" validate:"required,max=255"`
	PTSNetwork  *string `json:"ptsnetwork" validate:"required,max=255"`
	PTSZ        *string `json:"ptsz" validate:"required,max=255"`
	PTSApps     *string `json:"ptsapps" validate:"required,max=255"`
	PTSQuantum  *string `json:"ptsquantum" validate:"required,max=255"`
	PTSResil    *string `json:"ptsresil" validate:"required,max=255"`
	MgrPower    *string `json:"mgrpower" validate:"required,max=255"`
	MgrStorage  *string `json:"mgrstorage" validate:"required,max=255"`
	MgrSecurity *string `json:"mgrsecurity" validate:"required,max=255"`
}

// CoverageResponse represents the response for coverage operations
type CoverageResponse struct {
	CID         int    `json:"cid"`
	ShortName   string `json:"shortname"`
	CEID        string `json:"ceid"`
	Motion      string `json:"motion"`
	PTSAuto     string `json:"ptsauto"`
	PTSDA       string `json:"ptsda"`
	MgrDAAT     string `json:"mgrdaat"`
	PTSPower    string `json:"ptspower"`
	PTSStorage  string `json:"ptsstorage"`
	PTSSecurity string `json:"ptssecurity"`
	PTSSustain  string `json:"ptssustain"`
	PTSCross    string `json:"ptscross"`
	PTSFinance  string `json:"ptsfinance"`
	PTSCloud    string `json:"ptscloud"`
	PTSData     string `json:"ptsdata"`
	PTSAI       string `json:"ptsai"`
	PTSNetwork  string `json:"ptsnetwork"`
	PTSZ        string `json:"ptsz"`
	PTSApps     string `json:"ptsapps"`
	PTSQuantum  string `json:"ptsquantum"`
	PTSResil    string `json:"ptsresil"`
	MgrPower    string `json:"mgrpower"`
	MgrStorage  string `json:"mgrstorage"`
	MgrSecurity string `json:"mgrsecurity"`
}

// PaginationResponse carries the listing page metadata
type PaginationResponse struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasPrev bool  `json:"has_prev"`
	HasNext bool  `json:"has_next"`
}

// CoverageListResponse represents a paginated list of coverage records
type CoverageListResponse struct {
	Coverages  []CoverageResponse `json:"coverages"`
	Pagination PaginationResponse `json:"pagination"`
}

// Create validates and inserts a new coverage record. No storage write is
// attempted when any field is missing or exceeds 255 characters.
func (s *CoverageService) Create(req *CreateCoverageRequest) (*CoverageResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed '%s' constraint", fe.Tag()))
		}
		return nil, apperrors.NewValidationError("", err.Error())
	}

	coverage := s.toModel(req)
	if err := s.repo.Create(coverage); err != nil {
		return nil, fmt.Errorf("failed to create coverage: %w", err)
	}

	return s.toResponse(coverage), nil
}

// GetByCEID retrieves the first coverage record whose CEID contains the
// given fragment (case-insensitive)
func (s *CoverageService) GetByCEID(ceid string) (*CoverageResponse, error) {
	coverage, err := s.repo.SearchByCEID(ceid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCoverageNotFound
		}
		return nil, fmt.Errorf("failed to get coverage: %w", err)
	}

	return s.toResponse(coverage), nil
}

// GetByName retrieves the first coverage record whose short partner name
// contains the given fragment (case-insensitive). Unlike GetByCEID, a miss
// is not an error: the response is simply nil.
func (s *CoverageService) GetByName(name string) (*CoverageResponse, error) {
	coverage, err := s.repo.SearchByName(name)
	if err != nil {
		return nil, fmt.Errorf("failed to search coverage by name: %w", err)
	}
	if coverage == nil {
		return nil, nil
	}

	return s.toResponse(coverage), nil
}

// List retrieves a page of coverage records. A per_page above MaxPerPage is
// a validation failure; out-of-range pages come back as an empty list with
// the requested page echoed in the metadata.
func (s *CoverageService) List(page, perPage int) (*CoverageListResponse, error) {
	if perPage > MaxPerPage {
		return nil, apperrors.ErrPerPageExceedsCap
	}
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	offset := (page - 1) * perPage
	coverages, total, err := s.repo.GetAll(perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list coverages: %w", err)
	}

	responses := make([]CoverageResponse, len(coverages))
	for i := range coverages {
		responses[i] = *s.toResponse(&coverages[i])
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))

	return &CoverageListResponse{
		Coverages: responses,
		Pagination: PaginationResponse{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   pages,
			HasPrev: page > 1,
			HasNext: page < pages,
		},
	}, nil
}

// Delete removes the coverage record with the exact CID
func (s *CoverageService) Delete(cid int) error {
	if err := s.repo.Delete(cid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCoverageNotFound
		}
		return fmt.Errorf("failed to delete coverage: %w", err)
	}
	return nil
}

// RecreateDatabase drops and recreates the coverages table and reseeds the
// fixed sample records. Destructive and irreversible; confirmation is
// enforced at the API layer before this is called.
func (s *CoverageService) RecreateDatabase() error {
	if err := s.repo.RecreateSchema(SampleCoverages()); err != nil {
		return fmt.Errorf("failed to recreate database: %w", err)
	}
	return nil
}

func (s *CoverageService) toModel(req *CreateCoverageRequest) *models.Coverage {
	return &models.Coverage{
		ShortName:   *req.ShortName,
		CEID:        *req.CEID,
		Motion:      *req.Motion,
		PTSAuto:     *req.PTSAuto,
		PTSDA:       *req.PTSDA,
		MgrDAAT:     *req.MgrDAAT,
		PTSPower:    *req.PTSPower,
		PTSStorage:  *req.PTSStorage,
		PTSSecurity: *req.PTSSecurity,
		PTSSustain:  *req.PTSSustain,
		PTSCross:    *req.PTSCross,
		PTSFinance:  *req.PTSFinance,
		PTSCloud:    *req.PTSCloud,
		PTSData:     *req.PTSData,
		PTSAI:       *req.PTSAI,
		PTSNetwork:  *req.PTSNetwork,
		PTSZ:        *req.PTSZ,
		PTSApps:     *req.PTSApps,
		PTSQuantum:  *req.PTSQuantum,
		PTSResil:    *req.PTSResil,
		MgrPower:    *req.MgrPower,
		MgrStorage:  *req.MgrStorage,
		MgrSecurity: *req.MgrSecurity,
	}
}

func (s *CoverageService) toResponse(coverage *models.Coverage) *CoverageResponse {
	return &CoverageResponse{
		CID:         coverage.CID,
		ShortName:   coverage.ShortName,
		CEID:        coverage.CEID,
		Motion:      coverage.Motion,
		PTSAuto:     coverage.PTSAuto,
		PTSDA:       coverage.PTSDA,
		MgrDAAT:     coverage.MgrDAAT,
		PTSPower:    coverage.PTSPower,
		PTSStorage:  coverage.PTSStorage,
		PTSSecurity: coverage.PTSSecurity,
		PTSSustain:  coverage.PTSSustain,
		PTSCross:    coverage.PTSCross,
		PTSFinance:  coverage.PTSFinance,
		PTSCloud:    coverage.PTSCloud,
		PTSData:     coverage.PTSData,
		PTSAI:       coverage.PTSAI,
		PTSNetwork:  coverage.PTSNetwork,
		PTSZ:        coverage.PTSZ,
		PTSApps:     coverage.PTSApps,
		PTSQuantum:  coverage.PTSQuantum,
		PTSResil:    coverage.PTSResil,
		MgrPower:    coverage.MgrPower,
		MgrStorage:  coverage.MgrStorage,
		MgrSecurity: coverage.MgrSecurity,
	}
}
