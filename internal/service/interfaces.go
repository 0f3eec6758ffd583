package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// CoverageServiceInterface defines the interface for coverage service operations
type CoverageServiceInterface interface {
	Create(req *CreateCoverageRequest) (*CoverageResponse, error)
	GetByCEID(ceid string) (*CoverageResponse, error)
	GetByName(name string) (*CoverageResponse, error)
	List(page, perPage int) (*CoverageListResponse, error)
	Delete(cid int) error
	RecreateDatabase() error
}
