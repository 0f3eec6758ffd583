package testutils

import (
	"coverage-api-backend/internal/database/models"
)

// CoverageFactory provides methods to create test Coverage data
type CoverageFactory struct{}

// NewCoverageFactory creates a new CoverageFactory
func NewCoverageFactory() *CoverageFactory {
	return &CoverageFactory{}
}

// Create creates a test Coverage with default values
func (f *CoverageFactory) Create() *models.Coverage {
	return &models.Coverage{
		ShortName:   "Test Partner",
		CEID:        "abc123",
		Motion:      "Sell",
		PTSAuto:     "Auto Contact",
		PTSDA:       "DA Contact",
		MgrDAAT:     "DAAT Manager",
		PTSPower:    "Power Contact",
		PTSStorage:  "Storage Contact",
		PTSSecurity: "Security Contact",
		PTSSustain:  "Sustainability Contact",
		PTSCross:    "Cross Contact",
		PTSFinance:  "Financing Contact",
		PTSCloud:    "Cloud Contact",
		PTSData:     "Data Contact",
		PTSAI:       "AI Contact",
		PTSNetwork:  "Network Contact",
		PTSZ:        "Z Contact",
		PTSApps:     "Apps Contact",
		PTSQuantum:  "Quantum Contact",
		PTSResil:    "Resiliency Contact",
		MgrPower:    "Power Manager",
		MgrStorage:  "Storage Manager",
		MgrSecurity: "Security Manager",
	}
}

// WithName sets a custom short partner name
func (f *CoverageFactory) WithName(name string) *models.Coverage {
	coverage := f.Create()
	coverage.ShortName = name
	return coverage
}

// WithCEID sets a custom CEID
func (f *CoverageFactory) WithCEID(ceid string) *models.Coverage {
	coverage := f.Create()
	coverage.CEID = ceid
	return coverage
}
