//go:build integration
// +build integration

package repository

import (
	"testing"

	"coverage-api-backend/internal/database/models"
	"coverage-api-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CoverageRepositoryTestSuite tests the CoverageRepository against a real Postgres
type CoverageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CoverageRepository
	factory       *testutils.CoverageFactory
}

// SetupSuite runs before all tests in the suite
func (suite *CoverageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCoverageRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewCoverageFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *CoverageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CoverageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CoverageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a coverage directly via gorm
func (suite *CoverageRepositoryTestSuite) createCoverage(name, ceid string) *models.Coverage {
	c := suite.factory.Create()
	c.ShortName = name
	c.CEID = ceid
	err := suite.baseTestSuite.DB.Create(c).Error
	suite.NoError(err)
	return c
}

// TestCreate tests inserting a coverage and ID assignment
func (suite *CoverageRepositoryTestSuite) TestCreate() {
	coverage := suite.factory.WithName("Acme").WithCEID("abc123")

	err := suite.repo.Create(coverage)

	suite.NoError(err)
	suite.NotZero(coverage.CID)

	retrieved, err := suite.repo.GetByCID(coverage.CID)
	suite.NoError(err)
	suite.Equal("Acme", retrieved.ShortName)
	suite.Equal("abc123", retrieved.CEID)
}

// TestGetByCIDNotFound tests retrieving a non-existent coverage
func (suite *CoverageRepositoryTestSuite) TestGetByCIDNotFound() {
	coverage, err := suite.repo.GetByCID(99999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(coverage)
}

// TestSearchByCEID tests substring matching on the CEID column
func (suite *CoverageRepositoryTestSuite) TestSearchByCEID() {
	suite.createCoverage("Partner A", "6cfh6")
	suite.createCoverage("Partner B", "2rw5p3sj")

	found, err := suite.repo.SearchByCEID("cfh")

	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal("6cfh6", found.CEID)
	suite.Equal("Partner A", found.ShortName)
}

// TestSearchByCEIDCaseInsensitive tests that CEID matching ignores case
func (suite *CoverageRepositoryTestSuite) TestSearchByCEIDCaseInsensitive() {
	suite.createCoverage("Partner A", "6CFH6")

	found, err := suite.repo.SearchByCEID("cfh")

	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal("6CFH6", found.CEID)
}

// TestSearchByCEIDOrdering tests that the lowest CID wins when several rows match
func (suite *CoverageRepositoryTestSuite) TestSearchByCEIDOrdering() {
	first := suite.createCoverage("Partner A", "match-1")
	suite.createCoverage("Partner B", "match-2")

	found, err := suite.repo.SearchByCEID("match")

	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal(first.CID, found.CID)
}

// TestSearchByCEIDNotFound tests a CEID fragment with no matches
func (suite *CoverageRepositoryTestSuite) TestSearchByCEIDNotFound() {
	suite.createCoverage("Partner A", "6cfh6")

	found, err := suite.repo.SearchByCEID("zzz")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestSearchByName tests substring matching on the partner name column
func (suite *CoverageRepositoryTestSuite) TestSearchByName() {
	suite.createCoverage("Sample Corp", "6cfh6")
	suite.createCoverage("Demonstration Inc", "2rw5p3sj")

	found, err := suite.repo.SearchByName("emonstr")

	suite.NoError(err)
	suite.NotNil(found)
	suite.Equal("Demonstration Inc", found.ShortName)
}

// TestSearchByNameNotFound tests that a name miss yields no error and no record
func (suite *CoverageRepositoryTestSuite) TestSearchByNameNotFound() {
	suite.createCoverage("Sample Corp", "6cfh6")

	found, err := suite.repo.SearchByName("nothing-like-this")

	suite.NoError(err)
	suite.Nil(found)
}

// TestGetAll tests listing coverages ordered by CID ascending
func (suite *CoverageRepositoryTestSuite) TestGetAll() {
	a := suite.createCoverage("Partner A", "ceid-a")
	b := suite.createCoverage("Partner B", "ceid-b")
	c := suite.createCoverage("Partner C", "ceid-c")

	items, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(items, 3)
	suite.Equal(a.CID, items[0].CID)
	suite.Equal(b.CID, items[1].CID)
	suite.Equal(c.CID, items[2].CID)
}

// TestGetAllWithPagination tests limit/offset slicing with the full count
func (suite *CoverageRepositoryTestSuite) TestGetAllWithPagination() {
	for i := 0; i < 5; i++ {
		suite.createCoverage("Partner", "ceid")
	}

	// First page
	items, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(items, 2)
	suite.Equal(int64(5), total)

	// Last partial page
	items, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(items, 1)
	suite.Equal(int64(5), total)

	// Beyond the last page
	items, total, err = suite.repo.GetAll(2, 10)
	suite.NoError(err)
	suite.Len(items, 0)
	suite.Equal(int64(5), total)
}

// TestDelete tests deleting an existing coverage
func (suite *CoverageRepositoryTestSuite) TestDelete() {
	coverage := suite.createCoverage("Partner A", "6cfh6")

	err := suite.repo.Delete(coverage.CID)
	suite.NoError(err)

	_, err = suite.repo.GetByCID(coverage.CID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests deleting a CID that does not exist
func (suite *CoverageRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(99999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteTwice tests that the second delete of the same CID fails
func (suite *CoverageRepositoryTestSuite) TestDeleteTwice() {
	coverage := suite.createCoverage("Partner A", "6cfh6")

	suite.NoError(suite.repo.Delete(coverage.CID))

	err := suite.repo.Delete(coverage.CID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestRecreateSchema tests that recreate drops existing rows and inserts the samples
func (suite *CoverageRepositoryTestSuite) TestRecreateSchema() {
	suite.createCoverage("Stale Partner", "stale-1")
	suite.createCoverage("Stale Partner 2", "stale-2")

	samples := []models.Coverage{
		*suite.factory.WithCEID("seed-1"),
		*suite.factory.WithCEID("seed-2"),
	}
	err := suite.repo.RecreateSchema(samples)
	suite.NoError(err)

	items, total, err := suite.repo.GetAll(100, 0)
	suite.NoError(err)
	suite.Equal(int64(len(samples)), total)
	suite.Len(items, len(samples))

	// Identity restarts from 1 after recreate
	suite.Equal(1, items[0].CID)
	suite.Equal("seed-1", items[0].CEID)

	// The stale rows are gone
	found, err := suite.repo.SearchByName("Stale")
	suite.NoError(err)
	suite.Nil(found)
}

// Run the test suite
func TestCoverageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CoverageRepositoryTestSuite))
}
