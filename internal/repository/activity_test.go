//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"org-directory/internal/database/models"
	"org-directory/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ActivityRepositoryTestSuite tests the ActivityRepository
type ActivityRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ActivityRepository
	factory       *testutils.ActivityFactory
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *ActivityRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewActivityRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewActivityFactory()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ActivityRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ActivityRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ActivityRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ActivityRepositoryTestSuite) create(a *models.Activity) *models.Activity {
	suite.Require().NoError(suite.repo.Create(suite.ctx, a))
	return a
}

// TestCreateAndGetByID tests the parent link round trip
func (suite *ActivityRepositoryTestSuite) TestCreateAndGetByID() {
	root := suite.create(suite.factory.Root("Food"))
	child := suite.create(suite.factory.Child("Meat", root))

	retrieved, err := suite.repo.GetByID(suite.ctx, child.ID)

	suite.NoError(err)
	suite.Equal("Meat", retrieved.Name)
	suite.Require().NotNil(retrieved.ParentID)
	suite.Equal(root.ID, *retrieved.ParentID)
	suite.Equal(2, retrieved.Level)
}

// TestGetByIDNotFound tests retrieving a non-existent activity
func (suite *ActivityRepositoryTestSuite) TestGetByIDNotFound() {
	activity, err := suite.repo.GetByID(suite.ctx, 999999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(activity)
}

// TestGetChildren tests that only direct children are returned
func (suite *ActivityRepositoryTestSuite) TestGetChildren() {
	root := suite.create(suite.factory.Root("Cars"))
	trucks := suite.create(suite.factory.Child("Trucks", root))
	passenger := suite.create(suite.factory.Child("Passenger", root))
	suite.create(suite.factory.Child("Parts", trucks))
	suite.create(suite.factory.Root("IT"))

	children, err := suite.repo.GetChildren(suite.ctx, root.ID)

	suite.NoError(err)
	suite.Len(children, 2)
	suite.Equal(trucks.ID, children[0].ID)
	suite.Equal(passenger.ID, children[1].ID)
}

// TestGetChildrenOfLeaf tests that a leaf has no children
func (suite *ActivityRepositoryTestSuite) TestGetChildrenOfLeaf() {
	root := suite.create(suite.factory.Root("Leaf"))

	children, err := suite.repo.GetChildren(suite.ctx, root.ID)

	suite.NoError(err)
	suite.Empty(children)
}

// TestGetByIDs tests bulk lookup with unknown ids
func (suite *ActivityRepositoryTestSuite) TestGetByIDs() {
	a := suite.create(suite.factory.Root("A"))
	b := suite.create(suite.factory.Root("B"))

	activities, err := suite.repo.GetByIDs(suite.ctx, []uint{b.ID, a.ID, 777777})

	suite.NoError(err)
	suite.Len(activities, 2)
	suite.Equal(a.ID, activities[0].ID)
	suite.Equal(b.ID, activities[1].ID)

	empty, err := suite.repo.GetByIDs(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(empty)
}

// TestLevelCheckConstraint tests that the database rejects a level-4 row
func (suite *ActivityRepositoryTestSuite) TestLevelCheckConstraint() {
	err := suite.repo.Create(suite.ctx, &models.Activity{Name: "too deep", Level: 4})

	suite.Error(err)
}

// Run the test suite
func TestActivityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityRepositoryTestSuite))
}
