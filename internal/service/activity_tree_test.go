package service_test

import (
	"context"
	"errors"
	"testing"

	"org-directory/internal/database/models"
	"org-directory/internal/mocks"
	"org-directory/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func activity(id uint, parentID *uint, level int) models.Activity {
	a := models.Activity{Name: "activity", ParentID: parentID, Level: level}
	a.ID = id
	return a
}

func uintPtr(v uint) *uint { return &v }

// ActivityTreeResolverTestSuite defines the test suite for ActivityTreeResolver
type ActivityTreeResolverTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockActivityRepositoryInterface
	mockCache    *mocks.MockDescendantCacheInterface
	resolver     *service.ActivityTreeResolver
	cachedLookup *service.ActivityTreeResolver
	ctx          context.Context
}

// SetupTest sets up the test suite
func (suite *ActivityTreeResolverTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.mockCache = mocks.NewMockDescendantCacheInterface(suite.ctrl)
	suite.resolver = service.NewActivityTreeResolver(suite.mockRepo, nil)
	suite.cachedLookup = service.NewActivityTreeResolver(suite.mockRepo, suite.mockCache)
	suite.ctx = context.Background()
}

// TearDownTest cleans up after each test
func (suite *ActivityTreeResolverTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectTree wires GetChildren for a parent -> children map; absent parents have no children
func (suite *ActivityTreeResolverTestSuite) expectTree(tree map[uint][]uint, visit ...uint) {
	for _, id := range visit {
		children := make([]models.Activity, 0, len(tree[id]))
		for _, childID := range tree[id] {
			children = append(children, activity(childID, uintPtr(id), 0))
		}
		suite.mockRepo.EXPECT().GetChildren(gomock.Any(), id).Return(children, nil).Times(1)
	}
}

// TestDescendantsOfChain tests root -> A -> B -> C
func (suite *ActivityTreeResolverTestSuite) TestDescendantsOfChain() {
	suite.expectTree(map[uint][]uint{1: {2}, 2: {3}, 3: {4}}, 1, 2, 3, 4)

	ids, err := suite.resolver.Descendants(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), []uint{1, 2, 3, 4}, ids)
}

// TestDescendantsOfSubtree tests that siblings of the queried node are left out
func (suite *ActivityTreeResolverTestSuite) TestDescendantsOfSubtree() {
	suite.expectTree(map[uint][]uint{1: {2, 3}, 2: {4, 5}, 3: {6}}, 2, 4, 5)

	ids, err := suite.resolver.Descendants(suite.ctx, 2)

	assert.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), []uint{2, 4, 5}, ids)
	assert.NotContains(suite.T(), ids, uint(3))
	assert.NotContains(suite.T(), ids, uint(6))
}

// TestDescendantsOfUnknownID tests that an id without rows yields only itself
func (suite *ActivityTreeResolverTestSuite) TestDescendantsOfUnknownID() {
	suite.expectTree(nil, 999)

	ids, err := suite.resolver.Descendants(suite.ctx, 999)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uint{999}, ids)
}

// TestDescendantsWithCycle tests that a malformed cycle terminates with each id once
func (suite *ActivityTreeResolverTestSuite) TestDescendantsWithCycle() {
	suite.expectTree(map[uint][]uint{1: {2}, 2: {3}, 3: {1}}, 1, 2, 3)

	ids, err := suite.resolver.Descendants(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.ElementsMatch(suite.T(), []uint{1, 2, 3}, ids)
}

// TestDescendantsStorageError tests that storage failures surface unchanged
func (suite *ActivityTreeResolverTestSuite) TestDescendantsStorageError() {
	dbErr := errors.New("connection reset")
	suite.mockRepo.EXPECT().GetChildren(gomock.Any(), uint(1)).Return(nil, dbErr).Times(1)

	ids, err := suite.resolver.Descendants(suite.ctx, 1)

	assert.ErrorIs(suite.T(), err, dbErr)
	assert.Nil(suite.T(), ids)
}

// TestDescendantsCanceledContext tests that the walk stops on cancellation
func (suite *ActivityTreeResolverTestSuite) TestDescendantsCanceledContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	ids, err := suite.resolver.Descendants(ctx, 1)

	assert.ErrorIs(suite.T(), err, context.Canceled)
	assert.Nil(suite.T(), ids)
}

// TestDescendantsCacheHit tests that a cached closure skips storage
func (suite *ActivityTreeResolverTestSuite) TestDescendantsCacheHit() {
	suite.mockCache.EXPECT().Get(gomock.Any(), uint(1)).Return([]uint{1, 2}, true, nil).Times(1)

	ids, err := suite.cachedLookup.Descendants(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uint{1, 2}, ids)
}

// TestDescendantsCacheMiss tests that a computed closure is stored
func (suite *ActivityTreeResolverTestSuite) TestDescendantsCacheMiss() {
	suite.mockCache.EXPECT().Get(gomock.Any(), uint(1)).Return(nil, false, nil).Times(1)
	suite.expectTree(map[uint][]uint{1: {2}}, 1, 2)
	suite.mockCache.EXPECT().Set(gomock.Any(), uint(1), []uint{1, 2}).Return(nil).Times(1)

	ids, err := suite.cachedLookup.Descendants(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uint{1, 2}, ids)
}

// TestDescendantsCacheFailure tests that cache errors never fail the lookup
func (suite *ActivityTreeResolverTestSuite) TestDescendantsCacheFailure() {
	suite.mockCache.EXPECT().Get(gomock.Any(), uint(1)).Return(nil, false, errors.New("redis down")).Times(1)
	suite.expectTree(nil, 1)
	suite.mockCache.EXPECT().Set(gomock.Any(), uint(1), []uint{1}).Return(errors.New("redis down")).Times(1)

	ids, err := suite.cachedLookup.Descendants(suite.ctx, 1)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []uint{1}, ids)
}

// TestInvalidateAncestors tests that the whole parent chain is dropped
func (suite *ActivityTreeResolverTestSuite) TestInvalidateAncestors() {
	root := activity(1, nil, 1)
	middle := activity(2, uintPtr(1), 2)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), uint(1)).Return(&root, nil).Times(1)
	suite.mockCache.EXPECT().Invalidate(gomock.Any(), []uint{2, 1}).Return(nil).Times(1)

	suite.cachedLookup.InvalidateAncestors(suite.ctx, &middle)
}

// TestInvalidateAncestorsMissingParent tests that a vanished ancestor stops the walk
func (suite *ActivityTreeResolverTestSuite) TestInvalidateAncestorsMissingParent() {
	orphan := activity(5, uintPtr(4), 2)
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), uint(4)).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockCache.EXPECT().Invalidate(gomock.Any(), []uint{5}).Return(errors.New("redis down")).Times(1)

	suite.cachedLookup.InvalidateAncestors(suite.ctx, &orphan)
}

// TestInvalidateAncestorsWithoutCache tests the no-op paths
func (suite *ActivityTreeResolverTestSuite) TestInvalidateAncestorsWithoutCache() {
	middle := activity(2, uintPtr(1), 2)

	suite.resolver.InvalidateAncestors(suite.ctx, &middle)
	suite.cachedLookup.InvalidateAncestors(suite.ctx, nil)
}

// Run the test suite
func TestActivityTreeResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityTreeResolverTestSuite))
}
