package handlers

import (
	"errors"
	"net/http"
	"testing"

	apperrors "org-directory/internal/errors"
	"org-directory/internal/mocks"
	"org-directory/internal/service"
	"org-directory/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockOrganizationService *mocks.MockOrganizationServiceInterface
	handler                 *OrganizationHandler
	httpSuite               *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOrganizationService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	suite.handler = NewOrganizationHandler(suite.mockOrganizationService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("/by-building/:building_id", suite.handler.GetByBuilding)
		orgs.GET("/by-activity/:activity_id", suite.handler.GetByActivity)
		orgs.GET("/in-radius", suite.handler.GetInRadius)
		orgs.GET("/in-rectangle", suite.handler.GetInRectangle)
		orgs.GET("/search/by-name", suite.handler.SearchByName)
		orgs.GET("/:id", suite.handler.GetOrganization)
	}
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sampleOrganization(id uint) service.OrganizationResponse {
	return service.OrganizationResponse{
		ID:           id,
		Name:         "Horns and Hooves",
		PhoneNumbers: []string{"2-222-222"},
		BuildingID:   1,
		Building:     service.BuildingResponse{ID: 1, Address: "Moscow, Lenina st. 1", Latitude: 55.7558, Longitude: 37.6176},
		Activities:   []service.ActivityResponse{{ID: 2, Name: "Meat", Level: 2}},
	}
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	expected := sampleOrganization(42)
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), &service.CreateOrganizationRequest{
			Name:         "Horns and Hooves",
			PhoneNumbers: []string{"2-222-222"},
			BuildingID:   1,
			ActivityIDs:  []uint{2},
		}).
		Return(&expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"name":          "Horns and Hooves",
		"phone_numbers": []string{"2-222-222"},
		"building_id":   1,
		"activity_ids":  []uint{2},
	})

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), uint(42), response.ID)
	assert.Equal(suite.T(), 55.7558, response.Building.Latitude)
	assert.Equal(suite.T(), "Meat", response.Activities[0].Name)
}

// TestCreateOrganizationInvalidJSON tests a malformed body
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidJSON() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", `{"name": `)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

// TestCreateOrganizationValidationError tests that validation failures become 400
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationValidationError() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUnknownBuilding).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"name":        "Lost",
		"building_id": 77,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "building_id: building does not exist")
}

// TestCreateOrganizationServiceError tests that unexpected failures become 500
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationServiceError() {
	suite.mockOrganizationService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("failed to create organization: connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{
		"name":        "Doomed",
		"building_id": 1,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create organization")
}

// TestGetOrganization tests retrieving an organization by id
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	expected := sampleOrganization(5)
	suite.mockOrganizationService.EXPECT().GetByID(gomock.Any(), uint(5)).Return(&expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/5", nil)

	var response service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), expected, response)
}

// TestGetOrganizationNotFound tests the 404 mapping
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	suite.mockOrganizationService.EXPECT().
		GetByID(gomock.Any(), uint(5)).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/5", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "organization not found")
}

// TestGetOrganizationInvalidID tests non-numeric and zero ids
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	for _, id := range []string{"abc", "0", "-1"} {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+id, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
	}
}

// TestGetByBuilding tests listing organizations in a building
func (suite *OrganizationHandlerTestSuite) TestGetByBuilding() {
	suite.mockOrganizationService.EXPECT().
		GetByBuilding(gomock.Any(), uint(1)).
		Return([]service.OrganizationResponse{sampleOrganization(1), sampleOrganization(2)}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/by-building/1", nil)

	var response []service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 2)
}

// TestGetByBuildingEmpty tests that no matches is an empty JSON array
func (suite *OrganizationHandlerTestSuite) TestGetByBuildingEmpty() {
	suite.mockOrganizationService.EXPECT().
		GetByBuilding(gomock.Any(), uint(9)).
		Return([]service.OrganizationResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/by-building/9", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), `[]`, recorder.Body.String())
}

// TestGetByBuildingInvalidID tests a malformed building id
func (suite *OrganizationHandlerTestSuite) TestGetByBuildingInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/by-building/first", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid building ID")
}

// TestGetByActivity tests the activity subtree search
func (suite *OrganizationHandlerTestSuite) TestGetByActivity() {
	suite.mockOrganizationService.EXPECT().
		GetByActivity(gomock.Any(), uint(3)).
		Return([]service.OrganizationResponse{sampleOrganization(1)}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/by-activity/3", nil)

	var response []service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
}

// TestGetByActivityServiceError tests the 500 mapping
func (suite *OrganizationHandlerTestSuite) TestGetByActivityServiceError() {
	suite.mockOrganizationService.EXPECT().
		GetByActivity(gomock.Any(), uint(3)).
		Return(nil, errors.New("failed to resolve activity subtree: timeout")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/by-activity/3", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to get organizations")
}

// TestGetInRadius tests parsing of the radius query
func (suite *OrganizationHandlerTestSuite) TestGetInRadius() {
	suite.mockOrganizationService.EXPECT().
		GetInRadius(gomock.Any(), 55.75, 37.61, 2.5).
		Return([]service.OrganizationResponse{sampleOrganization(1)}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/in-radius?latitude=55.75&longitude=37.61&radius=2.5", nil)

	var response []service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
}

// TestGetInRadiusZeroValues tests that zeros count as present
func (suite *OrganizationHandlerTestSuite) TestGetInRadiusZeroValues() {
	suite.mockOrganizationService.EXPECT().
		GetInRadius(gomock.Any(), 0.0, 0.0, 0.0).
		Return([]service.OrganizationResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/in-radius?latitude=0&longitude=0&radius=0", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetInRadiusBadQuery tests missing and malformed parameters
func (suite *OrganizationHandlerTestSuite) TestGetInRadiusBadQuery() {
	for _, query := range []string{
		"latitude=55.75&longitude=37.61",
		"latitude=north&longitude=37.61&radius=1",
		"",
	} {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/in-radius?"+query, nil)
		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid query parameters")
	}
}

// TestGetInRadiusNegativeRadius tests that service validation errors become 400
func (suite *OrganizationHandlerTestSuite) TestGetInRadiusNegativeRadius() {
	suite.mockOrganizationService.EXPECT().
		GetInRadius(gomock.Any(), 1.0, 1.0, -1.0).
		Return(nil, apperrors.ErrNegativeRadius).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/in-radius?latitude=1&longitude=1&radius=-1", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "radius: must not be negative")
}

// TestGetInRectangle tests parsing of the rectangle query
func (suite *OrganizationHandlerTestSuite) TestGetInRectangle() {
	suite.mockOrganizationService.EXPECT().
		GetInRectangle(gomock.Any(), 55.0, 56.0, 37.0, 38.0).
		Return([]service.OrganizationResponse{sampleOrganization(1)}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/in-rectangle?min_lat=55&max_lat=56&min_lon=37&max_lon=38", nil)

	var response []service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response, 1)
}

// TestGetInRectangleMissingParameter tests a partial box
func (suite *OrganizationHandlerTestSuite) TestGetInRectangleMissingParameter() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/in-rectangle?min_lat=55&max_lat=56&min_lon=37", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid query parameters")
}

// TestSearchByNameDefaults tests the default paging values
func (suite *OrganizationHandlerTestSuite) TestSearchByNameDefaults() {
	suite.mockOrganizationService.EXPECT().
		SearchByName(gomock.Any(), "horn", 0, 100).
		Return([]service.OrganizationResponse{sampleOrganization(1)}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/search/by-name?name=horn", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestSearchByNamePaging tests explicit skip and limit
func (suite *OrganizationHandlerTestSuite) TestSearchByNamePaging() {
	suite.mockOrganizationService.EXPECT().
		SearchByName(gomock.Any(), "", 10, 1000).
		Return([]service.OrganizationResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/search/by-name?name=&skip=10&limit=1000", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestSearchByNameMissingName tests that the name parameter is required
func (suite *OrganizationHandlerTestSuite) TestSearchByNameMissingName() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/search/by-name?skip=1", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid query parameters")
}

// Run the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
