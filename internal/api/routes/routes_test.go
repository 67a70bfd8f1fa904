//go:build integration
// +build integration

package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"org-directory/internal/config"
	"org-directory/internal/service"
	"org-directory/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const testAPIKey = "routes-test-key"

func TestMain(m *testing.M) {
	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}

// RoutesTestSuite drives the fully wired router against a real Postgres
type RoutesTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	http *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.base = testutils.SetupTestSuite(suite.T())

	cfg := &config.Config{
		Environment:           "test",
		APIKey:                testAPIKey,
		AllowedOrigins:        []string{"*"},
		RequestTimeoutSeconds: 5,
	}
	suite.http = &testutils.HTTPTestSuite{Router: SetupRoutes(suite.base.DB, nil, cfg)}
}

func (suite *RoutesTestSuite) SetupTest() {
	suite.base.CleanTestDB()
}

func (suite *RoutesTestSuite) TearDownSuite() {
	suite.base.TeardownTestSuite()
}

func (suite *RoutesTestSuite) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.http.MakeRequestWithHeaders(method, url, body, map[string]string{
		"Authorization": "Bearer " + testAPIKey,
	})
}

func (suite *RoutesTestSuite) createBuilding(address string, lat, lon float64) service.BuildingResponse {
	var resp service.BuildingResponse
	rec := suite.do(http.MethodPost, "/api/v1/buildings", map[string]interface{}{
		"address": address, "latitude": lat, "longitude": lon,
	})
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &resp)
	return resp
}

func (suite *RoutesTestSuite) createActivity(name string, parentID *uint) service.ActivityResponse {
	body := map[string]interface{}{"name": name}
	if parentID != nil {
		body["parent_id"] = *parentID
	}
	var resp service.ActivityResponse
	rec := suite.do(http.MethodPost, "/api/v1/activities", body)
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &resp)
	return resp
}

func (suite *RoutesTestSuite) createOrganization(name string, buildingID uint, activityIDs ...uint) service.OrganizationResponse {
	var resp service.OrganizationResponse
	rec := suite.do(http.MethodPost, "/api/v1/organizations", map[string]interface{}{
		"name":          name,
		"phone_numbers": []string{"2-222-222", "3-333-333"},
		"building_id":   buildingID,
		"activity_ids":  activityIDs,
	})
	testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &resp)
	return resp
}

func (suite *RoutesTestSuite) listNames(url string) []string {
	var orgs []service.OrganizationResponse
	testutils.AssertJSONResponse(suite.T(), suite.do(http.MethodGet, url, nil), http.StatusOK, &orgs)
	names := make([]string, 0, len(orgs))
	for _, org := range orgs {
		names = append(names, org.Name)
	}
	return names
}

func (suite *RoutesTestSuite) TestHealthIsPublic() {
	rec := suite.http.MakeRequest(http.MethodGet, "/health/live", nil)
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.http.MakeRequest(http.MethodGet, "/health/ready", nil)
	suite.Equal(http.StatusOK, rec.Code)
}

func (suite *RoutesTestSuite) TestMetricsIsPublic() {
	suite.http.MakeRequest(http.MethodGet, "/health/live", nil)

	rec := suite.http.MakeRequest(http.MethodGet, "/metrics", nil)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "orgdir_http_requests_total")
}

func (suite *RoutesTestSuite) TestAPIRequiresKey() {
	rec := suite.http.MakeRequest(http.MethodGet, "/api/v1/buildings", nil)
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "")

	rec = suite.http.MakeRequestWithHeaders(http.MethodGet, "/api/v1/buildings", nil, map[string]string{
		"Authorization": "Bearer wrong",
	})
	testutils.AssertErrorResponse(suite.T(), rec, http.StatusUnauthorized, "")
}

func (suite *RoutesTestSuite) TestDirectoryFlow() {
	moscow := suite.createBuilding("Moscow, Lenina 1", 55.7558, 37.6176)
	spb := suite.createBuilding("Saint Petersburg, Nevsky 100", 59.9311, 30.3609)

	food := suite.createActivity("Food", nil)
	meat := suite.createActivity("Meat", &food.ID)
	sausages := suite.createActivity("Sausages", &meat.ID)
	suite.Equal(3, sausages.Level)

	cars := suite.createActivity("Cars", nil)

	created := suite.createOrganization("Horns and Hooves", moscow.ID, sausages.ID)
	suite.Equal(moscow.ID, created.Building.ID)
	suite.Equal([]string{"2-222-222", "3-333-333"}, created.PhoneNumbers)
	suite.createOrganization("Fast Wheels", spb.ID, cars.ID)

	suite.Run("nesting below level three is rejected", func() {
		rec := suite.do(http.MethodPost, "/api/v1/activities", map[string]interface{}{
			"name": "Too deep", "parent_id": sausages.ID,
		})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "maximum nesting depth is 3")
	})

	suite.Run("get by id", func() {
		var org service.OrganizationResponse
		rec := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%d", created.ID), nil)
		testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &org)
		suite.Equal("Horns and Hooves", org.Name)
		suite.Len(org.Activities, 1)
	})

	suite.Run("missing organization", func() {
		rec := suite.do(http.MethodGet, "/api/v1/organizations/999999", nil)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "")
	})

	suite.Run("by building", func() {
		names := suite.listNames(fmt.Sprintf("/api/v1/organizations/by-building/%d", moscow.ID))
		suite.Equal([]string{"Horns and Hooves"}, names)
	})

	suite.Run("by activity includes the subtree", func() {
		suite.Equal([]string{"Horns and Hooves"}, suite.listNames(fmt.Sprintf("/api/v1/organizations/by-activity/%d", food.ID)))
		suite.Empty(suite.listNames("/api/v1/organizations/by-activity/999999"))
	})

	suite.Run("in radius", func() {
		suite.Equal([]string{"Horns and Hooves"}, suite.listNames("/api/v1/organizations/in-radius?latitude=55.75&longitude=37.62&radius=10"))
		suite.Len(suite.listNames("/api/v1/organizations/in-radius?latitude=55.75&longitude=37.62&radius=1000"), 2)
	})

	suite.Run("in rectangle", func() {
		names := suite.listNames("/api/v1/organizations/in-rectangle?min_lat=59&max_lat=60&min_lon=30&max_lon=31")
		suite.Equal([]string{"Fast Wheels"}, names)
	})

	suite.Run("search by name", func() {
		suite.Equal([]string{"Fast Wheels"}, suite.listNames("/api/v1/organizations/search/by-name?name=wheel"))
		suite.Len(suite.listNames("/api/v1/organizations/search/by-name?name=&limit=1"), 1)
	})

	suite.Run("list buildings", func() {
		var buildings []service.BuildingResponse
		testutils.AssertJSONResponse(suite.T(), suite.do(http.MethodGet, "/api/v1/buildings", nil), http.StatusOK, &buildings)
		suite.Len(buildings, 2)
	})
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
