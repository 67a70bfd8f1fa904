package service

import "org-directory/internal/database/models"

// BuildingResponse represents a building in API responses
type BuildingResponse struct {
	ID        uint    `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActivityResponse represents an activity in API responses
type ActivityResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id"`
	Level    int    `json:"level"`
}

// OrganizationResponse represents an organization with its building and activities
type OrganizationResponse struct {
	ID           uint               `json:"id"`
	Name         string             `json:"name"`
	PhoneNumbers []string           `json:"phone_numbers"`
	BuildingID   uint               `json:"building_id"`
	Building     BuildingResponse   `json:"building"`
	Activities   []ActivityResponse `json:"activities"`
}

func toBuildingResponse(b *models.Building) BuildingResponse {
	return BuildingResponse{
		ID:        b.ID,
		Address:   b.Address,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}

func toActivityResponse(a *models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:       a.ID,
		Name:     a.Name,
		ParentID: a.ParentID,
		Level:    a.Level,
	}
}

func toOrganizationResponse(org *models.Organization) OrganizationResponse {
	phones := make([]string, len(org.PhoneNumbers))
	copy(phones, org.PhoneNumbers)

	activities := make([]ActivityResponse, len(org.Activities))
	for i := range org.Activities {
		activities[i] = toActivityResponse(&org.Activities[i])
	}

	return OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		PhoneNumbers: phones,
		BuildingID:   org.BuildingID,
		Building:     toBuildingResponse(&org.Building),
		Activities:   activities,
	}
}

func toOrganizationResponses(orgs []models.Organization) []OrganizationResponse {
	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = toOrganizationResponse(&orgs[i])
	}
	return responses
}
