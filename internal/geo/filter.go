package geo

import (
	"org-directory/internal/database/models"

	"github.com/paulmach/orb"
)

// Rectangle is an inclusive latitude/longitude box. It is a flat range check, so a
// box meant to cross the antimeridian (MinLon > MaxLon) matches nothing.
type Rectangle struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Bound converts the rectangle to an orb.Bound.
func (r Rectangle) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.MinLon, r.MinLat},
		Max: orb.Point{r.MaxLon, r.MaxLat},
	}
}

// Contains reports whether p lies inside the box, edges included.
func (r Rectangle) Contains(p orb.Point) bool {
	return r.Bound().Contains(p)
}

// FilterByRadius keeps the organizations whose building lies within radiusKm of the
// center, boundary included. Input order is preserved.
func FilterByRadius(orgs []models.Organization, centerLat, centerLon, radiusKm float64) []models.Organization {
	result := make([]models.Organization, 0, len(orgs))
	for _, org := range orgs {
		if Distance(centerLat, centerLon, org.Building.Latitude, org.Building.Longitude) <= radiusKm {
			result = append(result, org)
		}
	}
	return result
}

// FilterByRectangle keeps the organizations whose building lies inside rect, edges
// included. Input order is preserved.
func FilterByRectangle(orgs []models.Organization, rect Rectangle) []models.Organization {
	bound := rect.Bound()
	result := make([]models.Organization, 0, len(orgs))
	for _, org := range orgs {
		if bound.Contains(org.Building.Point()) {
			result = append(result, org)
		}
	}
	return result
}
