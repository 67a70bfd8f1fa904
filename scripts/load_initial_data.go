package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"org-directory/internal/config"
	"org-directory/internal/database"
	"org-directory/internal/repository"
	"org-directory/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type BuildingData struct {
	Address   string  `yaml:"address"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Parent references another activity by name and must appear earlier in the file
type ActivityData struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
}

type OrganizationData struct {
	Name         string   `yaml:"name"`
	PhoneNumbers []string `yaml:"phone_numbers"`
	Building     string   `yaml:"building"`
	Activities   []string `yaml:"activities"`
}

// File structures
type BuildingsFile struct {
	Buildings []BuildingData `yaml:"buildings"`
}

type ActivitiesFile struct {
	Activities []ActivityData `yaml:"activities"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type seedServices struct {
	buildings     *service.BuildingService
	activities    *service.ActivityService
	organizations *service.OrganizationService
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(context.Background(), db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}

		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func newSeedServices(db *gorm.DB) *seedServices {
	validator := service.NewValidator()
	buildingRepo := repository.NewBuildingRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	tree := service.NewActivityTreeResolver(activityRepo, nil)

	return &seedServices{
		buildings:     service.NewBuildingService(buildingRepo, validator),
		activities:    service.NewActivityService(activityRepo, tree, validator),
		organizations: service.NewOrganizationService(repository.NewOrganizationRepository(db), buildingRepo, activityRepo, tree, validator),
	}
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, dataDir string) error {
	var buildingsFile BuildingsFile
	if err := readYAML(filepath.Join(dataDir, "buildings.yaml"), &buildingsFile); err != nil {
		return fmt.Errorf("failed to load buildings: %w", err)
	}
	var activitiesFile ActivitiesFile
	if err := readYAML(filepath.Join(dataDir, "activities.yaml"), &activitiesFile); err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	var organizationsFile OrganizationsFile
	if err := readYAML(filepath.Join(dataDir, "organizations.yaml"), &organizationsFile); err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	svc := newSeedServices(db)

	existing, err := svc.buildings.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing buildings: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("⚠️  Database already holds %d buildings, skipping seed", len(existing))
		return nil
	}

	buildingMap, err := createBuildings(ctx, svc, buildingsFile.Buildings)
	if err != nil {
		return err
	}
	log.Printf("📋 Buildings: %d created", len(buildingMap))

	activityMap, err := createActivities(ctx, svc, activitiesFile.Activities)
	if err != nil {
		return err
	}
	log.Printf("📋 Activities: %d created", len(activityMap))

	created, err := createOrganizations(ctx, svc, organizationsFile.Organizations, buildingMap, activityMap)
	if err != nil {
		return err
	}
	log.Printf("📋 Organizations: %d created", created)

	return nil
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func createBuildings(ctx context.Context, svc *seedServices, buildings []BuildingData) (map[string]uint, error) {
	ids := make(map[string]uint, len(buildings))
	for _, b := range buildings {
		lat, lon := b.Latitude, b.Longitude
		resp, err := svc.buildings.Create(ctx, &service.CreateBuildingRequest{
			Address:   b.Address,
			Latitude:  &lat,
			Longitude: &lon,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create building %s: %w", b.Address, err)
		}
		ids[b.Address] = resp.ID
	}
	return ids, nil
}

func createActivities(ctx context.Context, svc *seedServices, activities []ActivityData) (map[string]uint, error) {
	ids := make(map[string]uint, len(activities))
	for _, a := range activities {
		req := &service.CreateActivityRequest{Name: a.Name}
		if a.Parent != "" {
			parentID, ok := ids[a.Parent]
			if !ok {
				return nil, fmt.Errorf("activity %s references unknown parent %s", a.Name, a.Parent)
			}
			req.ParentID = &parentID
		}

		resp, err := svc.activities.Create(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to create activity %s: %w", a.Name, err)
		}
		ids[a.Name] = resp.ID
	}
	return ids, nil
}

func createOrganizations(ctx context.Context, svc *seedServices, orgs []OrganizationData, buildings, activities map[string]uint) (int, error) {
	created := 0
	for _, o := range orgs {
		buildingID, ok := buildings[o.Building]
		if !ok {
			return created, fmt.Errorf("organization %s references unknown building %s", o.Name, o.Building)
		}

		activityIDs := make([]uint, 0, len(o.Activities))
		for _, name := range o.Activities {
			id, ok := activities[name]
			if !ok {
				return created, fmt.Errorf("organization %s references unknown activity %s", o.Name, name)
			}
			activityIDs = append(activityIDs, id)
		}

		if _, err := svc.organizations.Create(ctx, &service.CreateOrganizationRequest{
			Name:         o.Name,
			PhoneNumbers: o.PhoneNumbers,
			BuildingID:   buildingID,
			ActivityIDs:  activityIDs,
		}); err != nil {
			return created, fmt.Errorf("failed to create organization %s: %w", o.Name, err)
		}
		created++
	}
	return created, nil
}
