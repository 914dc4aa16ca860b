package models

// SeedUser bundles a user with everything stored beneath it, plus the
// feedback left for its services. Used by the demo data seeder.
type SeedUser struct {
	User     User
	Vehicles []Vehicle
	Services []SeedService
	Feedback []Feedback
}

// SeedService is a service together with its status timeline.
type SeedService struct {
	Service  Service
	Timeline []StatusTimelineEntry
}
