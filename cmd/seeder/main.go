package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/ukydev/trackpit/internal/config"
	"github.com/ukydev/trackpit/internal/db"
	"github.com/ukydev/trackpit/internal/models"
)

// Workshop stages in the order a car moves through them
var stages = []string{"Booked", "Received", "Inspection", "Repair", "Quality Check", "Ready for Pickup"}

var (
	firstNames = []string{"Aina", "Hafiz", "Mei Ling", "Ravi", "Siti", "Jason", "Nurul", "Arjun"}
	lastNames  = []string{"Rahman", "Tan", "Kumar", "Lim", "Ismail", "Wong", "Abdullah", "Lee"}
	carModels  = []string{"Perodua Myvi", "Proton Saga", "Honda City", "Toyota Vios", "Proton X50", "Perodua Axia"}
	workshops  = []string{"ws-petaling-jaya", "ws-cheras", "ws-shah-alam"}
	notes      = []string{"", "Engine light on", "Brake noise when stopping", "Regular 10k km service", "Aircond not cold"}
	reviews    = []string{"Fast and friendly", "Fixed on the first try", "Waited longer than quoted", "Clear explanation of the repair"}
)

type generator struct {
	rng *rand.Rand
	now time.Time
}

func newGenerator(seed int64, now time.Time) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed)), now: now.UTC()}
}

func (g *generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *generator) plateNumber() string {
	letters := "ABCDJKMNPRSTVW"
	var b strings.Builder
	b.WriteByte('W')
	for i := 0; i < 2; i++ {
		b.WriteByte(letters[g.rng.Intn(len(letters))])
	}
	fmt.Fprintf(&b, " %d", 1000+g.rng.Intn(9000))
	return b.String()
}

// user builds one customer with a vehicle per service. Every service gets the
// full list of stages; the first few are completed one hour apart.
func (g *generator) user(servicesPerUser int) models.SeedUser {
	first, last := g.pick(firstNames), g.pick(lastNames)
	uid := uuid.NewString()
	seed := models.SeedUser{
		User: models.User{
			ID:       uid,
			FullName: first + " " + last,
			Email:    strings.ToLower(strings.ReplaceAll(first, " ", "")+"."+last) + "@example.com",
		},
	}

	for i := 0; i < servicesPerUser; i++ {
		vehicle := models.Vehicle{
			ID:          uuid.NewString(),
			UserID:      uid,
			Model:       g.pick(carModels),
			PlateNumber: g.plateNumber(),
		}
		seed.Vehicles = append(seed.Vehicles, vehicle)

		booked := g.now.Add(-time.Duration(g.rng.Intn(72)+1) * time.Hour).Truncate(time.Minute)
		service := models.Service{
			ID:             uuid.NewString(),
			UserID:         uid,
			VehicleID:      vehicle.ID,
			WorkshopID:     g.pick(workshops),
			BookedDateTime: booked,
			CreatedAt:      booked.Add(-24 * time.Hour),
			Notes:          g.pick(notes),
		}

		done := g.rng.Intn(len(stages) + 1)
		timeline := make([]models.StatusTimelineEntry, 0, len(stages))
		for n, stage := range stages {
			entry := models.StatusTimelineEntry{
				ID:        fmt.Sprintf("%02d-%s", n+1, strings.ToLower(strings.ReplaceAll(stage, " ", "-"))),
				UserID:    uid,
				ServiceID: service.ID,
				Status:    stage,
			}
			if n < done {
				entry.CompletedAt = booked.Add(time.Duration(n) * time.Hour)
			}
			timeline = append(timeline, entry)
		}
		seed.Services = append(seed.Services, models.SeedService{Service: service, Timeline: timeline})

		if done == len(stages) && g.rng.Intn(2) == 0 {
			seed.Feedback = append(seed.Feedback, models.Feedback{
				ID:        uuid.NewString(),
				ServiceID: service.ID,
				Email:     seed.User.Email,
				Rating:    3 + g.rng.Intn(3),
				Message:   g.pick(reviews),
				CreatedAt: booked.Add(time.Duration(len(stages)) * time.Hour),
			})
		}
	}
	return seed
}

func main() {
	users := flag.Int("users", 5, "number of customers to create")
	services := flag.Int("services", 2, "services per customer")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	if *users < 1 || *services < 1 {
		fmt.Fprintln(os.Stderr, "--users and --services must be positive")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	cfg.ConfigureLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := db.Open(ctx, cfg.Store)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to store")
	}
	defer store.Close(context.Background())

	log.WithFields(log.Fields{
		"users":    *users,
		"services": *services,
		"backend":  cfg.Store.Backend,
	}).Info("Seeding demo data")

	g := newGenerator(*seed, time.Now())
	for i := 0; i < *users; i++ {
		u := g.user(*services)
		if err := store.SeedUser(ctx, u); err != nil {
			log.WithError(err).WithField("uid", u.User.ID).Error("Failed to seed user")
			continue
		}
		log.WithFields(log.Fields{
			"uid":      u.User.ID,
			"name":     u.User.FullName,
			"services": len(u.Services),
			"feedback": len(u.Feedback),
		}).Info("Seeded user")
	}
	log.Info("Seeding completed")
}
