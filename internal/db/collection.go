package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trackpit/internal/models"
)

var (
	// ErrNotFound is returned when an addressed document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrInvoiceExists is returned when a service already has an invoice.
	ErrInvoiceExists = errors.New("invoice already exists")
)

// WorkshopStore defines the document store operations used by the dashboard.
// Paths follow users/{uid}/services/{serviceId}/statusTimeline/{statusId},
// users/{uid}/vehicles, users/{uid}/invoices and the global feedback collection.
type WorkshopStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListServices(ctx context.Context, uid string) ([]models.Service, error)
	FindService(ctx context.Context, uid, serviceID string) (*models.Service, error)
	ListTimeline(ctx context.Context, uid, serviceID string) ([]models.StatusTimelineEntry, error)
	FindVehicle(ctx context.Context, uid, vehicleID string) (*models.Vehicle, error)
	// FindInvoicesByService returns up to limit invoices; limit 0 means all.
	FindInvoicesByService(ctx context.Context, uid, serviceID string, limit int) ([]models.Invoice, error)
	FindFeedbackByService(ctx context.Context, serviceID string) ([]models.Feedback, error)
	// UpdateTimelineCompletedAt writes completedAt only; nil stores null.
	UpdateTimelineCompletedAt(ctx context.Context, uid, serviceID, statusID string, completedAt *time.Time) error
	// CreateInvoice stores inv under a generated id unless the service
	// already has an invoice, in which case ErrInvoiceExists is returned.
	CreateInvoice(ctx context.Context, uid string, inv models.NewInvoice) (string, error)
	Close(ctx context.Context) error
}

// Seeder writes demo data.
type Seeder interface {
	SeedUser(ctx context.Context, seed models.SeedUser) error
}

// Backend is a store that can serve the dashboard and be seeded.
type Backend interface {
	WorkshopStore
	Seeder
}

func completedAtValue(completedAt *time.Time) interface{} {
	if completedAt == nil {
		return nil
	}
	return completedAt.UTC()
}

// keepDecoded appends v when err is nil. A document whose fields do not fit
// the model is logged and left out so the rest of the listing still renders.
func keepDecoded[T any](out []T, v T, path string, err error) []T {
	if err != nil {
		log.WithError(err).WithField("document", path).Warn("Skipping undecodable document")
		return out
	}
	return append(out, v)
}

// undecodable reports a single document that does not fit its model. It
// wraps ErrNotFound so callers treat it like a missing reference.
func undecodable(path string, err error) error {
	log.WithError(err).WithField("document", path).Warn("Undecodable document")
	return fmt.Errorf("%w: %s is undecodable: %v", ErrNotFound, path, err)
}
