// Package dashboard assembles the per-service view shown by the dashboard.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trackpit/internal/db"
	"github.com/ukydev/trackpit/internal/models"
	"github.com/ukydev/trackpit/internal/timefmt"
)

// Builder walks the store and produces one ServiceRecord per service.
type Builder struct {
	store db.WorkshopStore
}

// NewBuilder creates a builder reading from store.
func NewBuilder(store db.WorkshopStore) *Builder {
	return &Builder{store: store}
}

// Build returns every service of every user in store iteration order. The
// result is not a snapshot: writes made while building may or may not show.
func (b *Builder) Build(ctx context.Context) ([]ServiceRecord, error) {
	users, err := b.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	records := []ServiceRecord{}
	for _, user := range users {
		services, err := b.store.ListServices(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		for _, svc := range services {
			record, err := b.buildService(ctx, user, svc)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}

	log.WithFields(log.Fields{"users": len(users), "services": len(records)}).Debug("Built dashboard")
	return records, nil
}

func (b *Builder) buildService(ctx context.Context, user models.User, svc models.Service) (ServiceRecord, error) {
	record := ServiceRecord{
		ID:             svc.ID,
		UID:            user.ID,
		UserName:       user.FullName,
		UserEmail:      user.Email,
		BookedDateTime: timefmt.Display(svc.BookedDateTime),
		CreatedAt:      timefmt.Display(svc.CreatedAt),
		Notes:          svc.Notes,
		Timeline:       map[string]TimelineEntry{},
		Vehicle:        VehicleInfo{ID: svc.VehicleID},
		Feedbacks:      []FeedbackItem{},
	}

	entries, err := b.store.ListTimeline(ctx, user.ID, svc.ID)
	if err != nil {
		return record, err
	}
	for _, e := range entries {
		record.Timeline[e.ID] = TimelineEntry{
			Status:      e.Status,
			CompletedAt: timefmt.LocalInput(e.CompletedAt),
			Display:     timefmt.Display(e.CompletedAt),
		}
	}

	if svc.VehicleID != "" {
		vehicle, err := b.store.FindVehicle(ctx, user.ID, svc.VehicleID)
		switch {
		case err == nil:
			record.Vehicle.Model = vehicle.Model
			record.Vehicle.PlateNumber = vehicle.PlateNumber
		case !errors.Is(err, db.ErrNotFound):
			return record, fmt.Errorf("find vehicle %s: %w", svc.VehicleID, err)
		}
	}

	invoices, err := b.store.FindInvoicesByService(ctx, user.ID, svc.ID, 0)
	if err != nil {
		return record, err
	}
	if inv, ok := LatestInvoice(invoices); ok {
		record.Invoice = &InvoiceSummary{
			ID:       inv.ID,
			Price:    inv.Price,
			Paid:     inv.Paid,
			IssuedAt: timefmt.Display(inv.IssuedAt),
		}
	}

	if svc.ID == "" {
		return record, nil
	}
	feedback, err := b.store.FindFeedbackByService(ctx, svc.ID)
	if err != nil {
		return record, err
	}
	for _, f := range feedback {
		record.Feedbacks = append(record.Feedbacks, FeedbackItem{
			ID:        f.ID,
			Email:     f.Email,
			Rating:    f.Rating,
			Message:   f.Message,
			CreatedAt: timefmt.Display(f.CreatedAt),
		})
	}
	return record, nil
}

// LatestInvoice picks the most recently issued invoice. Invoices without an
// issue instant lose to any that have one; ties keep store order.
func LatestInvoice(invoices []models.Invoice) (models.Invoice, bool) {
	if len(invoices) == 0 {
		return models.Invoice{}, false
	}
	best := 0
	bestAt, bestOK := timefmt.Instant(invoices[0].IssuedAt)
	for i := 1; i < len(invoices); i++ {
		at, ok := timefmt.Instant(invoices[i].IssuedAt)
		if ok && (!bestOK || at.After(bestAt)) {
			best, bestAt, bestOK = i, at, true
		}
	}
	return invoices[best], true
}
