package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trackpit/internal/db"
	"github.com/ukydev/trackpit/internal/events"
	"github.com/ukydev/trackpit/internal/models"
)

// InvoiceHandler creates service invoices
type InvoiceHandler struct {
	store     db.WorkshopStore
	publisher events.Publisher
	now       func() time.Time
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(store db.WorkshopStore, publisher events.Publisher) *InvoiceHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &InvoiceHandler{store: store, publisher: publisher, now: time.Now}
}

// Create handles POST /invoice/{uid}/{serviceId}
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	serviceID := r.PathValue("serviceId")
	logger := log.WithFields(log.Fields{"uid": uid, "service_id": serviceID})

	rawPrice := strings.TrimSpace(r.PostFormValue("price"))
	if rawPrice == "" {
		writeStatus(w, http.StatusBadRequest, "Price required")
		return
	}
	price, err := parsePrice(rawPrice)
	if err != nil {
		writeStatus(w, http.StatusBadRequest, "Invalid price")
		return
	}

	existing, err := h.store.FindInvoicesByService(r.Context(), uid, serviceID, 1)
	if err != nil {
		logger.WithError(err).Error("Failed to look up invoices")
		writeStatus(w, http.StatusInternalServerError, "Failed to create invoice")
		return
	}
	if len(existing) > 0 {
		writeStatus(w, http.StatusBadRequest, "Invoice already exists")
		return
	}

	invoice := models.NewInvoice{ServiceID: serviceID, Price: price, Paid: false}

	svc, err := h.store.FindService(r.Context(), uid, serviceID)
	switch {
	case err == nil:
		if svc.VehicleID != "" {
			invoice.VehicleID = &svc.VehicleID
		}
		if svc.WorkshopID != "" {
			invoice.WorkshopID = &svc.WorkshopID
		}
	case errors.Is(err, db.ErrNotFound):
		logger.Warn("Creating invoice for unknown service")
	default:
		logger.WithError(err).Error("Failed to read service")
		writeStatus(w, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	now := h.now().UTC()
	invoice.IssuedAt = now
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	id, err := h.store.CreateInvoice(r.Context(), uid, invoice)
	if err != nil {
		if errors.Is(err, db.ErrInvoiceExists) {
			writeStatus(w, http.StatusBadRequest, "Invoice already exists")
			return
		}
		logger.WithError(err).Error("Failed to create invoice")
		writeStatus(w, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), publishTimeout)
	defer cancel()
	event := events.InvoiceCreated{UID: uid, ServiceID: serviceID, InvoiceID: id, Price: price}
	if err := h.publisher.PublishJSON(ctx, events.TopicInvoiceCreated, event); err != nil {
		logger.WithError(err).Warn("Failed to publish invoice event")
	}

	logger.WithField("invoice_id", id).Info("Invoice created")
	writeStatus(w, http.StatusOK, "Invoice created successfully")
}

// parsePrice accepts finite, non-negative decimals
func parsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, strconv.ErrRange
	}
	return price, nil
}
