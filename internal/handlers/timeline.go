package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/trackpit/internal/db"
	"github.com/ukydev/trackpit/internal/events"
	"github.com/ukydev/trackpit/internal/timefmt"
)

const publishTimeout = 5 * time.Second

// TimelineHandler updates completion times of status timeline entries
type TimelineHandler struct {
	store     db.WorkshopStore
	publisher events.Publisher
}

// NewTimelineHandler creates a new timeline handler
func NewTimelineHandler(store db.WorkshopStore, publisher events.Publisher) *TimelineHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &TimelineHandler{store: store, publisher: publisher}
}

// Update handles POST /update/{uid}/{serviceId}/{statusId}. An empty
// completedAt clears the completion time.
func (h *TimelineHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	serviceID := r.PathValue("serviceId")
	statusID := r.PathValue("statusId")
	logger := log.WithFields(log.Fields{"uid": uid, "service_id": serviceID, "status_id": statusID})

	var completedAt *time.Time
	if raw := strings.TrimSpace(r.PostFormValue("completedAt")); raw != "" {
		parsed, err := timefmt.ParseLocalInput(raw)
		if err != nil {
			writeStatus(w, http.StatusBadRequest, "Invalid completedAt")
			return
		}
		completedAt = &parsed
	}

	err := h.store.UpdateTimelineCompletedAt(r.Context(), uid, serviceID, statusID, completedAt)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeStatus(w, http.StatusNotFound, "Status entry not found")
			return
		}
		logger.WithError(err).Error("Failed to update timeline entry")
		writeStatus(w, http.StatusInternalServerError, "Failed to save")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), publishTimeout)
	defer cancel()
	event := events.TimelineUpdated{UID: uid, ServiceID: serviceID, StatusID: statusID, CompletedAt: completedAt}
	if err := h.publisher.PublishJSON(ctx, events.TopicTimelineUpdated, event); err != nil {
		logger.WithError(err).Warn("Failed to publish timeline event")
	}

	logger.Info("Timeline entry updated")
	writeStatus(w, http.StatusOK, "Saved successfully")
}
