// Package events publishes dashboard changes for other workshop systems.
package events

import (
	"context"
	"time"
)

// Topic suffixes, appended to the configured prefix.
const (
	TopicTimelineUpdated = "timeline/updated"
	TopicInvoiceCreated  = "invoices/created"
)

// TimelineUpdated is published after a timeline entry's completion time changes.
type TimelineUpdated struct {
	UID         string     `json:"uid"`
	ServiceID   string     `json:"serviceId"`
	StatusID    string     `json:"statusId"`
	CompletedAt *time.Time `json:"completedAt"`
}

// InvoiceCreated is published after an invoice is written.
type InvoiceCreated struct {
	UID       string  `json:"uid"`
	ServiceID string  `json:"serviceId"`
	InvoiceID string  `json:"invoiceId"`
	Price     float64 `json:"price"`
}

// Publisher sends an event as JSON to a topic.
type Publisher interface {
	PublishJSON(ctx context.Context, topic string, v any) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishJSON(context.Context, string, any) error { return nil }
func (NopPublisher) Close() error                                   { return nil }
