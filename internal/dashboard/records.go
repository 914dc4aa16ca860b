package dashboard

// TimelineEntry is a status timeline entry prepared for display and editing.
type TimelineEntry struct {
	Status      string `json:"status"`
	CompletedAt string `json:"completedAt"` // datetime-local value, "" when unset
	Display     string `json:"display"`
}

// VehicleInfo identifies the serviced vehicle. Model and PlateNumber are empty
// when the service has no vehicle or the vehicle document is missing.
type VehicleInfo struct {
	ID          string `json:"id"`
	Model       string `json:"model"`
	PlateNumber string `json:"plateNumber"`
}

// InvoiceSummary is the invoice shown next to a service.
type InvoiceSummary struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	Paid     bool    `json:"paid"`
	IssuedAt string  `json:"issuedAt"`
}

// FeedbackItem is one customer review.
type FeedbackItem struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// ServiceRecord is the flattened view of one service.
type ServiceRecord struct {
	ID             string                   `json:"id"`
	UID            string                   `json:"uid"`
	UserName       string                   `json:"userName"`
	UserEmail      string                   `json:"userEmail"`
	BookedDateTime string                   `json:"bookedDateTime"`
	CreatedAt      string                   `json:"createdAt"`
	Notes          string                   `json:"notes"`
	Timeline       map[string]TimelineEntry `json:"timeline"`
	Vehicle        VehicleInfo              `json:"vehicle"`
	Invoice        *InvoiceSummary          `json:"invoice"`
	Feedbacks      []FeedbackItem           `json:"feedbacks"`
}
