package models

import "time"

// Invoice is the stored form of a service invoice. There is at most one
// invoice per service within a user's invoices.
type Invoice struct {
	ID         string      `bson:"_id" firestore:"-" json:"id"`
	UserID     string      `bson:"uid" firestore:"-" json:"-"`
	VehicleID  string      `bson:"vehicleId" firestore:"vehicleId" json:"vehicleId"`
	ServiceID  string      `bson:"serviceId" firestore:"serviceId" json:"serviceId"`
	WorkshopID string      `bson:"workshopId" firestore:"workshopId" json:"workshopId"`
	Price      float64     `bson:"price" firestore:"price" json:"price"`
	Paid       bool        `bson:"paid" firestore:"paid" json:"paid"`
	IssuedAt   interface{} `bson:"issuedAt" firestore:"issuedAt" json:"issuedAt"`
	CreatedAt  interface{} `bson:"createdAt" firestore:"createdAt" json:"createdAt"`
	UpdatedAt  interface{} `bson:"updatedAt" firestore:"updatedAt" json:"updatedAt"`
}

// NewInvoice is written by the invoice endpoint. VehicleID and WorkshopID are
// omitted from the stored document when the service could not be found.
type NewInvoice struct {
	VehicleID  *string   `bson:"vehicleId,omitempty" firestore:"vehicleId,omitempty"`
	ServiceID  string    `bson:"serviceId" firestore:"serviceId"`
	WorkshopID *string   `bson:"workshopId,omitempty" firestore:"workshopId,omitempty"`
	Price      float64   `bson:"price" firestore:"price"`
	Paid       bool      `bson:"paid" firestore:"paid"`
	IssuedAt   time.Time `bson:"issuedAt" firestore:"issuedAt"`
	CreatedAt  time.Time `bson:"createdAt" firestore:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" firestore:"updatedAt"`
}
