package models

// Service is a booked workshop visit. Timestamp attributes hold the value as
// stored so that malformed data still reaches the formatter untouched.
// Service ids are unique per user only, so Mongo keys them by (uid, serviceId).
type Service struct {
	ID             string      `bson:"serviceId" firestore:"-" json:"id"`
	UserID         string      `bson:"uid" firestore:"-" json:"uid"`
	VehicleID      string      `bson:"vehicleId" firestore:"vehicleId" json:"vehicleId"`
	WorkshopID     string      `bson:"workshopId" firestore:"workshopId" json:"workshopId"`
	BookedDateTime interface{} `bson:"bookedDateTime" firestore:"bookedDateTime" json:"bookedDateTime"`
	CreatedAt      interface{} `bson:"createdAt" firestore:"createdAt" json:"createdAt"`
	Notes          string      `bson:"notes" firestore:"notes" json:"notes"`
}

// StatusTimelineEntry is one milestone of a service. CompletedAt is nil until
// the workshop marks the step done. Entry ids repeat across services.
type StatusTimelineEntry struct {
	ID          string      `bson:"statusId" firestore:"-" json:"id"`
	UserID      string      `bson:"uid" firestore:"-" json:"-"`
	ServiceID   string      `bson:"serviceId" firestore:"-" json:"-"`
	Status      string      `bson:"status" firestore:"status" json:"status"`
	CompletedAt interface{} `bson:"completedAt" firestore:"completedAt" json:"completedAt"`
}
