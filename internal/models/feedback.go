package models

// Feedback is a customer review of a service. Feedback lives in a single
// global collection rather than under a user.
type Feedback struct {
	ID        string      `bson:"_id" firestore:"-" json:"id"`
	ServiceID string      `bson:"serviceId" firestore:"serviceId" json:"serviceId"`
	Email     string      `bson:"email" firestore:"email" json:"email"`
	Rating    int         `bson:"rating" firestore:"rating" json:"rating"`
	Message   string      `bson:"message" firestore:"message" json:"message"`
	CreatedAt interface{} `bson:"createdAt" firestore:"createdAt" json:"createdAt"`
}
