package models

// Vehicle represents a customer vehicle stored under its owning user.
type Vehicle struct {
	ID          string `bson:"vehicleId" firestore:"-" json:"id"`
	UserID      string `bson:"uid" firestore:"-" json:"-"`
	Model       string `bson:"model" firestore:"model" json:"model"`
	PlateNumber string `bson:"plateNumber" firestore:"plateNumber" json:"plateNumber"`
}
