package models

// User is a workshop customer. Users are created by the mobile app; the
// dashboard only reads them.
type User struct {
	ID       string `bson:"_id" firestore:"-" json:"id"`
	FullName string `bson:"fullName" firestore:"fullName" json:"fullName"`
	Email    string `bson:"email" firestore:"email" json:"email"`
}
