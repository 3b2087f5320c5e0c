package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered customer or administrator. Password holds the bcrypt
// hash, never the plain secret.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	IsAdmin  bool               `bson:"isAdmin" json:"is_admin"`
}
