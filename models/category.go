package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category groups products; stored in the "categories" collection.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
