package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user"`
	ProductID primitive.ObjectID `bson:"product"`
	Quantity  int64              `bson:"quantity"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
	// Product is populated by lookups and never stored.
	Product *Product `bson:"-"`
}

type Wishlist struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user"`
	ProductID primitive.ObjectID `bson:"product"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
	Product   *Product           `bson:"-"`
}
