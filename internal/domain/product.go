package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Brand       string             `bson:"brand"`
	Price       int64              `bson:"price"`
	Category    string             `bson:"category"`
	ImageURL    string             `bson:"image_url"`
	Rating      float64            `bson:"rating"`
	Author      string             `bson:"author"`
	Description string             `bson:"description"`
	Stock       int64              `bson:"stock"`
	Promo       bool               `bson:"promo"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	ImageURL  string             `bson:"image_url"`
	Author    string             `bson:"author"`
	IsActive  bool               `bson:"is_active"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

type Banner struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	ImageURL    string             `bson:"image_url"`
	Author      string             `bson:"author"`
	IsActive    bool               `bson:"is_active"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}
