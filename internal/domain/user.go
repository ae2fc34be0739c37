package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ExternalID     string             `bson:"external_id"`
	FirstName      string             `bson:"first_name"`
	LastName       string             `bson:"last_name"`
	Username       string             `bson:"username,omitempty"`
	Email          string             `bson:"email"`
	PhoneNumber    string             `bson:"phone_number"`
	HashedPassword string             `bson:"hashed_password"`
	Role           string             `bson:"role"`
	ImageURL       string             `bson:"image_url"`
	Address        string             `bson:"address,omitempty"`
	ZipCode        string             `bson:"zip_code,omitempty"`
	City           string             `bson:"city,omitempty"`
	Province       string             `bson:"province,omitempty"`
	Country        string             `bson:"country,omitempty"`
	IsVerified     bool               `bson:"is_verified"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}
