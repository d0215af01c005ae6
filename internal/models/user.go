package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserColName = "users"

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username      string             `bson:"username" json:"username" validate:"required,min=3"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	Password      string             `bson:"password" json:"-"`
	GoogleSub     string             `bson:"googleSub,omitempty" json:"-"`
	Avatar        string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	EmailVerified bool               `bson:"emailVerified" json:"emailVerified"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the safe shape for unauthenticated profile reads.
type PublicUser struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Avatar    string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserUpdate is the allow-list of profile fields a user may change.
// Anything else in the request body never reaches storage.
type UserUpdate struct {
	Username *string `bson:"username,omitempty" json:"username,omitempty"`
	Email    *string `bson:"email,omitempty" json:"email,omitempty"`
	Password *string `bson:"password,omitempty" json:"password,omitempty"`
	Avatar   *string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

type UserRepo interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetPublicUser(ctx context.Context, id primitive.ObjectID) (*PublicUser, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update UserUpdate) (*User, error)
	MarkEmailVerified(ctx context.Context, id primitive.ObjectID) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	DeleteUserCascade(ctx context.Context, id primitive.ObjectID) (*CascadeResult, error)
}

// CascadeResult reports what an account deletion removed, plus the storage
// URLs left for best-effort cleanup after the database work is done.
type CascadeResult struct {
	ListingsDeleted  int64
	FavoritesDeleted int64
	ImageURLs        []string
}
