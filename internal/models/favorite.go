package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const FavoriteColName = "favorites"

// Favorite is one (user, listing) pair; the unique index on the pair makes
// concurrent duplicate adds resolve to a single row.
type Favorite struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId" validate:"required"`
	ListingID primitive.ObjectID `bson:"listingId" json:"listingId" validate:"required"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

type FavoriteRepo interface {
	AddFavorite(ctx context.Context, userID, listingID primitive.ObjectID) error
	RemoveFavorite(ctx context.Context, userID, listingID primitive.ObjectID) error
	ListFavoriteIDs(ctx context.Context, userID primitive.ObjectID) ([]string, error)
	ListFavorites(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*Listing, int, error)
}
