package services

import (
	"context"
	"fmt"

	"github.com/aqardot/aqardot-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultFavoritesLimit = 24
	MaxFavoritesLimit     = 60
)

type FavoriteService struct {
	favoriteRepo models.FavoriteRepo
	listingRepo  models.ListingRepo
}

func NewFavoriteService(favoriteRepo models.FavoriteRepo, listingRepo models.ListingRepo) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

// AddFavorite checks the listing still exists, then upserts the pair.
// Adding an already-favorited listing succeeds without a second row.
func (fs *FavoriteService) AddFavorite(ctx context.Context, userID, listingID primitive.ObjectID) error {
	if userID.IsZero() || listingID.IsZero() {
		return fmt.Errorf("invalid user or listing ID")
	}

	exists, err := fs.listingRepo.ListingExists(ctx, listingID)
	if err != nil {
		return err
	}
	if !exists {
		return models.ErrListingNotFound
	}

	return fs.favoriteRepo.AddFavorite(ctx, userID, listingID)
}

func (fs *FavoriteService) RemoveFavorite(ctx context.Context, userID, listingID primitive.ObjectID) error {
	if userID.IsZero() || listingID.IsZero() {
		return fmt.Errorf("invalid user or listing ID")
	}
	return fs.favoriteRepo.RemoveFavorite(ctx, userID, listingID)
}

func (fs *FavoriteService) ListFavoriteIDs(ctx context.Context, userID primitive.ObjectID) ([]string, error) {
	if userID.IsZero() {
		return nil, fmt.Errorf("invalid user ID")
	}
	return fs.favoriteRepo.ListFavoriteIDs(ctx, userID)
}

func (fs *FavoriteService) ListFavorites(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]*models.Listing, int, int, int, error) {
	if userID.IsZero() {
		return nil, 0, 0, 0, fmt.Errorf("invalid user ID")
	}
	if limit <= 0 {
		limit = DefaultFavoritesLimit
	}
	if limit > MaxFavoritesLimit {
		limit = MaxFavoritesLimit
	}
	if page < 1 {
		page = 1
	}

	results, total, err := fs.favoriteRepo.ListFavorites(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	return results, total, page, limit, nil
}
