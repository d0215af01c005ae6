package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubListingRepo struct {
	listing   *models.Listing
	updateErr error

	lastSet   bson.M
	lastUnset bson.M
}

func (s *stubListingRepo) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	return listing, nil
}

func (s *stubListingRepo) GetListing(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	if s.listing == nil {
		return nil, models.ErrListingNotFound
	}
	return s.listing, nil
}

func (s *stubListingRepo) ListingExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return s.listing != nil, nil
}

func (s *stubListingRepo) UpdateListing(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) (*models.Listing, error) {
	s.lastSet = set
	s.lastUnset = unset
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.listing, nil
}

func (s *stubListingRepo) DeleteListing(ctx context.Context, id primitive.ObjectID) error {
	return nil
}

func (s *stubListingRepo) SearchListings(ctx context.Context, params models.SearchParams) ([]*models.Listing, error) {
	return nil, nil
}

func (s *stubListingRepo) ListByUser(ctx context.Context, userRef string) ([]*models.Listing, error) {
	return nil, nil
}

func testListingService(repo *stubListingRepo, locations *stubLocationRepo) *ListingService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewListingService(repo, locations, nil, logger, "/placeholder.jpg")
}

func ownedListing() *models.Listing {
	return &models.Listing{
		ID:          primitive.NewObjectID(),
		Title:       "Flat in Maadi",
		Description: "Two bedrooms",
		Price:       9000,
		Purpose:     models.PurposeRent,
		Category:    "residential",
		UserRef:     "owner-1",
	}
}

func TestUpdateListingCoercesSharedFields(t *testing.T) {
	repo := &stubListingRepo{listing: ownedListing()}
	ls := testListingService(repo, &stubLocationRepo{})

	_, err := ls.UpdateListing(context.Background(), repo.listing.ID, "owner-1", map[string]any{
		"title":       123,
		"price":       "expensive",
		"description": "Renovated two bedrooms",
	})
	require.NoError(t, err)

	// malformed values are dropped, never stored with the wrong type
	assert.NotContains(t, repo.lastSet, "title")
	assert.NotContains(t, repo.lastSet, "price")
	assert.Equal(t, "Renovated two bedrooms", repo.lastSet["description"])
}

func TestUpdateListingParsesNumericPriceString(t *testing.T) {
	repo := &stubListingRepo{listing: ownedListing()}
	ls := testListingService(repo, &stubLocationRepo{})

	_, err := ls.UpdateListing(context.Background(), repo.listing.ID, "owner-1", map[string]any{
		"price": "12000",
	})
	require.NoError(t, err)
	assert.Equal(t, 12000.0, repo.lastSet["price"])
}

func TestUpdateListingRejectsUnknownPurpose(t *testing.T) {
	repo := &stubListingRepo{listing: ownedListing()}
	ls := testListingService(repo, &stubLocationRepo{})

	_, err := ls.UpdateListing(context.Background(), repo.listing.ID, "owner-1", map[string]any{
		"purpose": "lease",
	})
	assert.ErrorIs(t, err, ErrInvalidPurpose)
}

func TestUpdateListingIgnoresForeignFields(t *testing.T) {
	repo := &stubListingRepo{listing: ownedListing()}
	ls := testListingService(repo, &stubLocationRepo{})

	_, err := ls.UpdateListing(context.Background(), repo.listing.ID, "owner-1", map[string]any{
		"userRef":     "someone-else",
		"negotiable":  true,
		"description": "still mine",
	})
	require.NoError(t, err)
	assert.NotContains(t, repo.lastSet, "userRef")
	assert.NotContains(t, repo.lastSet, "negotiable")
}

func otherCityLocation() map[string]any {
	return map[string]any{
		"governorate":     map[string]any{"name": "Cairo", "slug": "cairo"},
		"city":            map[string]any{"name": "Other", "slug": "other"},
		"city_other_text": "New Zone",
	}
}

func TestUpdateListingLogsSuggestionAfterSuccess(t *testing.T) {
	repo := &stubListingRepo{listing: ownedListing()}
	locations := &stubLocationRepo{}
	ls := testListingService(repo, locations)

	_, err := ls.UpdateListing(context.Background(), repo.listing.ID, "owner-1", map[string]any{
		"location": otherCityLocation(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cairo/New Zone"}, locations.suggestions)
}

func TestUpdateListingSkipsSuggestionOnFailure(t *testing.T) {
	repo := &stubListingRepo{listing: ownedListing(), updateErr: errors.New("socket closed")}
	locations := &stubLocationRepo{}
	ls := testListingService(repo, locations)

	_, err := ls.UpdateListing(context.Background(), repo.listing.ID, "owner-1", map[string]any{
		"location": otherCityLocation(),
	})
	require.Error(t, err)
	assert.Empty(t, locations.suggestions)
}
