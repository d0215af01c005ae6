package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aqardot/aqardot-api/internal/helpers"
	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrNotOwner        = errors.New("not the owner")
	ErrInvalidPurpose  = errors.New("purpose must be rent or sale")
	ErrInvalidCategory = errors.New("unknown category")
)

type ListingService struct {
	listingRepo  models.ListingRepo
	locationRepo models.LocationRepo
	cld          *cloudinary.Cloudinary
	logger       *slog.Logger
	defaultImage string
}

type listingFavoritesCleaner interface {
	RemoveFavoritesForListing(ctx context.Context, listingID primitive.ObjectID) error
}

func NewListingService(listingRepo models.ListingRepo, locationRepo models.LocationRepo,
	cld *cloudinary.Cloudinary, logger *slog.Logger, defaultImage string) *ListingService {
	return &ListingService{
		listingRepo:  listingRepo,
		locationRepo: locationRepo,
		cld:          cld,
		logger:       logger,
		defaultImage: defaultImage,
	}
}

// decodeLocation reshapes the raw location value from the request body.
func decodeLocation(raw any) (*models.ListingLocation, error) {
	if raw == nil {
		return nil, models.ErrGovernorateRequired
	}
	buf, err := json.Marshal(raw)
	if err != nil {
		return nil, models.ErrGovernorateRequired
	}
	var loc models.ListingLocation
	if err := json.Unmarshal(buf, &loc); err != nil {
		return nil, models.ErrGovernorateRequired
	}
	if err := models.NormalizeLocation(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

func decodeImages(raw any, defaultImage string) []string {
	var images []string
	if arr, ok := raw.([]any); ok {
		for _, v := range arr {
			if s, ok := v.(string); ok && s != "" {
				images = append(images, s)
			}
		}
	}
	if len(images) == 0 {
		return []string{defaultImage}
	}
	return images
}

// CreateListing assembles a listing from the free-form request body: shared
// fields are validated, the location normalized, and exactly one attribute
// group composed for the category.
func (ls *ListingService) CreateListing(ctx context.Context, userRef string, body map[string]any) (*models.Listing, error) {
	title := models.StrOrNil(body["title"])
	description := models.StrOrNil(body["description"])
	price := models.NumOrNil(body["price"])
	purpose := models.StrOrNil(body["purpose"])
	category := models.StrOrNil(body["category"])

	if title == nil || description == nil || price == nil || purpose == nil || category == nil {
		return nil, ErrMissingFields
	}
	if *purpose != string(models.PurposeRent) && *purpose != string(models.PurposeSale) {
		return nil, ErrInvalidPurpose
	}
	if !models.IsValidCategory(*category) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, *category)
	}

	loc, err := decodeLocation(body["location"])
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		Title:           *title,
		Description:     *description,
		Price:           *price,
		Purpose:         models.Purpose(*purpose),
		Category:        *category,
		Images:          decodeImages(body["images"], ls.defaultImage),
		UserRef:         userRef,
		Location:        *loc,
		Address:         models.ComposeAddressDisplay(*loc),
		AttributeGroups: models.ComposeGroups(*category, body),
	}

	created, err := ls.listingRepo.CreateListing(ctx, listing)
	if err != nil {
		return nil, err
	}

	ls.logSuggestedArea(ctx, *loc)
	return created, nil
}

// logSuggestedArea records unknown "other" city texts once per governorate.
// Best-effort: a failure is logged and never reaches the caller.
func (ls *ListingService) logSuggestedArea(ctx context.Context, loc models.ListingLocation) {
	if loc.City.Slug != "other" || loc.CityOtherText == "" {
		return
	}
	cleaned := models.CleanSuggestedArea(loc.CityOtherText)
	if cleaned == "" {
		return
	}
	if err := ls.locationRepo.LogSuggestedArea(ctx, loc.Governorate.Slug, loc.Governorate.Name, cleaned); err != nil {
		ls.logger.Warn("suggested area upsert failed", "governorate", loc.Governorate.Slug, "error", err)
	}
}

func (ls *ListingService) GetListing(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	return ls.listingRepo.GetListing(ctx, id)
}

// UpdateListing applies an owner's partial update. Shared fields go through
// the same coercions as create, so a malformed value is dropped instead of
// stored with the wrong type. A category change rebuilds the attribute
// groups the same way create does; a location change re-runs normalization
// and recomputes the display address.
func (ls *ListingService) UpdateListing(ctx context.Context, id primitive.ObjectID, userRef string, body map[string]any) (*models.Listing, error) {
	existing, err := ls.listingRepo.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserRef != userRef {
		return nil, ErrNotOwner
	}

	set := bson.M{}
	unset := bson.M{}

	if v := models.StrOrNil(body["title"]); v != nil {
		set["title"] = *v
	}
	if v := models.StrOrNil(body["description"]); v != nil {
		set["description"] = *v
	}
	if v := models.NumOrNil(body["price"]); v != nil {
		set["price"] = *v
	}
	if v := models.StrOrNil(body["purpose"]); v != nil {
		if *v != string(models.PurposeRent) && *v != string(models.PurposeSale) {
			return nil, ErrInvalidPurpose
		}
		set["purpose"] = *v
	}

	var changedLoc *models.ListingLocation
	if rawLoc, ok := body["location"]; ok && rawLoc != nil {
		loc, err := decodeLocation(rawLoc)
		if err != nil {
			return nil, err
		}
		set["location"] = *loc
		set["address"] = models.ComposeAddressDisplay(*loc)
		changedLoc = loc
	}

	if rawCat := models.StrOrNil(body["category"]); rawCat != nil {
		if !models.IsValidCategory(*rawCat) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, *rawCat)
		}
		set["category"] = *rawCat

		groups := models.ComposeGroups(*rawCat, body)
		setOrUnsetGroup(set, unset, "residential", groups.Residential == nil, groups.Residential)
		setOrUnsetGroup(set, unset, "land", groups.Land == nil, groups.Land)
		setOrUnsetGroup(set, unset, "commercial", groups.Commercial == nil, groups.Commercial)
		setOrUnsetGroup(set, unset, "building", groups.Building == nil, groups.Building)
		setOrUnsetGroup(set, unset, "other", groups.Other == nil, groups.Other)
	}

	if rawImages, ok := body["images"]; ok {
		set["images"] = decodeImages(rawImages, ls.defaultImage)
	}

	if len(set) == 0 && len(unset) == 0 {
		return existing, nil
	}
	updated, err := ls.listingRepo.UpdateListing(ctx, id, set, unset)
	if err != nil {
		return nil, err
	}
	if changedLoc != nil {
		ls.logSuggestedArea(ctx, *changedLoc)
	}
	return updated, nil
}

func setOrUnsetGroup(set, unset bson.M, name string, empty bool, group any) {
	if empty {
		unset[name] = ""
		return
	}
	set[name] = group
}

// DeleteListing removes the listing, the favorites pointing at it, and makes
// a best-effort pass at its stored images.
func (ls *ListingService) DeleteListing(ctx context.Context, id primitive.ObjectID, userRef string) error {
	listing, err := ls.listingRepo.GetListing(ctx, id)
	if err != nil {
		return err
	}
	if listing.UserRef != userRef {
		return ErrNotOwner
	}

	if err := ls.listingRepo.DeleteListing(ctx, id); err != nil {
		return err
	}
	if cleaner, ok := ls.listingRepo.(listingFavoritesCleaner); ok {
		if err := cleaner.RemoveFavoritesForListing(ctx, id); err != nil {
			ls.logger.Warn("favorite cleanup failed", "listing_id", id.Hex(), "error", err)
		}
	}
	helpers.DeleteImagesByURL(ctx, ls.cld, ls.logger, listing.Images)
	return nil
}

func (ls *ListingService) SearchListings(ctx context.Context, params models.SearchParams) ([]*models.Listing, error) {
	return ls.listingRepo.SearchListings(ctx, params)
}

func (ls *ListingService) ListByUser(ctx context.Context, userRef string) ([]*models.Listing, error) {
	return ls.listingRepo.ListByUser(ctx, userRef)
}
