package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aqardot/aqardot-api/internal/middleware"
	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/aqardot/aqardot-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddFavoriteRequiresSession(t *testing.T) {
	r := gin.New()
	// no auth middleware: the handler must refuse before touching the service
	r.POST("/api/favorites/:listingId", AddFavorite(nil))

	w := performRequest(r, http.MethodPost, "/api/favorites/not-an-object-id", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetListingRejectsMalformedID(t *testing.T) {
	r := gin.New()
	r.GET("/api/listings/get/:id", GetListing(nil))

	w := performRequest(r, http.MethodGet, "/api/listings/get/12345", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid listing ID format")
}

func TestSignupRequiresAllFields(t *testing.T) {
	r := gin.New()
	r.POST("/api/auth/signup", Signup(nil))

	w := performRequest(r, http.MethodPost, "/api/auth/signup", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username, email and password are required")
}

func TestSigninRequiresCredentials(t *testing.T) {
	r := gin.New()
	r.POST("/api/auth/signin", Signin(nil, nil))

	w := performRequest(r, http.MethodPost, "/api/auth/signin", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email and password are required")
}

func TestContactValidatesFields(t *testing.T) {
	r := gin.New()
	r.POST("/api/contact", Contact(nil, "contact@aqardot.com"))

	w := performRequest(r, http.MethodPost, "/api/contact", `{"name":"","email":"","message":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_fields")
}

// brokenListingRepo fails every write the way a dropped Mongo connection
// would.
type brokenListingRepo struct{}

func (brokenListingRepo) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	return nil, errors.New("error inserting listing: socket was unexpectedly closed")
}
func (brokenListingRepo) GetListing(ctx context.Context, id primitive.ObjectID) (*models.Listing, error) {
	return nil, models.ErrListingNotFound
}
func (brokenListingRepo) ListingExists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return false, nil
}
func (brokenListingRepo) UpdateListing(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) (*models.Listing, error) {
	return nil, errors.New("update failed")
}
func (brokenListingRepo) DeleteListing(ctx context.Context, id primitive.ObjectID) error {
	return errors.New("delete failed")
}
func (brokenListingRepo) SearchListings(ctx context.Context, params models.SearchParams) ([]*models.Listing, error) {
	return nil, nil
}
func (brokenListingRepo) ListByUser(ctx context.Context, userRef string) ([]*models.Listing, error) {
	return nil, nil
}

type noopLocationRepo struct{}

func (noopLocationRepo) GetGovernorates(ctx context.Context, q string) ([]models.Governorate, error) {
	return nil, nil
}
func (noopLocationRepo) GetGovernorate(ctx context.Context, govSlug string) (*models.Governorate, error) {
	return nil, models.ErrGovernorateNotFound
}
func (noopLocationRepo) GetCity(ctx context.Context, govSlug, citySlug string) (*models.Governorate, *models.City, error) {
	return nil, nil, models.ErrCityNotFound
}
func (noopLocationRepo) GetArea(ctx context.Context, govSlug, citySlug, areaSlug string) (*models.Governorate, *models.City, *models.Area, error) {
	return nil, nil, nil, models.ErrAreaNotFound
}
func (noopLocationRepo) UpsertGovernorate(ctx context.Context, gov models.Governorate) error {
	return nil
}
func (noopLocationRepo) LogSuggestedArea(ctx context.Context, govSlug, govName, displayName string) error {
	return nil
}

func createListingRouter() *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ls := services.NewListingService(brokenListingRepo{}, noopLocationRepo{}, nil, logger, "/placeholder.jpg")

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))
	r.POST("/api/listings/create", func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, &models.User{ID: primitive.NewObjectID()})
	}, CreateListing(ls))
	return r
}

const validListingBody = `{
	"title": "Flat in Maadi",
	"description": "Two bedrooms",
	"price": 9000,
	"purpose": "rent",
	"category": "apartment",
	"location": {
		"governorate": {"name": "Cairo", "slug": "cairo"},
		"city": {"name": "Maadi", "slug": "maadi"}
	}
}`

func TestCreateListingHidesRepositoryFailures(t *testing.T) {
	r := createListingRouter()

	w := performRequest(r, http.MethodPost, "/api/listings/create", validListingBody)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "socket")
}

func TestCreateListingRejectsIncompleteBody(t *testing.T) {
	r := createListingRouter()

	w := performRequest(r, http.MethodPost, "/api/listings/create", `{"title":"Flat in Maadi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestUpdateListingRequiresSession(t *testing.T) {
	r := gin.New()
	r.PATCH("/api/listings/update/:id", UpdateListing(nil))

	w := performRequest(r, http.MethodPatch, "/api/listings/update/abcdefabcdefabcdefabcdef", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
