package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aqardot/aqardot-api/internal/helpers"
	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidUsername = errors.New("username must be at least 3 characters")
)

type UserService struct {
	userRepo      models.UserRepo
	listingRepo   models.ListingRepo
	cld           *cloudinary.Cloudinary
	logger        *slog.Logger
	defaultAvatar string
}

func NewUserService(userRepo models.UserRepo, listingRepo models.ListingRepo,
	cld *cloudinary.Cloudinary, logger *slog.Logger, defaultAvatar string) *UserService {
	return &UserService{
		userRepo:      userRepo,
		listingRepo:   listingRepo,
		cld:           cld,
		logger:        logger,
		defaultAvatar: defaultAvatar,
	}
}

func (us *UserService) GetPublicUser(ctx context.Context, id primitive.ObjectID) (*models.PublicUser, error) {
	return us.userRepo.GetPublicUser(ctx, id)
}

// UpdateProfile applies the allow-listed fields; a new password is strength
// checked and re-hashed before it is stored.
func (us *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (*models.User, error) {
	if update.Email != nil {
		if err := models.Validate.Var(*update.Email, "required,email"); err != nil {
			return nil, ErrInvalidEmail
		}
	}
	if update.Username != nil {
		if err := models.Validate.Var(*update.Username, "required,min=3"); err != nil {
			return nil, ErrInvalidUsername
		}
	}
	if update.Password != nil {
		if !helpers.IsPasswordStrong(*update.Password) {
			return nil, ErrWeakPassword
		}
		hash, err := helpers.HashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		update.Password = &hash
	}

	return us.userRepo.UpdateUser(ctx, id, update)
}

// DeleteAccount runs the irreversible cascade: database deletions first and
// all-or-nothing, storage cleanup after and best-effort. A cleanup failure
// never rolls back or fails the deletion.
func (us *UserService) DeleteAccount(ctx context.Context, id primitive.ObjectID) error {
	result, err := us.userRepo.DeleteUserCascade(ctx, id)
	if err != nil {
		return err
	}

	us.logger.Info("account deleted",
		"user_id", id.Hex(),
		"listings_deleted", result.ListingsDeleted,
		"favorites_deleted", result.FavoritesDeleted,
	)

	urls := make([]string, 0, len(result.ImageURLs))
	for _, u := range result.ImageURLs {
		if u == us.defaultAvatar {
			continue
		}
		urls = append(urls, u)
	}
	helpers.DeleteImagesByURL(ctx, us.cld, us.logger, urls)
	return nil
}

func (us *UserService) GetUserListings(ctx context.Context, userRef string) ([]*models.Listing, error) {
	return us.listingRepo.ListByUser(ctx, userRef)
}
