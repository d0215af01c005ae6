package container

import (
	"log/slog"

	"github.com/aqardot/aqardot-api/internal/config"
	"github.com/aqardot/aqardot-api/internal/helpers"
	"github.com/aqardot/aqardot-api/internal/mailer"
	"github.com/aqardot/aqardot-api/internal/models"
	"github.com/aqardot/aqardot-api/internal/services"
	"github.com/cloudinary/cloudinary-go/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Config        *config.Config
	Logger        *slog.Logger
	Cloudinary    *cloudinary.Cloudinary
	MongoDBClient *mongo.Client

	Tokens *helpers.TokenIssuer
	Mailer *mailer.Mailer

	UserRepo models.UserRepo

	AuthService     *services.AuthService
	UserService     *services.UserService
	ListingService  *services.ListingService
	LocationService *services.LocationService
	FavoriteService *services.FavoriteService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	cfg *config.Config,
	logger *slog.Logger,
	cld *cloudinary.Cloudinary,
	mongoDBClient *mongo.Client,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)
	tokens := helpers.NewTokenIssuer(cfg.JWTSecret, cfg.SessionTTL)
	mail := mailer.NewMailer(cfg.ResendAPIKey, cfg.EmailFrom)

	authService := services.NewAuthService(repo, tokens, mail, logger,
		cfg.ClientURL, cfg.APIURL, cfg.GoogleClientID, cfg.DefaultAvatar)
	userService := services.NewUserService(repo, repo, cld, logger, cfg.DefaultAvatar)
	listingService := services.NewListingService(repo, repo, cld, logger, cfg.DefaultListing)
	locationService := services.NewLocationService(repo)
	favoriteService := services.NewFavoriteService(repo, repo)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		Cloudinary:      cld,
		MongoDBClient:   mongoDBClient,
		Tokens:          tokens,
		Mailer:          mail,
		UserRepo:        repo,
		AuthService:     authService,
		UserService:     userService,
		ListingService:  listingService,
		LocationService: locationService,
		FavoriteService: favoriteService,
	}
}
