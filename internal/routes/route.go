package routes

import (
	"github.com/aqardot/aqardot-api/internal/container"
	"github.com/aqardot/aqardot-api/internal/handlers"
	"github.com/aqardot/aqardot-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(ctn *container.Container) *gin.Engine {
	if ctn.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{ctn.Config.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(ctn.Logger))
	r.Use(middleware.ErrorHandler(ctn.Logger))
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.GET("/health", handlers.Health(ctn.MongoDBClient))
	api.POST("/contact", handlers.Contact(ctn.Mailer, ctn.Config.ContactEmail))

	requireAuth := middleware.AuthMiddleware(ctn.Tokens, ctn.UserRepo)

	auth := api.Group("/auth")
	{
		auth.POST("/signup", handlers.Signup(ctn.AuthService))
		auth.POST("/signin", handlers.Signin(ctn.AuthService, ctn.Config))
		auth.POST("/google", handlers.GoogleSignin(ctn.AuthService, ctn.Config))
		auth.GET("/signout", handlers.Signout(ctn.Config))
		auth.GET("/me", requireAuth, handlers.Me())
		auth.POST("/send-verification", handlers.SendVerification(ctn.AuthService))
		auth.GET("/verify-email", handlers.VerifyEmail(ctn.AuthService, ctn.Config))
		auth.POST("/request-password-reset", handlers.RequestPasswordReset(ctn.AuthService))
		auth.POST("/reset-password", handlers.ResetPassword(ctn.AuthService))
	}

	user := api.Group("/user")
	{
		user.GET("/public/:id", handlers.GetPublicUser(ctn.UserService))
		user.POST("/update/:id", requireAuth, handlers.UpdateUser(ctn.UserService))
		user.DELETE("/delete/:id", requireAuth, handlers.DeleteUser(ctn.UserService, ctn.Config))
		user.GET("/listings", requireAuth, handlers.GetUserListings(ctn.UserService))
		user.GET("/listings/:id", requireAuth, handlers.GetUserListings(ctn.UserService))
	}

	listings := api.Group("/listings")
	{
		listings.POST("/create", requireAuth, handlers.CreateListing(ctn.ListingService))
		listings.PATCH("/update/:id", requireAuth, handlers.UpdateListing(ctn.ListingService))
		listings.DELETE("/delete/:id", requireAuth, handlers.DeleteListing(ctn.ListingService))
		listings.GET("/get/:id", handlers.GetListing(ctn.ListingService))
		listings.GET("/get", handlers.SearchListings(ctn.ListingService))
	}

	locations := api.Group("/locations")
	{
		locations.GET("/governorates", handlers.GetGovernorates(ctn.LocationService))
		locations.GET("/governorates/:govSlug/cities", handlers.GetGovernorateCities(ctn.LocationService))
		locations.GET("/governorates/:govSlug/cities/:citySlug/areas", handlers.GetCityAreas(ctn.LocationService))
		locations.GET("/governorates/:govSlug/cities/:citySlug/areas/:areaSlug/subareas", handlers.GetAreaSubareas(ctn.LocationService))
		locations.GET("/governorates/:govSlug/tree", handlers.GetGovernorateTree(ctn.LocationService))
	}

	favorites := api.Group("/favorites", requireAuth)
	{
		favorites.GET("", handlers.ListFavorites(ctn.FavoriteService))
		favorites.GET("/ids", handlers.ListFavoriteIDs(ctn.FavoriteService))
		favorites.POST("/:listingId", handlers.AddFavorite(ctn.FavoriteService))
		favorites.DELETE("/:listingId", handlers.RemoveFavorite(ctn.FavoriteService))
	}

	return r
}
