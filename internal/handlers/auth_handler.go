package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/aqardot/aqardot-api/internal/config"
	"github.com/aqardot/aqardot-api/internal/helpers"
	"github.com/aqardot/aqardot-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// setSessionCookie writes the httpOnly access_token cookie that every
// protected route reads. Secure only in production so local http works.
func setSessionCookie(c *gin.Context, cfg *config.Config, token string) {
	c.SetCookie("access_token", token, int(cfg.SessionTTL.Seconds()), "/", "", cfg.IsProduction(), true)
}

func clearSessionCookie(c *gin.Context, cfg *config.Config) {
	c.SetCookie("access_token", "", -1, "/", "", cfg.IsProduction(), true)
}

func Signup(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request payload"})
			return
		}
		if req.Username == "" || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username, email and password are required"})
			return
		}

		if err := as.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
			var vErrs validator.ValidationErrors
			if errors.Is(err, services.ErrWeakPassword) || errors.Is(err, services.ErrInvalidEmail) ||
				errors.As(err, &vErrs) {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
	}
}

func Signin(as *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
			return
		}

		user, token, err := as.Signin(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
				return
			}
			c.Error(err)
			return
		}

		setSessionCookie(c, cfg, token)
		c.JSON(http.StatusOK, user)
	}
}

// GoogleSignin exchanges a Google ID token for a local session. New emails
// get a provisioned account, known emails sign straight in.
func GoogleSignin(as *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "idToken is required"})
			return
		}

		user, token, err := as.GoogleSignIn(c.Request.Context(), req.IDToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Google token"})
			return
		}

		setSessionCookie(c, cfg, token)
		c.JSON(http.StatusOK, user)
	}
}

func Signout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		clearSessionCookie(c, cfg)
		c.JSON(http.StatusOK, gin.H{"message": "User signed out successfully"})
	}
}

// Me returns the authenticated user loaded fresh by the auth middleware.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func SendVerification(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
			Lang  string `json:"lang"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
			return
		}

		msg := as.SendVerification(c.Request.Context(), req.Email, req.Lang)
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

// VerifyEmail consumes the emailed token and redirects the browser to the
// client app, carrying the language the token was issued with.
func VerifyEmail(as *services.AuthService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.Redirect(http.StatusFound, cfg.ClientURL+"/verify-error")
			return
		}

		lang, err := as.VerifyEmail(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, cfg.ClientURL+"/verify-error")
			return
		}

		c.Redirect(http.StatusFound, cfg.ClientURL+"/verified?lang="+url.QueryEscape(lang))
	}
}

func RequestPasswordReset(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email string `json:"email"`
			Lang  string `json:"lang"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
			return
		}

		msg := as.RequestPasswordReset(c.Request.Context(), req.Email, req.Lang)
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

func ResetPassword(as *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Token       string `json:"token"`
			NewPassword string `json:"newPassword"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.NewPassword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "token and newPassword are required"})
			return
		}

		err := as.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrWeakPassword):
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			case errors.Is(err, helpers.ErrInvalidToken), errors.Is(err, helpers.ErrWrongTokenAction):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
			default:
				c.Error(err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	}
}
