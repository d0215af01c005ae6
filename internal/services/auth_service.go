package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/aqardot/aqardot-api/internal/helpers"
	"github.com/aqardot/aqardot-api/internal/mailer"
	"github.com/aqardot/aqardot-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password!")
	ErrWeakPassword       = errors.New("password is not strong enough")
)

// GenericEmailResponse is returned for verification and reset requests
// whether or not the account exists, to prevent account enumeration.
const GenericEmailResponse = "If the account exists, an email was sent"

// MailSender is the slice of the mail client the auth flows use.
type MailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

type AuthService struct {
	userRepo models.UserRepo
	tokens   *helpers.TokenIssuer
	mail     MailSender
	logger   *slog.Logger

	clientURL      string
	apiURL         string
	googleClientID string
	defaultAvatar  string
}

func NewAuthService(userRepo models.UserRepo, tokens *helpers.TokenIssuer, mail MailSender,
	logger *slog.Logger, clientURL, apiURL, googleClientID, defaultAvatar string) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		tokens:         tokens,
		mail:           mail,
		logger:         logger,
		clientURL:      clientURL,
		apiURL:         apiURL,
		googleClientID: googleClientID,
		defaultAvatar:  defaultAvatar,
	}
}

func (as *AuthService) Signup(ctx context.Context, username, email, password string) error {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	if !helpers.IsPasswordStrong(password) {
		return ErrWeakPassword
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	user := &models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Avatar:   as.defaultAvatar,
	}
	if err := models.Validate.Struct(user); err != nil {
		return err
	}

	_, err = as.userRepo.CreateUser(ctx, user)
	return err
}

// Signin checks the credentials and returns the user plus a session token.
func (as *AuthService) Signin(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !helpers.CheckPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.tokens.IssueSessionToken(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %v", err)
	}
	return user, token, nil
}

// GoogleSignIn verifies the provider token and either matches an existing
// account by normalized email or provisions a new one with an unusable
// password and a generated username.
func (as *AuthService) GoogleSignIn(ctx context.Context, idToken string) (*models.User, string, error) {
	claims, err := helpers.VerifyGoogleIDToken(ctx, idToken, as.googleClientID)
	if err != nil {
		return nil, "", err
	}

	user, err := as.userRepo.GetUserByEmail(ctx, claims.Email)
	if errors.Is(err, models.ErrUserNotFound) {
		hash, hashErr := helpers.HashPassword(helpers.RandomPassword())
		if hashErr != nil {
			return nil, "", hashErr
		}
		avatar := claims.Picture
		if avatar == "" {
			avatar = as.defaultAvatar
		}
		user, err = as.userRepo.CreateUser(ctx, &models.User{
			Username:      helpers.GenerateUsername(claims.Name),
			Email:         claims.Email,
			Password:      hash,
			GoogleSub:     claims.Subject,
			Avatar:        avatar,
			EmailVerified: true,
		})
	}
	if err != nil {
		return nil, "", err
	}

	token, err := as.tokens.IssueSessionToken(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %v", err)
	}
	return user, token, nil
}

// SendVerification emails a 24-hour verify link. The returned message is the
// same generic body whether the account exists or not; only the send attempt
// differs, and a failed send is logged without surfacing.
func (as *AuthService) SendVerification(ctx context.Context, email, lang string) string {
	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return GenericEmailResponse
	}

	token, err := as.tokens.IssueActionToken(helpers.ActionVerify, user.ID.Hex(), user.Email, lang)
	if err != nil {
		as.logger.Error("failed to issue verify token", "error", err)
		return GenericEmailResponse
	}

	verifyURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s", as.apiURL, url.QueryEscape(token))
	if err := as.mail.Send(ctx, user.Email, mailer.VerifySubject(lang), mailer.VerifyEmailBody(lang, verifyURL)); err != nil {
		as.logger.Warn("verification email send failed", "error", err)
		return GenericEmailResponse
	}
	return "Verification email sent"
}

// VerifyEmail consumes a verify token and returns the language tag for the
// client redirect. The bound email must still match the account's current
// email, so a token issued before an email change is useless.
func (as *AuthService) VerifyEmail(ctx context.Context, tokenStr string) (string, error) {
	claims, err := as.tokens.ParseActionToken(tokenStr, helpers.ActionVerify)
	if err != nil {
		return "", err
	}

	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return "", helpers.ErrInvalidToken
	}
	user, err := as.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return "", helpers.ErrInvalidToken
	}
	if user.Email != claims.Email {
		return "", helpers.ErrInvalidToken
	}

	if err := as.userRepo.MarkEmailVerified(ctx, id); err != nil {
		return "", err
	}
	return claims.Lang, nil
}

func (as *AuthService) RequestPasswordReset(ctx context.Context, email, lang string) string {
	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return GenericEmailResponse
	}

	token, err := as.tokens.IssueActionToken(helpers.ActionPasswordReset, user.ID.Hex(), user.Email, lang)
	if err != nil {
		as.logger.Error("failed to issue reset token", "error", err)
		return GenericEmailResponse
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", as.clientURL, url.QueryEscape(token))
	if err := as.mail.Send(ctx, user.Email, mailer.ResetSubject(lang), mailer.ResetPasswordBody(lang, resetURL)); err != nil {
		as.logger.Warn("password reset email send failed", "error", err)
	}
	return GenericEmailResponse
}

func (as *AuthService) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	claims, err := as.tokens.ParseActionToken(tokenStr, helpers.ActionPasswordReset)
	if err != nil {
		return err
	}
	if !helpers.IsPasswordStrong(newPassword) {
		return ErrWeakPassword
	}

	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return helpers.ErrInvalidToken
	}
	user, err := as.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return helpers.ErrInvalidToken
	}
	if user.Email != claims.Email {
		return helpers.ErrInvalidToken
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return as.userRepo.UpdatePassword(ctx, id, hash)
}
