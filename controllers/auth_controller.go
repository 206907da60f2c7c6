package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/salahou-dine/hon-hon/config"
	"github.com/salahou-dine/hon-hon/middleware"
	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/services"
	"github.com/salahou-dine/hon-hon/utils"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo?alt=json"
	oauthStateTTL     = 10 * time.Minute
)

type AuthController struct {
	Users *services.UserService
	RDB   *redis.Client
	Cfg   *config.Config
	OAuth *oauth2.Config
	// userInfoURL подменяется в тестах
	userInfoURL string
}

// NewGoogleOAuthConfig nil если ключи Google не заданы
func NewGoogleOAuthConfig(cfg *config.Config) *oauth2.Config {
	if !cfg.GoogleEnabled() {
		return nil
	}
	return &oauth2.Config{
		RedirectURL:  cfg.GoogleRedirect,
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

func NewAuthController(users *services.UserService, rdb *redis.Client, cfg *config.Config, oauth *oauth2.Config) *AuthController {
	return &AuthController{Users: users, RDB: rdb, Cfg: cfg, OAuth: oauth, userInfoURL: googleUserInfoURL}
}

func (ac *AuthController) issueToken(c *gin.Context, subject string) {
	token, err := utils.GenerateJWT(subject, map[string]interface{}{"role": utils.PrincipalType(subject)}, ac.Cfg.JWTSecret, ac.Cfg.AccessTokenTTL)
	if err != nil {
		utils.LogError(err, "generate jwt")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// POST /auth/guest
func (ac *AuthController) Guest(c *gin.Context) {
	ctx := c.Request.Context()
	ip := c.ClientIP()
	if ok, msg := utils.CanIssueGuestToken(ctx, ac.RDB, ip, ac.Cfg.GuestTokensPerHour); !ok {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": msg})
		return
	}
	utils.MarkGuestTokenIssued(ctx, ac.RDB, ip)
	ac.issueToken(c, utils.GenerateGuestID())
}

// POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ac.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "register")
		return
	}
	ac.issueToken(c, user.ID)
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := ac.Users.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "login")
		return
	}
	ac.issueToken(c, user.ID)
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, models.MeResponse{ID: currentUserID(c), Type: c.GetString(middleware.CtxUserType)})
}

// POST /auth/logout токен в черный список до истечения срока
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)
	if ac.RDB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Logout is unavailable"})
		return
	}
	claims, err := utils.ParseJWT(token, ac.Cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	if err := utils.BlacklistToken(c.Request.Context(), ac.RDB, token, utils.TokenTTL(claims)); err != nil {
		utils.LogError(err, "blacklist token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// GET /auth/google
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if ac.OAuth == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Google sign-in is not configured"})
		return
	}
	// без хранилища state callback не пройдет проверку
	if ac.RDB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in requires Redis"})
		return
	}
	state := utils.GenerateSessionID()
	if err := ac.RDB.Set(c.Request.Context(), "google:state:"+state, "1", oauthStateTTL).Err(); err != nil {
		utils.LogError(err, "store oauth state")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google sign-in is temporarily unavailable"})
		return
	}
	c.Redirect(http.StatusFound, ac.OAuth.AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// consumeState одноразово гасит state; без Redis или при ошибке state не принимается
func (ac *AuthController) consumeState(ctx context.Context, state string) bool {
	if ac.RDB == nil || state == "" {
		return false
	}
	n, err := ac.RDB.Del(ctx, "google:state:"+state).Result()
	if err != nil {
		utils.LogError(err, "consume oauth state")
		return false
	}
	return n == 1
}

// GET /auth/google/callback
func (ac *AuthController) GoogleCallback(c *gin.Context) {
	if ac.OAuth == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Google sign-in is not configured"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code not found"})
		return
	}
	if !ac.consumeState(c.Request.Context(), c.Query("state")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	profile, err := ac.fetchGoogleProfile(c.Request.Context(), code)
	if err != nil {
		utils.LogError(err, "google callback")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to get user info"})
		return
	}

	user, err := ac.Users.UpsertGoogle(c.Request.Context(), *profile)
	if err != nil {
		respondError(c, err, "google upsert")
		return
	}
	ac.issueToken(c, user.ID)
}

func (ac *AuthController) fetchGoogleProfile(ctx context.Context, code string) (*services.GoogleProfile, error) {
	token, err := ac.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}
	resp, err := ac.OAuth.Client(ctx, token).Get(ac.userInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &googleStatusError{status: resp.StatusCode}
	}

	var profile services.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

type googleStatusError struct {
	status int
}

func (e *googleStatusError) Error() string {
	return "google userinfo returned " + http.StatusText(e.status)
}
