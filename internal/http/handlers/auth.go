package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	jwtutil "wishlist/internal/jwt"
	"wishlist/internal/limiter"
	"wishlist/internal/store"
)

type AuthHandler struct {
	store   *store.Store
	jwt     *jwtutil.Maker
	limiter *limiter.MemoryLimiter
}

func NewAuthHandler(s *store.Store, jm *jwtutil.Maker, lim *limiter.MemoryLimiter) *AuthHandler {
	return &AuthHandler{store: s, jwt: jm, limiter: lim}
}

type LoginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=4"`
}
type TokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Login godoc
// @Summary Admin login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   body body LoginIn true "credentials"
// @Success 200 {object} TokenOut
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var in LoginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	key := c.ClientIP() + "|" + strings.ToLower(strings.TrimSpace(in.Email))
	if h.limiter != nil && h.limiter.TooMany(key) {
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "too many failed attempts"})
		return
	}

	u, err := h.store.UserByEmail(c.Request.Context(), in.Email)
	if err != nil && !errors.Is(err, store.ErrEmptyResult) {
		respondError(c, err, "login failed")
		return
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		if h.limiter != nil {
			h.limiter.Fail(key)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}

	t, err := h.jwt.Create(u.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "token failed"})
		return
	}
	c.JSON(http.StatusOK, TokenOut{AccessToken: t, TokenType: "bearer", ExpiresIn: int64(h.jwt.TTL().Seconds())})
}

// Me godoc
// @Summary Token subject
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]string
// @Security Bearer
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id": c.GetString("user_id")})
}
