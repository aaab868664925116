package api

import (
	"fmt"
	"net/http"
	"sync"

	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AuthHandler covers sign-up, login, logout and session restore.
type AuthHandler struct {
	accounts service.AccountDirectory
	sessions service.SessionHolder
	tokens   *TokenIssuer
	writes   *sync.Mutex
}

func NewAuthHandler(accounts service.AccountDirectory, sessions service.SessionHolder, tokens *TokenIssuer, writes *sync.Mutex) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
		writes:   writes,
	}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}

// --- Handler Methods ---

// Register creates an account and signs it in.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	h.writes.Lock()
	defer h.writes.Unlock()

	profile, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.startSession(c, http.StatusCreated, *profile)
}

// Login authenticates and signs the account in.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	h.writes.Lock()
	defer h.writes.Unlock()

	profile, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.startSession(c, http.StatusOK, *profile)
}

// Logout ends the current session.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.writes.Lock()
	defer h.writes.Unlock()

	if err := h.sessions.End(c.Request.Context()); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Session returns the profile of the signed-in account. The caller must
// already hold a token for it; no new token is issued here.
// GET /api/v1/session
func (h *AuthHandler) Session(c *gin.Context) {
	profile := h.sessions.Restore(c.Request.Context())
	if profile == nil {
		abortWithError(c, http.StatusUnauthorized, "Session has ended, please log in again")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, profile domain.Profile) {
	if err := h.sessions.Start(c.Request.Context(), profile); err != nil {
		writeServiceError(c, err)
		return
	}

	token, err := h.tokens.Issue(profile)
	if err != nil {
		log.Errorf("issue token: %s", err)
		abortWithError(c, http.StatusInternalServerError, "Could not process login")
		return
	}

	c.JSON(status, LoginResponse{Token: token, User: profile})
}
