package handler

import (
	"net/http"
	"time"

	"github.com/DanRulev/kotoba.git/internal/host"
	"github.com/DanRulev/kotoba.git/internal/models"
	"github.com/DanRulev/kotoba.git/internal/response"
	"github.com/DanRulev/kotoba.git/internal/storage/cache"
	"github.com/DanRulev/kotoba.git/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=session.go -destination=mock/service_mock.go

type ServiceI interface {
	NewHost() (*host.Host, error)
	Stats() models.DeckStats
}

const (
	SessionCookie     = "kotoba_session"
	ContextKeySession = "session"
)

// SessionMiddleware attaches the caller's study session, creating one and
// issuing a cookie when the request carries none.
func SessionMiddleware(sessions *cache.Cache, service ServiceI, ttl time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(key) != nil {
			key = uuid.New().String()
		}

		s, err := sessions.GetOrCreate(key, service.NewHost)
		if err != nil {
			log.Error("failed to create session", zap.Error(err))
			response.AbortFail(c, http.StatusInternalServerError, response.ErrSessionUnavailable)
			return
		}

		c.SetCookie(SessionCookie, key, int(ttl.Seconds()), "/", "", false, true)
		c.Set(ContextKeySession, s)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) (*cache.Session, bool) {
	v, ok := c.Get(ContextKeySession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*cache.Session)
	return s, ok
}

// withHost runs fn under the session lock. It writes an error reply and
// returns false when the middleware did not run.
func withHost(c *gin.Context, fn func(h *host.Host)) bool {
	s, ok := sessionFrom(c)
	if !ok {
		response.Fail(c, http.StatusInternalServerError, response.ErrSessionUnavailable)
		return false
	}
	s.Do(fn)
	return true
}

type SessionHandler struct {
	log *zap.Logger
}

func NewSessionHandler(log *zap.Logger) *SessionHandler {
	return &SessionHandler{log: log}
}

// GetSession godoc
// GET /api/v1/session
func (h *SessionHandler) GetSession(c *gin.Context) {
	var snap host.Snapshot
	if !withHost(c, func(hs *host.Host) { snap = hs.Snapshot() }) {
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// SetMode godoc
// PUT /api/v1/session/mode
func (h *SessionHandler) SetMode(c *gin.Context) {
	mode, ok := bindMode(c)
	if !ok {
		return
	}

	var snap host.Snapshot
	if !withHost(c, func(hs *host.Host) {
		hs.SetMode(mode)
		snap = hs.Snapshot()
	}) {
		return
	}
	response.Success(c, http.StatusOK, snap)
}

// Remount godoc
// POST /api/v1/session/remount
func (h *SessionHandler) Remount(c *gin.Context) {
	mode, ok := bindMode(c)
	if !ok {
		return
	}

	var (
		snap host.Snapshot
		err  error
	)
	if !withHost(c, func(hs *host.Host) {
		err = hs.Remount(mode)
		snap = hs.Snapshot()
	}) {
		return
	}
	if err != nil {
		h.log.Error("failed to remount screen", zap.String("mode", string(mode)), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, snap)
}

func bindMode(c *gin.Context) (host.Mode, bool) {
	var req models.ModeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return "", false
	}

	mode, err := host.ParseMode(req.Mode)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{"mode": err.Error()})
		return "", false
	}
	return mode, true
}
