package handler

import (
	"net/http"
	"time"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userKey = "session_user"

// RequestLogger logs every request once it has been served: 5xx at error,
// 4xx at warn, everything else at info.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}

// session resolves the session cookie into the current user. A bad cookie is
// dropped and the request continues anonymously.
func (h *Handler) session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(h.cookie.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := h.sessions.ParseToken(token)
		if err != nil {
			h.log.Debug("discarding session cookie", zap.Error(err))
			h.clearSession(c)
			c.Next()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func (h *Handler) requirePage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) requireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.SessionUser {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := v.(models.SessionUser)
	if !ok {
		return nil
	}
	return &user
}

func (h *Handler) startSession(c *gin.Context, user models.User) error {
	token, err := h.sessions.GenerateToken(user.Session())
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", h.cookie.CookieSecure, true)
	return nil
}

func (h *Handler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, "", -1, "/", "", h.cookie.CookieSecure, true)
}
