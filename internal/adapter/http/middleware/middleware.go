package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"mobile-money-ledger/pkg/apperror"
	"mobile-money-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderActorID carries the authenticated wallet owner id. The
	// upstream gateway terminates authentication; this service trusts
	// the header on its internal network.
	HeaderActorID = "X-Actor-ID"

	// HeaderAdminKey gates the admin route group.
	HeaderAdminKey = "X-Admin-Key"

	// Context keys
	CtxActorID   = "actor_id"
	CtxRequestID = "request_id"
)

// ActorAuth requires a valid X-Actor-ID header and puts the parsed
// uuid into the context.
func ActorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderActorID)
		if raw == "" {
			response.Error(c, apperror.ErrUnauthorizedActor())
			c.Abort()
			return
		}
		actorID, err := uuid.Parse(raw)
		if err != nil || actorID == uuid.Nil {
			response.Error(c, apperror.ErrUnauthorizedActor())
			c.Abort()
			return
		}
		c.Set(CtxActorID, actorID)
		c.Next()
	}
}

// AdminAuth requires the X-Admin-Key header to match the configured
// key. An empty configured key rejects everything.
func AdminAuth(adminKey string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(HeaderAdminKey)
		if adminKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			log.Warn().Str("path", c.Request.URL.Path).Str("client_ip", c.ClientIP()).Msg("admin auth rejected")
			response.Error(c, apperror.ErrUnauthorizedActor())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestID attaches a request id to the context, reusing the caller's
// X-Request-ID when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize rejects request bodies larger than limit bytes.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// ActorID extracts the authenticated actor id set by ActorAuth.
func ActorID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(CtxActorID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
