package middleware

import (
	"context"
	"net/http"

	"github.com/Kryptamyr/Packer-Tracker/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"

	// SessionCookieName holds the signed session token.
	SessionCookieName = "packer_session"
)

type SessionMiddleware struct {
	sessionService *jwt.SessionService
	log            *logrus.Logger
	secureCookie   bool
}

func NewSessionMiddleware(sessionService *jwt.SessionService, log *logrus.Logger, secureCookie bool) *SessionMiddleware {
	return &SessionMiddleware{
		sessionService: sessionService,
		log:            log,
		secureCookie:   secureCookie,
	}
}

// Handle resolves the session from the cookie, starting a new one when the
// cookie is missing or its token does not validate.
func (m *SessionMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := m.sessionFromCookie(r)

		if sessionID == "" {
			sessionID = uuid.New().String()
			token, err := m.sessionService.IssueSessionToken(sessionID)
			if err != nil {
				m.log.Errorf("Failed to issue session token: %+v", err)
				http.Error(w, "Failed to start session", http.StatusInternalServerError)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(m.sessionService.GetExpiry().Seconds()),
				HttpOnly: true,
				Secure:   m.secureCookie,
				SameSite: http.SameSiteLaxMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
	})
}

func (m *SessionMiddleware) sessionFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	claims, err := m.sessionService.ValidateSessionToken(cookie.Value)
	if err != nil {
		m.log.Debugf("Discarding invalid session cookie: %v", err)
		return ""
	}
	return claims.SessionID
}

// GetSessionIDFromContext extracts the session ID from context
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	return sessionID, ok
}

// WithSessionID returns a copy of ctx carrying sessionID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey, sessionID)
}
