package middleware

import (
	"errors"
	"time"

	"recruitly/internal/domain/person"
	"recruitly/internal/pkg/session"

	"github.com/gofiber/fiber/v3"
)

const (
	SessionCookieName = "session"

	CtxPersonIDKey = "person_id"
	CtxUsernameKey = "username"
)

// Gate failure messages form a fixed vocabulary; clients key on them.
const (
	msgSessionInvalid   = "session invalid"
	msgSessionExpired   = "session expired"
	msgPermissionDenied = "permission denied"
)

// SessionMiddleware verifies the session cookie and, for recruiter-only
// routes, the caller's role. Failures never panic past the gate; they are
// returned as AppErrors, and a cookie that fails verification is cleared.
type SessionMiddleware struct {
	sessions session.Service
	persons  person.Repository
}

func NewSessionMiddleware(sessions session.Service, persons person.Repository) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, persons: persons}
}

// RequireSession is the basic login check: signature and expiry only.
func (m *SessionMiddleware) RequireSession() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, appErr := m.verify(c)
		if appErr != nil {
			return appErr
		}

		c.Locals(CtxPersonIDKey, claims.PersonID)
		c.Locals(CtxUsernameKey, claims.Username)
		return c.Next()
	}
}

// RequireRecruiter performs the basic check, then loads the person and
// applies the single role comparison point.
func (m *SessionMiddleware) RequireRecruiter() fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, appErr := m.verify(c)
		if appErr != nil {
			return appErr
		}

		p, err := m.persons.FindByID(c.Context(), claims.PersonID)
		if err != nil {
			ClearSessionCookie(c)
			if errors.Is(err, person.ErrNotFound) {
				return NewAppError(fiber.StatusForbidden, msgSessionInvalid, nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		if !p.Role.Privileged() {
			ClearSessionCookie(c)
			return NewAppError(fiber.StatusForbidden, msgPermissionDenied, nil, nil)
		}

		c.Locals(CtxPersonIDKey, claims.PersonID)
		c.Locals(CtxUsernameKey, claims.Username)
		return c.Next()
	}
}

func (m *SessionMiddleware) verify(c fiber.Ctx) (session.Claims, *AppError) {
	raw := c.Cookies(SessionCookieName)
	if raw == "" {
		return session.Claims{}, NewAppError(fiber.StatusForbidden, msgSessionInvalid, nil, nil)
	}

	claims, err := m.sessions.Verify(raw)
	if err != nil {
		ClearSessionCookie(c)
		return session.Claims{}, NewAppError(fiber.StatusForbidden, msgSessionExpired, nil, err)
	}

	return claims, nil
}

// PersonIDFromCtx returns the verified caller id placed by the gate.
func PersonIDFromCtx(c fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(CtxPersonIDKey).(int64)
	return id, ok
}

func SetSessionCookie(c fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		MaxAge:   int(ttl.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func ClearSessionCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
