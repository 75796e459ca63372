package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"recruitly/internal/domain/person"
	"recruitly/internal/pkg/response"
	"recruitly/internal/pkg/session"
)

type fakeSessionService struct {
	claims    session.Claims
	verifyErr error
}

func (f *fakeSessionService) Issue(int64, string) (string, error) { return "token", nil }
func (f *fakeSessionService) TTL() time.Duration                  { return time.Hour }
func (f *fakeSessionService) Verify(string) (session.Claims, error) {
	if f.verifyErr != nil {
		return session.Claims{}, f.verifyErr
	}
	return f.claims, nil
}

type fakePersonRepo struct {
	byID map[int64]person.Person
}

func (f *fakePersonRepo) Create(context.Context, person.NewPerson) (person.Person, error) {
	return person.Person{}, person.ErrConflict
}

func (f *fakePersonRepo) FindByID(_ context.Context, id int64) (person.Person, error) {
	p, ok := f.byID[id]
	if !ok {
		return person.Person{}, person.ErrNotFound
	}
	return p, nil
}

func (f *fakePersonRepo) FindByUsername(context.Context, string) (person.Person, error) {
	return person.Person{}, person.ErrNotFound
}

func newGateApp(sessions session.Service, persons person.Repository, recruiterOnly bool) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware().Middleware())

	gate := NewSessionMiddleware(sessions, persons)
	guard := gate.RequireSession()
	if recruiterOnly {
		guard = gate.RequireRecruiter()
	}

	app.Get("/guarded", guard, func(c fiber.Ctx) error {
		id, _ := PersonIDFromCtx(c)
		return response.Success(c, fiber.StatusOK, response.MessageOK, id)
	})

	return app
}

func doGuarded(t *testing.T, app *fiber.App, withCookie bool) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "token"})
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) response.Envelope {
	t.Helper()

	var env response.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return env
}

// sessionCookieCleared reports whether the response tells the browser to
// discard the session cookie.
func sessionCookieCleared(resp *http.Response) bool {
	for _, c := range resp.Cookies() {
		if c.Name != SessionCookieName {
			continue
		}
		if c.Value != "" {
			continue
		}
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			return true
		}
	}
	return false
}

func TestRequireSessionMissingCookie(t *testing.T) {
	app := newGateApp(&fakeSessionService{}, &fakePersonRepo{}, false)

	resp := doGuarded(t, app, false)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
	if env := decodeEnvelope(t, resp); env.Message != "session invalid" {
		t.Fatalf("message = %q, want %q", env.Message, "session invalid")
	}
}

func TestRequireSessionExpiredTokenClearsCookie(t *testing.T) {
	sessions := &fakeSessionService{verifyErr: session.ErrTokenExpired}
	app := newGateApp(sessions, &fakePersonRepo{}, false)

	resp := doGuarded(t, app, true)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
	if env := decodeEnvelope(t, resp); env.Message != "session expired" {
		t.Fatalf("message = %q, want %q", env.Message, "session expired")
	}
	if !sessionCookieCleared(resp) {
		t.Fatal("expected the session cookie to be cleared")
	}
}

func TestRequireRecruiterRejectsApplicant(t *testing.T) {
	sessions := &fakeSessionService{claims: session.Claims{PersonID: 7, Username: "amber"}}
	persons := &fakePersonRepo{byID: map[int64]person.Person{
		7: {ID: 7, Username: "amber", Role: person.RoleApplicant},
	}}
	app := newGateApp(sessions, persons, true)

	resp := doGuarded(t, app, true)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
	if env := decodeEnvelope(t, resp); env.Message != "permission denied" {
		t.Fatalf("message = %q, want %q", env.Message, "permission denied")
	}
	if !sessionCookieCleared(resp) {
		t.Fatal("expected the session cookie to be cleared")
	}
}

func TestRequireRecruiterUnknownPerson(t *testing.T) {
	sessions := &fakeSessionService{claims: session.Claims{PersonID: 99, Username: "ghost"}}
	app := newGateApp(sessions, &fakePersonRepo{}, true)

	resp := doGuarded(t, app, true)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusForbidden)
	}
	if env := decodeEnvelope(t, resp); env.Message != "session invalid" {
		t.Fatalf("message = %q, want %q", env.Message, "session invalid")
	}
	if !sessionCookieCleared(resp) {
		t.Fatal("expected the session cookie to be cleared")
	}
}

func TestRequireRecruiterAllowsRecruiter(t *testing.T) {
	sessions := &fakeSessionService{claims: session.Claims{PersonID: 3, Username: "greta"}}
	persons := &fakePersonRepo{byID: map[int64]person.Person{
		3: {ID: 3, Username: "greta", Role: person.RoleRecruiter},
	}}
	app := newGateApp(sessions, persons, true)

	resp := doGuarded(t, app, true)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusOK)
	}

	env := decodeEnvelope(t, resp)
	id, ok := env.Data.(float64)
	if !ok || int64(id) != 3 {
		t.Fatalf("data = %v, want the caller id 3", env.Data)
	}
	if sessionCookieCleared(resp) {
		t.Fatal("a passing request must not clear the session cookie")
	}
}
