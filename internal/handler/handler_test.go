package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/campusreg/campusreg-go/internal/middleware"
	"github.com/campusreg/campusreg-go/internal/model"
	"github.com/campusreg/campusreg-go/internal/repository"
	"github.com/campusreg/campusreg-go/internal/service"
)

const testSecret = "test-secret"

// In-memory stores backing the real services, so handler tests exercise the
// full request path below the database.

type memUserStore struct {
	users  map[string]*model.User
	nextID int64
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.users[email]
	return ok, nil
}

type memCourseStore struct {
	courses map[string]model.Course
}

func (m *memCourseStore) List(_ context.Context) ([]model.Course, error) {
	var out []model.Course
	for _, c := range m.courses {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCourseStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.courses[id]
	return ok, nil
}

type memEnrollmentStore struct {
	courses *memCourseStore
	byUser  map[int64][]string
}

func (m *memEnrollmentStore) Add(_ context.Context, userID int64, courseID string) error {
	for _, id := range m.byUser[userID] {
		if id == courseID {
			return nil
		}
	}
	m.byUser[userID] = append(m.byUser[userID], courseID)
	return nil
}

func (m *memEnrollmentStore) ListCourses(_ context.Context, userID int64) ([]model.Course, error) {
	var out []model.Course
	for _, id := range m.byUser[userID] {
		if c, ok := m.courses.courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// newTestRouter wires the same route tree as cmd/api over in-memory stores.
func newTestRouter() http.Handler {
	users := &memUserStore{users: make(map[string]*model.User)}
	courses := &memCourseStore{courses: map[string]model.Course{
		"CS101":   {StringID: "CS101", Title: "Intro to Computer Science", CreditHours: 3},
		"MATH140": {StringID: "MATH140", Title: "Calculus I", CreditHours: 4},
	}}
	enrollments := &memEnrollmentStore{courses: courses, byUser: make(map[int64][]string)}

	authService := service.NewAuthService(users, testSecret, time.Hour)
	courseService := service.NewCourseService(courses)
	enrollmentService := service.NewEnrollmentService(enrollments, courses)

	authHandler := NewAuthHandler(authService, testSecret, CookieConfig{Secure: false, MaxAge: 86400})
	userHandler := NewUserHandler(authService, enrollmentService)
	courseHandler := NewCourseHandler(courseService, enrollmentService)
	clientLogHandler := NewClientLogHandler()

	r := chi.NewRouter()
	r.Post("/api/signup", authHandler.HandleSignup)
	r.Post("/api/login", authHandler.HandleLogin)
	r.Post("/api/logout", authHandler.HandleLogout)
	r.Get("/api/validateJwt", authHandler.HandleValidateSession)
	r.Get("/api/courses", courseHandler.HandleListCourses)
	r.Post("/api/client-logs", clientLogHandler.HandleClientLog)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(testSecret))
		r.Post("/api/enroll", courseHandler.HandleEnroll)
		r.Get("/api/userDetails", userHandler.HandleUserDetails)
		r.Get("/api/userCourses", userHandler.HandleUserCourses)
	})

	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode error: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

func loginAs(t *testing.T, router http.Handler, email, password string) *http.Cookie {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/login", model.LoginRequest{Email: email, Password: password}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	cookie := sessionCookie(t, rec)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("login did not set a session cookie")
	}
	return cookie
}

func signup(t *testing.T, router http.Handler, email string) {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/signup", model.SignupRequest{
		Email: email, Password: "pw123", FirstName: "A", LastName: "B",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", rec.Code, rec.Body.String())
	}
}
