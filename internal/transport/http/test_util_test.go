package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"courseadmin/internal/application/usecase"
	"courseadmin/internal/domain"
	"courseadmin/internal/infrastructure/security"
	"courseadmin/internal/middleware"
)

// In-memory repositories backing the handler tests.

type memUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailExists
		}
	}
	user.ID = uuid.New()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, digest string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Password = digest
	return nil
}

func (r *memUserRepo) UpdateEmail(_ context.Context, id uuid.UUID, email string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Email = email
	return nil
}

func (r *memUserRepo) EmailTaken(_ context.Context, email string, selfID uuid.UUID) (bool, error) {
	for _, u := range r.users {
		if u.Email == email && u.ID != selfID {
			return true, nil
		}
	}
	return false, nil
}

type memCourseRepo struct {
	courses map[uuid.UUID]*domain.Course
}

func (r *memCourseRepo) GetByID(_ context.Context, id uuid.UUID, _ bool) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCourseRepo) List(_ context.Context, _ bool) ([]domain.Course, error) {
	list := make([]domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		list = append(list, *c)
	}
	return list, nil
}

func (r *memCourseRepo) Create(_ context.Context, course *domain.Course) error {
	course.ID = uuid.New()
	cp := *course
	r.courses[course.ID] = &cp
	return nil
}

func (r *memCourseRepo) Replace(_ context.Context, id uuid.UUID, in domain.CourseInput, sections []domain.Section) (*domain.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	c.Title = in.Title
	c.Description = in.Description
	c.ImageURL = in.ImageURL
	c.Sections = sections
	cp := *c
	return &cp, nil
}

func (r *memCourseRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.courses[id]; !ok {
		return domain.ErrCourseNotFound
	}
	delete(r.courses, id)
	return nil
}

type memGrantKey struct {
	courseID uuid.UUID
	email    string
}

type memGrantRepo struct {
	grants map[memGrantKey]*domain.StudentCourse
}

func (r *memGrantRepo) Create(_ context.Context, grant *domain.StudentCourse) error {
	key := memGrantKey{grant.CourseID, grant.StudentEmail}
	if _, ok := r.grants[key]; ok {
		return domain.ErrGrantExists
	}
	cp := *grant
	r.grants[key] = &cp
	return nil
}

func (r *memGrantRepo) Delete(_ context.Context, courseID uuid.UUID, email string) error {
	key := memGrantKey{courseID, email}
	if _, ok := r.grants[key]; !ok {
		return domain.ErrGrantNotFound
	}
	delete(r.grants, key)
	return nil
}

func (r *memGrantRepo) Update(_ context.Context, courseID uuid.UUID, email string, patch domain.GrantPatch) (*domain.StudentCourse, error) {
	key := memGrantKey{courseID, email}
	g, ok := r.grants[key]
	if !ok {
		return nil, domain.ErrGrantNotFound
	}
	if patch.NewEmail != nil && *patch.NewEmail != "" {
		delete(r.grants, key)
		g.StudentEmail = *patch.NewEmail
		r.grants[memGrantKey{courseID, g.StudentEmail}] = g
	}
	if patch.CertificateURL != nil {
		g.CertificateURL = *patch.CertificateURL
	}
	cp := *g
	return &cp, nil
}

func (r *memGrantRepo) ListForCourse(_ context.Context, courseID uuid.UUID) ([]domain.StudentCourse, error) {
	list := make([]domain.StudentCourse, 0)
	for key, g := range r.grants {
		if key.courseID == courseID {
			list = append(list, *g)
		}
	}
	return list, nil
}

type testServer struct {
	router  *gin.Engine
	users   *memUserRepo
	courses *memCourseRepo
	grants  *memGrantRepo
	auth    *usecase.AuthUseCase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &memUserRepo{users: map[uuid.UUID]*domain.User{}}
	courses := &memCourseRepo{courses: map[uuid.UUID]*domain.Course{}}
	grants := &memGrantRepo{grants: map[memGrantKey]*domain.StudentCourse{}}

	tokens := security.NewTokenManager("test-secret")
	auth := usecase.NewAuthUseCase(users, security.NewPasswordHasher(), tokens)

	handlers := Handlers{
		Auth:     NewAuthHandler(auth, false),
		Courses:  NewCourseHandler(usecase.NewCourseUseCase(courses)),
		Students: NewStudentHandler(usecase.NewEnrollmentUseCase(grants)),
	}
	router := NewRouter(handlers, middleware.SessionGate(tokens), middleware.NewRateLimiter(nil), nil, zerolog.Nop())

	return &testServer{router: router, users: users, courses: courses, grants: grants, auth: auth}
}

const adminPassword = "Adm1nPass!"

// loginAdmin registers an admin and returns its session cookie.
func (s *testServer) loginAdmin(t *testing.T) *http.Cookie {
	t.Helper()
	_, err := s.auth.Register(context.Background(), "admin@example.com", adminPassword, true)
	require.NoError(t, err)

	rec := s.do(t, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": adminPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
