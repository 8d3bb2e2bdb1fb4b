package routes

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/2403A51L17/SESD-Project/internal/app/controllers"
	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/middleware"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
	"github.com/2403A51L17/SESD-Project/internal/pkg/auth"
)

const cookieName = "session"

// Stub services with canned behavior, so the tests cover the routing,
// guards, and response shapes without a database.

type stubAuthService struct {
	sessions    *auth.SessionService
	registerErr error
}

func (s *stubAuthService) Register(_ context.Context, _ *dto.RegisterRequest) error {
	return s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (string, *dto.SessionResponse, error) {
	if req.Password != "correct-password" {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	token, err := s.sessions.Issue(1, "alice", req.Role)
	if err != nil {
		return "", nil, err
	}
	return token, &dto.SessionResponse{UserID: 1, Username: "alice", Role: req.Role}, nil
}

type stubProfileService struct{}

func (s *stubProfileService) StudentDashboard(_ context.Context, studentID int64) (*dto.StudentDashboard, error) {
	return &dto.StudentDashboard{
		Student: &models.Student{ID: studentID, Username: "alice"},
		Materials: []dto.MaterialResponse{
			{ID: 1, Filename: "notes.pdf", Description: "Intro", UploadDate: "2026-08-30 10:00", MentorName: "bob"},
		},
	}, nil
}

func (s *stubProfileService) MentorDashboard(_ context.Context, mentorID int64) (*dto.MentorDashboard, error) {
	return &dto.MentorDashboard{Mentor: &models.Mentor{ID: mentorID, Username: "bob"}}, nil
}

type stubMaterialService struct {
	uploadErr error
	paths     map[string]string
}

func (s *stubMaterialService) Upload(_ context.Context, mentorID int64, filename string, src io.Reader, _ string) (*models.Material, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &models.Material{ID: 1, MentorID: mentorID, Filename: filename}, nil
}

func (s *stubMaterialService) Resolve(filename string) (string, error) {
	if path, ok := s.paths[filename]; ok {
		return path, nil
	}
	return "", apperrors.ErrFileNotFound
}

type testApp struct {
	router   *gin.Engine
	sessions *auth.SessionService
	auth     *stubAuthService
	material *stubMaterialService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey: "test-secret",
		Duration:  time.Hour,
		Issuer:    "mentorship.test",
	})

	authSvc := &stubAuthService{sessions: sessions}
	materialSvc := &stubMaterialService{paths: map[string]string{}}

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authSvc, cookieName, 3600, zerolog.Nop()),
		controllers.NewProfileController(&stubProfileService{}, sessions, cookieName),
		controllers.NewMaterialController(materialSvc, zerolog.Nop()),
		middleware.NewAuthMiddleware(sessions, cookieName),
	)

	return &testApp{router: router, sessions: sessions, auth: authSvc, material: materialSvc}
}

func (app *testApp) sessionCookie(t *testing.T, role models.Role) *http.Cookie {
	t.Helper()
	token, err := app.sessions.Issue(1, "alice", role)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return &http.Cookie{Name: cookieName, Value: token}
}

func (app *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body %q: %v", rec.Body.String(), err)
	}
	return resp
}

func flashMessages(resp dto.APIResponse) []string {
	out := make([]string, 0, len(resp.Messages))
	for _, f := range resp.Messages {
		out = append(out, f.Message)
	}
	return out
}

func TestHomeRedirects(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous / = %d %q, want 303 /login", rec.Code, rec.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(app.sessionCookie(t, models.RoleStudent))
	rec = app.do(req)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/profile" {
		t.Fatalf("authenticated / = %d %q, want 303 /profile", rec.Code, rec.Header().Get("Location"))
	}
}

func TestProfileRequiresSession(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/profile", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	resp := decode(t, rec)
	if resp.Redirect != "/login" {
		t.Errorf("redirect = %q, want /login", resp.Redirect)
	}
}

func TestProfileDispatchByRole(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		role models.Role
		want string
	}{
		{models.RoleStudent, "/student/profile"},
		{models.RoleMentor, "/mentor/profile"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.AddCookie(app.sessionCookie(t, tc.role))
		rec := app.do(req)
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != tc.want {
			t.Errorf("role %s: %d %q, want 303 %s", tc.role, rec.Code, rec.Header().Get("Location"), tc.want)
		}
	}
}

func TestStudentProfilePage(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/student/profile", nil)
	req.AddCookie(app.sessionCookie(t, models.RoleStudent))
	rec := app.do(req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "notes.pdf") {
		t.Errorf("material listing missing from body: %s", rec.Body.String())
	}
}

func TestRoleGating(t *testing.T) {
	app := newTestApp(t)

	// A student cannot reach mentor-only routes
	req := httptest.NewRequest(http.MethodGet, "/mentor/profile", nil)
	req.AddCookie(app.sessionCookie(t, models.RoleStudent))
	if rec := app.do(req); rec.Code != http.StatusForbidden {
		t.Errorf("student on /mentor/profile = %d, want 403", rec.Code)
	}

	// A mentor cannot reach student-only routes
	req = httptest.NewRequest(http.MethodGet, "/student/profile", nil)
	req.AddCookie(app.sessionCookie(t, models.RoleMentor))
	if rec := app.do(req); rec.Code != http.StatusForbidden {
		t.Errorf("mentor on /student/profile = %d, want 403", rec.Code)
	}
}

func TestRegisterFlow(t *testing.T) {
	app := newTestApp(t)

	form := strings.NewReader("role=student&username=alice&email=alice%40example.com&password=secret123")
	req := httptest.NewRequest(http.MethodPost, "/register", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := app.do(req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("register = %d %q, want 303 /login", rec.Code, rec.Header().Get("Location"))
	}
	resp := decode(t, rec)
	if got := flashMessages(resp); len(got) != 1 || got[0] != "Registration successful! Please log in." {
		t.Errorf("flashes = %v", got)
	}
}

func TestRegisterDuplicateAccount(t *testing.T) {
	app := newTestApp(t)
	app.auth.registerErr = apperrors.ErrDuplicateAccount

	form := strings.NewReader("role=student&username=alice&email=alice%40example.com&password=secret123")
	req := httptest.NewRequest(http.MethodPost, "/register", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := app.do(req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	resp := decode(t, rec)
	if got := flashMessages(resp); len(got) != 1 || got[0] != "Registration failed: Username or Email already exists." {
		t.Errorf("flashes = %v", got)
	}
}

func TestRegisterValidationEchoesFormWithoutPassword(t *testing.T) {
	app := newTestApp(t)

	// Password missing, binding fails
	form := strings.NewReader("role=student&username=alice&email=alice%40example.com")
	req := httptest.NewRequest(http.MethodPost, "/register", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := app.do(req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "alice") {
		t.Errorf("form not echoed back: %s", body)
	}
	if strings.Contains(body, "secret") {
		t.Errorf("password leaked into response: %s", body)
	}
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)

	form := strings.NewReader("role=student&email=alice%40example.com&password=correct-password")
	req := httptest.NewRequest(http.MethodPost, "/login", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := app.do(req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/profile" {
		t.Fatalf("login = %d %q, want 303 /profile", rec.Code, rec.Header().Get("Location"))
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" {
		t.Fatal("login did not set the session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie is not HttpOnly")
	}

	// The cookie must hold a token the guard accepts
	claims, err := app.sessions.Validate(sessionCookie.Value)
	if err != nil {
		t.Fatalf("Validate(cookie): %v", err)
	}
	if claims.Username != "alice" || claims.Role != models.RoleStudent {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginFailure(t *testing.T) {
	app := newTestApp(t)

	form := strings.NewReader("role=student&email=alice%40example.com&password=wrong")
	req := httptest.NewRequest(http.MethodPost, "/login", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := app.do(req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	resp := decode(t, rec)
	if got := flashMessages(resp); len(got) != 1 || got[0] != "Login Failed. Check email, password, and role." {
		t.Errorf("flashes = %v", got)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName && c.Value != "" {
			t.Error("failed login set a session cookie")
		}
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(app.sessionCookie(t, models.RoleStudent))
	rec := app.do(req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("logout = %d %q, want 303 /login", rec.Code, rec.Header().Get("Location"))
	}
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout did not clear the session cookie")
	}
}

func TestUploadMaterial(t *testing.T) {
	app := newTestApp(t)

	var buf strings.Builder
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "notes.pdf")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte("content")); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := writer.WriteField("file_description", "Intro slides"); err != nil {
		t.Fatalf("WriteField: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload_material", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(app.sessionCookie(t, models.RoleMentor))
	rec := app.do(req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/mentor/profile" {
		t.Fatalf("upload = %d %q, want 303 /mentor/profile", rec.Code, rec.Header().Get("Location"))
	}
	resp := decode(t, rec)
	if got := flashMessages(resp); len(got) != 1 || got[0] != "File uploaded successfully!" {
		t.Errorf("flashes = %v", got)
	}
}

func TestUploadWithoutFilePart(t *testing.T) {
	app := newTestApp(t)

	var buf strings.Builder
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("file_description", "no file attached")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload_material", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(app.sessionCookie(t, models.RoleMentor))
	rec := app.do(req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	resp := decode(t, rec)
	if got := flashMessages(resp); len(got) != 1 || got[0] != "No file part" {
		t.Errorf("flashes = %v", got)
	}
}

func TestDownload(t *testing.T) {
	app := newTestApp(t)

	path := filepath.Join(t.TempDir(), "notes.pdf")
	if err := os.WriteFile(path, []byte("stored content"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	app.material.paths["notes.pdf"] = path

	req := httptest.NewRequest(http.MethodGet, "/download/notes.pdf", nil)
	req.AddCookie(app.sessionCookie(t, models.RoleStudent))
	rec := app.do(req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "stored content" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", got)
	}
}

func TestDownloadMissingFile(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/download/ghost.pdf", nil)
	req.AddCookie(app.sessionCookie(t, models.RoleStudent))
	rec := app.do(req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/student/profile" {
		t.Fatalf("download = %d %q, want 303 /student/profile", rec.Code, rec.Header().Get("Location"))
	}
	resp := decode(t, rec)
	if got := flashMessages(resp); len(got) != 1 || got[0] != "File not found." {
		t.Errorf("flashes = %v", got)
	}
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
