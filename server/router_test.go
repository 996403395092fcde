package server

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobpilot-backend/shared/config"
	"jobpilot-backend/shared/database"
	"jobpilot-backend/shared/database/models"
	"jobpilot-backend/shared/session"
)

// fakeCredentials keeps users in memory keyed by org email.
type fakeCredentials struct {
	users       map[string]models.User
	passwords   map[string]string
	verifyCalls int
}

func newFakeCredentials() *fakeCredentials {
	return &fakeCredentials{
		users:     make(map[string]models.User),
		passwords: make(map[string]string),
	}
}

func (f *fakeCredentials) Register(_ context.Context, in database.RegisterInput) (uuid.UUID, error) {
	if _, exists := f.users[in.OrgEmail]; exists {
		return uuid.Nil, database.ErrDuplicateUser
	}
	user := models.User{
		ID:       uuid.New(),
		FullName: in.FullName,
		Mobile:   in.Mobile,
		OrgEmail: in.OrgEmail,
		Gender:   in.Gender,
	}
	f.users[in.OrgEmail] = user
	f.passwords[in.OrgEmail] = in.Password
	return user.ID, nil
}

func (f *fakeCredentials) Verify(_ context.Context, orgEmail, password string) (models.User, error) {
	f.verifyCalls++
	user, exists := f.users[orgEmail]
	if !exists {
		return models.User{}, database.ErrUserNotFound
	}
	if f.passwords[orgEmail] != password {
		return models.User{}, database.ErrBadCredential
	}
	return user, nil
}

func (f *fakeCredentials) FindUserByID(_ context.Context, id uuid.UUID) (models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, database.ErrUserNotFound
}

// fakeOnboarding records every persisted step, enforcing the contact
// required fields the way the real store does.
type fakeOnboarding struct {
	companies []models.Company
	foundings []models.Founding
	socials   []models.Social
	contacts  []models.Contact
}

func (f *fakeOnboarding) CreateCompany(_ context.Context, company *models.Company) error {
	f.companies = append(f.companies, *company)
	return nil
}

func (f *fakeOnboarding) CreateFounding(_ context.Context, founding *models.Founding) error {
	f.foundings = append(f.foundings, *founding)
	return nil
}

func (f *fakeOnboarding) CreateSocial(_ context.Context, social *models.Social) error {
	f.socials = append(f.socials, *social)
	return nil
}

func (f *fakeOnboarding) CreateContact(_ context.Context, contact *models.Contact) error {
	for _, value := range []string{contact.MapLocation, contact.PhoneNumber, contact.Email} {
		if strings.TrimSpace(value) == "" {
			return database.ErrMissingField
		}
	}
	f.contacts = append(f.contacts, *contact)
	return nil
}

// fakeUploader returns deterministic public URLs without touching storage.
type fakeUploader struct {
	uploads []string
}

func (f *fakeUploader) UploadImage(_ context.Context, header *multipart.FileHeader, prefix string) (string, error) {
	publicURL := fmt.Sprintf("http://uploads.local/bucket/%s/%s", prefix, header.Filename)
	f.uploads = append(f.uploads, publicURL)
	return publicURL, nil
}

// fakeSessions is an in-memory session.Manager.
type fakeSessions struct {
	tokens map[string]uuid.UUID
	next   int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{tokens: make(map[string]uuid.UUID)}
}

func (f *fakeSessions) Create(_ context.Context, userID uuid.UUID) (string, error) {
	f.next++
	token := fmt.Sprintf("token-%d", f.next)
	f.tokens[token] = userID
	return token, nil
}

func (f *fakeSessions) Resolve(_ context.Context, token string) (uuid.UUID, bool, error) {
	userID, ok := f.tokens[token]
	return userID, ok, nil
}

func (f *fakeSessions) Destroy(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func (f *fakeSessions) TTL() time.Duration {
	return 24 * time.Hour
}

type testEnv struct {
	router      *gin.Engine
	credentials *fakeCredentials
	onboarding  *fakeOnboarding
	uploads     *fakeUploader
	sessions    *fakeSessions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	templatesDir := t.TempDir()
	pages := []string{
		"home.html", "login.html", "register.html", "dashboard.html",
		"company.html", "founding.html", "socials.html", "contact.html",
		"success.html",
	}
	for _, page := range pages {
		content := "<html>{{if .Error}}{{.Error}}{{end}}ok</html>"
		require.NoError(t, os.WriteFile(filepath.Join(templatesDir, page), []byte(content), 0o644))
	}

	cfg := &config.Config{
		TemplatesDir:                templatesDir,
		SessionTTLHours:             24,
		LoginRateLimitMaxAttempts:   100,
		LoginRateLimitWindowSeconds: 300,
		LoginRateLimitBlockMinutes:  30,
	}

	env := &testEnv{
		credentials: newFakeCredentials(),
		onboarding:  &fakeOnboarding{},
		uploads:     &fakeUploader{},
		sessions:    newFakeSessions(),
	}

	env.router = NewRouter(cfg, Dependencies{
		Credentials: env.credentials,
		Onboarding:  env.onboarding,
		Uploads:     env.uploads,
		Sessions:    env.sessions,
		Users:       env.credentials,
	})

	return env
}

func (e *testEnv) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

// registerAndLogin runs the registration and login forms and returns the
// session cookie.
func (e *testEnv) registerAndLogin(t *testing.T, email, password string) *http.Cookie {
	t.Helper()

	recorder := e.postForm("/register", url.Values{
		"fullName": {"Alice"},
		"mobile":   {"555"},
		"orgEmail": {email},
		"gender":   {"f"},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, recorder.Code)
	require.Equal(t, "/login", recorder.Header().Get("Location"))

	recorder = e.postForm("/login", url.Values{
		"orgEmail": {email},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, recorder.Code)
	require.Equal(t, "/dashboard", recorder.Header().Get("Location"))

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func TestProtectedPagesRedirectToLogin(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/dashboard", "/company", "/founding", "/socials", "/contact", "/logout"} {
		recorder := env.get(path)
		assert.Equal(t, http.StatusFound, recorder.Code, path)
		assert.Equal(t, "/login", recorder.Header().Get("Location"), path)
	}
}

func TestSuccessPageIsPublic(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.get("/success")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRegisterThenLoginSucceeds(t *testing.T) {
	env := newTestEnv(t)

	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.get("/dashboard", cookie)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLoginWithWrongPasswordFails(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "a@x.com", "pw1")

	// Wrong password always fails, no matter how many attempts came before.
	for i := 0; i < 3; i++ {
		recorder := env.postForm("/login", url.Values{
			"orgEmail": {"a@x.com"},
			"password": {"wrong"},
		})
		assert.Equal(t, http.StatusFound, recorder.Code)
		assert.Equal(t, "/login", recorder.Header().Get("Location"))

		for _, cookie := range recorder.Result().Cookies() {
			assert.NotEqual(t, session.CookieName, cookie.Name)
		}
	}
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	env := newTestEnv(t)
	env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.postForm("/register", url.Values{
		"fullName": {"Alice Again"},
		"orgEmail": {"a@x.com"},
		"password": {"pw2"},
	})
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/register", recorder.Header().Get("Location"))
	assert.Len(t, env.credentials.users, 1)
}

func TestFoundingStepPersistsAndRedirects(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.postForm("/founding", url.Values{
		"organizationName": {"Acme"},
		"industryType":     {"Tech"},
		"teamSize":         {"5"},
	}, cookie)

	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/socials", recorder.Header().Get("Location"))

	require.Len(t, env.onboarding.foundings, 1)
	founding := env.onboarding.foundings[0]
	assert.Equal(t, "Acme", founding.OrganizationName)
	assert.Equal(t, "Tech", founding.IndustryType)
	assert.Equal(t, 5, founding.TeamSize)
	assert.Empty(t, founding.Vision)
	assert.Empty(t, founding.CompanyWebsite)
	assert.Nil(t, founding.Date)
}

func TestFoundingStepAllowsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	form := url.Values{
		"organizationName": {"Acme"},
		"industryType":     {"Tech"},
		"teamSize":         {"5"},
	}
	env.postForm("/founding", form, cookie)
	env.postForm("/founding", form, cookie)

	assert.Len(t, env.onboarding.foundings, 2)
}

func TestContactStepRequiresEmail(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.postForm("/contact", url.Values{
		"map_location": {"Dhaka"},
		"phone_number": {"555"},
		"email":        {""},
	}, cookie)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Empty(t, env.onboarding.contacts)
}

func TestContactStepRedirectsToSuccess(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.postForm("/contact", url.Values{
		"map_location": {"Dhaka"},
		"phone_number": {"555"},
		"email":        {"hr@acme.com"},
	}, cookie)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/success", recorder.Header().Get("Location"))
	assert.Len(t, env.onboarding.contacts, 1)
}

func TestSocialsStepAllFieldsOptional(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.postForm("/socials", url.Values{}, cookie)

	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/contact", recorder.Header().Get("Location"))
	assert.Len(t, env.onboarding.socials, 1)
}

func TestCompanyStepUploadsAndPersists(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	var body strings.Builder
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("company_name", "Acme"))
	require.NoError(t, writer.WriteField("about_us", "We make everything."))

	logo, err := writer.CreateFormFile("company_logo", "logo.png")
	require.NoError(t, err)
	_, err = io.WriteString(logo, "png-bytes")
	require.NoError(t, err)

	banner, err := writer.CreateFormFile("banner_image", "banner.jpg")
	require.NoError(t, err)
	_, err = io.WriteString(banner, "jpg-bytes")
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/company", strings.NewReader(body.String()))
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)
	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/founding", recorder.Header().Get("Location"))

	require.Len(t, env.onboarding.companies, 1)
	company := env.onboarding.companies[0]
	assert.Equal(t, "Acme", company.CompanyName)
	assert.Equal(t, "We make everything.", company.AboutUs)
	assert.Contains(t, company.CompanyLogo, "company_logo/logo.png")
	assert.Contains(t, company.BannerImage, "banner_image/banner.jpg")
	assert.Len(t, env.uploads.uploads, 2)
}

func TestCompanyStepWithoutFilesFails(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.postForm("/company", url.Values{
		"company_name": {"Acme"},
	}, cookie)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Empty(t, env.onboarding.companies)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.registerAndLogin(t, "a@x.com", "pw1")

	recorder := env.get("/logout", cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	// The old token no longer grants access.
	recorder = env.get("/dashboard", cookie)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))
}
