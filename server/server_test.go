package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Bios-Marcel/donatehub/backend"
	"github.com/Bios-Marcel/donatehub/config"
	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (log *callLog) record(call string) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.calls = append(log.calls, call)
}

func (log *callLog) has(call string) bool {
	log.mu.Lock()
	defer log.mu.Unlock()
	for _, recorded := range log.calls {
		if recorded == call {
			return true
		}
	}
	return false
}

// take returns the calls recorded so far and forgets them.
func (log *callLog) take() []string {
	log.mu.Lock()
	defer log.mu.Unlock()
	calls := log.calls
	log.calls = nil
	return calls
}

type harness struct {
	t        *testing.T
	sessions *session.Store
	frontend *httptest.Server
	client   *http.Client
	calls    *callLog
}

func writeJSON(responseWriter http.ResponseWriter, status int, body any) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(body)
}

// fakeBackend answers the login calls with fixed profiles. Tests add the
// routes they need through extra.
func fakeBackend(calls *callLog, extra func(router chi.Router)) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
			calls.record(request.Method + " " + request.URL.Path)
			next.ServeHTTP(responseWriter, request)
		})
	})
	router.Post("/login", func(responseWriter http.ResponseWriter, request *http.Request) {
		var credentials backend.Credentials
		json.NewDecoder(request.Body).Decode(&credentials)
		if credentials.Password != "secret" {
			writeJSON(responseWriter, http.StatusUnauthorized, map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeJSON(responseWriter, http.StatusOK, map[string]any{
			"success": true,
			"user":    map[string]any{"_id": "u1", "name": "Ann", "email": credentials.Email},
		})
	})
	router.Post("/ngo/login", func(responseWriter http.ResponseWriter, request *http.Request) {
		var credentials backend.Credentials
		json.NewDecoder(request.Body).Decode(&credentials)
		if credentials.Password != "secret" {
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": false})
			return
		}
		writeJSON(responseWriter, http.StatusOK, map[string]any{
			"success": true,
			"ngo":     map[string]any{"id": 7, "name": "Helping Hands", "email": credentials.Email},
		})
	})
	router.Get("/ngos", func(responseWriter http.ResponseWriter, request *http.Request) {
		writeJSON(responseWriter, http.StatusOK, map[string]any{
			"success": true,
			"ngos":    []map[string]any{{"_id": "n1", "name": "Helping Hands"}},
		})
	})
	if extra != nil {
		extra(router)
	}
	return router
}

func newHarness(t *testing.T, cfg *config.Config, extra func(router chi.Router)) *harness {
	t.Helper()

	calls := &callLog{}
	backendServer := httptest.NewServer(fakeBackend(calls, extra))
	t.Cleanup(backendServer.Close)

	sessions, err := session.Open(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })

	if cfg == nil {
		cfg = config.DefaultConfig()
		cfg.RateLimit.Enabled = false
	}
	cfg.Session.Secret = "test-secret"

	server, err := New(cfg, sessions, backend.New(backendServer.URL, backendServer.Client(), nil), nil)
	require.NoError(t, err)
	frontend := httptest.NewServer(server.Router())
	t.Cleanup(frontend.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &harness{t: t, sessions: sessions, frontend: frontend, client: client, calls: calls}
}

func (h *harness) get(path string) (*http.Response, string) {
	h.t.Helper()
	response, err := h.client.Get(h.frontend.URL + path)
	require.NoError(h.t, err)
	return response, readBody(h.t, response)
}

func (h *harness) post(path string, form url.Values) (*http.Response, string) {
	h.t.Helper()
	response, err := h.client.PostForm(h.frontend.URL+path, form)
	require.NoError(h.t, err)
	return response, readBody(h.t, response)
}

func (h *harness) postMultipart(path string, fields map[string]string, photo []byte) (*http.Response, string) {
	h.t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(h.t, writer.WriteField(name, value))
	}
	if photo != nil {
		part, err := writer.CreateFormFile("photo", "shirt.jpg")
		require.NoError(h.t, err)
		_, err = part.Write(photo)
		require.NoError(h.t, err)
	}
	require.NoError(h.t, writer.Close())

	response, err := h.client.Post(h.frontend.URL+path, writer.FormDataContentType(), &body)
	require.NoError(h.t, err)
	return response, readBody(h.t, response)
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return string(raw)
}

// stored returns the only browser session of the store.
func (h *harness) stored() *data.Session {
	h.t.Helper()
	sessions, err := h.sessions.List()
	require.NoError(h.t, err)
	require.Len(h.t, sessions, 1)
	return sessions[0]
}

func (h *harness) loginUser() {
	h.t.Helper()
	response, _ := h.post("/login", url.Values{"email": {"ann@example.com"}, "password": {"secret"}})
	require.Equal(h.t, http.StatusSeeOther, response.StatusCode)
	require.Equal(h.t, "/dashboard", response.Header.Get("Location"))
}

func (h *harness) loginNgo() {
	h.t.Helper()
	response, _ := h.get("/mode/ngo?next=/ngo-login")
	require.Equal(h.t, http.StatusSeeOther, response.StatusCode)
	response, _ = h.post("/ngo-login", url.Values{"email": {"contact@ngo.org"}, "password": {"secret"}})
	require.Equal(h.t, http.StatusSeeOther, response.StatusCode)
	require.Equal(h.t, "/ngo-dashboard", response.Header.Get("Location"))
}

func assertRedirect(t *testing.T, response *http.Response, location string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, response.StatusCode)
	assert.Equal(t, location, response.Header.Get("Location"))
}

// undecodableUser stores a donor profile the session store can't read back.
type undecodableUser struct{}

func (undecodableUser) Role() data.Mode { return data.ModeUser }
func (undecodableUser) ProfileID() data.ID { return "u1" }
func (undecodableUser) MarshalJSON() ([]byte, error) {
	return []byte(`{"name":5}`), nil
}

func TestCorruptSessionStartsOver(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.loginUser()
	stale := h.stored().Token
	require.NoError(t, h.sessions.Login(stale, undecodableUser{}, data.ModeUser))

	response, _ := h.get("/dashboard")
	assertRedirect(t, response, "/login")

	sessions, err := h.sessions.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)

	response, body := h.get("/")
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "Login as User")
	h.loginUser()
	assert.NotEqual(t, stale, h.stored().Token)
}

func TestGuardRedirectsLoggedOut(t *testing.T) {
	h := newHarness(t, nil, nil)

	response, _ := h.get("/dashboard")
	assertRedirect(t, response, "/login")
	response, _ = h.get("/donation/d1")
	assertRedirect(t, response, "/login")
	response, _ = h.get("/ngo-dashboard")
	assertRedirect(t, response, "/ngo-login")
	response, _ = h.get("/ngo/manage-volunteers")
	assertRedirect(t, response, "/ngo-login")
	response, _ = h.get("/definitely/not/a/page")
	assertRedirect(t, response, "/")

	response, body := h.get("/")
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "Donator Login")
}

func TestUserLogin(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Get("/donations", func(responseWriter http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "u1", request.URL.Query().Get("userId"))
			writeJSON(responseWriter, http.StatusOK, map[string]any{
				"success":   true,
				"donations": []map[string]any{{"_id": "d1", "category": "Books", "quantity": 3, "status": "Approved"}},
			})
		})
	})
	h.loginUser()

	stored := h.stored()
	assert.True(t, stored.IsLoggedIn)
	assert.Equal(t, data.ModeUser, stored.Mode)
	require.NotNil(t, stored.User)
	assert.Equal(t, data.ID("u1"), stored.User.ID)

	response, body := h.get("/dashboard")
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "Welcome back, Ann")
	assert.Contains(t, body, `href="/donation/d1"`)
	assert.Contains(t, body, "Hi, Ann")

	response, _ = h.get("/login")
	assertRedirect(t, response, "/dashboard")
	response, _ = h.get("/ngo-dashboard")
	assertRedirect(t, response, "/ngo-login")
}

func TestLoginRejectedShowsBackendMessage(t *testing.T) {
	h := newHarness(t, nil, nil)

	response, body := h.post("/login", url.Values{"email": {"ann@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "Invalid credentials")
	assert.Contains(t, body, `value="ann@example.com"`)

	sessions, err := h.sessions.List()
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestNgoModeSurvivesFailedLogin(t *testing.T) {
	h := newHarness(t, nil, nil)

	response, _ := h.get("/mode/ngo?next=/ngo-login")
	assertRedirect(t, response, "/ngo-login")

	_, body := h.post("/ngo-login", url.Values{"email": {"contact@ngo.org"}, "password": {"wrong"}})
	assert.Contains(t, body, "Invalid email or password.")

	stored := h.stored()
	assert.False(t, stored.IsLoggedIn)
	assert.Equal(t, data.ModeNgo, stored.Mode)

	_, body = h.get("/")
	assert.Contains(t, body, "For NGOs")
	assert.NotContains(t, body, "For Donors")
}

func TestModeSwitchRejectsForeignTargets(t *testing.T) {
	h := newHarness(t, nil, nil)

	response, _ := h.get("/mode/user?next=https://evil.example")
	assertRedirect(t, response, "/login")
	response, _ = h.get("/mode/user?next=/register")
	assertRedirect(t, response, "/register")
}

func TestLogoutClearsSession(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.loginUser()
	token := h.stored().Token

	response, body := h.get("/logout")
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "Are you sure you want to logout?")

	response, _ = h.post("/logout", url.Values{"confirm": {"yes"}})
	assertRedirect(t, response, "/")

	keys, err := h.sessions.Keys(token)
	require.NoError(t, err)
	assert.Empty(t, keys)
	loaded, err := h.sessions.Load(token)
	require.NoError(t, err)
	assert.False(t, loaded.IsLoggedIn)
	assert.Equal(t, data.ModeDefault, loaded.Mode)

	response, _ = h.get("/dashboard")
	assertRedirect(t, response, "/login")
}

func TestTamperedCookieStartsNewSession(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.loginUser()
	token := h.stored().Token

	frontendURL, err := url.Parse(h.frontend.URL)
	require.NoError(t, err)
	cookies := h.client.Jar.Cookies(frontendURL)
	require.Len(t, cookies, 1)

	forged, err := (&cookieCodec{secret: []byte("someone-else")}).encode(token)
	require.NoError(t, err)
	h.client.Jar.SetCookies(frontendURL, []*http.Cookie{{Name: "session", Value: forged, Path: "/"}})

	response, _ := h.get("/dashboard")
	assertRedirect(t, response, "/login")
	require.NotEmpty(t, response.Cookies())
	assert.NotEqual(t, forged, response.Cookies()[0].Value)
}

func TestSwitchedModeWithoutProfileDoesNotLoop(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.loginUser()

	response, _ := h.get("/mode/ngo?next=/ngo-login")
	assertRedirect(t, response, "/ngo-login")

	response, _ = h.get("/ngo-dashboard")
	assertRedirect(t, response, "/ngo-login")
	response, body := h.get("/ngo-login")
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "NGO Login")
}

func TestDonationWithoutNgoNeverReachesBackend(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Post("/donate", func(responseWriter http.ResponseWriter, request *http.Request) {
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true})
		})
	})
	h.loginUser()
	h.calls.take()

	// The only call is the NGO listing used to redisplay the form.
	redisplay := []string{"GET /ngos"}

	fields := map[string]string{"category": "Clothes", "quantity": "2", "address": "Main St 1"}
	response, body := h.postMultipart("/donate", fields, []byte("jpeg"))
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "Please fill in all required fields.")
	assert.Contains(t, body, `<option value="Clothes" selected>`)
	assert.Equal(t, redisplay, h.calls.take())

	fields["ngo_id"] = "n1"
	_, body = h.postMultipart("/donate", fields, nil)
	assert.Contains(t, body, "Please upload a photo of the item.")
	assert.Contains(t, body, `<option value="n1" selected>Helping Hands</option>`)
	assert.Equal(t, redisplay, h.calls.take())

	fields["category"] = "Furniture"
	_, body = h.postMultipart("/donate", fields, []byte("jpeg"))
	assert.Contains(t, body, "Please select a valid category.")
	assert.Equal(t, redisplay, h.calls.take())

	fields["category"] = "Clothes"
	_, body = h.postMultipart("/donate", fields, []byte("jpeg"))
	assert.Contains(t, body, "Donation submitted successfully!")
	assert.Equal(t, []string{"POST /donate"}, h.calls.take())
}

func TestDonationSubmitted(t *testing.T) {
	received := make(chan map[string]string, 1)
	h := newHarness(t, nil, func(router chi.Router) {
		router.Post("/donate", func(responseWriter http.ResponseWriter, request *http.Request) {
			require.NoError(t, request.ParseMultipartForm(1<<20))
			photo, header, err := request.FormFile("photo")
			require.NoError(t, err)
			photo.Close()
			received <- map[string]string{
				"user_id":  request.FormValue("user_id"),
				"ngo_id":   request.FormValue("ngo_id"),
				"category": request.FormValue("category"),
				"photo":    header.Filename,
			}
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true})
		})
	})
	h.loginUser()

	fields := map[string]string{"ngo_id": "n1", "category": "Books", "quantity": "4", "address": "Main St 1"}
	_, body := h.postMultipart("/donate", fields, []byte("jpeg"))
	assert.Contains(t, body, "Donation submitted successfully!")
	assert.Contains(t, body, "Donate More")

	got := <-received
	assert.Equal(t, "u1", got["user_id"])
	assert.Equal(t, "n1", got["ngo_id"])
	assert.Equal(t, "Books", got["category"])
	assert.Equal(t, "shirt.jpg", got["photo"])
}

func TestEditProfileUpdatesStoredUser(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Put("/edit-profile", func(responseWriter http.ResponseWriter, request *http.Request) {
			var update backend.ProfileUpdate
			require.NoError(t, json.NewDecoder(request.Body).Decode(&update))
			assert.Equal(t, data.ID("u1"), update.ID)
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true})
		})
	})
	h.loginUser()

	response, _ := h.post("/edit-profile", url.Values{"name": {"Annie"}, "email": {"annie@example.com"}, "password": {"new"}})
	assertRedirect(t, response, "/dashboard")

	stored := h.stored()
	require.NotNil(t, stored.User)
	assert.Equal(t, "Annie", stored.User.Name)
	assert.Equal(t, "annie@example.com", stored.User.Email)
}

func TestJoinNgo(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Post("/volunteer/join", func(responseWriter http.ResponseWriter, request *http.Request) {
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true})
		})
	})
	h.loginUser()

	response, _ := h.post("/join-ngo/n1", nil)
	assertRedirect(t, response, "/join-ngo?sent=n1")

	_, body := h.get("/join-ngo?sent=n1")
	assert.Contains(t, body, "Request Sent Successfully!")
	assert.Contains(t, body, `disabled>Request Sent</button>`)
}

func TestNgoDashboardLoadsDonationsAndStats(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Get("/ngo/{id}/donations", func(responseWriter http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "7", chi.URLParam(request, "id"))
			writeJSON(responseWriter, http.StatusOK, map[string]any{
				"success":   true,
				"donations": []map[string]any{{"id": 11, "donor_name": "Ann", "category": "Toys", "status": "Pending"}},
			})
		})
		router.Get("/ngo/{id}/stats", func(responseWriter http.ResponseWriter, request *http.Request) {
			writeJSON(responseWriter, http.StatusOK, map[string]any{
				"success": true, "totalDonations": 12, "volunteers": 4, "pending": 3,
			})
		})
	})
	h.loginNgo()

	stored := h.stored()
	assert.Equal(t, data.ModeNgo, stored.Mode)
	require.NotNil(t, stored.Ngo)
	assert.Equal(t, data.ID("7"), stored.Ngo.ID)

	response, body := h.get("/ngo-dashboard")
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "<h2>Total Donations</h2><p>12</p>")
	assert.Contains(t, body, "<h2>Volunteers</h2><p>4</p>")
	assert.Contains(t, body, `action="/ngo-donations/11/status"`)
	assert.True(t, h.calls.has("GET /ngo/7/donations"))
	assert.True(t, h.calls.has("GET /ngo/7/stats"))
}

func TestNgoDashboardStatsDown(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Get("/ngo/{id}/donations", func(responseWriter http.ResponseWriter, request *http.Request) {
			writeJSON(responseWriter, http.StatusOK, map[string]any{
				"success":   true,
				"donations": []map[string]any{{"id": 11, "donor_name": "Ann", "category": "Toys", "status": "Pending"}},
			})
		})
		router.Get("/ngo/{id}/stats", func(responseWriter http.ResponseWriter, request *http.Request) {
			http.Error(responseWriter, "boom", http.StatusBadGateway)
		})
	})
	h.loginNgo()

	response, body := h.get("/ngo-dashboard")
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, backend.ServerErrorMessage)
	assert.Contains(t, body, "Retry")
	assert.Contains(t, body, `action="/ngo-donations/11/status"`)
	assert.Contains(t, body, "<td>Ann</td>")
	assert.Contains(t, body, "<h2>Total Donations</h2><p>0</p>")
}

func TestNgoDashboardDonationsDown(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Get("/ngo/{id}/donations", func(responseWriter http.ResponseWriter, request *http.Request) {
			http.Error(responseWriter, "boom", http.StatusBadGateway)
		})
		router.Get("/ngo/{id}/stats", func(responseWriter http.ResponseWriter, request *http.Request) {
			writeJSON(responseWriter, http.StatusOK, map[string]any{
				"success": true, "totalDonations": 4, "volunteers": 2, "pending": 1,
			})
		})
	})
	h.loginNgo()

	_, body := h.get("/ngo-dashboard")
	assert.Contains(t, body, backend.ServerErrorMessage)
	assert.Contains(t, body, "<h2>Total Donations</h2><p>4</p>")
	assert.NotContains(t, body, "<table>")
}

func TestDonationStatusUpdate(t *testing.T) {
	statuses := make(chan string, 1)
	h := newHarness(t, nil, func(router chi.Router) {
		router.Put("/donations/{id}/status", func(responseWriter http.ResponseWriter, request *http.Request) {
			var update backend.StatusUpdate
			require.NoError(t, json.NewDecoder(request.Body).Decode(&update))
			statuses <- chi.URLParam(request, "id") + "=" + string(update.Status)
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true})
		})
	})
	h.loginNgo()

	response, _ := h.post("/ngo-donations/11/status", url.Values{"status": {"Approved"}, "next": {"/ngo-dashboard"}})
	assertRedirect(t, response, "/ngo-dashboard")
	assert.Equal(t, "11=Approved", <-statuses)

	response, _ = h.post("/ngo-donations/11/status", url.Values{"status": {"Pending"}, "next": {"https://evil.example"}})
	assertRedirect(t, response, "/ngo-donations?status=failed")
}

func TestNgoRegister(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Post("/ngo/register", func(responseWriter http.ResponseWriter, request *http.Request) {
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true})
		})
	})

	form := url.Values{
		"name":            {"Helping Hands"},
		"email":           {"contact@ngo.org"},
		"phone":           {"12ab"},
		"address":         {"Main St 1"},
		"password":        {"secret1"},
		"confirmPassword": {"secret1"},
	}
	_, body := h.post("/ngo-register", form)
	assert.Contains(t, body, "Phone number must be 7–15 digits.")
	assert.False(t, h.calls.has("POST /ngo/register"))

	form.Set("phone", "9876543210")
	response, body := h.post("/ngo-register", form)
	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, body, "Registration successful!")
	assert.Equal(t, "1; url=/ngo-login", response.Header.Get("Refresh"))
	assert.Equal(t, data.ModeNgo, h.stored().Mode)
}

func TestRegisterValidation(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Post("/register", func(responseWriter http.ResponseWriter, request *http.Request) {
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true})
		})
	})

	_, body := h.post("/register", url.Values{"name": {"Ann"}, "email": {"ann@example.com"}})
	assert.Contains(t, body, "All fields are required.")

	form := url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "password": {"a"}, "confirmPassword": {"b"}}
	_, body = h.post("/register", form)
	assert.Contains(t, body, "Passwords do not match.")

	form.Set("confirmPassword", "a")
	response, _ := h.post("/register", form)
	assertRedirect(t, response, "/login?registered=1")

	_, body = h.get("/login?registered=1")
	assert.Contains(t, body, "Registration successful! Please login.")
}

func TestResetPasswordPerRole(t *testing.T) {
	h := newHarness(t, nil, func(router chi.Router) {
		router.Post("/ngo/reset-password", func(responseWriter http.ResponseWriter, request *http.Request) {
			var reset backend.PasswordReset
			require.NoError(t, json.NewDecoder(request.Body).Decode(&reset))
			assert.Equal(t, "tok", reset.Token)
			writeJSON(responseWriter, http.StatusOK, map[string]any{"success": true, "message": "Password updated"})
		})
	})

	_, body := h.get("/reset-password/ngo?token=tok")
	assert.Contains(t, body, `<input type="hidden" name="token" value="tok">`)

	_, body = h.post("/reset-password/ngo", url.Values{"token": {"tok"}, "newPassword": {"x"}, "confirmPassword": {"y"}})
	assert.Contains(t, body, "Passwords do not match")

	response, body := h.post("/reset-password/ngo", url.Values{"token": {"tok"}, "newPassword": {"x"}, "confirmPassword": {"x"}})
	assert.Contains(t, body, "Password updated")
	assert.Equal(t, "2; url=/ngo-login", response.Header.Get("Refresh"))
}

func TestLoginRateLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1
	h := newHarness(t, cfg, nil)

	response, _ := h.post("/login", url.Values{"email": {"ann@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusOK, response.StatusCode)
	response, body := h.post("/login", url.Values{"email": {"ann@example.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusTooManyRequests, response.StatusCode)
	assert.True(t, strings.Contains(body, "Too many attempts"))

	response, _ = h.get("/login")
	assert.Equal(t, http.StatusOK, response.StatusCode)
}

func postForwardedLogin(t *testing.T, h *harness, forwardedFor string) int {
	t.Helper()
	request, err := http.NewRequest(http.MethodPost, h.frontend.URL+"/login",
		strings.NewReader(url.Values{"email": {"ann@example.com"}, "password": {"wrong"}}.Encode()))
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	request.Header.Set("X-Forwarded-For", forwardedFor)
	request.Header.Set("X-Real-IP", forwardedFor)
	response, err := h.client.Do(request)
	require.NoError(t, err)
	readBody(t, response)
	return response.StatusCode
}

func TestRateLimitIgnoresForwardingHeaders(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1
	h := newHarness(t, cfg, nil)

	limited := 0
	for i := 0; i < 20; i++ {
		if postForwardedLogin(t, h, fmt.Sprintf("203.0.113.%d", i)) == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 19, limited)
}

func TestRateLimitTrustedProxy(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 1
	cfg.TrustProxy = true
	h := newHarness(t, cfg, nil)

	assert.Equal(t, http.StatusOK, postForwardedLogin(t, h, "203.0.113.1"))
	assert.Equal(t, http.StatusOK, postForwardedLogin(t, h, "203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, postForwardedLogin(t, h, "203.0.113.1"))
}

func TestIPLimiterCapsVisitors(t *testing.T) {
	limiter := newIPLimiter(0.001, 1, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.allow(fmt.Sprintf("10.0.0.%d", i)))
	}
	// Full, new addresses share the overflow limiter.
	assert.True(t, limiter.allow("10.0.0.100"))
	assert.False(t, limiter.allow("10.0.0.101"))
	assert.Len(t, limiter.visitors, 3)

	for _, entry := range limiter.visitors {
		entry.last = time.Now().Add(-time.Hour)
	}
	assert.True(t, limiter.allow("10.0.0.102"))
	assert.Len(t, limiter.visitors, 1)
}
