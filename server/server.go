// Package server wires the session store, the backend client and the views
// into the DonateHub web frontend.
package server

import (
	"net/http"

	"github.com/Bios-Marcel/donatehub/backend"
	"github.com/Bios-Marcel/donatehub/config"
	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/guard"
	"github.com/Bios-Marcel/donatehub/session"
	"github.com/Bios-Marcel/donatehub/views"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxUploadSize bounds the donation form including its photo.
const maxUploadSize = 10 << 20

type Server struct {
	sessions *session.Store
	backend  *backend.Client
	cookies  *cookieCodec
	limiter  *ipLimiter
	logger   *zap.Logger
	// trustProxy lets forwarding headers decide the client address.
	trustProxy bool
}

func New(cfg *config.Config, sessions *session.Store, client *backend.Client, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cookies, err := newCookieCodec(cfg.Session.CookieName, cfg.Session.Secret, cfg.Session.CookieMaxAge, cfg.Session.SecureCookie)
	if err != nil {
		return nil, err
	}
	if cfg.Session.Secret == "" {
		logger.Warn("no session secret configured, browsers are logged out on restart")
	}

	server := &Server{
		sessions: sessions,
		backend:  client,
		cookies:  cookies,
		logger:   logger,

		trustProxy: cfg.TrustProxy,
	}
	if cfg.RateLimit.Enabled {
		server.limiter = newIPLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.MaxClients)
	}
	return server, nil
}

// Router returns the handler serving every page.
func (server *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	if server.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(requestLogger(server.logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SetHeader("Content-Type", "text/html; charset=utf-8"))
	router.Use(server.loadSession)
	router.Use(server.guardRoutes)

	throttled := router.With(server.throttle)

	router.Get(guard.PathHome, server.home)
	router.Get(guard.PathAbout, server.about)
	router.Get(guard.PathMode, server.switchMode)
	router.Get(guard.PathLogin, server.loginPage(data.ModeUser))
	throttled.Post(guard.PathLogin, server.login)
	router.Get(guard.PathNgoLogin, server.loginPage(data.ModeNgo))
	throttled.Post(guard.PathNgoLogin, server.ngoLogin)
	router.Get(guard.PathRegister, server.registerPage)
	throttled.Post(guard.PathRegister, server.register)
	router.Get(guard.PathNgoRegister, server.ngoRegisterPage)
	throttled.Post(guard.PathNgoRegister, server.ngoRegister)
	router.Get(guard.PathForgotPassword, server.resetPage(true))
	throttled.Post(guard.PathForgotPassword, server.resetPassword(true))
	router.Get(guard.PathResetPassword, server.resetPage(false))
	throttled.Post(guard.PathResetPassword, server.resetPassword(false))
	router.Get(guard.PathLogout, server.logoutPage)
	router.Post(guard.PathLogout, server.logout)

	router.Get(guard.PathDashboard, server.dashboard)
	router.Get(guard.PathDonate, server.donatePage)
	router.Post(guard.PathDonate, server.donate)
	router.Get(guard.PathDonation, server.donation)
	router.Get(guard.PathEditProfile, server.editProfilePage)
	router.Post(guard.PathEditProfile, server.editProfile)
	router.Get(guard.PathJoinNgo, server.joinNgoPage)
	router.Post(guard.PathJoinNgoRequest, server.joinNgo)
	router.Get(guard.PathMyRequests, server.myRequests)
	router.Post(guard.PathCancelRequest, server.cancelRequest)

	router.Get(guard.PathNgoDashboard, server.ngoDashboard)
	router.Get(guard.PathNgoDonations, server.ngoDonations)
	router.Post(guard.PathNgoDonationStatus, server.setDonationStatus)
	router.Get(guard.PathManageVolunteers, server.volunteerRequests)
	router.Post(guard.PathVolunteerStatus, server.setVolunteerStatus)
	router.Get(guard.PathNgoVolunteers, server.volunteers)

	router.NotFound(redirectHome)
	router.MethodNotAllowed(redirectHome)

	return router
}

func (server *Server) throttle(next http.Handler) http.Handler {
	if server.limiter == nil {
		return next
	}
	return server.limiter.throttle(next)
}

func redirectHome(responseWriter http.ResponseWriter, request *http.Request) {
	http.Redirect(responseWriter, request, guard.PathHome, http.StatusSeeOther)
}

func redirect(responseWriter http.ResponseWriter, request *http.Request, target string) {
	http.Redirect(responseWriter, request, target, http.StatusSeeOther)
}

// page builds the layout data shared by every view.
func (server *Server) page(request *http.Request, title string) views.Page {
	session := sessionFrom(request)
	return views.Page{
		Title:    title,
		Path:     request.URL.Path,
		Nav:      guard.Navigation(session.IsLoggedIn, session.Mode),
		Greeting: session.DisplayName(),
	}
}

func (server *Server) internalError(responseWriter http.ResponseWriter, request *http.Request, err error) {
	server.logger.Error("request failed",
		zap.String("path", request.URL.Path),
		zap.String("request_id", middleware.GetReqID(request.Context())),
		zap.Error(err))
	http.Error(responseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// backendFailed logs a failed backend call and returns the text to show.
func (server *Server) backendFailed(request *http.Request, err error, fallback string) string {
	level := server.logger.Warn
	if backend.IsRejected(err) {
		level = server.logger.Debug
	}
	level("backend call failed",
		zap.String("path", request.URL.Path),
		zap.String("request_id", middleware.GetReqID(request.Context())),
		zap.Error(err))
	return backend.Message(err, fallback)
}

// loggedInAs reports whether the session is logged in as role and holds
// the matching profile.
func loggedInAs(session *data.Session, role data.Mode) bool {
	if !session.IsLoggedIn || session.Mode != role {
		return false
	}
	switch role {
	case data.ModeUser:
		return session.User != nil
	case data.ModeNgo:
		return session.Ngo != nil
	}
	return false
}

// currentUser returns the donor of the session or redirects to the login.
// The guard only checks the flags, so a mode switch without a matching
// login lands here.
func currentUser(responseWriter http.ResponseWriter, request *http.Request) (*data.UserProfile, bool) {
	session := sessionFrom(request)
	if !loggedInAs(session, data.ModeUser) {
		redirect(responseWriter, request, guard.PathLogin)
		return nil, false
	}
	return session.User, true
}

func currentNgo(responseWriter http.ResponseWriter, request *http.Request) (*data.NgoProfile, bool) {
	session := sessionFrom(request)
	if !loggedInAs(session, data.ModeNgo) {
		redirect(responseWriter, request, guard.PathNgoLogin)
		return nil, false
	}
	return session.Ngo, true
}
