package server

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/Bios-Marcel/donatehub/backend"
	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/guard"
	"github.com/Bios-Marcel/donatehub/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	invalidLoginMessage  = "Invalid email or password."
	registeredMessage    = "Registration successful! Please login."
	ngoRegisteredMessage = "Registration successful! Redirecting…"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\d{7,15}$`)
)

func (server *Server) home(responseWriter http.ResponseWriter, request *http.Request) {
	session := sessionFrom(request)
	views.WriteHome(responseWriter, server.page(request, "Home"), views.HomeView{
		IsLoggedIn: session.IsLoggedIn,
		Mode:       session.Mode,
	})
}

func (server *Server) about(responseWriter http.ResponseWriter, request *http.Request) {
	views.WriteAbout(responseWriter, server.page(request, "About us"))
}

// switchMode persists the chosen mode before any login happens. The mode
// stays even if the following login fails.
func (server *Server) switchMode(responseWriter http.ResponseWriter, request *http.Request) {
	session := sessionFrom(request)
	mode := data.ParseMode(chi.URLParam(request, "mode"))
	if err := server.sessions.SetMode(session.Token, mode); err != nil {
		server.internalError(responseWriter, request, err)
		return
	}

	redirect(responseWriter, request, guard.SwitchTarget(mode, request.URL.Query().Get("next")))
}

func (server *Server) loginPage(role data.Mode) http.HandlerFunc {
	title := "Login"
	if role == data.ModeNgo {
		title = "NGO Login"
	}

	return func(responseWriter http.ResponseWriter, request *http.Request) {
		if loggedInAs(sessionFrom(request), role) {
			redirect(responseWriter, request, guard.HomeFor(role))
			return
		}

		form := views.LoginForm{Role: role}
		if request.URL.Query().Get("registered") != "" {
			form.Info = registeredMessage
		}
		views.WriteLogin(responseWriter, server.page(request, title), form)
	}
}

func readCredentials(request *http.Request) backend.Credentials {
	return backend.Credentials{
		Email:    strings.TrimSpace(request.PostFormValue("email")),
		Password: request.PostFormValue("password"),
	}
}

func (server *Server) login(responseWriter http.ResponseWriter, request *http.Request) {
	session := sessionFrom(request)
	credentials := readCredentials(request)
	form := views.LoginForm{Role: data.ModeUser, Email: credentials.Email}

	response, err := server.backend.Login(request.Context(), credentials)
	if err == nil && response.User == nil {
		form.Error = backend.ServerErrorMessage
	} else if err != nil {
		form.Error = server.backendFailed(request, err, invalidLoginMessage)
	}
	if form.Error != "" {
		views.WriteLogin(responseWriter, server.page(request, "Login"), form)
		return
	}

	if err := server.sessions.Login(session.Token, *response.User, data.ModeUser); err != nil {
		server.internalError(responseWriter, request, err)
		return
	}
	server.logger.Info("user logged in", zap.String("user_id", response.User.ID.String()))
	redirect(responseWriter, request, guard.PathDashboard)
}

func (server *Server) ngoLogin(responseWriter http.ResponseWriter, request *http.Request) {
	session := sessionFrom(request)
	credentials := readCredentials(request)
	form := views.LoginForm{Role: data.ModeNgo, Email: credentials.Email}

	response, err := server.backend.NgoLogin(request.Context(), credentials)
	if err == nil && response.Ngo == nil {
		form.Error = backend.ServerErrorMessage
	} else if err != nil {
		form.Error = server.backendFailed(request, err, invalidLoginMessage)
	}
	if form.Error != "" {
		views.WriteLogin(responseWriter, server.page(request, "NGO Login"), form)
		return
	}

	if err := server.sessions.Login(session.Token, *response.Ngo, data.ModeNgo); err != nil {
		server.internalError(responseWriter, request, err)
		return
	}
	server.logger.Info("ngo logged in", zap.String("ngo_id", response.Ngo.ID.String()))
	redirect(responseWriter, request, guard.PathNgoDashboard)
}

func (server *Server) registerPage(responseWriter http.ResponseWriter, request *http.Request) {
	views.WriteRegister(responseWriter, server.page(request, "Register"), views.RegisterForm{})
}

func (server *Server) register(responseWriter http.ResponseWriter, request *http.Request) {
	form := views.RegisterForm{
		Name:  strings.TrimSpace(request.PostFormValue("name")),
		Email: strings.TrimSpace(request.PostFormValue("email")),
	}
	password := request.PostFormValue("password")
	confirmPassword := request.PostFormValue("confirmPassword")

	switch {
	case form.Name == "" || form.Email == "" || password == "" || confirmPassword == "":
		form.Error = "All fields are required."
	case password != confirmPassword:
		form.Error = "Passwords do not match."
	default:
		_, err := server.backend.Register(request.Context(), backend.Registration{
			Name:     form.Name,
			Email:    form.Email,
			Password: password,
		})
		if err == nil {
			redirect(responseWriter, request, guard.PathLogin+"?registered=1")
			return
		}
		form.Error = server.backendFailed(request, err, "Registration failed.")
	}

	views.WriteRegister(responseWriter, server.page(request, "Register"), form)
}

func (server *Server) ngoRegisterPage(responseWriter http.ResponseWriter, request *http.Request) {
	views.WriteNgoRegister(responseWriter, server.page(request, "Register NGO"), views.NgoRegisterForm{})
}

func validateNgoRegistration(registration backend.NgoRegistration, confirmPassword string) string {
	switch {
	case registration.Name == "" || registration.Email == "" || registration.Password == "" ||
		confirmPassword == "" || registration.Phone == "" || registration.Address == "":
		return "Please fill in all required fields."
	case !emailPattern.MatchString(registration.Email):
		return "Please enter a valid email."
	case len(registration.Password) < 6:
		return "Password must be at least 6 characters."
	case registration.Password != confirmPassword:
		return "Passwords do not match."
	case !phonePattern.MatchString(registration.Phone):
		return "Phone number must be 7–15 digits."
	}
	return ""
}

func (server *Server) ngoRegister(responseWriter http.ResponseWriter, request *http.Request) {
	session := sessionFrom(request)
	registration := backend.NgoRegistration{
		Name:        strings.TrimSpace(request.PostFormValue("name")),
		Email:       strings.TrimSpace(request.PostFormValue("email")),
		Phone:       strings.TrimSpace(request.PostFormValue("phone")),
		Address:     strings.TrimSpace(request.PostFormValue("address")),
		Description: strings.TrimSpace(request.PostFormValue("description")),
		Password:    request.PostFormValue("password"),
	}
	form := views.NgoRegisterForm{
		Name:        registration.Name,
		Email:       registration.Email,
		Phone:       registration.Phone,
		Address:     registration.Address,
		Description: registration.Description,
	}

	form.Error = validateNgoRegistration(registration, request.PostFormValue("confirmPassword"))
	if form.Error == "" {
		_, err := server.backend.NgoRegister(request.Context(), registration)
		if err != nil {
			form.Error = server.backendFailed(request, err, "Registration failed.")
		}
	}
	if form.Error != "" {
		views.WriteNgoRegister(responseWriter, server.page(request, "Register NGO"), form)
		return
	}

	if err := server.sessions.SetMode(session.Token, data.ModeNgo); err != nil {
		server.internalError(responseWriter, request, err)
		return
	}
	session.Mode = data.ModeNgo

	form.Success = ngoRegisteredMessage
	responseWriter.Header().Set("Refresh", "1; url="+guard.PathNgoLogin)
	views.WriteNgoRegister(responseWriter, server.page(request, "Register NGO"), form)
}

func resetRole(request *http.Request) data.Mode {
	if data.ParseMode(chi.URLParam(request, "role")) == data.ModeNgo {
		return data.ModeNgo
	}
	return data.ModeUser
}

// resetPage serves both password reset forms. The forgot password form asks
// for the token, the reset link carries it in the query.
func (server *Server) resetPage(askToken bool) http.HandlerFunc {
	return func(responseWriter http.ResponseWriter, request *http.Request) {
		views.WriteReset(responseWriter, server.page(request, "Reset Password"), views.ResetForm{
			Role:      resetRole(request),
			Action:    request.URL.Path,
			Token:     request.URL.Query().Get("token"),
			ShowToken: askToken,
		})
	}
}

func (server *Server) resetPassword(askToken bool) http.HandlerFunc {
	return func(responseWriter http.ResponseWriter, request *http.Request) {
		role := resetRole(request)
		reset := backend.PasswordReset{
			Token:       strings.TrimSpace(request.PostFormValue("token")),
			NewPassword: request.PostFormValue("newPassword"),
		}
		form := views.ResetForm{
			Role:      role,
			Action:    request.URL.Path,
			Token:     reset.Token,
			ShowToken: askToken,
			IsError:   true,
		}

		switch {
		case reset.Token == "" || reset.NewPassword == "" || request.PostFormValue("confirmPassword") == "":
			form.Message = "Please fill all fields"
		case reset.NewPassword != request.PostFormValue("confirmPassword"):
			form.Message = "Passwords do not match"
		default:
			response, err := server.backend.ResetPassword(request.Context(), role, reset)
			if err != nil {
				form.Message = server.backendFailed(request, err, "Password reset failed.")
				break
			}

			loginPath := guard.PathLogin
			if role == data.ModeNgo {
				loginPath = guard.PathNgoLogin
			}
			form.IsError = false
			form.Done = true
			form.Message = response.Message
			if form.Message == "" {
				form.Message = "Password reset successful."
			}
			responseWriter.Header().Set("Refresh", "2; url="+loginPath)
		}

		views.WriteReset(responseWriter, server.page(request, "Reset Password"), form)
	}
}

func (server *Server) logoutPage(responseWriter http.ResponseWriter, request *http.Request) {
	session := sessionFrom(request)
	if !session.IsLoggedIn {
		redirect(responseWriter, request, guard.PathHome)
		return
	}
	views.WriteLogoutConfirm(responseWriter, server.page(request, "Logout"), guard.HomeFor(session.Mode))
}

// logout forgets everything stored for the browser. The cookie stays, the
// token then loads as a fresh session.
func (server *Server) logout(responseWriter http.ResponseWriter, request *http.Request) {
	session := sessionFrom(request)
	if err := server.sessions.Logout(session.Token); err != nil {
		server.internalError(responseWriter, request, err)
		return
	}
	redirect(responseWriter, request, guard.PathHome)
}
