package server

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Bios-Marcel/donatehub/backend"
	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/guard"
	"github.com/Bios-Marcel/donatehub/views"
	"github.com/go-chi/chi/v5"
)

const (
	donateRequiredMessage = "Please fill in all required fields."
	donatePhotoMessage    = "Please upload a photo of the item."
	donateLoginMessage    = "You must be logged in to donate."
	donatedMessage        = "Donation submitted successfully!"
)

func (server *Server) dashboard(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}

	view := views.DashboardView{Name: user.GetDisplayName()}
	response, err := server.backend.UserDonations(request.Context(), user.ID)
	if err != nil {
		view.Error = server.backendFailed(request, err, "Failed to fetch donations.")
	} else {
		view.Donations = response.Donations
	}
	views.WriteDashboard(responseWriter, server.page(request, "Dashboard"), view)
}

// donateForm prepares the donation form including the NGO selection. A
// failing NGO listing leaves the selection empty and says so.
func (server *Server) donateForm(request *http.Request, user *data.UserProfile) views.DonateForm {
	form := views.DonateForm{
		DonorName:  user.Name,
		DonorEmail: user.Email,
	}
	response, err := server.backend.Ngos(request.Context())
	if err != nil {
		server.backendFailed(request, err, "")
		form.Message = "Error fetching NGOs."
	} else {
		form.Ngos = response.Ngos
	}
	return form
}

func (server *Server) donatePage(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}
	views.WriteDonate(responseWriter, server.page(request, "Donate"), server.donateForm(request, user))
}

func (server *Server) donate(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}

	request.Body = http.MaxBytesReader(responseWriter, request.Body, maxUploadSize)
	if err := request.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(responseWriter, "Invalid donation form.", http.StatusBadRequest)
		return
	}

	donation := backend.NewDonation{
		UserID:   user.ID,
		NgoID:    data.ID(strings.TrimSpace(request.FormValue("ngo_id"))),
		Category: strings.TrimSpace(request.FormValue("category")),
		Quantity: strings.TrimSpace(request.FormValue("quantity")),
		Address:  strings.TrimSpace(request.FormValue("address")),
		Notes:    strings.TrimSpace(request.FormValue("notes")),
	}

	// Nothing reaches the backend before the form is complete.
	message := validateDonation(donation)
	if message == "" {
		photo, header, err := request.FormFile("photo")
		if err != nil {
			message = donatePhotoMessage
		} else {
			defer photo.Close()
			donation.Photo = photo
			donation.PhotoName = header.Filename
		}
	}
	if message != "" {
		server.redisplayDonation(responseWriter, request, user, donation, message)
		return
	}

	if _, err := server.backend.Donate(request.Context(), donation); err != nil {
		message = server.backendFailed(request, err, "Error submitting donation.")
		server.redisplayDonation(responseWriter, request, user, donation, message)
		return
	}

	views.WriteDonate(responseWriter, server.page(request, "Donate"), views.DonateForm{
		Submitted: true,
		Message:   donatedMessage,
	})
}

// redisplayDonation writes the rejected form with the entered values. The
// NGO list is fetched again so the selection can be rendered.
func (server *Server) redisplayDonation(responseWriter http.ResponseWriter, request *http.Request, user *data.UserProfile, donation backend.NewDonation, message string) {
	form := server.donateForm(request, user)
	form.NgoID = donation.NgoID.String()
	form.Category = donation.Category
	form.Quantity = donation.Quantity
	form.Address = donation.Address
	form.Notes = donation.Notes
	form.Message = message
	views.WriteDonate(responseWriter, server.page(request, "Donate"), form)
}

// validateDonation checks the fields in the order the form reports them.
// The photo is checked afterwards by the caller.
func validateDonation(donation backend.NewDonation) string {
	if donation.UserID == "" {
		return donateLoginMessage
	}
	if donation.NgoID == "" || donation.Category == "" || donation.Quantity == "" || donation.Address == "" {
		return donateRequiredMessage
	}
	if !data.IsCategory(donation.Category) {
		return "Please select a valid category."
	}
	return ""
}

func (server *Server) donation(responseWriter http.ResponseWriter, request *http.Request) {
	if _, ok := currentUser(responseWriter, request); !ok {
		return
	}

	var view views.DonationView
	response, err := server.backend.Donation(request.Context(), data.ID(chi.URLParam(request, "id")))
	switch {
	case backend.IsRejected(err):
		server.backendFailed(request, err, "")
		view.Error = "Donation not found."
	case err != nil:
		server.backendFailed(request, err, "")
		view.Error = "Failed to load donation details."
	default:
		view.Donation = response.Donation
	}
	views.WriteDonation(responseWriter, server.page(request, "Donation Details"), view)
}

func (server *Server) editProfilePage(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}
	views.WriteEditProfile(responseWriter, server.page(request, "Edit Profile"), views.EditProfileForm{
		Name:  user.Name,
		Email: user.Email,
	})
}

// editProfile sends the changes to the backend and, once accepted, stores
// the new name and email without the password.
func (server *Server) editProfile(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}

	update := backend.ProfileUpdate{
		ID:       user.ID,
		Name:     strings.TrimSpace(request.PostFormValue("name")),
		Email:    strings.TrimSpace(request.PostFormValue("email")),
		Password: request.PostFormValue("password"),
	}
	form := views.EditProfileForm{Name: update.Name, Email: update.Email}

	if update.Name == "" || update.Email == "" || update.Password == "" {
		form.Error = "All fields are required."
	} else if _, err := server.backend.EditProfile(request.Context(), update); err != nil {
		form.Error = server.backendFailed(request, err, "Failed to update profile.")
	}
	if form.Error != "" {
		views.WriteEditProfile(responseWriter, server.page(request, "Edit Profile"), form)
		return
	}

	updated := data.UserProfile{ID: user.ID, Name: update.Name, Email: update.Email}
	if err := server.sessions.UpdateUser(sessionFrom(request).Token, updated); err != nil {
		server.internalError(responseWriter, request, err)
		return
	}
	redirect(responseWriter, request, guard.PathDashboard)
}

func (server *Server) joinNgoView(request *http.Request) views.JoinNgoView {
	var view views.JoinNgoView
	response, err := server.backend.Ngos(request.Context())
	if err != nil {
		view.LoadError = server.backendFailed(request, err, "Failed to load NGOs. Please try again later.")
		return view
	}
	view.Ngos = response.Ngos
	return view
}

func (server *Server) joinNgoPage(responseWriter http.ResponseWriter, request *http.Request) {
	if _, ok := currentUser(responseWriter, request); !ok {
		return
	}

	view := server.joinNgoView(request)
	view.Sent = data.ID(request.URL.Query().Get("sent"))
	views.WriteJoinNgo(responseWriter, server.page(request, "Join an NGO"), view)
}

func (server *Server) joinNgo(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}

	ngoID := data.ID(chi.URLParam(request, "id"))
	_, err := server.backend.JoinNgo(request.Context(), backend.JoinRequest{UserID: user.ID, NgoID: ngoID})
	if err == nil {
		redirect(responseWriter, request, guard.PathJoinNgo+"?sent="+url.QueryEscape(ngoID.String()))
		return
	}

	view := server.joinNgoView(request)
	view.Error = server.backendFailed(request, err, "Failed to send request. Please try again.")
	views.WriteJoinNgo(responseWriter, server.page(request, "Join an NGO"), view)
}

func (server *Server) renderMyRequests(responseWriter http.ResponseWriter, request *http.Request, user *data.UserProfile, view views.MyRequestsView) {
	response, err := server.backend.MyVolunteerRequests(request.Context(), user.ID)
	if err != nil {
		view.Error = server.backendFailed(request, err, "Failed to load volunteer requests.")
	} else {
		view.Requests = response.Requests
	}
	views.WriteMyRequests(responseWriter, server.page(request, "My Volunteer Requests"), view)
}

func (server *Server) myRequests(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}

	var view views.MyRequestsView
	if request.URL.Query().Get("canceled") != "" {
		view.Notice = "Request canceled."
	}
	server.renderMyRequests(responseWriter, request, user, view)
}

func (server *Server) cancelRequest(responseWriter http.ResponseWriter, request *http.Request) {
	user, ok := currentUser(responseWriter, request)
	if !ok {
		return
	}

	requestID := data.ID(chi.URLParam(request, "id"))
	if _, err := server.backend.CancelVolunteerRequest(request.Context(), requestID); err != nil {
		server.renderMyRequests(responseWriter, request, user, views.MyRequestsView{
			Notice:        server.backendFailed(request, err, "Failed to cancel request."),
			NoticeIsError: true,
		})
		return
	}
	redirect(responseWriter, request, guard.PathMyRequests+"?canceled=1")
}
