package server

import (
	"net/http"

	"github.com/Bios-Marcel/donatehub/backend"
	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/guard"
	"github.com/Bios-Marcel/donatehub/views"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const statusFailedQuery = "status=failed"

func statusFailed(request *http.Request) bool {
	return request.URL.Query().Get("status") == "failed"
}

// ngoDashboard loads the donations and the stats of the NGO at the same
// time. A failing call only blanks its own part of the page.
func (server *Server) ngoDashboard(responseWriter http.ResponseWriter, request *http.Request) {
	ngo, ok := currentNgo(responseWriter, request)
	if !ok {
		return
	}

	view := views.NgoDashboardView{Name: ngo.GetDisplayName()}
	if statusFailed(request) {
		view.Notice = "Failed to update status"
	}

	var donations *backend.DonationsResponse
	var stats *backend.StatsResponse
	var donationsErr, statsErr error
	// No shared context, one failure must not cancel the other call.
	var group errgroup.Group
	group.Go(func() error {
		donations, donationsErr = server.backend.NgoDonations(request.Context(), ngo.ID)
		return donationsErr
	})
	group.Go(func() error {
		stats, statsErr = server.backend.NgoStats(request.Context(), ngo.ID)
		return statsErr
	})
	if err := group.Wait(); err != nil {
		server.logger.Debug("ngo dashboard partially loaded",
			zap.Bool("donations", donationsErr == nil), zap.Bool("stats", statsErr == nil))
	}

	if donationsErr != nil {
		view.DonationsError = server.backendFailed(request, donationsErr, "Failed to load donations.")
	} else {
		view.Donations = donations.Donations
	}
	if statsErr != nil {
		view.StatsError = server.backendFailed(request, statsErr, "Failed to load stats.")
	} else {
		view.Stats = stats.NgoStats
	}

	views.WriteNgoDashboard(responseWriter, server.page(request, "NGO Dashboard"), view)
}

func (server *Server) ngoDonations(responseWriter http.ResponseWriter, request *http.Request) {
	ngo, ok := currentNgo(responseWriter, request)
	if !ok {
		return
	}

	var view views.NgoDonationsView
	if statusFailed(request) {
		view.Notice = "Failed to update status"
	}
	response, err := server.backend.NgoDonations(request.Context(), ngo.ID)
	if err != nil {
		view.Error = server.backendFailed(request, err, "Failed to load donations.")
	} else {
		view.Donations = response.Donations
	}
	views.WriteNgoDonations(responseWriter, server.page(request, "Donations"), view)
}

// statusTarget is where a status form returns to. Only the two donation
// listings are accepted.
func statusTarget(next string) string {
	if next == guard.PathNgoDashboard {
		return next
	}
	return guard.PathNgoDonations
}

func (server *Server) setDonationStatus(responseWriter http.ResponseWriter, request *http.Request) {
	if _, ok := currentNgo(responseWriter, request); !ok {
		return
	}

	target := statusTarget(request.PostFormValue("next"))
	status, valid := data.ParseStatus(request.PostFormValue("status"))
	if !valid {
		redirect(responseWriter, request, target+"?"+statusFailedQuery)
		return
	}

	donationID := data.ID(chi.URLParam(request, "id"))
	if _, err := server.backend.SetDonationStatus(request.Context(), donationID, status); err != nil {
		server.backendFailed(request, err, "")
		redirect(responseWriter, request, target+"?"+statusFailedQuery)
		return
	}
	redirect(responseWriter, request, target)
}

func (server *Server) volunteerRequests(responseWriter http.ResponseWriter, request *http.Request) {
	ngo, ok := currentNgo(responseWriter, request)
	if !ok {
		return
	}

	var view views.VolunteerRequestsView
	if statusFailed(request) {
		view.Notice = "Failed to update request status."
	}
	response, err := server.backend.NgoVolunteerRequests(request.Context(), ngo.ID)
	if err != nil {
		view.Error = server.backendFailed(request, err, "Failed to fetch requests.")
	} else {
		view.Requests = response.Requests
	}
	views.WriteVolunteerRequests(responseWriter, server.page(request, "Volunteer Requests"), view)
}

func (server *Server) setVolunteerStatus(responseWriter http.ResponseWriter, request *http.Request) {
	if _, ok := currentNgo(responseWriter, request); !ok {
		return
	}

	status, valid := data.ParseStatus(request.PostFormValue("status"))
	if !valid {
		redirect(responseWriter, request, guard.PathManageVolunteers+"?"+statusFailedQuery)
		return
	}

	requestID := data.ID(chi.URLParam(request, "id"))
	if _, err := server.backend.SetVolunteerStatus(request.Context(), requestID, status); err != nil {
		server.backendFailed(request, err, "")
		redirect(responseWriter, request, guard.PathManageVolunteers+"?"+statusFailedQuery)
		return
	}
	redirect(responseWriter, request, guard.PathManageVolunteers)
}

func (server *Server) volunteers(responseWriter http.ResponseWriter, request *http.Request) {
	ngo, ok := currentNgo(responseWriter, request)
	if !ok {
		return
	}

	var view views.VolunteersView
	response, err := server.backend.NgoVolunteers(request.Context(), ngo.ID)
	if err != nil {
		view.Error = server.backendFailed(request, err, "Failed to fetch volunteers.")
	} else {
		view.Volunteers = response.Volunteers
	}
	views.WriteVolunteers(responseWriter, server.page(request, "Volunteers"), view)
}
