package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/guard"
	"github.com/stretchr/testify/assert"
)

func render(write func(w *bytes.Buffer)) string {
	var buffer bytes.Buffer
	write(&buffer)
	return buffer.String()
}

func TestLayoutEscapesAndHighlights(t *testing.T) {
	page := Page{
		Title:    "Dashboard",
		Path:     guard.PathDashboard,
		Nav:      guard.Navigation(true, data.ModeUser),
		Greeting: `<b>Ann</b>`,
	}
	html := render(func(w *bytes.Buffer) { WriteAbout(w, page) })

	assert.Contains(t, html, "<title>Dashboard | DonateHub</title>")
	assert.Contains(t, html, `<a href="/dashboard" aria-current="page">Dashboard</a>`)
	assert.Contains(t, html, `class="danger">Logout</a>`)
	assert.Contains(t, html, "Hi, &lt;b&gt;Ann&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Ann</b>")
	assert.Contains(t, html, "<footer>")
}

func TestHomeCards(t *testing.T) {
	html := render(func(w *bytes.Buffer) { WriteHome(w, Page{}, HomeView{Mode: data.ModeDefault}) })
	assert.Contains(t, html, "For Donors")
	assert.Contains(t, html, "For NGOs")
	assert.Contains(t, html, `href="/mode/ngo?next=%2Fngo-login"`)
	assert.NotContains(t, html, "Join an NGO")

	html = render(func(w *bytes.Buffer) { WriteHome(w, Page{}, HomeView{IsLoggedIn: true, Mode: data.ModeUser}) })
	assert.Contains(t, html, "Go to Dashboard")
	assert.Contains(t, html, "Join an NGO")
	assert.NotContains(t, html, "For NGOs")

	html = render(func(w *bytes.Buffer) { WriteHome(w, Page{}, HomeView{IsLoggedIn: true, Mode: data.ModeNgo}) })
	assert.Contains(t, html, "Manage Volunteer Requests")
	assert.NotContains(t, html, "For Donors")
}

func TestLoginPerRole(t *testing.T) {
	html := render(func(w *bytes.Buffer) {
		WriteLogin(w, Page{}, LoginForm{Role: data.ModeNgo, Email: "a@b.c", Error: "Invalid email or password."})
	})
	assert.Contains(t, html, `action="/ngo-login"`)
	assert.Contains(t, html, "NGO Login")
	assert.Contains(t, html, `href="/forgot-password/ngo"`)
	assert.Contains(t, html, `value="a@b.c"`)
	assert.Contains(t, html, `role="alert">Invalid email or password.`)

	html = render(func(w *bytes.Buffer) { WriteLogin(w, Page{}, LoginForm{}) })
	assert.Contains(t, html, `action="/login"`)
	assert.Contains(t, html, `href="/forgot-password/user"`)
	assert.NotContains(t, html, `role="alert"`)
}

func TestNgoRegisterSuccessHidesForm(t *testing.T) {
	html := render(func(w *bytes.Buffer) {
		WriteNgoRegister(w, Page{}, NgoRegisterForm{Success: "NGO registered successfully!"})
	})
	assert.Contains(t, html, "NGO registered successfully!")
	assert.NotContains(t, html, `action="/ngo-register"`)
}

func TestResetHiddenToken(t *testing.T) {
	html := render(func(w *bytes.Buffer) {
		WriteReset(w, Page{}, ResetForm{Role: data.ModeUser, Action: "/reset-password/user", Token: "abc"})
	})
	assert.Contains(t, html, `<input type="hidden" name="token" value="abc">`)

	html = render(func(w *bytes.Buffer) {
		WriteReset(w, Page{}, ResetForm{Role: data.ModeNgo, Done: true, Message: "Password reset"})
	})
	assert.NotContains(t, html, "<form")
	assert.Contains(t, html, `href="/ngo-login"`)
}

func TestDashboard(t *testing.T) {
	view := DashboardView{
		Name: "Ann",
		Donations: []data.Donation{
			{ID: "d1", Category: "Books", Quantity: "3", Status: data.StatusApproved},
			{ID: "d2", Category: "Toys"},
		},
	}
	assert.Equal(t, 1, view.Pending())

	html := render(func(w *bytes.Buffer) { WriteDashboard(w, Page{}, view) })
	assert.Contains(t, html, "Welcome back, Ann")
	assert.Contains(t, html, `href="/donation/d1"`)
	assert.Contains(t, html, `<span class="status-pending">Pending</span>`)
	assert.Contains(t, html, `<span class="status-approved">Approved</span>`)
	assert.NotContains(t, html, "No donations yet.")

	html = render(func(w *bytes.Buffer) { WriteDashboard(w, Page{}, DashboardView{Error: "Server error. Please try again later."}) })
	assert.Contains(t, html, "Retry")
	assert.NotContains(t, html, "<table>")
}

func TestDonateForm(t *testing.T) {
	form := DonateForm{
		DonorName: "Ann",
		Ngos:      []data.NGO{{ID: "n1", Name: "Helping Hands"}, {ID: "n2", Name: "Food Bank"}},
		NgoID:     "n2",
		Category:  "Food",
		Message:   "Please fill in all required fields.",
	}
	html := render(func(w *bytes.Buffer) { WriteDonate(w, Page{}, form) })
	assert.Contains(t, html, `enctype="multipart/form-data"`)
	assert.Contains(t, html, `<option value="n2" selected>Food Bank</option>`)
	assert.Contains(t, html, `<option value="Food" selected>Food</option>`)
	assert.Contains(t, html, `role="alert">Please fill in all required fields.`)
	assert.Equal(t, len(data.Categories)+1, strings.Count(html, "<option")-len(form.Ngos)-1)

	html = render(func(w *bytes.Buffer) {
		WriteDonate(w, Page{}, DonateForm{Submitted: true, Message: "Donation submitted successfully!"})
	})
	assert.Contains(t, html, "Donate More")
	assert.Contains(t, html, `role="status">Donation submitted successfully!`)
	assert.NotContains(t, html, "<form")
}

func TestDonationProgress(t *testing.T) {
	html := render(func(w *bytes.Buffer) {
		WriteDonation(w, Page{}, DonationView{Donation: &data.Donation{Category: "Books", Status: data.StatusRejected}})
	})
	assert.Contains(t, html, `<progress max="100" value="100">`)
	assert.Contains(t, html, "Not assigned")

	html = render(func(w *bytes.Buffer) { WriteDonation(w, Page{}, DonationView{}) })
	assert.Contains(t, html, "Donation not found.")
}

func TestJoinNgo(t *testing.T) {
	view := JoinNgoView{
		Ngos: []data.NGO{{ID: "1", Name: "Helping Hands"}, {ID: "2"}},
		Sent: "1",
	}
	html := render(func(w *bytes.Buffer) { WriteJoinNgo(w, Page{}, view) })
	assert.Contains(t, html, "Request Sent Successfully!")
	assert.Contains(t, html, `<button type="submit" disabled>Request Sent</button>`)
	assert.Contains(t, html, `action="/join-ngo/2"`)
	assert.Contains(t, html, "Unnamed NGO")

	html = render(func(w *bytes.Buffer) { WriteJoinNgo(w, Page{}, JoinNgoView{LoadError: "Failed to load NGOs. Please try again later."}) })
	assert.Contains(t, html, `href="/join-ngo" role="button">Retry</a>`)
}

func TestMyRequestsCancelOnlyPending(t *testing.T) {
	view := MyRequestsView{Requests: []data.VolunteerRequest{
		{ID: "r1", NgoName: "Helping Hands", Status: data.StatusPending},
		{ID: "r2", NgoName: "Food Bank", Status: data.StatusApproved},
	}}
	html := render(func(w *bytes.Buffer) { WriteMyRequests(w, Page{}, view) })
	assert.Contains(t, html, `action="/my-volunteer-requests/r1/cancel"`)
	assert.NotContains(t, html, `action="/my-volunteer-requests/r2/cancel"`)
	assert.Contains(t, html, `return confirm(&quot;Are you sure you want to cancel this request?&quot;)`)
}

func TestNgoDashboard(t *testing.T) {
	view := NgoDashboardView{
		Name:      "Helping Hands",
		Stats:     data.NgoStats{TotalDonations: 12, Volunteers: 4, Pending: 3},
		Donations: []data.Donation{{ID: "d1", DonorName: "Ann", Status: data.StatusApproved}},
	}
	html := render(func(w *bytes.Buffer) { WriteNgoDashboard(w, Page{}, view) })
	assert.Contains(t, html, "<h2>Total Donations</h2><p>12</p>")
	assert.Contains(t, html, "<h2>Volunteers</h2><p>4</p>")
	assert.Contains(t, html, `action="/ngo-donations/d1/status"`)
	assert.Contains(t, html, `<button type="submit" disabled>Approve</button>`)
	assert.Contains(t, html, `<button type="submit">Reject</button>`)
}

func TestNgoDashboardPartialFailure(t *testing.T) {
	view := NgoDashboardView{
		StatsError: "Server error. Please try again later.",
		Donations:  []data.Donation{{ID: "d1", DonorName: "Ann", Status: data.StatusPending}},
	}
	html := render(func(w *bytes.Buffer) { WriteNgoDashboard(w, Page{}, view) })
	assert.Contains(t, html, `role="alert">Server error. Please try again later.</p>`)
	assert.Contains(t, html, "<h2>Total Donations</h2><p>0</p>")
	assert.Contains(t, html, `action="/ngo-donations/d1/status"`)
	assert.Contains(t, html, `href="/ngo-dashboard" role="button">Retry</a>`)

	view = NgoDashboardView{
		DonationsError: "Server error. Please try again later.",
		Stats:          data.NgoStats{TotalDonations: 2},
	}
	html = render(func(w *bytes.Buffer) { WriteNgoDashboard(w, Page{}, view) })
	assert.Contains(t, html, "<h2>Total Donations</h2><p>2</p>")
	assert.NotContains(t, html, "<table>")
}

func TestStatusFormFieldOrder(t *testing.T) {
	view := NgoDonationsView{Donations: []data.Donation{{ID: "d1", Status: data.StatusPending}}}
	for i := 0; i < 20; i++ {
		html := render(func(w *bytes.Buffer) { WriteNgoDonations(w, Page{}, view) })
		status := strings.Index(html, `<input type="hidden" name="status" value="Approved">`)
		next := strings.Index(html, `<input type="hidden" name="next" value="/ngo-donations">`)
		assert.True(t, status >= 0 && next > status, "status field must precede next")
	}

	assert.Equal(t, []hiddenField{{name: "status", value: "Rejected"}}, statusFields(data.StatusRejected, ""))
}

func TestVolunteerViews(t *testing.T) {
	html := render(func(w *bytes.Buffer) {
		WriteVolunteerRequests(w, Page{}, VolunteerRequestsView{Requests: []data.VolunteerRequest{
			{ID: "5", VolunteerName: "Ann", Status: data.StatusPending},
			{ID: "6", VolunteerName: "Bob", Status: data.StatusRejected},
		}})
	})
	assert.Contains(t, html, `action="/ngo/manage-volunteers/5/status"`)
	assert.NotContains(t, html, `action="/ngo/manage-volunteers/6/status"`)

	html = render(func(w *bytes.Buffer) { WriteVolunteers(w, Page{}, VolunteersView{}) })
	assert.Contains(t, html, "No approved volunteers yet.")

	html = render(func(w *bytes.Buffer) {
		WriteVolunteers(w, Page{}, VolunteersView{Volunteers: []data.Volunteer{{VolunteerName: "Ann", JoinedAt: "2024-03-05"}}})
	})
	assert.Contains(t, html, "Joined: Mar 5, 2024")
}
