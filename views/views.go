// Package views renders the HTML pages. The templates live in the .qtpl
// files next to this one, qtc turns them into the .qtpl.go files. Every page
// has a StreamXxx function writing into a quicktemplate.Writer and a
// WriteXxx wrapper for io.Writer.
package views

import (
	"github.com/Bios-Marcel/donatehub/data"
	"github.com/Bios-Marcel/donatehub/guard"
)

// Page is what the layout needs to know about the request.
type Page struct {
	Title string
	// Path is the current request path, used to highlight navigation.
	Path string
	Nav  []guard.Link
	// Greeting is the name of whoever is logged in.
	Greeting string
}

type HomeView struct {
	IsLoggedIn bool
	Mode       data.Mode
}

type aboutView struct{}

type logoutView struct {
	back string
}

// LoginForm is shared by the donor and the NGO login page.
type LoginForm struct {
	Role  data.Mode
	Email string
	Info  string
	Error string
}

func (form LoginForm) action() string {
	if form.Role == data.ModeNgo {
		return guard.PathNgoLogin
	}
	return guard.PathLogin
}

func (form LoginForm) title() string {
	if form.Role == data.ModeNgo {
		return "NGO Login"
	}
	return "User Login"
}

func (form LoginForm) registerPath() string {
	if form.Role == data.ModeNgo {
		return guard.PathNgoRegister
	}
	return guard.PathRegister
}

// RegisterForm is the donor registration form.
type RegisterForm struct {
	Name  string
	Email string
	Error string
}

// NgoRegisterForm is the NGO registration form. Success is shown instead of
// the form once the backend accepted the registration.
type NgoRegisterForm struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	Description string
	Error       string
	Success     string
}

// ResetForm is used by both the forgot password page, where the token is
// typed in, and the reset page, where it comes with the link.
type ResetForm struct {
	Role      data.Mode
	Action    string
	Token     string
	ShowToken bool
	Message   string
	IsError   bool
	Done      bool
}

func loginPathFor(role data.Mode) string {
	if role == data.ModeNgo {
		return guard.PathNgoLogin
	}
	return guard.PathLogin
}

func roleOrUser(role data.Mode) data.Mode {
	if role == data.ModeNgo {
		return data.ModeNgo
	}
	return data.ModeUser
}

type DashboardView struct {
	Name      string
	Donations []data.Donation
	Error     string
}

// Pending counts the donations still waiting for the NGO.
func (view DashboardView) Pending() int {
	var count int
	for _, donation := range view.Donations {
		if donation.Status.IsPending() {
			count++
		}
	}
	return count
}

// DonateForm keeps the entered values so a failed submission doesn't lose
// them. Submitted switches the page to its "Donate More" state.
type DonateForm struct {
	DonorName  string
	DonorEmail string
	Ngos       []data.NGO
	NgoID      string
	Category   string
	Quantity   string
	Address    string
	Notes      string
	Message    string
	Submitted  bool
}

type DonationView struct {
	Donation *data.Donation
	Error    string
}

type EditProfileForm struct {
	Name  string
	Email string
	Error string
}

// JoinNgoView is the NGO listing for volunteers. A LoadError replaces the
// list with a retry link, Sent marks the NGO a request just went to.
type JoinNgoView struct {
	Ngos      []data.NGO
	LoadError string
	Error     string
	Sent      data.ID
}

type MyRequestsView struct {
	Requests []data.VolunteerRequest
	Error    string
	// Notice reports the outcome of a cancellation.
	Notice        string
	NoticeIsError bool
}

// NgoDashboardView holds both halves of the dashboard. Each half has its
// own error, a failing stats call still shows the donations.
type NgoDashboardView struct {
	Name           string
	Stats          data.NgoStats
	StatsError     string
	Donations      []data.Donation
	DonationsError string
	Notice         string
}

type NgoDonationsView struct {
	Donations []data.Donation
	Error     string
	Notice    string
}

type VolunteerRequestsView struct {
	Requests []data.VolunteerRequest
	Error    string
	Notice   string
}

type VolunteersView struct {
	Volunteers []data.Volunteer
	Error      string
}

type input struct {
	kind        string
	name        string
	label       string
	placeholder string
	value       string
	required    bool
}

// hiddenField is a hidden form value. Forms keep them in a slice so the
// fields render in a stable order.
type hiddenField struct {
	name  string
	value string
}

func statusFields(status data.Status, next string) []hiddenField {
	fields := []hiddenField{{name: "status", value: string(status)}}
	if next != "" {
		fields = append(fields, hiddenField{name: "next", value: next})
	}
	return fields
}

var faq = []struct{ question, answer string }{
	{"How do I donate?", "Simply register as a user, select an NGO, and follow the instructions to donate your clothes. We'll provide progress updates once your donation is accepted."},
	{"Can I volunteer?", "Yes! If you're a registered user, you can join NGOs listed on the platform to volunteer for collection, delivery, and community events."},
	{"Are the NGOs verified?", "Absolutely! We partner only with verified NGOs and provide tracking updates for all donations."},
}

func statusClass(text string) string {
	switch text {
	case "Approved":
		return "status-approved"
	case "Rejected":
		return "status-rejected"
	default:
		return "status-pending"
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
