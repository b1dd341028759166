// Package guard decides which pages a browser session may see. The checks
// only steer navigation, the backend stays responsible for authorization.
package guard

import (
	"net/url"
	"strings"

	"github.com/Bios-Marcel/donatehub/data"
)

// Access is the requirement a route puts on the session.
type Access int

const (
	Public Access = iota
	UserOnly
	NgoOnly
)

// Paths of the pages. Patterns use chi's {param} syntax.
const (
	PathHome              = "/"
	PathAbout             = "/about"
	PathLogin             = "/login"
	PathRegister          = "/register"
	PathNgoLogin          = "/ngo-login"
	PathNgoRegister       = "/ngo-register"
	PathForgotPassword    = "/forgot-password/{role}"
	PathResetPassword     = "/reset-password/{role}"
	PathMode              = "/mode/{mode}"
	PathLogout            = "/logout"
	PathDashboard         = "/dashboard"
	PathDonate            = "/donate"
	PathEditProfile       = "/edit-profile"
	PathDonation          = "/donation/{id}"
	PathJoinNgo           = "/join-ngo"
	PathJoinNgoRequest    = "/join-ngo/{id}"
	PathMyRequests        = "/my-volunteer-requests"
	PathCancelRequest     = "/my-volunteer-requests/{id}/cancel"
	PathNgoDashboard      = "/ngo-dashboard"
	PathNgoDonations      = "/ngo-donations"
	PathNgoDonationStatus = "/ngo-donations/{id}/status"
	PathManageVolunteers  = "/ngo/manage-volunteers"
	PathVolunteerStatus   = "/ngo/manage-volunteers/{id}/status"
	PathNgoVolunteers     = "/ngo/volunteers"
)

type route struct {
	pattern string
	access  Access
}

var routes = []route{
	{PathHome, Public},
	{PathAbout, Public},
	{PathLogin, Public},
	{PathRegister, Public},
	{PathNgoLogin, Public},
	{PathNgoRegister, Public},
	{PathForgotPassword, Public},
	{PathResetPassword, Public},
	{PathMode, Public},
	{PathLogout, Public},

	{PathDashboard, UserOnly},
	{PathDonate, UserOnly},
	{PathEditProfile, UserOnly},
	{PathDonation, UserOnly},
	{PathJoinNgo, UserOnly},
	{PathJoinNgoRequest, UserOnly},
	{PathMyRequests, UserOnly},
	{PathCancelRequest, UserOnly},

	{PathNgoDashboard, NgoOnly},
	{PathNgoDonations, NgoOnly},
	{PathNgoDonationStatus, NgoOnly},
	{PathManageVolunteers, NgoOnly},
	{PathVolunteerStatus, NgoOnly},
	{PathNgoVolunteers, NgoOnly},
}

// Classify returns the access requirement of path and whether path is a
// known page at all.
func Classify(path string) (Access, bool) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range routes {
		if matches(r.pattern, path) {
			return r.access, true
		}
	}
	return Public, false
}

func matches(pattern, path string) bool {
	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")
	if len(patternParts) != len(pathParts) {
		return false
	}
	for i, part := range patternParts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if part != pathParts[i] {
			return false
		}
	}
	return true
}

// Decision is the outcome of a guard check. An empty Redirect means the
// page renders.
type Decision struct {
	Redirect string
}

func (decision Decision) Allowed() bool {
	return decision.Redirect == ""
}

// Decide is the route guard. It has no state and no side effects.
func Decide(isLoggedIn bool, mode data.Mode, path string) Decision {
	access, known := Classify(path)
	if !known {
		return Decision{Redirect: PathHome}
	}

	switch access {
	case UserOnly:
		if !isLoggedIn || mode != data.ModeUser {
			return Decision{Redirect: PathLogin}
		}
	case NgoOnly:
		if !isLoggedIn || mode != data.ModeNgo {
			return Decision{Redirect: PathNgoLogin}
		}
	}

	return Decision{}
}

// HomeFor returns the landing page of a logged in session in mode.
func HomeFor(mode data.Mode) string {
	switch mode {
	case data.ModeUser:
		return PathDashboard
	case data.ModeNgo:
		return PathNgoDashboard
	default:
		return PathHome
	}
}

// Expand fills the {param} segments of pattern with values, in order.
func Expand(pattern string, values ...string) string {
	parts := strings.Split(pattern, "/")
	for i, part := range parts {
		if len(values) == 0 {
			break
		}
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			parts[i] = url.PathEscape(values[0])
			values = values[1:]
		}
	}
	return strings.Join(parts, "/")
}
