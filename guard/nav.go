package guard

import (
	"net/url"

	"github.com/Bios-Marcel/donatehub/data"
)

// Link is an entry of the header navigation.
type Link struct {
	Label string
	Href  string
	// Match is the page the link highlights on, Href may be a mode switch.
	Match string
	// Danger marks the logout entry.
	Danger bool
}

// ModeSwitchURL returns the address that sets mode and then continues to
// next.
func ModeSwitchURL(mode data.Mode, next string) string {
	return Expand(PathMode, string(mode)) + "?next=" + url.QueryEscape(next)
}

// SwitchTarget validates where a mode switch may continue to. Only the
// login and register pages of that mode are allowed, anything else falls
// back to the mode's login page.
func SwitchTarget(mode data.Mode, next string) string {
	switch mode {
	case data.ModeUser:
		if next == PathRegister {
			return next
		}
		return PathLogin
	case data.ModeNgo:
		if next == PathNgoRegister {
			return next
		}
		return PathNgoLogin
	}
	return PathHome
}

// Navigation returns the header links for a session.
func Navigation(isLoggedIn bool, mode data.Mode) []Link {
	switch mode {
	case data.ModeUser:
		links := []Link{{Label: "Home", Href: PathHome, Match: PathHome}}
		if !isLoggedIn {
			return append(links,
				Link{Label: "Login", Href: PathLogin, Match: PathLogin},
				Link{Label: "Register", Href: PathRegister, Match: PathRegister},
			)
		}
		return append(links,
			Link{Label: "Dashboard", Href: PathDashboard, Match: PathDashboard},
			Link{Label: "Edit Profile", Href: PathEditProfile, Match: PathEditProfile},
			Link{Label: "Logout", Href: PathLogout, Match: PathLogout, Danger: true},
		)
	case data.ModeNgo:
		links := []Link{{Label: "Home", Href: PathHome, Match: PathHome}}
		if !isLoggedIn {
			return append(links,
				Link{Label: "Login", Href: PathNgoLogin, Match: PathNgoLogin},
				Link{Label: "Register", Href: PathNgoRegister, Match: PathNgoRegister},
			)
		}
		return append(links,
			Link{Label: "Dashboard", Href: PathNgoDashboard, Match: PathNgoDashboard},
			Link{Label: "Donations", Href: PathNgoDonations, Match: PathNgoDonations},
			Link{Label: "Logout", Href: PathLogout, Match: PathLogout, Danger: true},
		)
	default:
		return []Link{
			{Label: "Donator Login", Href: ModeSwitchURL(data.ModeUser, PathLogin), Match: PathLogin},
			{Label: "Donator Register", Href: ModeSwitchURL(data.ModeUser, PathRegister), Match: PathRegister},
			{Label: "NGO Login", Href: ModeSwitchURL(data.ModeNgo, PathNgoLogin), Match: PathNgoLogin},
			{Label: "NGO Register", Href: ModeSwitchURL(data.ModeNgo, PathNgoRegister), Match: PathNgoRegister},
		}
	}
}
