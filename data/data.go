package data

import (
	"encoding/json"
	"strings"
)

// Mode is the role context a browser session is navigating in. It is chosen
// by navigation before any authentication happens.
type Mode string

const (
	ModeDefault Mode = "default"
	ModeUser    Mode = "user"
	ModeNgo     Mode = "ngo"
)

// ParseMode maps a persisted or user supplied value onto a Mode. Anything
// unknown is treated as ModeDefault.
func ParseMode(value string) Mode {
	switch Mode(strings.TrimSpace(value)) {
	case ModeUser:
		return ModeUser
	case ModeNgo:
		return ModeNgo
	default:
		return ModeDefault
	}
}

// ID is a backend identifier. The backend hands them out as strings or as
// numbers depending on the endpoint, so both are accepted.
type ID string

func (id *ID) UnmarshalJSON(raw []byte) error {
	value, err := unmarshalLoose(raw)
	if err != nil {
		return err
	}
	*id = ID(value)
	return nil
}

// MarshalJSON writes numeric identifiers as JSON numbers, which is what the
// volunteer endpoints expect.
func (id ID) MarshalJSON() ([]byte, error) {
	if isNumeric(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

func firstID(ids ...ID) ID {
	for _, id := range ids {
		if id != "" {
			return id
		}
	}
	return ""
}

func unmarshalLoose(raw []byte) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	if raw[0] == '"' {
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return "", err
		}
		return value, nil
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return "", err
	}
	return number.String(), nil
}

func isNumeric(value string) bool {
	if value == "" || len(value) > 18 {
		return false
	}
	if len(value) > 1 && value[0] == '0' {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Profile is what a successful login hands back.
type Profile interface {
	Role() Mode
	ProfileID() ID
}

// UserProfile represents a logged in donor. The password is never part of
// it, it only travels inside the login and edit requests.
type UserProfile struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (user *UserProfile) UnmarshalJSON(raw []byte) error {
	type plain UserProfile
	var tmp struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}

	*user = UserProfile(tmp.plain)
	user.ID = firstID(tmp.plain.ID, tmp.MongoID)
	return nil
}

func (user UserProfile) Role() Mode {
	return ModeUser
}

func (user UserProfile) ProfileID() ID {
	return user.ID
}

func (user UserProfile) GetDisplayName() string {
	if user.Name != "" {
		return user.Name
	}

	return user.Email
}

// NgoProfile represents a logged in NGO account.
type NgoProfile struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
}

func (ngo *NgoProfile) UnmarshalJSON(raw []byte) error {
	type plain NgoProfile
	var tmp struct {
		plain
		MongoID ID `json:"_id"`
		NgoID   ID `json:"ngo_id"`
	}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}

	*ngo = NgoProfile(tmp.plain)
	ngo.ID = firstID(tmp.plain.ID, tmp.NgoID, tmp.MongoID)
	return nil
}

func (ngo NgoProfile) Role() Mode {
	return ModeNgo
}

func (ngo NgoProfile) ProfileID() ID {
	return ngo.ID
}

func (ngo NgoProfile) GetDisplayName() string {
	if ngo.Name != "" {
		return ngo.Name
	}

	return ngo.Email
}

// Session is the per browser state that survives page reloads.
type Session struct {
	Token      string       `json:"token"`
	IsLoggedIn bool         `json:"isLoggedIn"`
	Mode       Mode         `json:"mode"`
	User       *UserProfile `json:"user,omitempty"`
	Ngo        *NgoProfile  `json:"ngo,omitempty"`
}

// NewSession returns the state of a browser that never logged in.
func NewSession(token string) *Session {
	return &Session{
		Token: token,
		Mode:  ModeDefault,
	}
}

// DisplayName returns the name of whoever is logged in, or an empty string.
func (session *Session) DisplayName() string {
	if !session.IsLoggedIn {
		return ""
	}
	switch {
	case session.Mode == ModeNgo && session.Ngo != nil:
		return session.Ngo.GetDisplayName()
	case session.User != nil:
		return session.User.GetDisplayName()
	}
	return ""
}
