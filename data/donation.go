package data

import (
	"encoding/json"
	"time"
)

// Status is the review state of a donation or a volunteer request.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus only accepts the two decisions an NGO can take.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusApproved, StatusRejected:
		return Status(value), true
	}
	return "", false
}

// Display returns the status as shown to people, an unset status is pending.
func (status Status) Display() string {
	if status == "" {
		return string(StatusPending)
	}
	return string(status)
}

func (status Status) IsPending() bool {
	return status == "" || status == StatusPending
}

// Progress is the fill of the status bar on the donation details page.
func (status Status) Progress() int {
	switch status {
	case StatusApproved, StatusRejected:
		return 100
	default:
		return 50
	}
}

// Categories lists what can be donated, in the order offered on the form.
var Categories = []string{"Clothes", "Books", "Food", "Toys", "Other"}

func IsCategory(value string) bool {
	for _, category := range Categories {
		if category == value {
			return true
		}
	}
	return false
}

// Donation is a goods donation as reported by the backend.
type Donation struct {
	ID        ID     `json:"id"`
	UserID    ID     `json:"user_id,omitempty"`
	NgoID     ID     `json:"ngo_id,omitempty"`
	NgoName   string `json:"ngo_name,omitempty"`
	DonorName string `json:"donor_name,omitempty"`
	Category  string `json:"category"`
	Quantity  ID     `json:"quantity"`
	Address   string `json:"address,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (donation *Donation) UnmarshalJSON(raw []byte) error {
	type plain Donation
	var tmp struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}

	*donation = Donation(tmp.plain)
	donation.ID = firstID(tmp.plain.ID, tmp.MongoID)
	return nil
}

// NGO is an entry of the public NGO listing.
type NGO struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (ngo *NGO) UnmarshalJSON(raw []byte) error {
	type plain NGO
	var tmp struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}

	*ngo = NGO(tmp.plain)
	ngo.ID = firstID(tmp.plain.ID, tmp.MongoID)
	return nil
}

type NgoStats struct {
	TotalDonations int `json:"totalDonations"`
	Volunteers     int `json:"volunteers"`
	Pending        int `json:"pending"`
}

// VolunteerRequest is a donor asking to join an NGO.
type VolunteerRequest struct {
	ID            ID     `json:"id"`
	UserID        ID     `json:"user_id,omitempty"`
	NgoID         ID     `json:"ngo_id,omitempty"`
	NgoName       string `json:"ngo_name,omitempty"`
	VolunteerName string `json:"volunteer_name,omitempty"`
	Email         string `json:"user_email,omitempty"`
	Status        Status `json:"status"`
	CreatedAt     string `json:"created_at,omitempty"`
}

func (request *VolunteerRequest) UnmarshalJSON(raw []byte) error {
	type plain VolunteerRequest
	var tmp struct {
		plain
		MongoID ID `json:"_id"`
	}
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}

	*request = VolunteerRequest(tmp.plain)
	request.ID = firstID(tmp.plain.ID, tmp.MongoID)
	return nil
}

// Volunteer is an approved volunteer of an NGO.
type Volunteer struct {
	ID            ID     `json:"id"`
	VolunteerName string `json:"volunteer_name"`
	Email         string `json:"volunteer_email,omitempty"`
	JoinedAt      string `json:"joined_at,omitempty"`
}

// FormatDate renders a backend timestamp as a short date. Values that can't
// be parsed are returned untouched, missing ones as "N/A".
func FormatDate(value string) string {
	if value == "" {
		return "N/A"
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format("Jan 2, 2006")
		}
	}
	return value
}
