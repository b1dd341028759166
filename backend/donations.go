package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/Bios-Marcel/donatehub/data"
)

type NgosResponse struct {
	Envelope
	Ngos []data.NGO `json:"ngos"`
}

// Ngos lists the NGOs donations can go to.
func (client *Client) Ngos(ctx context.Context) (*NgosResponse, error) {
	var response NgosResponse
	if err := client.getJSON(ctx, "/ngos", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type DonationsResponse struct {
	Envelope
	Donations []data.Donation `json:"donations"`
}

// UserDonations lists the donations a donor made.
func (client *Client) UserDonations(ctx context.Context, userID data.ID) (*DonationsResponse, error) {
	var response DonationsResponse
	query := url.Values{"userId": {userID.String()}}
	if err := client.getJSON(ctx, "/donations?"+query.Encode(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type DonationResponse struct {
	Envelope
	Donation *data.Donation `json:"donation"`
}

func (client *Client) Donation(ctx context.Context, donationID data.ID) (*DonationResponse, error) {
	var response DonationResponse
	if err := client.getJSON(ctx, "/donation/"+escape(donationID.String()), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// NewDonation is the multipart form of a donation. Notes is the only
// optional field.
type NewDonation struct {
	UserID    data.ID
	NgoID     data.ID
	Category  string
	Quantity  string
	Address   string
	Notes     string
	PhotoName string
	Photo     io.Reader
}

type DonateResponse struct {
	Envelope
	Donation *data.Donation `json:"donation,omitempty"`
}

// Donate submits a donation including its photo.
func (client *Client) Donate(ctx context.Context, donation NewDonation) (*DonateResponse, error) {
	const op = "POST /donate"

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	fields := []struct{ name, value string }{
		{"user_id", donation.UserID.String()},
		{"ngo_id", donation.NgoID.String()},
		{"category", donation.Category},
		{"quantity", donation.Quantity},
		{"address", donation.Address},
		{"notes", donation.Notes},
	}
	for _, field := range fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, &Error{Kind: KindTransport, Op: op, Err: err}
		}
	}
	if donation.Photo != nil {
		part, err := writer.CreateFormFile("photo", donation.PhotoName)
		if err != nil {
			return nil, &Error{Kind: KindTransport, Op: op, Err: err}
		}
		if _, err := io.Copy(part, donation.Photo); err != nil {
			return nil, &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("cant read photo: %w", err)}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, Err: err}
	}

	var response DonateResponse
	if err := client.send(ctx, http.MethodPost, "/donate", &body, writer.FormDataContentType(), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type StatusUpdate struct {
	Status data.Status `json:"status"`
}

type StatusResponse struct {
	Envelope
}

// SetDonationStatus approves or rejects a donation.
func (client *Client) SetDonationStatus(ctx context.Context, donationID data.ID, status data.Status) (*StatusResponse, error) {
	var response StatusResponse
	path := "/donations/" + escape(donationID.String()) + "/status"
	if err := client.sendJSON(ctx, http.MethodPut, path, StatusUpdate{Status: status}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// NgoDonations lists the donations addressed to an NGO.
func (client *Client) NgoDonations(ctx context.Context, ngoID data.ID) (*DonationsResponse, error) {
	var response DonationsResponse
	if err := client.getJSON(ctx, "/ngo/"+escape(ngoID.String())+"/donations", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type StatsResponse struct {
	Envelope
	data.NgoStats
}

func (client *Client) NgoStats(ctx context.Context, ngoID data.ID) (*StatsResponse, error) {
	var response StatsResponse
	if err := client.getJSON(ctx, "/ngo/"+escape(ngoID.String())+"/stats", &response); err != nil {
		return nil, err
	}
	return &response, nil
}
