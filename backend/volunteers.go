package backend

import (
	"context"
	"net/http"

	"github.com/Bios-Marcel/donatehub/data"
)

type JoinRequest struct {
	UserID data.ID `json:"userId"`
	NgoID  data.ID `json:"ngoId"`
}

type JoinResponse struct {
	Envelope
}

// JoinNgo asks an NGO to take a donor on as volunteer.
func (client *Client) JoinNgo(ctx context.Context, request JoinRequest) (*JoinResponse, error) {
	var response JoinResponse
	if err := client.sendJSON(ctx, http.MethodPost, "/volunteer/join", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type VolunteerRequestsResponse struct {
	Envelope
	Requests []data.VolunteerRequest `json:"requests"`
}

// MyVolunteerRequests lists the volunteer requests a donor sent.
func (client *Client) MyVolunteerRequests(ctx context.Context, userID data.ID) (*VolunteerRequestsResponse, error) {
	var response VolunteerRequestsResponse
	if err := client.getJSON(ctx, "/volunteer/my-requests/"+escape(userID.String()), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type CancelResponse struct {
	Envelope
}

func (client *Client) CancelVolunteerRequest(ctx context.Context, requestID data.ID) (*CancelResponse, error) {
	var response CancelResponse
	path := "/volunteer/" + escape(requestID.String()) + "/cancel"
	if err := client.send(ctx, http.MethodDelete, path, nil, "", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// NgoVolunteerRequests lists the requests addressed to an NGO.
func (client *Client) NgoVolunteerRequests(ctx context.Context, ngoID data.ID) (*VolunteerRequestsResponse, error) {
	var response VolunteerRequestsResponse
	if err := client.getJSON(ctx, "/ngo/"+escape(ngoID.String())+"/volunteer-requests", &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// SetVolunteerStatus approves or rejects a volunteer request.
func (client *Client) SetVolunteerStatus(ctx context.Context, requestID data.ID, status data.Status) (*StatusResponse, error) {
	var response StatusResponse
	path := "/volunteer/" + escape(requestID.String()) + "/status"
	if err := client.sendJSON(ctx, http.MethodPut, path, StatusUpdate{Status: status}, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type VolunteersResponse struct {
	Envelope
	Volunteers []data.Volunteer `json:"volunteers"`
}

// NgoVolunteers lists the approved volunteers of an NGO.
func (client *Client) NgoVolunteers(ctx context.Context, ngoID data.ID) (*VolunteersResponse, error) {
	var response VolunteersResponse
	if err := client.getJSON(ctx, "/ngo/"+escape(ngoID.String())+"/volunteers", &response); err != nil {
		return nil, err
	}
	return &response, nil
}
