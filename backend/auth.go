package backend

import (
	"context"
	"net/http"

	"github.com/Bios-Marcel/donatehub/data"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Envelope
	User *data.UserProfile `json:"user"`
}

// Login signs a donor in.
func (client *Client) Login(ctx context.Context, credentials Credentials) (*LoginResponse, error) {
	var response LoginResponse
	if err := client.sendJSON(ctx, http.MethodPost, "/login", credentials, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type NgoLoginResponse struct {
	Envelope
	Ngo *data.NgoProfile `json:"ngo"`
}

// NgoLogin signs an NGO in.
func (client *Client) NgoLogin(ctx context.Context, credentials Credentials) (*NgoLoginResponse, error) {
	var response NgoLoginResponse
	if err := client.sendJSON(ctx, http.MethodPost, "/ngo/login", credentials, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Envelope
}

func (client *Client) Register(ctx context.Context, registration Registration) (*RegisterResponse, error) {
	var response RegisterResponse
	if err := client.sendJSON(ctx, http.MethodPost, "/register", registration, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type NgoRegistration struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Password    string `json:"password"`
}

type NgoRegisterResponse struct {
	Envelope
}

func (client *Client) NgoRegister(ctx context.Context, registration NgoRegistration) (*NgoRegisterResponse, error) {
	var response NgoRegisterResponse
	if err := client.sendJSON(ctx, http.MethodPost, "/ngo/register", registration, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type PasswordReset struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type ResetPasswordResponse struct {
	Envelope
}

// ResetPassword sets a new password for the account the reset token was
// issued to. role is either data.ModeUser or data.ModeNgo.
func (client *Client) ResetPassword(ctx context.Context, role data.Mode, reset PasswordReset) (*ResetPasswordResponse, error) {
	var response ResetPasswordResponse
	if err := client.sendJSON(ctx, http.MethodPost, "/"+escape(string(role))+"/reset-password", reset, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type ProfileUpdate struct {
	ID       data.ID `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

type EditProfileResponse struct {
	Envelope
}

func (client *Client) EditProfile(ctx context.Context, update ProfileUpdate) (*EditProfileResponse, error) {
	var response EditProfileResponse
	if err := client.sendJSON(ctx, http.MethodPut, "/edit-profile", update, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
