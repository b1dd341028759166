package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeUser, ParseMode("user"))
	assert.Equal(t, ModeNgo, ParseMode(" ngo "))
	assert.Equal(t, ModeDefault, ParseMode(""))
	assert.Equal(t, ModeDefault, ParseMode("admin"))
}

func TestUserProfileAcceptsBothIDKeys(t *testing.T) {
	var withID UserProfile
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"name":"Ann","email":"ann@example.com"}`), &withID))
	assert.Equal(t, ID("7"), withID.ID)

	var withMongoID UserProfile
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"65f0c1","name":"Ann"}`), &withMongoID))
	assert.Equal(t, ID("65f0c1"), withMongoID.ID)
	assert.Equal(t, "Ann", withMongoID.Name)
}

func TestUserProfileDropsPassword(t *testing.T) {
	var user UserProfile
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","email":"a@b.c","password":"hunter2"}`), &user))

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hunter2")
	assert.Equal(t, "a@b.c", user.GetDisplayName())
}

func TestNgoProfileFallsBackToNgoID(t *testing.T) {
	var ngo NgoProfile
	require.NoError(t, json.Unmarshal([]byte(`{"ngo_id":12,"name":"Helping Hands","phone":"9876543210"}`), &ngo))
	assert.Equal(t, ID("12"), ngo.ID)
	assert.Equal(t, ModeNgo, ngo.Role())
	assert.Equal(t, "9876543210", ngo.Phone)
}

func TestIDMarshalsNumbersAsNumbers(t *testing.T) {
	payload := struct {
		UserID ID `json:"userId"`
		NgoID  ID `json:"ngoId"`
	}{UserID: "42", NgoID: "65f0c1"}

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"userId":42,"ngoId":"65f0c1"}`, string(raw))

	raw, err = json.Marshal(ID("007"))
	require.NoError(t, err)
	assert.Equal(t, `"007"`, string(raw))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, 100, StatusApproved.Progress())
	assert.Equal(t, 100, StatusRejected.Progress())
	assert.Equal(t, 50, StatusPending.Progress())
	assert.Equal(t, 50, Status("").Progress())
	assert.Equal(t, "Pending", Status("").Display())
	assert.True(t, Status("").IsPending())

	_, ok := ParseStatus("Pending")
	assert.False(t, ok)
	status, ok := ParseStatus("Approved")
	assert.True(t, ok)
	assert.Equal(t, StatusApproved, status)
}

func TestDonationDecoding(t *testing.T) {
	var donations []Donation
	require.NoError(t, json.Unmarshal([]byte(`[
		{"_id":"a1","category":"Books","quantity":3,"status":"Approved","created_at":"2024-03-05T10:00:00Z"},
		{"id":9,"category":"Food","quantity":"12"}
	]`), &donations))

	require.Len(t, donations, 2)
	assert.Equal(t, ID("a1"), donations[0].ID)
	assert.Equal(t, ID("3"), donations[0].Quantity)
	assert.Equal(t, ID("9"), donations[1].ID)
	assert.Equal(t, "Pending", donations[1].Status.Display())
	assert.Equal(t, "Mar 5, 2024", FormatDate(donations[0].CreatedAt))
	assert.Equal(t, "N/A", FormatDate(donations[1].CreatedAt))
}

func TestSessionDisplayName(t *testing.T) {
	session := NewSession("token")
	assert.Equal(t, ModeDefault, session.Mode)
	assert.Empty(t, session.DisplayName())

	session.IsLoggedIn = true
	session.Mode = ModeNgo
	session.Ngo = &NgoProfile{Email: "contact@ngo.org"}
	assert.Equal(t, "contact@ngo.org", session.DisplayName())
}
