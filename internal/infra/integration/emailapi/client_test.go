package emailapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

func notification() usecase.Notification {
	return usecase.Notification{
		TemplateID: "template_7gbf3vl",
		Recipient:  "sales@bestbuycongo.cd",
		Fields: map[string]string{
			"fullName": "Jane Doe",
			"email":    "jane@example.com",
			"city":     "Kinshasa",
		},
	}
}

func TestNotifyPostsTemplatePayload(t *testing.T) {
	var got SendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	c := NewClient(server.URL, "service_x", "public_y", "secret_z").WithHTTPClient(server.Client())

	require.NoError(t, c.Notify(context.Background(), notification()))

	assert.Equal(t, "service_x", got.ServiceID)
	assert.Equal(t, "template_7gbf3vl", got.TemplateID)
	assert.Equal(t, "public_y", got.UserID)
	assert.Equal(t, "secret_z", got.AccessToken)
	assert.Equal(t, "Jane Doe", got.TemplateParams["fullName"])
	assert.Equal(t, "sales@bestbuycongo.cd", got.TemplateParams["to_email"])
}

func TestNotifyNon2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid"))
	}))
	defer server.Close()

	var failures []string
	c := NewClient(server.URL, "service_x", "public_y", "").
		WithHTTPClient(server.Client()).
		OnError(func(service string) { failures = append(failures, service) })

	err := c.Notify(context.Background(), notification())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "template ID is invalid")
	assert.Equal(t, []string{"emailapi"}, failures)
}

func TestNotifyNotConfigured(t *testing.T) {
	c := NewClient("", "", "", "")

	assert.Equal(t, DefaultURL, c.url)
	assert.EqualError(t, c.Notify(context.Background(), notification()), "email api not configured")
}

func TestNotifyDoesNotMutateFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	n := notification()
	c := NewClient(server.URL, "s", "p", "").WithHTTPClient(server.Client())

	require.NoError(t, c.Notify(context.Background(), n))
	_, ok := n.Fields["to_email"]
	assert.False(t, ok)
}
