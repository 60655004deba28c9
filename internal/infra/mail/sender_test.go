package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/bestbuycongo/starlink-inquiry/internal/usecase"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func newTestSender(d *fakeDialer) *EmailSender {
	s := NewEmailSender("smtp.example.com", 587, "user", "pass", "no-reply@bestbuycongo.cd", "BestBuy Congo", true)
	s.dialer = d
	return s
}

func sampleNotification() usecase.Notification {
	return usecase.Notification{
		TemplateID: "inquiry_notification",
		Recipient:  "sales@bestbuycongo.cd",
		Fields: map[string]string{
			"id":          "inq-42",
			"fullName":    "Jane <b>Doe</b>",
			"email":       "jane@example.com",
			"countryCode": "+243",
			"phoneNumber": "812345678",
			"city":        "Kinshasa",
			"description": "Two standard kits",
			"language":    "fr",
			"submittedAt": "2026-01-02 03:04 UTC",
		},
	}
}

func TestNotifySendsRenderedMessage(t *testing.T) {
	d := &fakeDialer{}
	s := newTestSender(d)

	require.NoError(t, s.Notify(context.Background(), sampleNotification()))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"sales@bestbuycongo.cd"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New Starlink inquiry from Jane <b>Doe</b> (Kinshasa)"}, m.GetHeader("Subject"))
	require.Len(t, m.GetHeader("Reply-To"), 1)
	assert.Contains(t, m.GetHeader("Reply-To")[0], "jane@example.com")

	var raw bytes.Buffer
	_, err := m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "multipart/alternative")
}

func TestRenderInquiryTemplate(t *testing.T) {
	data := emailDataFrom(sampleNotification().Fields)

	subject, text, html, err := render("inquiry_notification", data)

	require.NoError(t, err)
	assert.Equal(t, "New Starlink inquiry from Jane <b>Doe</b> (Kinshasa)", subject)
	assert.Contains(t, text, "Phone: +243 812345678")
	assert.Contains(t, text, "Two standard kits")
	assert.Contains(t, text, "Company: Not provided")
	assert.Contains(t, html, "Jane &lt;b&gt;Doe&lt;/b&gt;")
	assert.Contains(t, html, "inq-42")
}

func TestNotifyReturnsSMTPError(t *testing.T) {
	d := &fakeDialer{err: errors.New("535 auth failed")}

	err := newTestSender(d).Notify(context.Background(), sampleNotification())

	assert.ErrorContains(t, err, "535 auth failed")
}

func TestNotifyUnknownTemplate(t *testing.T) {
	d := &fakeDialer{}
	n := sampleNotification()

	for _, id := range []string{"", "missing", "../sender"} {
		n.TemplateID = id
		assert.Error(t, newTestSender(d).Notify(context.Background(), n), id)
	}
	assert.Empty(t, d.sent)
}

func TestNotifyDisabledOnlyLogs(t *testing.T) {
	d := &fakeDialer{}
	s := newTestSender(d)
	s.Enabled = false

	require.NoError(t, s.Notify(context.Background(), sampleNotification()))
	assert.Empty(t, d.sent)
}
