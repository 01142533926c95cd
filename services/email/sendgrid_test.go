package emailsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"testing"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/progress/core"
	"github.com/trezcool/progress/services/logger"
)

func newTestSendgridService(t *testing.T) *SendgridService {
	conf := &core.Config{
		AppName:          "Tracker",
		Env:              "TEST",
		SendgridAPIKey:   "SG.test",
		DefaultFromEmail: mail.Address{Name: "Tracker", Address: "noreply@tracker.test"},
	}
	logger := logsvc.NewRollbarLogger(log.New(&bytes.Buffer{}, "", 0), conf)
	logger.Enable(false)
	return NewSendgridService(conf, logger)
}

func TestSendgridService_SendMessages(t *testing.T) {
	svc := newTestSendgridService(t)
	origAPIFunc := apiFunc
	defer func() { apiFunc = origAPIFunc }()

	msg := &core.EmailMessage{
		To:      []mail.Address{{Name: "John Doe", Address: "jdoe@mail.net"}},
		Subject: "Your Learning Progress",
		BodyStr: "Hello, John Doe! You have accomplished our DSA course!",
	}

	tests := []struct {
		name    string
		res     *rest.Response
		err     error
		wantErr bool
	}{
		{name: "accepted", res: &rest.Response{StatusCode: http.StatusAccepted}},
		{name: "rejected", res: &rest.Response{StatusCode: http.StatusUnauthorized, Body: "bad key"}, wantErr: true},
		{name: "transport error", err: errors.New("dial tcp: timeout"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got rest.Request
			apiFunc = func(req rest.Request) (*rest.Response, error) {
				got = req
				return tt.res, tt.err
			}

			err := svc.SendMessages(context.Background(), msg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, http.MethodPost, string(got.Method))
			assert.Equal(t, "https://api.sendgrid.com/v3/mail/send", got.BaseURL)

			var body struct {
				From             struct{ Email string } `json:"from"`
				Personalizations []struct {
					Subject string                   `json:"subject"`
					To      []struct{ Email string } `json:"to"`
				} `json:"personalizations"`
			}
			require.NoError(t, json.Unmarshal(got.Body, &body))
			assert.Equal(t, "noreply@tracker.test", body.From.Email)
			require.Len(t, body.Personalizations, 1)
			assert.Equal(t, "[Tracker] Your Learning Progress", body.Personalizations[0].Subject)
			assert.Equal(t, "jdoe@mail.net", body.Personalizations[0].To[0].Email)
		})
	}
}
