package fcmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hotel-ops-backend/config"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// SendPush submits one message to one device token. The call is bounded by
	// the configured timeout; ErrInvalidToken means the token is dead and
	// should be deactivated.
	SendPush(ctx context.Context, token, title, body string, data map[string]string) error
}

var ErrInvalidToken = errors.New("push token is not registered")

var Instance Provider

func NewProvider() {
	Instance = &impl{
		endpoint:  config.Conf.Push.FcmEndpoint,
		serverKey: config.Conf.Push.FcmServerKey,
		client: &http.Client{
			Timeout: time.Duration(config.Conf.Push.TimeoutInSec) * time.Second,
		},
	}
}

type impl struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

type fcmRequest struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
	Priority     string            `json:"priority"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		Error string `json:"error"`
	} `json:"results"`
}

func (i impl) SendPush(ctx context.Context, token, title, body string, data map[string]string) error {
	payload := fcmRequest{
		To: token,
		Notification: fcmNotification{
			Title: title,
			Body:  body,
			Sound: "default",
		},
		Data:     data,
		Priority: "high",
	}
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode push request")
	}

	r, err := http.NewRequestWithContext(ctx, "POST", i.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return errors.Wrap(err, "failed to build push request")
	}
	r.Header.Add("Content-Type", "application/json")
	r.Header.Add("Authorization", fmt.Sprintf("key=%s", i.serverKey))

	logger := log.
		WithField("external_request", i.endpoint).
		WithField("push_token", token)

	response, err := i.client.Do(r)
	if err != nil {
		return errors.Wrap(err, "push request failed")
	}
	defer response.Body.Close()

	respBody, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read push response")
	}
	if response.StatusCode != http.StatusOK {
		logger.WithField("response_body", string(respBody)).
			Warnf("push provider returned status %v", response.StatusCode)
		return errors.Errorf("push provider returned status %v", response.StatusCode)
	}

	resp := fcmResponse{}
	if err = json.Unmarshal(respBody, &resp); err != nil {
		return errors.Wrap(err, "failed to decode push response")
	}
	if resp.Failure > 0 {
		for _, result := range resp.Results {
			if result.Error == "NotRegistered" || result.Error == "InvalidRegistration" {
				return ErrInvalidToken
			}
		}
		return errors.Errorf("push provider rejected the message: %+v", resp.Results)
	}
	return nil
}
