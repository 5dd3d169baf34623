// Package push delivers notifications through Firebase Cloud Messaging.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	messagingScope  = "https://www.googleapis.com/auth/firebase.messaging"
	defaultEndpoint = "https://fcm.googleapis.com"
)

var ErrUnregistered = errors.New("device token is no longer registered")

type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// FCMSender talks to the FCM HTTP v1 API.
type FCMSender struct {
	HTTP      HTTPClient
	ProjectID string
	Endpoint  string
}

// NewFCMSender authenticates with a service-account JSON key.
func NewFCMSender(ctx context.Context, projectID string, credentialsJSON []byte) (*FCMSender, error) {
	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, messagingScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse firebase credentials: %w", err)
	}
	if projectID == "" {
		projectID = creds.ProjectID
	}
	if projectID == "" {
		return nil, errors.New("firebase project id is not configured")
	}
	return &FCMSender{
		HTTP:      oauth2.NewClient(ctx, creds.TokenSource),
		ProjectID: projectID,
		Endpoint:  defaultEndpoint,
	}, nil
}

type fcmRequest struct {
	Message fcmMessage `json:"message"`
}

type fcmMessage struct {
	Token        string            `json:"token"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
	Android      fcmAndroid        `json:"android"`
	APNS         fcmAPNS           `json:"apns"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmAndroid struct {
	Notification struct {
		Sound       string `json:"sound"`
		ClickAction string `json:"click_action"`
	} `json:"notification"`
}

type fcmAPNS struct {
	Payload struct {
		Aps struct {
			Sound string `json:"sound"`
		} `json:"aps"`
	} `json:"payload"`
}

type fcmError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			ErrorCode string `json:"errorCode"`
		} `json:"details"`
	} `json:"error"`
}

func newRequestBody(msg Message) fcmRequest {
	m := fcmMessage{
		Token:        msg.Token,
		Notification: fcmNotification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}
	m.Android.Notification.Sound = "default"
	m.Android.Notification.ClickAction = "FLUTTER_NOTIFICATION_CLICK"
	m.APNS.Payload.Aps.Sound = "default"
	return fcmRequest{Message: m}
}

func (s *FCMSender) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(newRequestBody(msg))
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/v1/projects/%s/messages:send", s.Endpoint, s.ProjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach fcm: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	var fe fcmError
	json.NewDecoder(resp.Body).Decode(&fe)
	for _, d := range fe.Error.Details {
		if d.ErrorCode == "UNREGISTERED" {
			return ErrUnregistered
		}
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrUnregistered
	}
	return fmt.Errorf("fcm returned HTTP %d: %s", resp.StatusCode, fe.Error.Status)
}

// LogSender only logs. It backs dry runs.
type LogSender struct {
	Logger *zap.Logger
}

func (s LogSender) Send(ctx context.Context, msg Message) error {
	s.Logger.Info("dry run notification",
		zap.String("title", msg.Title),
		zap.String("body", msg.Body),
		zap.Any("data", msg.Data))
	return nil
}

var (
	_ Sender = (*FCMSender)(nil)
	_ Sender = LogSender{}
)
