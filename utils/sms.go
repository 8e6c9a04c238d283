package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// SMSClient talks to the clinic's SMS gateway over HTTP. Callers treat
// delivery as best-effort; the client only reports the failure, it never
// retries beyond the transport-level retry policy below.
type SMSClient struct {
	client     *resty.Client
	gatewayURL string
}

func NewSMSClient() *SMSClient {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+os.Getenv("SMS_API_KEY"))

	return &SMSClient{
		client:     client,
		gatewayURL: os.Getenv("SMS_GATEWAY_URL"),
	}
}

func (s *SMSClient) Send(phone, message string) error {
	if s.gatewayURL == "" {
		return fmt.Errorf("SMS_GATEWAY_URL is not set")
	}

	resp, err := s.client.R().
		SetBody(map[string]string{
			"to":      phone,
			"message": message,
		}).
		Post(s.gatewayURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("sms gateway returned %s", resp.Status())
	}
	return nil
}
