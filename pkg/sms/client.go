// Package sms provides a client for sending notification SMS through an
// HTTP gateway, with a simulation mode for environments without one.
package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

// Client represents an SMS gateway client.
type Client struct {
	gatewayURL string
	client     *http.Client
	simulate   bool
}

// NewClient creates an SMS client. With simulate set (or an empty gateway
// URL), delivery is logged and reported successful.
func NewClient(gatewayURL string, simulate bool) *Client {
	return &Client{
		gatewayURL: gatewayURL,
		client:     &http.Client{},
		simulate:   simulate || gatewayURL == "",
	}
}

// sendMessageRequest represents the payload for the SMS gateway API.
type sendMessageRequest struct {
	Phone string `json:"phone"` // recipient phone number
	Text  string `json:"text"`  // message text
}

// Send sends an SMS to the given phone number. SMS has no subject line,
// so subject is accepted for interface compatibility and ignored.
func (c *Client) Send(to, subject, msg string) error {
	if c.simulate {
		zlog.Logger.Info().Str("to", to).Msg("[SIMULATION] SMS sent")
		return nil
	}

	reqBody := sendMessageRequest{
		Phone: to,
		Text:  msg,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(c.gatewayURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	return nil
}
