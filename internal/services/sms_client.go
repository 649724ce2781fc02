package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"phka/pkg/utils"
)

// SMSSender dispatches an OTP text through the external gateway.
type SMSSender interface {
	Send(ctx context.Context, to string, content string) error
}

type SMSConfig struct {
	GatewayURL string // POST endpoint
	APIKey     string // shared secret, sent as Authorization
	Sender     string // sender id shown on the phone
}

type smsClient struct {
	cfg    SMSConfig
	client *http.Client
}

func NewSMSClient(cfg SMSConfig) SMSSender {
	return &smsClient{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type smsPayload struct {
	Sender  string `json:"sender"`
	To      string `json:"to"`
	Content string `json:"content"`
}

// Send posts the message once; failures carry the upstream body for
// diagnostics and are never retried here.
func (s *smsClient) Send(ctx context.Context, to string, content string) error {
	body, err := json.Marshal(smsPayload{
		Sender:  s.cfg.Sender,
		To:      to,
		Content: content,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.GatewayURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSmsGatewayFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Printf("SMS gateway returned %d: %s", resp.StatusCode, respBody)
		return fmt.Errorf("%w: status %d: %s", utils.ErrSmsGatewayFailure, resp.StatusCode, respBody)
	}

	return nil
}
