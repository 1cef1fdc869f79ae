// Package sms sends customer notifications through Fast2SMS and records every
// attempt in sms_logs.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gms-backend/internal/metrics"
	"gms-backend/internal/models"
)

// Provider is the outbound SMS interface. The mock implementation stands in
// when no API key is configured.
type Provider interface {
	Send(phone, message, messageType string, customerID *int) error
}

// LogRepo persists delivery records.
type LogRepo interface {
	Create(ctx context.Context, log *models.SMSLog) error
}

const costPerSMS = 5.0 // Fast2SMS quick route

// Fast2SMSProvider implements Provider against the Fast2SMS bulk API (India).
type Fast2SMSProvider struct {
	APIKey  string
	LogRepo LogRepo
	client  *http.Client
}

func NewFast2SMSProvider(apiKey string, logRepo LogRepo) *Fast2SMSProvider {
	return &Fast2SMSProvider{
		APIKey:  apiKey,
		LogRepo: logRepo,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Fast2SMSProvider) Send(phone, message, messageType string, customerID *int) error {
	apiURL := fmt.Sprintf(
		"https://www.fast2sms.com/dev/bulkV2?authorization=%s&route=q&message=%s&language=english&flash=0&numbers=%s",
		url.QueryEscape(s.APIKey),
		url.QueryEscape(message),
		url.QueryEscape(phone),
	)

	smsLog := &models.SMSLog{
		CustomerID:  customerID,
		Phone:       phone,
		Message:     message,
		MessageType: messageType,
		Status:      models.SMSStatusPending,
		Cost:        costPerSMS,
	}

	resp, err := s.client.Get(apiURL)
	if err != nil {
		smsLog.Status = models.SMSStatusFailed
		s.logSMS(smsLog)
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		smsLog.Status = models.SMSStatusFailed
		s.logSMS(smsLog)
		return fmt.Errorf("SMS API error (status %d): %s", resp.StatusCode, string(body))
	}
	if strings.Contains(string(body), `"return":false`) {
		smsLog.Status = models.SMSStatusFailed
		s.logSMS(smsLog)
		return fmt.Errorf("SMS API error: %s", string(body))
	}

	smsLog.Status = models.SMSStatusSent
	s.logSMS(smsLog)
	return nil
}

// logSMS writes the record off the request path; a log failure never fails
// the send.
func (s *Fast2SMSProvider) logSMS(l *models.SMSLog) {
	metrics.SMSSent.WithLabelValues(l.Status).Inc()
	if s.LogRepo == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.LogRepo.Create(ctx, l)
	}()
}

// MockProvider prints messages to stdout for local development.
type MockProvider struct {
	LogRepo LogRepo
}

func NewMockProvider(logRepo LogRepo) *MockProvider {
	return &MockProvider{LogRepo: logRepo}
}

func (s *MockProvider) Send(phone, message, messageType string, customerID *int) error {
	fmt.Printf("\n========== MOCK SMS ==========\n")
	fmt.Printf("To: %s\n", phone)
	fmt.Printf("Type: %s\n", messageType)
	fmt.Printf("Message: %s\n", message)
	fmt.Printf("==============================\n\n")

	metrics.SMSSent.WithLabelValues(models.SMSStatusSent).Inc()
	if s.LogRepo != nil {
		smsLog := &models.SMSLog{
			CustomerID:  customerID,
			Phone:       phone,
			Message:     message,
			MessageType: messageType,
			Status:      models.SMSStatusSent,
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			s.LogRepo.Create(ctx, smsLog)
		}()
	}
	return nil
}
