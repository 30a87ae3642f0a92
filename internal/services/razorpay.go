package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type RazorpayService struct {
	KeyID      string
	KeySecret  string
	HTTPClient *http.Client
}

func NewRazorpayService(keyID, keySecret string) *RazorpayService {
	return &RazorpayService{
		KeyID:     keyID,
		KeySecret: keySecret,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type paymentLinkRequest struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	ReferenceID string            `json:"reference_id"`
	Customer    map[string]string `json:"customer,omitempty"`
	Notify      map[string]bool   `json:"notify"`
}

type paymentLinkResponse struct {
	ID       string `json:"id"`
	ShortURL string `json:"short_url"`
	Status   string `json:"status"`
}

// CreatePaymentLink creates a Razorpay payment link and returns its URL.
func (s *RazorpayService) CreatePaymentLink(ctx context.Context, amountPaise int64, description, email string) (string, error) {
	if s.KeyID == "" || s.KeySecret == "" {
		return "", fmt.Errorf("razorpay credentials are not configured")
	}

	reqBody := paymentLinkRequest{
		Amount:      amountPaise,
		Currency:    "INR",
		Description: description,
		ReferenceID: "nkedge-" + uuid.NewString(),
		Notify:      map[string]bool{"email": true},
	}
	if email != "" {
		reqBody.Customer = map[string]string{"email": email}
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.razorpay.com/v1/payment_links", bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.KeyID, s.KeySecret)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("razorpay returned %d: %s", resp.StatusCode, string(body))
	}

	var res paymentLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	if res.ShortURL == "" {
		return "", fmt.Errorf("razorpay response has no payment link url")
	}

	return res.ShortURL, nil
}
