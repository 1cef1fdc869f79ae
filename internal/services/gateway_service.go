package services

import (
	"fmt"

	"gms-backend/internal/models"

	razorpay "github.com/razorpay/razorpay-go"
)

// GatewayService exposes the three read-only Razorpay list feeds (orders,
// payments, settlements) that back the gateway view of the invoice table.
// Order and payment creation stay with the gateway's own checkout; this
// service only reads.
type GatewayService struct {
	keyID     string
	keySecret string
}

func NewGatewayService(keyID, keySecret string) *GatewayService {
	return &GatewayService{keyID: keyID, keySecret: keySecret}
}

func (s *GatewayService) client() *razorpay.Client {
	if s.keyID == "" || s.keySecret == "" {
		return nil
	}
	return razorpay.NewClient(s.keyID, s.keySecret)
}

// Feed fetches one page of the named gateway entity. count is capped at 100,
// the gateway's page-size limit.
func (s *GatewayService) Feed(entity string, count, skip int) (*models.GatewayFeedResponse, error) {
	client := s.client()
	if client == nil {
		return nil, fmt.Errorf("payment gateway not configured")
	}

	if count <= 0 || count > 100 {
		count = 100
	}
	if skip < 0 {
		skip = 0
	}
	query := map[string]interface{}{
		"count": count,
		"skip":  skip,
	}

	var (
		body map[string]interface{}
		err  error
	)
	switch entity {
	case "orders":
		body, err = client.Order.All(query, nil)
	case "payments":
		body, err = client.Payment.All(query, nil)
	case "settlements":
		body, err = client.Settlement.All(query, nil)
	default:
		return nil, fmt.Errorf("unknown gateway feed: %s", entity)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gateway %s: %w", entity, err)
	}

	return parseFeed(entity, body), nil
}

// parseFeed normalizes the gateway's collection envelope. Responses always
// carry "count" and "items" but the value types vary with the JSON decoder.
func parseFeed(entity string, body map[string]interface{}) *models.GatewayFeedResponse {
	feed := &models.GatewayFeedResponse{Entity: entity}

	switch c := body["count"].(type) {
	case float64:
		feed.Count = int(c)
	case int:
		feed.Count = c
	}

	if raw, ok := body["items"].([]interface{}); ok {
		for _, item := range raw {
			if m, ok := item.(map[string]interface{}); ok {
				feed.Items = append(feed.Items, m)
			}
		}
	}
	return feed
}
