package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeed(t *testing.T) {
	t.Run("json decoded body", func(t *testing.T) {
		body := map[string]interface{}{
			"entity": "collection",
			"count":  float64(2),
			"items": []interface{}{
				map[string]interface{}{"id": "pay_001", "amount": float64(50000)},
				map[string]interface{}{"id": "pay_002", "amount": float64(12500)},
			},
		}

		feed := parseFeed("payments", body)
		assert.Equal(t, "payments", feed.Entity)
		assert.Equal(t, 2, feed.Count)
		require.Len(t, feed.Items, 2)
		assert.Equal(t, "pay_001", feed.Items[0]["id"])
	})

	t.Run("integer count", func(t *testing.T) {
		feed := parseFeed("orders", map[string]interface{}{"count": 3})
		assert.Equal(t, 3, feed.Count)
	})

	t.Run("empty body", func(t *testing.T) {
		feed := parseFeed("settlements", map[string]interface{}{})
		assert.Equal(t, "settlements", feed.Entity)
		assert.Equal(t, 0, feed.Count)
		assert.Empty(t, feed.Items)
	})

	t.Run("non map items skipped", func(t *testing.T) {
		feed := parseFeed("orders", map[string]interface{}{
			"count": float64(2),
			"items": []interface{}{"garbage", map[string]interface{}{"id": "order_1"}},
		})
		require.Len(t, feed.Items, 1)
		assert.Equal(t, "order_1", feed.Items[0]["id"])
	})
}

func TestGatewayServiceUnconfigured(t *testing.T) {
	svc := NewGatewayService("", "")
	_, err := svc.Feed("orders", 10, 0)
	assert.Error(t, err)
}
