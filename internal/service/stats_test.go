package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

// TestCartonizerService_BoxOrderStats tests the order scan and ranking.
func TestCartonizerService_BoxOrderStats(t *testing.T) {
	svc := NewCartonizerService(testCatalog())

	mediumOrder := model.Order{ID: "m", Items: []model.Item{
		{ID: "a", Name: "widget", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 1},
	}}
	largeOrder := model.Order{ID: "l", Items: []model.Item{
		{ID: "a", Name: "anvil", Length: 10, Width: 10, Height: 10, Weight: 25, Quantity: 1},
	}}

	tests := []struct {
		name     string
		orders   []model.Order
		validate func(*testing.T, []model.BoxUsageStat)
	}{
		{
			name:   "counts recommendations per box",
			orders: []model.Order{mediumOrder, mediumOrder, largeOrder},
			validate: func(t *testing.T, stats []model.BoxUsageStat) {
				assert.Len(t, stats, 3)
				assert.Equal(t, "medium", stats[0].Box.ID)
				assert.Equal(t, 2, stats[0].OrderCount)
				assert.Equal(t, "large", stats[1].Box.ID)
				assert.Equal(t, 1, stats[1].OrderCount)
				assert.Equal(t, "small", stats[2].Box.ID)
				assert.Equal(t, 0, stats[2].OrderCount)
			},
		},
		{
			name:   "every catalog box appears with no orders",
			orders: nil,
			validate: func(t *testing.T, stats []model.BoxUsageStat) {
				assert.Len(t, stats, 3)
				for _, stat := range stats {
					assert.Equal(t, 0, stat.OrderCount)
				}
			},
		},
		{
			name: "malformed and unfittable orders are skipped",
			orders: []model.Order{
				mediumOrder,
				{ID: "bad", Items: []model.Item{{ID: "x", Name: "x", Length: -1, Width: 1, Height: 1, Weight: 1, Quantity: 1}}},
				{ID: "empty"},
				{ID: "huge", Items: []model.Item{{ID: "x", Name: "x", Length: 50, Width: 50, Height: 50, Weight: 1, Quantity: 1}}},
			},
			validate: func(t *testing.T, stats []model.BoxUsageStat) {
				total := 0
				for _, stat := range stats {
					total += stat.OrderCount
				}
				assert.Equal(t, 1, total)
			},
		},
		{
			name:   "ties broken by box name ascending",
			orders: []model.Order{mediumOrder, largeOrder},
			validate: func(t *testing.T, stats []model.BoxUsageStat) {
				// medium and large both count 1; "12x12x12 Cube" sorts
				// before "24x18x18 Carton".
				assert.Equal(t, "medium", stats[0].Box.ID)
				assert.Equal(t, "large", stats[1].Box.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := svc.BoxOrderStats(tt.orders)
			if tt.validate != nil {
				tt.validate(t, stats)
			}
		})
	}
}

// TestCartonizerService_BoxOrderStatsCap verifies the scan cap.
func TestCartonizerService_BoxOrderStatsCap(t *testing.T) {
	params := model.DefaultParameters()
	params.MaxStatsOrders = 2
	svc := NewCartonizerService(testCatalog(), WithParameters(params))

	order := model.Order{ID: "m", Items: []model.Item{
		{ID: "a", Name: "widget", Length: 10, Width: 10, Height: 10, Weight: 5, Quantity: 1},
	}}

	stats := svc.BoxOrderStats([]model.Order{order, order, order, order})
	total := 0
	for _, stat := range stats {
		total += stat.OrderCount
	}
	assert.Equal(t, 2, total)
}
