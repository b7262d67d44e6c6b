package service

import (
	"sort"

	"github.com/shipper1953/carton-service/internal/domain/model"
)

// BoxOrderStats scans recent orders and counts, per catalog box, how many
// would select it as their optimal single box. Orders beyond the configured
// cap are ignored, as are orders whose items are invalid or that no box can
// hold; a malformed historical order never aborts the scan. Every catalog
// box appears in the output, including boxes no order selected.
func (s *CartonizerService) BoxOrderStats(orders []model.Order) []model.BoxUsageStat {
	if len(orders) > s.params.MaxStatsOrders {
		orders = orders[:s.params.MaxStatsOrders]
	}

	counts := make(map[string]int, len(s.boxes))
	for _, order := range orders {
		result, err := s.CalculateOptimalBox(order.Items)
		if err != nil || result == nil {
			continue
		}
		counts[result.RecommendedBox.ID]++
	}

	stats := make([]model.BoxUsageStat, 0, len(s.boxes))
	for _, box := range s.boxes {
		stats = append(stats, model.BoxUsageStat{
			Box:        box,
			OrderCount: counts[box.ID],
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].OrderCount != stats[j].OrderCount {
			return stats[i].OrderCount > stats[j].OrderCount
		}
		return stats[i].Box.Name < stats[j].Box.Name
	})
	return stats
}
