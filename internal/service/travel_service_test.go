package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubEdges map[string]int

func edgeKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

func (s stubEdges) TravelMinutes(locA, locB string) (int, bool) {
	minutes, ok := s[edgeKey(locA, locB)]
	return minutes, ok
}

func TestTravelServiceSameLocationIsZero(t *testing.T) {
	travel := NewTravelService(stubEdges{edgeKey("loc-1", "loc-1"): 40}, 0, zap.NewNop())
	assert.Equal(t, 0, travel.GetTravelTime("loc-1", "loc-1"))
}

func TestTravelServiceUsesConfiguredEdge(t *testing.T) {
	travel := NewTravelService(stubEdges{edgeKey("loc-1", "loc-2"): 25}, 0, zap.NewNop())
	assert.Equal(t, 25, travel.GetTravelTime("loc-1", "loc-2"))
	assert.Equal(t, 25, travel.GetTravelTime("loc-2", "loc-1"))
}

func TestTravelServiceDefaultsWithoutEdge(t *testing.T) {
	travel := NewTravelService(stubEdges{}, 0, zap.NewNop())
	assert.Equal(t, DefaultTravelMinutes, travel.GetTravelTime("loc-1", "loc-2"))
	assert.Equal(t, travel.GetTravelTime("loc-2", "loc-1"), travel.GetTravelTime("loc-1", "loc-2"))
}

func TestTravelServiceCustomDefault(t *testing.T) {
	travel := NewTravelService(stubEdges{}, 30, zap.NewNop())
	assert.Equal(t, 30, travel.GetTravelTime("a", "b"))
}
