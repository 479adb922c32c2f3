package service

import (
	"go.uber.org/zap"
)

// DefaultTravelMinutes is assumed between two distinct locations when no
// travel-time edge has been configured.
const DefaultTravelMinutes = 15

type travelEdgeSource interface {
	TravelMinutes(locA, locB string) (int, bool)
}

// TravelService resolves commute minutes between two locations. Lookups are
// symmetric: edges are undirected and the fallback does not depend on
// argument order.
type TravelService struct {
	edges          travelEdgeSource
	defaultMinutes int
	logger         *zap.Logger
}

// NewTravelService builds the resolver. A non-positive defaultMinutes falls
// back to DefaultTravelMinutes.
func NewTravelService(edges travelEdgeSource, defaultMinutes int, logger *zap.Logger) *TravelService {
	if defaultMinutes <= 0 {
		defaultMinutes = DefaultTravelMinutes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TravelService{edges: edges, defaultMinutes: defaultMinutes, logger: logger}
}

// GetTravelTime returns commute minutes between two locations: zero for the
// same location, the configured edge when one exists, the default otherwise.
func (s *TravelService) GetTravelTime(locA, locB string) int {
	if locA == locB {
		return 0
	}
	if minutes, ok := s.edges.TravelMinutes(locA, locB); ok {
		return minutes
	}
	return s.defaultMinutes
}
