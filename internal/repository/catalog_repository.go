package repository

import (
	"sync"

	"github.com/nwhitfield/weekplan-api/internal/models"
)

// CatalogRepository holds the read-only planner inputs owned by the
// import/entry collaborator: activities, locations and travel-time edges.
// Collections are replaced wholesale and handed out as copies, so readers
// never observe a partial update.
type CatalogRepository struct {
	mu         sync.RWMutex
	activities []models.Activity
	locations  []models.Location
	edges      []models.TravelTimeEdge
	travel     map[travelKey]int
	version    uint64
}

type travelKey struct {
	a, b string
}

func newTravelKey(locA, locB string) travelKey {
	if locB < locA {
		locA, locB = locB, locA
	}
	return travelKey{a: locA, b: locB}
}

// NewCatalogRepository constructs an empty catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{travel: make(map[travelKey]int)}
}

// ReplaceActivities swaps in a new activity collection.
func (r *CatalogRepository) ReplaceActivities(activities []models.Activity) {
	next := make([]models.Activity, len(activities))
	copy(next, activities)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = next
	r.version++
}

// ReplaceLocations swaps in a new location collection.
func (r *CatalogRepository) ReplaceLocations(locations []models.Location) {
	next := make([]models.Location, len(locations))
	copy(next, locations)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = next
	r.version++
}

// ReplaceTravelTimes swaps in a new edge collection. Edges are undirected and
// unique per unordered pair; when duplicates arrive the first entry wins.
func (r *CatalogRepository) ReplaceTravelTimes(edges []models.TravelTimeEdge) {
	next := make([]models.TravelTimeEdge, 0, len(edges))
	lookup := make(map[travelKey]int, len(edges))
	for _, e := range edges {
		key := newTravelKey(e.LocationA, e.LocationB)
		if _, exists := lookup[key]; exists {
			continue
		}
		lookup[key] = e.Minutes
		next = append(next, e)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.edges = next
	r.travel = lookup
	r.version++
}

// Activities returns a copy of the current activity collection.
func (r *CatalogRepository) Activities() []models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Activity, len(r.activities))
	copy(out, r.activities)
	return out
}

// ActivityByID finds one activity by id.
func (r *CatalogRepository) ActivityByID(id string) (models.Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

// Locations returns a copy of the current location collection.
func (r *CatalogRepository) Locations() []models.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Location, len(r.locations))
	copy(out, r.locations)
	return out
}

// LocationByID finds one location by id.
func (r *CatalogRepository) LocationByID(id string) (models.Location, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.locations {
		if l.ID == id {
			return l, true
		}
	}
	return models.Location{}, false
}

// TravelTimes returns a copy of the current edge collection.
func (r *CatalogRepository) TravelTimes() []models.TravelTimeEdge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.TravelTimeEdge, len(r.edges))
	copy(out, r.edges)
	return out
}

// TravelMinutes resolves the stored edge for an unordered location pair.
func (r *CatalogRepository) TravelMinutes(locA, locB string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	minutes, ok := r.travel[newTravelKey(locA, locB)]
	return minutes, ok
}

// Version increases on every replacement; used to key memoized results.
func (r *CatalogRepository) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
