package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	resp "tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	mem "tripplanner/pkg/memcache"
	"tripplanner/pkg/utils"
)

const (
	dashboardWindow      = 30 * 24 * time.Hour
	dashboardTripLimit   = 5
	dashboardCitiesLimit = 6
)

// CacheInvalidator drops cached read views of an owner after their data changed.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, ownerId uuid.UUID)
}

type DashboardService interface {
	CacheInvalidator
	BuildDashboard(ctx context.Context, ownerId uuid.UUID) (*resp.DashboardResponse, error)
}

type DashboardConfig struct {
	CacheTTL time.Duration
	Now      mem.Clock
}

type dashboardService struct {
	repo  repositories.DashboardRepository
	cache mem.Cache[resp.DashboardResponse]
	ttl   time.Duration
	now   mem.Clock

	// generations counts invalidations per owner. A build only caches its result when no
	// invalidation happened while it was running.
	mu          sync.Mutex
	generations map[uuid.UUID]uint64
}

func NewDashboardService(repo repositories.DashboardRepository, cache mem.Cache[resp.DashboardResponse], cfg DashboardConfig) DashboardService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		repo:        repo,
		cache:       cache,
		ttl:         cfg.CacheTTL,
		now:         now,
		generations: map[uuid.UUID]uint64{},
	}
}

func dashboardKey(ownerId uuid.UUID) string {
	return "dashboard:" + ownerId.String()
}

func (s *dashboardService) generation(ownerId uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[ownerId]
}

func (s *dashboardService) Invalidate(ctx context.Context, ownerId uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[ownerId]++
	s.cache.Delete(ctx, dashboardKey(ownerId))
}

// store caches out unless the owner was invalidated since gen was read.
func (s *dashboardService) store(ctx context.Context, ownerId uuid.UUID, gen uint64, out resp.DashboardResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[ownerId] != gen {
		logrus.WithField("owner_id", ownerId).Debug("dashboard: invalidated during build, not cached")
		return
	}
	s.cache.Set(ctx, dashboardKey(ownerId), out, s.ttl)
}

// BuildDashboard never fails because of a single section: a failing query is logged, its
// section is left empty and named in Warnings. Responses with warnings are not cached.
func (s *dashboardService) BuildDashboard(ctx context.Context, ownerId uuid.UUID) (*resp.DashboardResponse, error) {
	key := dashboardKey(ownerId)
	gen := s.generation(ownerId)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return &cached, nil
	}

	now := s.now().UTC()
	today := utils.StartOfDay(now)
	out := resp.DashboardResponse{
		UpcomingTrips: []resp.TripSummary{},
		RecentTrips:   []resp.TripSummary{},
		PopularCities: []resp.PopularCity{},
		GeneratedAt:   utils.FormatRFC3339(now),
	}
	log := logrus.WithField("owner_id", ownerId)

	// ---------- Upcoming trips ----------
	upcoming, err := s.repo.UpcomingTrips(ctx, ownerId, today, today.Add(dashboardWindow), dashboardTripLimit)
	if err != nil {
		log.WithError(err).Warn("dashboard: upcoming trips unavailable")
		out.Warnings = append(out.Warnings, "upcomingTrips")
	}
	for _, t := range upcoming {
		out.UpcomingTrips = append(out.UpcomingTrips, toTripSummary(t))
	}

	// ---------- Recent trips ----------
	recent, err := s.repo.RecentTrips(ctx, ownerId, today.Add(-dashboardWindow), today, dashboardTripLimit)
	if err != nil {
		log.WithError(err).Warn("dashboard: recent trips unavailable")
		out.Warnings = append(out.Warnings, "recentTrips")
	}
	for _, t := range recent {
		out.RecentTrips = append(out.RecentTrips, toTripSummary(t))
	}

	// ---------- Popular cities ----------
	cities, err := s.repo.PopularCities(ctx, dashboardCitiesLimit)
	if err != nil {
		log.WithError(err).Warn("dashboard: popular cities unavailable")
		out.Warnings = append(out.Warnings, "popularCities")
	}
	for _, c := range cities {
		out.PopularCities = append(out.PopularCities, resp.PopularCity{
			ID:              c.ID,
			Name:            c.Name,
			Country:         c.Country,
			PopularityScore: c.PopularityScore,
			ImageURL:        c.ImageURL,
		})
	}

	// ---------- Budget stats ----------
	if stats, err := s.budgetStats(ctx, ownerId); err != nil {
		log.WithError(err).Warn("dashboard: budget stats unavailable")
		out.Warnings = append(out.Warnings, "budgetStats")
	} else {
		out.BudgetStats = stats
	}

	if len(out.Warnings) == 0 && s.ttl > 0 {
		s.store(ctx, ownerId, gen, out)
	}
	return &out, nil
}

func (s *dashboardService) budgetStats(ctx context.Context, ownerId uuid.UUID) (*resp.BudgetStats, error) {
	totals, err := s.repo.BudgetTotals(ctx, ownerId)
	if err != nil {
		return nil, err
	}
	visited, err := s.repo.CountVisitedCities(ctx, ownerId)
	if err != nil {
		return nil, err
	}

	stats := &resp.BudgetStats{
		TotalBudget:   totals.TotalBudget,
		TripCount:     totals.TripCount,
		CitiesVisited: visited,
	}
	if totals.TripCount > 0 {
		stats.AveragePerTrip = totals.TotalBudget / float64(totals.TripCount)
	}
	return stats, nil
}
