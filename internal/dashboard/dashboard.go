// Package dashboard aggregates the admin dashboard statistics from the
// upstream list endpoints; the upstream has no aggregation endpoint of its own.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"talentboard/internal/api"
	"talentboard/internal/domain/candidate"
	"talentboard/internal/domain/customer"
	"talentboard/internal/domain/nominee"
	"talentboard/internal/domain/project"
	"talentboard/internal/session"
)

const (
	listPageSize = 100

	// maxCandidatePages bounds the candidate paging walk.
	maxCandidatePages = 5

	// maxNomineeProjects bounds the per-project nominee fan-out.
	maxNomineeProjects = 10

	recentLimit    = 5
	topCustomers   = 10
	trendingMonths = 6
)

type Client interface {
	ListCandidates(ctx context.Context, sess *session.Session, page, pageSize int) ([]candidate.Candidate, api.Pagination, error)
	ListCustomers(ctx context.Context, sess *session.Session, page, pageSize int) ([]customer.Customer, api.Pagination, error)
	ListProjects(ctx context.Context, sess *session.Session, page, pageSize int) ([]project.Project, api.Pagination, error)
	ListNomineesByProject(ctx context.Context, sess *session.Session, projectID, page, pageSize int) ([]nominee.Nominee, api.Pagination, error)
}

type CustomerProjects struct {
	CustomerName string `json:"customer_name"`
	ProjectCount int    `json:"project_count"`
}

type MonthlyTrend struct {
	Month      string `json:"month"`
	Candidates int    `json:"candidates"`
	Projects   int    `json:"projects"`
	Placements int    `json:"placements"`
}

type RecentActivity struct {
	Candidates []candidate.Candidate `json:"candidates"`
	Projects   []project.Project     `json:"projects"`
	Nominees   []nominee.Nominee     `json:"nominees"`
}

type Stats struct {
	TotalCandidates       int                    `json:"total_candidates"`
	TotalCustomers        int                    `json:"total_customers"`
	TotalProjects         int                    `json:"total_projects"`
	TotalNominees         int                    `json:"total_nominees"`
	ActiveProjects        int                    `json:"active_projects"`
	CompletedProjects     int                    `json:"completed_projects"`
	OnHoldProjects        int                    `json:"on_hold_projects"`
	CandidatesByExpertise map[string]int         `json:"candidates_by_expertise"`
	ProjectsByStatus      map[project.Status]int `json:"projects_by_status"`
	NomineesByStatus      map[nominee.Status]int `json:"nominees_by_status"`
	ProjectsByCustomer    []CustomerProjects     `json:"projects_by_customer"`
	RecentActivity        RecentActivity         `json:"recent_activity"`
	MonthlyTrends         []MonthlyTrend         `json:"monthly_trends"`
}

type Service struct {
	client Client
	logger zerolog.Logger

	clock func() time.Time
}

func NewService(client Client, logger zerolog.Logger) *Service {
	return &Service{client: client, logger: logger, clock: time.Now}
}

// Stats fetches candidates, customers and projects concurrently, then the
// nominees of the first projects, and folds everything into one snapshot.
// Individual fetch failures degrade to empty sections; the aggregation only
// fails when nothing could be loaded.
func (s *Service) Stats(ctx context.Context, sess *session.Session) (*Stats, error) {
	var (
		candidates     []candidate.Candidate
		candidateTotal int
		customers      []customer.Customer
		customerTotal  int
		projects       []project.Project
		projectTotal   int
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		candidates, candidateTotal, err = s.fetchCandidates(gctx, sess)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard: candidates fetch failed")
		}
		return nil
	})
	group.Go(func() error {
		listed, pagination, err := s.client.ListCustomers(gctx, sess, 1, listPageSize)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard: customers fetch failed")
			return nil
		}
		customers = listed
		customerTotal = totalOf(pagination, len(listed))
		return nil
	})
	group.Go(func() error {
		listed, pagination, err := s.client.ListProjects(gctx, sess, 1, listPageSize)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard: projects fetch failed")
			return nil
		}
		projects = listed
		projectTotal = totalOf(pagination, len(listed))
		return nil
	})
	_ = group.Wait()

	if candidates == nil && customers == nil && projects == nil {
		return nil, fmt.Errorf("dashboard: all list fetches failed")
	}

	nominees := s.fetchNominees(ctx, sess, projects)

	stats := &Stats{
		TotalCandidates:       candidateTotal,
		TotalCustomers:        customerTotal,
		TotalProjects:         projectTotal,
		TotalNominees:         len(nominees),
		CandidatesByExpertise: map[string]int{},
		ProjectsByStatus:      map[project.Status]int{},
		NomineesByStatus:      map[nominee.Status]int{},
	}

	for _, status := range project.AllStatuses {
		stats.ProjectsByStatus[status] = 0
	}
	for _, item := range projects {
		stats.ProjectsByStatus[item.Status]++
		if item.Status.Active() {
			stats.ActiveProjects++
		}
	}
	stats.CompletedProjects = stats.ProjectsByStatus[project.StatusCompleted]
	stats.OnHoldProjects = stats.ProjectsByStatus[project.StatusOnHold] + stats.ProjectsByStatus[project.StatusCancelled]

	for _, status := range nominee.AllStatuses {
		stats.NomineesByStatus[status] = 0
	}
	for _, item := range nominees {
		stats.NomineesByStatus[item.Status]++
	}

	for _, item := range candidates {
		name := item.ExpertiseName
		if name == "" {
			name = "Unknown"
		}
		stats.CandidatesByExpertise[name]++
	}

	stats.ProjectsByCustomer = projectsByCustomer(projects, customers)
	stats.RecentActivity = RecentActivity{
		Candidates: recentCandidates(candidates),
		Projects:   recentProjects(projects),
		Nominees:   recentNominees(nominees),
	}
	stats.MonthlyTrends = s.monthlyTrends(candidates, projects, nominees)

	return stats, nil
}

// fetchCandidates walks up to maxCandidatePages pages so expertise grouping
// sees more than the first page.
func (s *Service) fetchCandidates(ctx context.Context, sess *session.Session) ([]candidate.Candidate, int, error) {
	first, pagination, err := s.client.ListCandidates(ctx, sess, 1, listPageSize)
	if err != nil {
		return nil, 0, err
	}
	all := first
	pages := pagination.TotalPages
	if pages > maxCandidatePages {
		pages = maxCandidatePages
	}
	for page := 2; page <= pages; page++ {
		listed, _, err := s.client.ListCandidates(ctx, sess, page, listPageSize)
		if err != nil {
			s.logger.Warn().Err(err).Int("page", page).Msg("dashboard: candidate page fetch failed")
			break
		}
		all = append(all, listed...)
	}
	return all, totalOf(pagination, len(all)), nil
}

// fetchNominees fans out over the first projects; a failing project just
// contributes nothing.
func (s *Service) fetchNominees(ctx context.Context, sess *session.Session, projects []project.Project) []nominee.Nominee {
	limit := len(projects)
	if limit > maxNomineeProjects {
		limit = maxNomineeProjects
	}

	var mu sync.Mutex
	var all []nominee.Nominee
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(lookupLimit(limit))
	for _, item := range projects[:limit] {
		group.Go(func() error {
			listed, _, err := s.client.ListNomineesByProject(gctx, sess, item.ProjectID, 1, listPageSize)
			if err != nil {
				s.logger.Warn().Err(err).Int("project_id", item.ProjectID).Msg("dashboard: nominee fetch failed")
				return nil
			}
			mu.Lock()
			all = append(all, listed...)
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait()
	return all
}

func lookupLimit(n int) int {
	if n < 1 {
		return 1
	}
	if n > 4 {
		return 4
	}
	return n
}

func totalOf(pagination api.Pagination, fallback int) int {
	if pagination.Total > 0 {
		return pagination.Total
	}
	return fallback
}

func projectsByCustomer(projects []project.Project, customers []customer.Customer) []CustomerProjects {
	counts := make(map[int]int)
	for _, item := range projects {
		counts[item.CustomerID]++
	}
	ranked := make([]CustomerProjects, 0, len(customers))
	for _, item := range customers {
		if counts[item.CustomerID] == 0 {
			continue
		}
		ranked = append(ranked, CustomerProjects{CustomerName: item.Name, ProjectCount: counts[item.CustomerID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ProjectCount > ranked[j].ProjectCount
	})
	if len(ranked) > topCustomers {
		ranked = ranked[:topCustomers]
	}
	return ranked
}

func recentCandidates(items []candidate.Candidate) []candidate.Candidate {
	sorted := make([]candidate.Candidate, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

func recentProjects(items []project.Project) []project.Project {
	sorted := make([]project.Project, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

func recentNominees(items []nominee.Nominee) []nominee.Nominee {
	sorted := make([]nominee.Nominee, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}
	return sorted
}

// monthlyTrends groups creations over the trailing six months. Placements
// count nominees whose contract was signed, bucketed by last update.
func (s *Service) monthlyTrends(candidates []candidate.Candidate, projects []project.Project, nominees []nominee.Nominee) []MonthlyTrend {
	now := s.clock().UTC()
	// Anchor on the first of the month: AddDate on the 29th-31st would
	// normalize into the wrong month and collide buckets.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	trends := make([]MonthlyTrend, trendingMonths)
	index := make(map[string]int, trendingMonths)
	for i := 0; i < trendingMonths; i++ {
		month := anchor.AddDate(0, i-trendingMonths+1, 0)
		key := month.Format("2006-01")
		trends[i] = MonthlyTrend{Month: fmt.Sprintf("T%d", int(month.Month()))}
		index[key] = i
	}

	for _, item := range candidates {
		if i, ok := index[item.CreatedAt.UTC().Format("2006-01")]; ok {
			trends[i].Candidates++
		}
	}
	for _, item := range projects {
		if i, ok := index[item.CreatedAt.UTC().Format("2006-01")]; ok {
			trends[i].Projects++
		}
	}
	for _, item := range nominees {
		if item.Status != nominee.StatusContracted {
			continue
		}
		if i, ok := index[item.UpdatedAt.UTC().Format("2006-01")]; ok {
			trends[i].Placements++
		}
	}
	return trends
}
