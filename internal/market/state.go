package market

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	featuredMCPLimit = 5
	featuredJobLimit = 4
)

type Options struct {
	Seed     *Seed
	IDs      IDGenerator
	Clock    func() time.Time
	Injector Injector
	Logger   *zerolog.Logger
}

// State is the whole application state of one browser session: the entity
// store, the signed-in user, the router and the analytics configuration.
// Every mutation goes through its methods or through Store.
type State struct {
	store     *Store
	router    Router
	analytics *Analytics

	currentUserID string

	ids   IDGenerator
	clock func() time.Time
	log   zerolog.Logger
}

func NewState(opts Options) *State {
	seed := DefaultSeed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	s := &State{
		store:     NewStore(seed),
		router:    NewRouter(),
		analytics: NewAnalytics(opts.Injector),
		ids:       opts.IDs,
		clock:     opts.Clock,
		log:       zerolog.Nop(),
	}
	if s.ids == nil {
		s.ids = UUIDGenerator{}
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "market").Logger()
	}
	return s
}

func (s *State) Store() *Store {
	return s.store
}

func (s *State) Router() *Router {
	return &s.router
}

func (s *State) Analytics() *Analytics {
	return s.analytics
}

// ConfigureAnalytics sets the measurement id from the admin screen.
func (s *State) ConfigureAnalytics(id string) {
	if s.analytics.Configure(id) {
		s.log.Info().Str("measurement_id", s.analytics.ID()).Msg("analytics injected")
	}
}

// CurrentView is the view to render after the routing guard.
func (s *State) CurrentView() View {
	var u *User
	if cur, ok := s.CurrentUser(); ok {
		u = &cur
	}
	return Resolve(s.router.Requested(), u, s.detail())
}

func (s *State) Navigate(v View) {
	s.router.Navigate(v)
}

// DashboardView routes to the dashboard matching the signed-in role.
func (s *State) DashboardView() {
	if u, ok := s.CurrentUser(); ok && u.IsAdmin() {
		s.router.Navigate(ViewAdmin)
		return
	}
	s.router.Navigate(ViewUser)
}

// Listing derives the public marketplace for query and category. It is
// recomputed on every call.
func (s *State) Listing(query, category string) Listing {
	return Filter(s.store.templates, query, category)
}

// OpenTemplate selects a template for the popup.
func (s *State) OpenTemplate(id string) bool {
	if _, ok := s.store.Template(id); !ok {
		return false
	}
	s.router.SelectTemplate(id)
	return true
}

// SelectedTemplate returns the template shown in the popup, if any.
func (s *State) SelectedTemplate() (Template, bool) {
	id := s.router.SelectedTemplate()
	if id == "" {
		return Template{}, false
	}
	return s.store.Template(id)
}

func (s *State) OpenMCP(id string) bool {
	m, ok := s.store.MCP(id)
	if !ok {
		return false
	}
	s.router.OpenDetail(m)
	return true
}

func (s *State) OpenJob(id string) bool {
	j, ok := s.store.Job(id)
	if !ok {
		return false
	}
	s.router.OpenDetail(j)
	return true
}

// SelectedMCP returns the live copy of the MCP on the detail page.
func (s *State) SelectedMCP() (MCP, bool) {
	d := s.router.Detail()
	if d == nil || d.DetailKind() != DetailMCP {
		return MCP{}, false
	}
	return s.store.MCP(d.DetailID())
}

// SelectedJob returns the live copy of the job on the detail page.
func (s *State) SelectedJob() (Job, bool) {
	d := s.router.Detail()
	if d == nil || d.DetailKind() != DetailJob {
		return Job{}, false
	}
	return s.store.Job(d.DetailID())
}

func (s *State) detail() DetailItem {
	if m, ok := s.SelectedMCP(); ok {
		return m
	}
	if j, ok := s.SelectedJob(); ok {
		return j
	}
	return nil
}

func (s *State) FeaturedMCPs() []MCP {
	return head(s.store.mcps, featuredMCPLimit)
}

func (s *State) FeaturedJobs() []Job {
	return head(s.store.jobs, featuredJobLimit)
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return append([]T(nil), items...)
}

type Stats struct {
	Pending   int
	Approved  int
	Templates int
	Users     int
	MCPs      int
	Jobs      int
}

// Stats counts the collections for the admin dashboard. Approved is the
// number of templates live in the marketplace.
func (s *State) Stats() Stats {
	approved := 0
	for _, t := range s.store.templates {
		if t.Public() {
			approved++
		}
	}
	return Stats{
		Pending:   len(s.store.Pending()),
		Approved:  approved,
		Templates: len(s.store.templates),
		Users:     len(s.store.users),
		MCPs:      len(s.store.mcps),
		Jobs:      len(s.store.jobs),
	}
}
