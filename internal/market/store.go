package market

import "strings"

// Store holds every collection of the marketplace. It performs no role
// checks; callers decide who may mutate what.
type Store struct {
	templates []Template
	users     []User
	mcps      []MCP
	jobs      []Job
}

func NewStore(seed Seed) *Store {
	s := &Store{}
	s.templates = append(s.templates, seed.Templates...)
	s.users = append(s.users, seed.Users...)
	s.mcps = append(s.mcps, seed.MCPs...)
	s.jobs = append(s.jobs, seed.Jobs...)
	return s
}

// Templates

// Templates returns a copy of the template collection, newest first.
func (s *Store) Templates() []Template {
	return append([]Template(nil), s.templates...)
}

func (s *Store) Template(id string) (Template, bool) {
	if i := s.templateIndex(id); i >= 0 {
		return s.templates[i], true
	}
	return Template{}, false
}

// PrependTemplate inserts t at the head of the collection.
func (s *Store) PrependTemplate(t Template) {
	s.templates = append([]Template{t}, s.templates...)
}

// Pending returns the moderation queue in collection order.
func (s *Store) Pending() []Template {
	var out []Template
	for _, t := range s.templates {
		if t.Status == StatusPending {
			out = append(out, t)
		}
	}
	return out
}

// TemplatesBy returns every template authored by userID, whatever its status.
func (s *Store) TemplatesBy(userID string) []Template {
	var out []Template
	for _, t := range s.templates {
		if t.AuthorID == userID {
			out = append(out, t)
		}
	}
	return out
}

// Approve marks the template approved. It reports false for an unknown id.
func (s *Store) Approve(id string) bool {
	i := s.templateIndex(id)
	if i < 0 {
		return false
	}
	s.templates[i].Status = StatusApproved
	return true
}

// Reject marks the template rejected and records the reviewer's comment.
func (s *Store) Reject(id, comment string) bool {
	i := s.templateIndex(id)
	if i < 0 {
		return false
	}
	s.templates[i].Status = StatusRejected
	s.templates[i].AdminComment = comment
	return true
}

// Delete removes the template whatever its status.
func (s *Store) Delete(id string) bool {
	i := s.templateIndex(id)
	if i < 0 {
		return false
	}
	s.templates = append(s.templates[:i:i], s.templates[i+1:]...)
	return true
}

func (s *Store) templateIndex(id string) int {
	for i, t := range s.templates {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Users

func (s *Store) Users() []User {
	return append([]User(nil), s.users...)
}

func (s *Store) User(id string) (User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// UserByEmail matches email case-insensitively.
func (s *Store) UserByEmail(email string) (User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return User{}, false
}

// FirstWithRole returns the first user, in collection order, holding role.
func (s *Store) FirstWithRole(role Role) (User, bool) {
	for _, u := range s.users {
		if u.Role == role {
			return u, true
		}
	}
	return User{}, false
}

func (s *Store) AddUser(u User) {
	s.users = append(s.users, u)
}

// UpdateUser replaces the user with the same id.
func (s *Store) UpdateUser(u User) bool {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			return true
		}
	}
	return false
}

// MCPs

func (s *Store) MCPs() []MCP {
	return append([]MCP(nil), s.mcps...)
}

func (s *Store) MCP(id string) (MCP, bool) {
	for _, m := range s.mcps {
		if m.ID == id {
			return m, true
		}
	}
	return MCP{}, false
}

func (s *Store) AddMCP(m MCP) {
	s.mcps = append(s.mcps, m)
}

func (s *Store) UpdateMCP(m MCP) bool {
	for i := range s.mcps {
		if s.mcps[i].ID == m.ID {
			s.mcps[i] = m
			return true
		}
	}
	return false
}

func (s *Store) DeleteMCP(id string) bool {
	for i := range s.mcps {
		if s.mcps[i].ID == id {
			s.mcps = append(s.mcps[:i:i], s.mcps[i+1:]...)
			return true
		}
	}
	return false
}

// Jobs

func (s *Store) Jobs() []Job {
	return append([]Job(nil), s.jobs...)
}

func (s *Store) Job(id string) (Job, bool) {
	for _, j := range s.jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

func (s *Store) AddJob(j Job) {
	s.jobs = append(s.jobs, j)
}

func (s *Store) UpdateJob(j Job) bool {
	for i := range s.jobs {
		if s.jobs[i].ID == j.ID {
			s.jobs[i] = j
			return true
		}
	}
	return false
}

func (s *Store) DeleteJob(id string) bool {
	for i := range s.jobs {
		if s.jobs[i].ID == id {
			s.jobs = append(s.jobs[:i:i], s.jobs[i+1:]...)
			return true
		}
	}
	return false
}
