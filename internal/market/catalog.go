package market

// AddMCP assigns m a fresh id and appends it to the catalog.
func (s *State) AddMCP(m MCP) MCP {
	m.ID = "mcp-" + s.ids.NewID()
	s.store.AddMCP(m)
	s.log.Debug().Str("mcp_id", m.ID).Msg("mcp added")
	return m
}

func (s *State) UpdateMCP(m MCP) bool {
	ok := s.store.UpdateMCP(m)
	s.log.Debug().Str("mcp_id", m.ID).Bool("found", ok).Msg("mcp updated")
	return ok
}

func (s *State) DeleteMCP(id string) bool {
	ok := s.store.DeleteMCP(id)
	s.log.Debug().Str("mcp_id", id).Bool("found", ok).Msg("mcp deleted")
	return ok
}

// AddJob assigns j a fresh id and appends it to the job board.
func (s *State) AddJob(j Job) Job {
	j.ID = "job-" + s.ids.NewID()
	s.store.AddJob(j)
	s.log.Debug().Str("job_id", j.ID).Msg("job added")
	return j
}

func (s *State) UpdateJob(j Job) bool {
	ok := s.store.UpdateJob(j)
	s.log.Debug().Str("job_id", j.ID).Bool("found", ok).Msg("job updated")
	return ok
}

func (s *State) DeleteJob(id string) bool {
	ok := s.store.DeleteJob(id)
	s.log.Debug().Str("job_id", id).Bool("found", ok).Msg("job deleted")
	return ok
}
