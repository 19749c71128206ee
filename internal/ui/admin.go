package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/forms"
	"github.com/terrabrand/Prompt101/internal/market"
)

type adminTab string

const (
	tabOverview  adminTab = "overview"
	tabAnalytics adminTab = "analytics"
	tabUsers     adminTab = "users"
	tabMCPs      adminTab = "mcps"
	tabJobs      adminTab = "jobs"
)

var adminTabs = []struct {
	tab   adminTab
	label string
}{
	{tabOverview, "System_Overview"},
	{tabAnalytics, "Visitor_Analytics"},
	{tabUsers, "User_Database"},
	{tabMCPs, "Manage_MCPs"},
	{tabJobs, "Manage_Jobs"},
}

func (s *Shell) renderAdmin() app.UI {
	var body app.UI
	switch s.adminTab {
	case tabAnalytics:
		body = s.renderAdminAnalytics()
	case tabUsers:
		body = s.renderAdminUsers()
	case tabMCPs:
		body = s.renderAdminMCPs()
	case tabJobs:
		body = s.renderAdminJobs()
	default:
		body = s.renderAdminOverview()
	}

	return app.Div().Class("admin").Body(
		app.Aside().Class("sidebar").Body(
			app.Range(adminTabs).Slice(func(i int) app.UI {
				t := adminTabs[i]
				return app.Button().
					Class(active(s.adminTab == t.tab, "sidebar-item")).
					OnClick(func(ctx app.Context, e app.Event) { s.adminTab = t.tab }).
					Text(t.label)
			}),
		),
		app.Div().Class("admin-body").Body(body),
	)
}

func pageHead(title, subtitle string) app.UI {
	return app.Div().Class("page-head").Body(
		app.H1().Text(title),
		app.P().Class("muted").Text("> "+subtitle),
	)
}

// Overview

func (s *Shell) renderAdminOverview() app.UI {
	pending := s.state.Store().Pending()
	stats := s.state.Stats()

	return app.Div().Body(
		pageHead("Overview_Protocol", "Review incoming data streams and submissions."),
		app.Div().Class("stats").Body(
			statTile("Pending_Tasks", stats.Pending),
			statTile("Total Users", stats.Users),
			statTile("MCPs", stats.MCPs),
			statTile("Jobs", stats.Jobs),
		),
		app.If(len(pending) == 0, func() app.UI {
			return app.Div().Class("empty").Text("Queue Empty // System Idle")
		}).Else(func() app.UI {
			return app.Div().Class("queue").Body(
				app.Range(pending).Slice(func(i int) app.UI {
					return s.renderPendingItem(pending[i])
				}),
			)
		}),
	)
}

func statTile(label string, n int) app.UI {
	return app.Div().Class("stat").Body(
		app.Span().Class("stat-value").Text(count(n)),
		app.Span().Class("stat-label").Text(label),
	)
}

func (s *Shell) renderPendingItem(t market.Template) app.UI {
	id := t.ID
	return app.Div().Class("queue-item").Body(
		app.Div().Class("queue-main").Body(
			app.Div().Class("card-meta").Body(
				app.Span().Class("tag").Text(string(t.Category)),
				app.Span().Class("muted").Text("USER_ID: "+t.AuthorID),
			),
			app.H3().Text(t.Title),
			app.P().Class("muted").Text(t.Description),
			app.Pre().Class("prompt-text").Text(t.Content),
		),
		app.Div().Class("queue-actions").Body(
			app.If(s.reject.Active(id), func() app.UI {
				return app.Div().Class("reject").Body(
					app.Label().Text("Rejection_Reason"),
					app.Textarea().
						Placeholder("// Enter reason...").
						Text(s.reject.Comment).
						OnInput(bind(&s.reject.Comment)),
					app.Div().Class("form-actions").Body(
						app.Button().
							Class("btn btn-danger").
							Disabled(!s.reject.CanCommit()).
							OnClick(s.commitReject).
							Text("Commit"),
						app.Button().
							Class("btn btn-ghost").
							OnClick(func(ctx app.Context, e app.Event) { s.reject.Cancel() }).
							Text("Abort"),
					),
				)
			}).Else(func() app.UI {
				return app.Div().Class("stack").Body(
					app.Button().Class("btn btn-neon").OnClick(s.approve(id)).Text("Authorize"),
					app.Button().
						Class("btn btn-ghost").
						OnClick(func(ctx app.Context, e app.Event) { s.reject.Open(id) }).
						Text("Deny"),
				)
			}),
			app.Button().Class("link link-danger").OnClick(s.purge(id)).Text("Purge"),
		),
	)
}

func (s *Shell) approve(id string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.state.Approve(id)
	}
}

func (s *Shell) commitReject(ctx app.Context, e app.Event) {
	if !s.reject.CanCommit() {
		return
	}
	s.state.Reject(s.reject.TargetID, s.reject.Comment)
	s.reject.Cancel()
}

func (s *Shell) purge(id string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.state.Delete(id)
		if s.reject.Active(id) {
			s.reject.Cancel()
		}
	}
}

// Analytics

func (s *Shell) renderAdminAnalytics() app.UI {
	configured := s.state.Analytics().ID() != ""
	label := "Initialize_Tracking"
	if configured {
		label = "Update_ID"
	}
	stats := s.state.Stats()

	return app.Div().Body(
		pageHead("Traffic_Surveillance", "Monitor network activity and user engagement."),
		app.Div().Class("panel").Body(
			app.H3().Text("Configuration"),
			field("Google Analytics Measurement ID", "",
				app.Input().Type("text").Placeholder("G-XXXXXXXXXX").Value(s.gaInput).OnInput(bind(&s.gaInput)),
			),
			app.Button().Class("btn btn-ghost btn-block").OnClick(s.saveAnalytics).Text(label),
			app.If(configured, func() app.UI {
				return app.P().Class("notice").Text("System Active: Data stream established.")
			}),
		),
		app.Div().Class("panel").Body(
			app.H3().Text("Quick Stats"),
			app.Dl().Body(
				app.Dt().Text("Total Users"), app.Dd().Text(count(stats.Users)),
				app.Dt().Text("Active Templates"), app.Dd().Text(count(stats.Approved)),
				app.Dt().Text("Pending Review"), app.Dd().Text(count(stats.Pending)),
			),
		),
	)
}

func (s *Shell) saveAnalytics(ctx app.Context, e app.Event) {
	s.state.ConfigureAnalytics(s.gaInput)
}

// Users

func (s *Shell) renderAdminUsers() app.UI {
	users := s.state.Store().Users()
	return app.Div().Body(
		pageHead("User_Registry", "Registered identities on the network."),
		app.Table().Class("table").Body(
			app.THead().Body(
				app.Tr().Body(
					app.Th().Text("Identity"),
					app.Th().Text("Role"),
					app.Th().Text("Email"),
				),
			),
			app.TBody().Body(
				app.Range(users).Slice(func(i int) app.UI {
					u := users[i]
					return app.Tr().Body(
						app.Td().Body(
							app.Span().Class("avatar avatar-sm").Text(initial(u.Name)),
							app.Text(u.Name),
						),
						app.Td().Body(app.Span().Class("badge").Text(string(u.Role))),
						app.Td().Text(u.Email),
					)
				}),
			),
		),
	)
}

// MCPs

func (s *Shell) renderAdminMCPs() app.UI {
	f := &s.mcpForm
	mcps := s.state.Store().MCPs()
	title, submit := "Add_New_MCP", "Deploy_MCP"
	if f.Editing() {
		title, submit = "Edit_MCP", "Update_MCP"
	}

	return app.Div().Body(
		pageHead("Manage_MCPs", "Curate the featured protocol registry."),
		app.Div().Class("panel form").Body(
			app.Div().Class("panel-head").Body(
				app.H3().Text(title),
				app.If(f.Editing(), func() app.UI {
					return app.Button().Class("link").OnClick(s.cancelMCP).Text("Cancel_Edit")
				}),
			),
			field("MCP Name", s.mcpErrors.Get("Name"),
				app.Input().Type("text").Value(f.Name).OnInput(bind(&f.Name)),
			),
			field("Image URL", s.mcpErrors.Get("Image"),
				app.Input().Type("url").Placeholder("https://...").Value(f.Image).OnInput(bind(&f.Image)),
			),
			field("Short Description", s.mcpErrors.Get("Description"),
				app.Input().Type("text").Value(f.Description).OnInput(bind(&f.Description)),
			),
			field("Full Content / Details (Markdown)", "",
				app.Textarea().Rows(6).Text(f.Content).OnInput(bind(&f.Content)),
			),
			app.Button().Class("btn btn-neon btn-block").OnClick(s.saveMCP).Text(submit),
		),
		app.Div().Class("list").Body(
			app.Range(mcps).Slice(func(i int) app.UI {
				m := mcps[i]
				return app.Div().Class("list-item").Body(
					s.renderLogo(m.Image, m.Name, m.Logo),
					app.Div().Class("row-text").Body(
						app.Span().Class("row-title").Text(m.Name),
						app.Span().Class("row-sub").Text(m.Description),
					),
					app.Button().Class("btn-icon").OnClick(s.editMCP(m)).Text("Edit"),
					app.Button().Class("btn-icon link-danger").OnClick(s.deleteMCP(m.ID)).Text("Delete"),
				)
			}),
		),
	)
}

func (s *Shell) saveMCP(ctx app.Context, e app.Event) {
	s.mcpErrors = s.mcpForm.Validate()
	if !s.mcpErrors.Valid() {
		return
	}
	if s.mcpForm.Editing() {
		s.state.UpdateMCP(s.mcpForm.MCP())
	} else {
		s.state.AddMCP(s.mcpForm.MCP())
	}
	s.mcpForm = forms.MCPForm{}
}

func (s *Shell) editMCP(m market.MCP) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.mcpForm = forms.FromMCP(m)
		s.mcpErrors = nil
	}
}

func (s *Shell) cancelMCP(ctx app.Context, e app.Event) {
	s.mcpForm = forms.MCPForm{}
	s.mcpErrors = nil
}

func (s *Shell) deleteMCP(id string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.state.DeleteMCP(id)
		if s.mcpForm.ID == id {
			s.mcpForm = forms.MCPForm{}
		}
	}
}

// Jobs

func (s *Shell) renderAdminJobs() app.UI {
	f := &s.jobForm
	jobs := s.state.Store().Jobs()
	types := market.WorkTypes()
	title, submit := "Post_New_Contract", "Publish_Contract"
	if f.Editing() {
		title, submit = "Edit_Contract", "Update_Contract"
	}

	return app.Div().Body(
		pageHead("Manage_Contracts", "Post and maintain open positions."),
		app.Div().Class("panel form").Body(
			app.Div().Class("panel-head").Body(
				app.H3().Text(title),
				app.If(f.Editing(), func() app.UI {
					return app.Button().Class("link").OnClick(s.cancelJob).Text("Cancel_Edit")
				}),
			),
			field("Job Title", s.jobErrors.Get("Title"),
				app.Input().Type("text").Value(f.Title).OnInput(bind(&f.Title)),
			),
			field("Company", s.jobErrors.Get("Company"),
				app.Input().Type("text").Value(f.Company).OnInput(bind(&f.Company)),
			),
			field("Location", "",
				app.Input().Type("text").Value(f.Location).OnInput(bind(&f.Location)),
			),
			field("Type", s.jobErrors.Get("Type"),
				app.Select().OnChange(bind(&f.Type)).Body(
					app.Range(types).Slice(func(i int) app.UI {
						w := string(types[i])
						return app.Option().Value(w).Selected(f.Type == w).Text(w)
					}),
				),
			),
			field("Salary Range [Optional]", "",
				app.Input().Type("text").Placeholder("$120k - $150k").Value(f.Salary).OnInput(bind(&f.Salary)),
			),
			field("External Apply Link [Optional]", s.jobErrors.Get("ApplyLink"),
				app.Input().Type("url").Placeholder("https://...").Value(f.ApplyLink).OnInput(bind(&f.ApplyLink)),
			),
			field("Short Description", "",
				app.Input().Type("text").Value(f.Description).OnInput(bind(&f.Description)),
			),
			field("Full Job Description (Markdown)", "",
				app.Textarea().Rows(6).Text(f.Content).OnInput(bind(&f.Content)),
			),
			app.Button().Class("btn btn-neon btn-block").OnClick(s.saveJob).Text(submit),
		),
		app.Div().Class("list").Body(
			app.Range(jobs).Slice(func(i int) app.UI {
				j := jobs[i]
				return app.Div().Class("list-item").Body(
					s.renderLogo("", j.Company, j.Logo),
					app.Div().Class("row-text").Body(
						app.Span().Class("row-title").Text(j.Title),
						app.Span().Class("row-sub").Text(j.Company+" · "+string(j.Type)),
					),
					app.Button().Class("btn-icon").OnClick(s.editJob(j)).Text("Edit"),
					app.Button().Class("btn-icon link-danger").OnClick(s.deleteJob(j.ID)).Text("Delete"),
				)
			}),
		),
	)
}

func (s *Shell) saveJob(ctx app.Context, e app.Event) {
	s.jobErrors = s.jobForm.Validate()
	if !s.jobErrors.Valid() {
		return
	}
	if s.jobForm.Editing() {
		s.state.UpdateJob(s.jobForm.Job())
	} else {
		s.state.AddJob(s.jobForm.Job())
	}
	s.jobForm = forms.NewJobForm()
}

func (s *Shell) editJob(j market.Job) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.jobForm = forms.FromJob(j)
		s.jobErrors = nil
	}
}

func (s *Shell) cancelJob(ctx app.Context, e app.Event) {
	s.jobForm = forms.NewJobForm()
	s.jobErrors = nil
}

func (s *Shell) deleteJob(id string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.state.DeleteJob(id)
		if s.jobForm.ID == id {
			s.jobForm = forms.NewJobForm()
		}
	}
}
