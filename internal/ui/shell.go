// Package ui renders the marketplace as a go-app component tree. Every
// screen is a render helper of Shell, which owns the transient UI state
// (search text, open dialogs, form drafts) and reads everything else from a
// *market.State on each render.
package ui

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/forms"
	"github.com/terrabrand/Prompt101/internal/market"
)

const (
	modalExitDelay = 300 * time.Millisecond
	copiedDuration = 2 * time.Second
)

type Shell struct {
	app.Compo

	state *market.State

	// Market filters
	query    string
	category string

	// Template popup
	templateOpen bool
	closeGen     int
	copied       bool
	copyGen      int

	// Create dialog
	createOpen   bool
	createForm   forms.TemplateForm
	createErrors forms.Errors

	// Auth screen
	auth       forms.AuthForm
	authErrors forms.Errors
	authError  string

	// Admin dashboard
	adminTab  adminTab
	reject    forms.RejectDraft
	gaInput   string
	mcpForm   forms.MCPForm
	mcpErrors forms.Errors
	jobForm   forms.JobForm
	jobErrors forms.Errors

	// User dashboard
	avatarInput string
	avatarDirty bool

	// Job detail
	applyNotice bool
}

// NewShell returns the root component bound to state.
func NewShell(state *market.State) *Shell {
	return &Shell{state: state}
}

func (s *Shell) OnInit() {
	s.category = market.CategoryAll
	s.adminTab = tabOverview
	s.createForm = forms.NewTemplateForm()
	s.jobForm = forms.NewJobForm()
	s.gaInput = s.state.Analytics().ID()
}

func (s *Shell) Render() app.UI {
	view := s.state.CurrentView()
	if view == market.ViewAuth {
		return s.renderAuth()
	}

	return app.Div().Class("shell").Body(
		s.renderHeader(view),
		app.Main().Class("container").Body(
			s.renderView(view),
		),
		s.renderFooter(),
		s.renderTemplateModal(),
		s.renderCreateModal(),
	)
}

func (s *Shell) renderView(view market.View) app.UI {
	switch view {
	case market.ViewDetailMCP:
		return s.renderMCPDetail()
	case market.ViewDetailJob:
		return s.renderJobDetail()
	case market.ViewAllMCPs:
		return s.renderAllMCPs()
	case market.ViewAllJobs:
		return s.renderAllJobs()
	case market.ViewAdmin:
		return s.renderAdmin()
	case market.ViewUser:
		return s.renderUserDashboard()
	default:
		return s.renderMarket()
	}
}

// Navigation

func (s *Shell) navigate(v market.View) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.state.Navigate(v)
		s.scrollTop()
	}
}

func (s *Shell) onDashboard(ctx app.Context, e app.Event) {
	s.state.DashboardView()
	s.scrollTop()
}

func (s *Shell) onLogout(ctx app.Context, e app.Event) {
	s.state.Logout()
	s.reject.Cancel()
	s.createOpen = false
	s.avatarInput = ""
	s.avatarDirty = false
}

func (s *Shell) onLoginClick(ctx app.Context, e app.Event) {
	s.authError = ""
	s.authErrors = nil
	s.state.Navigate(market.ViewAuth)
}

func (s *Shell) openMCP(id string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		if s.state.OpenMCP(id) {
			s.scrollTop()
		}
	}
}

func (s *Shell) openJob(id string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		if s.state.OpenJob(id) {
			s.applyNotice = false
			s.scrollTop()
		}
	}
}

func (s *Shell) scrollTop() {
	scrollToTop()
}

// Template popup

func (s *Shell) openTemplate(id string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.showTemplate(id)
	}
}

func (s *Shell) showTemplate(id string) bool {
	if !s.state.OpenTemplate(id) {
		return false
	}
	s.templateOpen = true
	s.copied = false
	return true
}

// closeTemplate hides the popup at once and drops the selection after the
// exit animation, unless the popup was reopened in the meantime.
func (s *Shell) closeTemplate(ctx app.Context, e app.Event) {
	gen := s.hideTemplate()
	ctx.Async(func() {
		time.Sleep(modalExitDelay)
		ctx.Dispatch(func(ctx app.Context) {
			s.clearTemplate(gen)
		})
	})
}

func (s *Shell) hideTemplate() int {
	s.templateOpen = false
	s.closeGen++
	return s.closeGen
}

// clearTemplate drops the selection unless the popup was reopened or closed
// again after close number gen.
func (s *Shell) clearTemplate(gen int) {
	if !s.templateOpen && s.closeGen == gen {
		s.state.Router().ClearTemplate()
	}
}

func (s *Shell) copyTemplate(ctx app.Context, e app.Event) {
	t, ok := s.state.SelectedTemplate()
	if !ok {
		return
	}
	writeClipboard(t.Content)
	gen := s.markCopied()
	ctx.Async(func() {
		time.Sleep(copiedDuration)
		ctx.Dispatch(func(ctx app.Context) {
			s.revertCopied(gen)
		})
	})
}

func (s *Shell) markCopied() int {
	s.copied = true
	s.copyGen++
	return s.copyGen
}

// revertCopied resets the acknowledgement of copy number gen. A newer copy
// keeps its own.
func (s *Shell) revertCopied(gen int) {
	if s.copyGen == gen {
		s.copied = false
	}
}

// Create dialog

func (s *Shell) onOpenCreate(ctx app.Context, e app.Event) {
	if !s.state.RequestCreate() {
		return
	}
	s.createForm = forms.NewTemplateForm()
	s.createErrors = nil
	s.createOpen = true
}

func (s *Shell) onCloseCreate(ctx app.Context, e app.Event) {
	s.createOpen = false
}

func (s *Shell) onSubmitTemplate(ctx app.Context, e app.Event) {
	e.PreventDefault()
	s.createErrors = s.createForm.Validate()
	if !s.createErrors.Valid() {
		return
	}
	if _, err := s.state.SubmitTemplate(s.createForm.Draft()); err != nil {
		s.createErrors = forms.Errors{"form": err.Error()}
		app.Log("submit template:", err)
		return
	}
	s.createOpen = false
	s.createForm = forms.NewTemplateForm()
}
