package ui

import (
	"strings"
	"testing"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrabrand/Prompt101/internal/market"
)

func newShell(t *testing.T) (*Shell, *market.State) {
	t.Helper()
	st := market.NewState(market.Options{IDs: &market.SequenceGenerator{}})
	s := NewShell(st)
	s.OnInit()
	return s, st
}

func render(s *Shell) string {
	return app.HTMLString(s.Render())
}

func TestRender_Market(t *testing.T) {
	s, _ := newShell(t)
	html := render(s)

	assert.Contains(t, html, "Prompt_Engineering_Matrix")
	assert.Contains(t, html, "Senior React Engineer Persona")
	assert.Contains(t, html, "Cyberpunk Neon City")
	assert.Contains(t, html, "Featured Protocols (MCPs)")
	assert.Contains(t, html, "1,205", "use counts are humanized")
	assert.NotContains(t, html, "Python Data Science Tutor")
	assert.Contains(t, html, "CONNECT")
}

func TestRender_EmptySearch(t *testing.T) {
	s, _ := newShell(t)
	s.query = "no such prompt"

	html := render(s)
	assert.Contains(t, html, "Signal Lost")
	assert.NotContains(t, html, "Visual Synthesis Protocols")
}

func TestRender_CategoryFilter(t *testing.T) {
	s, _ := newShell(t)
	s.category = string(market.CategoryDesign)

	html := render(s)
	assert.Contains(t, html, "Retro Astronaut Portrait")
	assert.NotContains(t, html, "Viral LinkedIn Post Generator")
	assert.Contains(t, html, "Signal Lost", "no text prompts in Design")
}

func TestRender_AdminGuard(t *testing.T) {
	s, st := newShell(t)

	st.Navigate(market.ViewAdmin)
	html := render(s)
	assert.Contains(t, html, "Prompt_Engineering_Matrix")
	assert.NotContains(t, html, "Overview_Protocol")

	require.True(t, st.LoginDemo(market.RoleAdmin))
	html = render(s)
	assert.Contains(t, html, "Overview_Protocol")
	assert.Contains(t, html, "Python Data Science Tutor")
	assert.Contains(t, html, "Authorize")
}

var commitDisabled = `<button[^>]*disabled="true"[^>]*>Commit`

func TestRender_AdminRejectCommitDisabled(t *testing.T) {
	s, st := newShell(t)
	require.True(t, st.LoginDemo(market.RoleAdmin))

	s.reject.Open("p1")
	html := render(s)
	assert.Contains(t, html, "Rejection_Reason")
	assert.Regexp(t, commitDisabled, html)

	s.reject.Comment = "   "
	html = render(s)
	assert.Regexp(t, commitDisabled, html, "blank reason keeps commit disabled")

	s.reject.Comment = "needs examples"
	html = render(s)
	assert.Contains(t, html, ">Commit<")
	assert.NotRegexp(t, commitDisabled, html)
}

func TestRender_AuthScreen(t *testing.T) {
	s, st := newShell(t)
	st.Navigate(market.ViewAuth)

	html := render(s)
	assert.Contains(t, html, "Identify")
	assert.Contains(t, html, "Admin_Root")
	assert.NotContains(t, html, "Prompt_Engineering_Matrix")
}

func TestRender_UserDashboard(t *testing.T) {
	s, st := newShell(t)
	require.True(t, st.LoginDemo(market.RoleUser))
	require.True(t, st.Reject("3", "too generic"))
	st.DashboardView()

	html := render(s)
	assert.Contains(t, html, "Personal_Node")
	assert.Contains(t, html, "Python Data Science Tutor")
	assert.Contains(t, html, "Pending_Review")
	assert.Contains(t, html, "Admin: too generic")
}

func TestRender_JobDetail(t *testing.T) {
	s, st := newShell(t)
	require.True(t, st.OpenJob("job2"))

	html := render(s)
	assert.Contains(t, html, "Product Engineer")
	assert.Contains(t, html, "Apply_Now")
	assert.NotContains(t, html, applyFallback)

	s.applyNotice = true
	assert.Contains(t, render(s), applyFallback)
}

func TestRender_TemplateModal(t *testing.T) {
	s, _ := newShell(t)
	assert.NotContains(t, render(s), "prompt_source.txt", "closed popup renders nothing")

	require.True(t, s.showTemplate("3"))
	html := render(s)
	assert.Contains(t, html, "prompt_source.txt")
	assert.Contains(t, html, ">Copy<")

	s.markCopied()
	assert.Contains(t, render(s), ">Copied<")
}

func TestTemplatePopup_CloseClearsSelection(t *testing.T) {
	s, st := newShell(t)
	require.True(t, s.showTemplate("3"))

	gen := s.hideTemplate()
	_, ok := st.SelectedTemplate()
	assert.True(t, ok, "selection survives the exit animation")
	assert.NotContains(t, render(s), "prompt_source.txt")

	s.clearTemplate(gen)
	_, ok = st.SelectedTemplate()
	assert.False(t, ok)

	s.clearTemplate(gen)
	_, ok = st.SelectedTemplate()
	assert.False(t, ok)
}

func TestTemplatePopup_ReopenSkipsStaleClear(t *testing.T) {
	s, st := newShell(t)
	require.True(t, s.showTemplate("3"))

	gen := s.hideTemplate()
	require.True(t, s.showTemplate("img1"))
	s.clearTemplate(gen)

	tpl, ok := st.SelectedTemplate()
	require.True(t, ok)
	assert.Equal(t, "img1", tpl.ID)
	assert.Contains(t, render(s), "prompt_source.txt")

	// closed twice: only the latest close clears
	first := s.hideTemplate()
	second := s.hideTemplate()
	s.clearTemplate(first)
	_, ok = st.SelectedTemplate()
	assert.True(t, ok)
	s.clearTemplate(second)
	_, ok = st.SelectedTemplate()
	assert.False(t, ok)
}

func TestTemplatePopup_CopiedReverts(t *testing.T) {
	s, _ := newShell(t)
	require.True(t, s.showTemplate("3"))

	first := s.markCopied()
	second := s.markCopied()

	s.revertCopied(first)
	assert.Contains(t, render(s), ">Copied<", "a newer copy keeps its acknowledgement")

	s.revertCopied(second)
	html := render(s)
	assert.Contains(t, html, ">Copy<")
	assert.NotContains(t, html, ">Copied<")

	s.markCopied()
	require.True(t, s.showTemplate("1"))
	assert.False(t, s.copied, "opening a template resets the acknowledgement")
}

func TestRender_CreateModalErrors(t *testing.T) {
	s, st := newShell(t)
	require.True(t, st.LoginDemo(market.RoleUser))
	s.createOpen = true
	s.createErrors = s.createForm.Validate()

	html := render(s)
	assert.Contains(t, html, "Title is required")
	assert.Contains(t, html, "Prompt content is required")
}

func TestMarkdown(t *testing.T) {
	out := markdown("# Role\n\nShip **fast**.\n\n<script>alert(1)</script>")

	assert.True(t, strings.HasPrefix(out, `<div class="prose">`))
	assert.True(t, strings.HasSuffix(out, `</div>`))
	assert.Contains(t, out, "<h1>Role</h1>")
	assert.Contains(t, out, "<strong>fast</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "1,205", count(1205))
	assert.Equal(t, "0", count(0))

	assert.Equal(t, "J", initial("john"))
	assert.Equal(t, "É", initial(" élan"))
	assert.Equal(t, "?", initial(""))

	assert.Equal(t, []string{"All", "Coding", "Writing", "Marketing", "Productivity", "Design", "Business"}, categoryFilters())

	assert.Equal(t, "chip active", active(true, "chip"))
	assert.Equal(t, "chip", active(false, "chip"))

	assert.Equal(t, "Live", statusLabel(market.StatusApproved))
	assert.Equal(t, "badge badge-rejected", statusClass(market.StatusRejected))
	assert.Equal(t, "Pending_Review", statusLabel(market.StatusPending))
}

func TestGtag(t *testing.T) {
	assert.Equal(t, "https://www.googletagmanager.com/gtag/js?id=G-ABC123", gtagSrc("G-ABC123"))
	assert.Contains(t, gtagBootstrap("G-ABC123"), `gtag('config', "G-ABC123");`)
	assert.Contains(t, gtagBootstrap("G-ABC123"), "window.dataLayer = window.dataLayer || [];")
}

func TestRender_HeaderAvatar(t *testing.T) {
	s, st := newShell(t)
	require.True(t, st.LoginDemo(market.RoleUser))

	html := render(s)
	assert.Contains(t, html, `<div class="avatar">J</div>`)

	require.True(t, st.UpdateAvatar("https://cdn.test/me.png"))
	html = render(s)
	assert.Regexp(t, `<div class="avatar"><img[^>]*src="https://cdn.test/me.png"`, html)
	assert.NotContains(t, html, `<div class="avatar">J</div>`)
}
