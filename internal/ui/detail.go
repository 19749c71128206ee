package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/market"
)

const applyFallback = "Application portal access requested. (No external link configured)"

func (s *Shell) backToGrid() app.UI {
	return app.Button().Class("link back").OnClick(s.navigate(market.ViewMarket)).Text("← Return_To_Grid")
}

func (s *Shell) renderMCPDetail() app.UI {
	m, ok := s.state.SelectedMCP()
	if !ok {
		return s.renderMarket()
	}

	return app.Div().Class("detail").Body(
		s.backToGrid(),
		app.Div().Class("detail-card").Body(
			app.Div().Class("detail-head").Body(
				s.renderLogo(m.Image, m.Name, m.Logo),
				app.Div().Class("detail-title").Body(
					app.Span().Class("badge badge-mcp").Text("MCP_Protocol"),
					app.H1().Text(m.Name),
					app.P().Class("muted").Text(m.Description),
				),
				app.Button().Class("btn btn-neon").Text("Install_Protocol"),
			),
			app.Div().Class("detail-body").Body(
				app.Raw(markdown(m.Content)),
				app.Aside().Class("detail-meta").Body(
					app.H4().Text("System_Metadata"),
					app.Dl().Body(
						app.Dt().Text("ID_REF"), app.Dd().Text(m.ID),
						app.Dt().Text("VERIFIED"), app.Dd().Text("TRUE"),
					),
				),
			),
		),
	)
}

func (s *Shell) renderJobDetail() app.UI {
	j, ok := s.state.SelectedJob()
	if !ok {
		return s.renderMarket()
	}

	return app.Div().Class("detail").Body(
		s.backToGrid(),
		app.Div().Class("detail-card").Body(
			app.Div().Class("detail-head").Body(
				s.renderLogo("", j.Company, j.Logo),
				app.Div().Class("detail-title").Body(
					app.Span().Class("badge badge-job").Text("Job_Contract"),
					app.H1().Text(j.Title),
					app.Div().Class("detail-facts").Body(
						app.Span().Text(j.Company),
						app.Span().Text(j.Location),
						app.Span().Text(string(j.Type)),
						app.If(j.Salary != "", func() app.UI {
							return app.Span().Class("salary").Text(j.Salary)
						}),
					),
				),
				app.Button().Class("btn btn-neon").OnClick(s.apply(j)).Text("Apply_Now"),
			),
			app.If(s.applyNotice, func() app.UI {
				return app.P().Class("notice").Text(applyFallback)
			}),
			app.Div().Class("detail-body").Body(
				app.Raw(markdown(j.Content)),
				app.Aside().Class("detail-meta").Body(
					app.H4().Text("System_Metadata"),
					app.Dl().Body(
						app.Dt().Text("ID_REF"), app.Dd().Text(j.ID),
						app.Dt().Text("VERIFIED"), app.Dd().Text("TRUE"),
					),
				),
			),
		),
	)
}

// apply opens the external application page, or acknowledges the request
// inline when the posting has no link.
func (s *Shell) apply(j market.Job) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		if target, ok := j.ApplyTarget(); ok {
			openWindow(target)
			return
		}
		s.applyNotice = true
	}
}

func (s *Shell) renderAllMCPs() app.UI {
	mcps := s.state.Store().MCPs()
	return app.Div().Class("catalog").Body(
		s.backToGrid(),
		pageHead("System Protocol Registry", "Full database of available Model Context Protocols."),
		app.Div().Class("grid").Body(
			app.Range(mcps).Slice(func(i int) app.UI {
				m := mcps[i]
				return app.Div().Class("card").OnClick(s.openMCP(m.ID)).Body(
					s.renderLogo(m.Image, m.Name, m.Logo),
					app.H3().Class("card-title").Text(m.Name),
					app.P().Class("card-desc").Text(m.Description),
					app.Span().Class("link").Text("View_Protocol →"),
				)
			}),
		),
	)
}

func (s *Shell) renderAllJobs() app.UI {
	jobs := s.state.Store().Jobs()
	return app.Div().Class("catalog").Body(
		s.backToGrid(),
		pageHead("Open Contract Database", "Active recruitment signals and opportunities."),
		app.Div().Class("list").Body(
			app.Range(jobs).Slice(func(i int) app.UI {
				return s.renderJobRow(jobs[i])
			}),
		),
	)
}
