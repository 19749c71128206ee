package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/market"
)

func (s *Shell) renderMarket() app.UI {
	listing := s.state.Listing(s.query, s.category)

	return app.Div().Class("market").Body(
		app.Div().Class("hero").Body(
			app.H1().Class("hero-title").Text("Prompt_Engineering_Matrix"),
			app.P().Class("hero-lines").Body(
				app.Text("> Access high-fidelity command structures."), app.Br(),
				app.Text("> Enhance neural network output quality."), app.Br(),
				app.Text("> Browse decentralized knowledge base."),
			),
		),
		s.renderFeatured(),
		s.renderCategoryBar(len(listing.All)),
		app.If(len(listing.Image) > 0, func() app.UI {
			return app.Section().Class("grid-section").Body(
				app.H3().Class("section-title").Text("Visual Synthesis Protocols"),
				s.renderGrid(listing.Image),
			)
		}),
		app.Section().Class("grid-section").Body(
			app.H3().Class("section-subtitle").Text("Text Command Protocols"),
			app.If(len(listing.Text) > 0, func() app.UI {
				return s.renderGrid(listing.Text)
			}).Else(func() app.UI {
				return app.Div().Class("empty").Body(
					app.H3().Text("Signal Lost"),
					app.P().Text("No matching protocols found in the database."),
				)
			}),
		),
	)
}

func (s *Shell) renderCategoryBar(entries int) app.UI {
	cats := categoryFilters()
	return app.Div().Class("filters").Body(
		app.Div().Class("categories").Body(
			app.Range(cats).Slice(func(i int) app.UI {
				c := cats[i]
				return app.Button().
					Class(active(s.category == c, "chip")).
					OnClick(func(ctx app.Context, e app.Event) { s.category = c }).
					Text(c)
			}),
		),
		app.Div().Class("status").Body(
			app.Span().Text("System_Status: Online"),
			app.Span().Class("muted").Text("|"),
			app.Span().Text("Entries: "+count(entries)),
		),
	)
}

func (s *Shell) renderGrid(templates []market.Template) app.UI {
	return app.Div().Class("grid").Body(
		app.Range(templates).Slice(func(i int) app.UI {
			return s.renderCard(templates[i])
		}),
	)
}

func (s *Shell) renderCard(t market.Template) app.UI {
	return app.Div().Class("card").OnClick(s.openTemplate(t.ID)).Body(
		app.If(t.IsImage() && t.ImageURL != "", func() app.UI {
			return app.Div().Class("card-image").Body(
				app.Img().Src(t.ImageURL).Alt(t.Title),
				app.Span().Class("tag tag-image").Text("IMG_PROTOCOL"),
			)
		}),
		app.Div().Class("card-body").Body(
			app.Div().Class("card-meta").Body(
				app.Span().Class("tag").Text(string(t.Category)),
				app.Span().Class("muted").Text(t.CreatedAt),
			),
			app.H3().Class("card-title").Text(t.Title),
			app.P().Class("card-desc").Text(t.Description),
			app.Div().Class("card-tags").Body(
				app.Range(t.Tags).Slice(func(i int) app.UI {
					return app.Span().Class("hashtag").Text("#" + t.Tags[i])
				}),
			),
			app.Div().Class("card-footer").Body(
				app.Span().Text("@"+t.Author),
				app.Span().Text("♥ "+count(t.Likes)),
				app.Span().Text("⧉ "+count(t.Uses)),
			),
		),
	)
}

// Featured listings

func (s *Shell) renderFeatured() app.UI {
	mcps := s.state.FeaturedMCPs()
	jobs := s.state.FeaturedJobs()

	return app.Div().Class("featured").Body(
		app.Section().Class("featured-col").Body(
			app.Div().Class("featured-head").Body(
				app.H3().Text("Featured Protocols (MCPs)"),
				app.Button().Class("link").OnClick(s.navigate(market.ViewAllMCPs)).Text("View_All →"),
			),
			app.Range(mcps).Slice(func(i int) app.UI {
				return s.renderMCPRow(mcps[i])
			}),
		),
		app.Section().Class("featured-col").Body(
			app.Div().Class("featured-head").Body(
				app.H3().Text("Open Contracts (Jobs)"),
				app.Button().Class("link").OnClick(s.navigate(market.ViewAllJobs)).Text("View_All →"),
			),
			app.Range(jobs).Slice(func(i int) app.UI {
				return s.renderJobRow(jobs[i])
			}),
		),
	)
}

func (s *Shell) renderMCPRow(m market.MCP) app.UI {
	return app.Div().Class("row").OnClick(s.openMCP(m.ID)).Body(
		s.renderLogo(m.Image, m.Name, m.Logo),
		app.Div().Class("row-text").Body(
			app.Span().Class("row-title").Text(m.Name),
			app.Span().Class("row-sub").Text(m.Description),
		),
	)
}

func (s *Shell) renderJobRow(j market.Job) app.UI {
	return app.Div().Class("row").OnClick(s.openJob(j.ID)).Body(
		s.renderLogo("", j.Company, j.Logo),
		app.Div().Class("row-text").Body(
			app.Span().Class("row-title").Text(j.Title),
			app.Span().Class("row-sub").Text(j.Company+" · "+j.Location+" · "+string(j.Type)),
		),
		app.If(j.Salary != "", func() app.UI {
			return app.Span().Class("salary").Text(j.Salary)
		}),
	)
}

func (s *Shell) renderLogo(image, alt, logo string) app.UI {
	if image != "" {
		return app.Div().Class("logo").Body(app.Img().Src(image).Alt(alt))
	}
	if logo == "" {
		logo = alt
	}
	return app.Div().Class("logo").Text(initial(logo))
}
