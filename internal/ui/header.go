package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/market"
)

func (s *Shell) renderHeader(view market.View) app.UI {
	user, signedIn := s.state.CurrentUser()

	return app.Header().Class("header").Body(
		app.Div().Class("header-inner").Body(
			app.Div().Class("header-left").Body(
				app.Button().Class("brand").OnClick(s.navigate(market.ViewMarket)).Body(
					app.Span().Class("brand-name").Text("Prompt 101"),
					app.Span().Class("brand-version").Text("System v2.1"),
				),
				app.If(signedIn, func() app.UI {
					return app.Nav().Body(
						app.Button().
							Class(active(view == market.ViewMarket, "nav-link")).
							OnClick(s.navigate(market.ViewMarket)).
							Text("Market_Data"),
					)
				}),
			),
			app.If(view == market.ViewMarket, func() app.UI {
				return app.Div().Class("search").Body(
					app.Input().
						Type("text").
						Class("search-input").
						Placeholder("SEARCH_DIRECTORIES...").
						Value(s.query).
						OnInput(bind(&s.query)),
				)
			}),
			app.Div().Class("header-right").Body(
				app.If(signedIn, func() app.UI {
					return app.Div().Class("header-actions").Body(
						app.Button().
							Class(active(view == market.ViewAdmin || view == market.ViewUser, "btn btn-ghost")).
							OnClick(s.onDashboard).
							Text("Dashboard"),
						app.Button().Class("btn btn-neon").OnClick(s.onOpenCreate).Text("+ NEW_ENTRY"),
						renderAvatar(user),
						app.Button().Class("btn-icon").Title("Disconnect").OnClick(s.onLogout).Text("⏻"),
					)
				}).Else(func() app.UI {
					return app.Button().Class("btn btn-neon").OnClick(s.onLoginClick).Text("CONNECT")
				}),
			),
		),
	)
}

func (s *Shell) renderFooter() app.UI {
	return app.Footer().Class("footer").Body(
		app.Span().Text("Prompt 101"),
		app.Span().Class("muted").Text("System v2.1 // Authorized Access Only"),
	)
}

func renderAvatar(u market.User) app.UI {
	if u.Avatar != "" {
		return app.Div().Class("avatar").Body(app.Img().Src(u.Avatar).Alt(u.Name))
	}
	return app.Div().Class("avatar").Text(initial(u.Name))
}
