package ui

import (
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/forms"
	"github.com/terrabrand/Prompt101/internal/market"
)

func (s *Shell) renderAuth() app.UI {
	f := &s.auth
	heading := "Enter Credentials"
	submit := "Authenticate"
	if f.Register {
		heading = "Initialize User Protocol"
		submit = "Execute_Registration"
	}

	return app.Div().Class("auth").Body(
		app.Div().Class("auth-brand").OnClick(s.navigate(market.ViewMarket)).Body(
			app.Span().Class("brand-name").Text("Prompt 101"),
			app.P().Class("muted").Text("Secure Access Portal v2.4"),
		),
		app.Div().Class("auth-card").Body(
			app.Div().Class("tabs").Body(
				app.Button().Class(active(!f.Register, "tab")).OnClick(s.authTab(false)).Text("Identify"),
				app.Button().Class(active(f.Register, "tab")).OnClick(s.authTab(true)).Text("Register_New"),
			),
			app.Form().Class("form").OnSubmit(s.onAuthSubmit).Body(
				app.H2().Text(heading),
				app.If(f.Register, func() app.UI {
					return field("Designation / Name", s.authErrors.Get("Name"),
						app.Input().Type("text").Placeholder("ENTER_NAME").Value(f.Name).OnInput(bind(&f.Name)),
					)
				}),
				field("Comms_ID / Email", s.authErrors.Get("Email"),
					app.Input().Type("email").Placeholder("USER@DOMAIN.COM").Value(f.Email).OnInput(bind(&f.Email)),
				),
				field("Passcode", "",
					app.Input().Type("password").Placeholder("••••••••").Value(f.Password).OnInput(bind(&f.Password)),
				),
				app.If(s.authError != "", func() app.UI {
					return app.P().Class("error").Text(s.authError)
				}),
				app.Button().Type("submit").Class("btn btn-neon btn-block").Text(submit),
			),
			app.Div().Class("divider").Text("Bypass_Protocols"),
			app.Div().Class("demo").Body(
				app.Button().Class("demo-btn demo-admin").OnClick(s.demoLogin(market.RoleAdmin)).Body(
					app.Span().Class("demo-title").Text("Admin_Root"),
					app.Span().Class("muted").Text("Full system control"),
				),
				app.Button().Class("demo-btn demo-user").OnClick(s.demoLogin(market.RoleUser)).Body(
					app.Span().Class("demo-title").Text("Standard_User"),
					app.Span().Class("muted").Text("Read/Write access"),
				),
			),
		),
		app.Button().Class("link").OnClick(s.navigate(market.ViewMarket)).Text("← Return to Grid"),
	)
}

func (s *Shell) authTab(register bool) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		s.auth.SwitchTab(register)
		s.authErrors = nil
		s.authError = ""
	}
}

func (s *Shell) demoLogin(role market.Role) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		if s.state.LoginDemo(role) {
			s.resetAuth()
		}
	}
}

func (s *Shell) onAuthSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	s.authError = ""
	s.authErrors = s.auth.Validate()
	if !s.authErrors.Valid() {
		return
	}

	name, email := s.auth.Credentials()
	if s.auth.Register {
		s.state.Register(name, email)
		s.resetAuth()
		return
	}
	if err := s.state.LoginWithEmail(email); err != nil {
		if errors.Is(err, market.ErrUserNotFound) {
			s.authError = `User not found. Try "admin@prompt101.com" or "john@example.com" or use the demo buttons.`
			return
		}
		s.authError = err.Error()
		return
	}
	s.resetAuth()
}

func (s *Shell) resetAuth() {
	s.auth = forms.AuthForm{}
	s.authErrors = nil
	s.authError = ""
}
