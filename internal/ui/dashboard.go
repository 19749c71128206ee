package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/market"
)

func (s *Shell) renderUserDashboard() app.UI {
	user, _ := s.state.CurrentUser()
	templates := s.state.UserTemplates()
	avatar := user.Avatar
	if s.avatarDirty {
		avatar = s.avatarInput
	}

	return app.Div().Class("dashboard").Body(
		app.Div().Class("page-head page-head-row").Body(
			app.Div().Body(
				app.H2().Text("Personal_Node"),
				app.P().Class("muted").Text("> Manage your contributions to the network."),
			),
			app.Button().Class("btn btn-neon").OnClick(s.onOpenCreate).Text("+ New_Submission"),
		),
		app.Div().Class("dashboard-grid").Body(
			app.Div().Class("panel").Body(
				app.H3().Text("Profile_Settings"),
				app.Div().Class("avatar-preview").Body(
					app.If(avatar != "", func() app.UI {
						return app.Img().Src(avatar).Alt("Preview")
					}).Else(func() app.UI {
						return app.Span().Text(initial(user.Name))
					}),
				),
				field("Avatar Image URL", "",
					app.Input().Type("url").Placeholder("https://...").Value(avatar).OnInput(s.onAvatarInput),
				),
				app.Dl().Body(
					app.Dt().Text("Designation"), app.Dd().Text(user.Name),
					app.Dt().Text("Comms_ID"), app.Dd().Text(user.Email),
				),
				app.Button().Class("btn btn-ghost btn-block").OnClick(s.saveAvatar).Text("Save_Profile"),
			),
			app.Div().Class("dashboard-templates").Body(
				app.If(len(templates) == 0, func() app.UI {
					return app.Div().Class("empty").Body(
						app.H3().Text("Memory Banks Empty"),
						app.P().Text("Initialize your first prompt protocol."),
					)
				}).Else(func() app.UI {
					return app.Div().Class("grid").Body(
						app.Range(templates).Slice(func(i int) app.UI {
							return s.renderOwnTemplate(templates[i])
						}),
					)
				}),
			),
		),
	)
}

func (s *Shell) renderOwnTemplate(t market.Template) app.UI {
	return app.Div().Class("own").Body(
		app.Span().Class(statusClass(t.Status)).Text(statusLabel(t.Status)),
		s.renderCard(t),
		app.If(t.Status == market.StatusRejected && t.AdminComment != "", func() app.UI {
			return app.P().Class("admin-comment").Text("Admin: " + t.AdminComment)
		}),
	)
}

func (s *Shell) onAvatarInput(ctx app.Context, e app.Event) {
	s.avatarInput = e.Get("target").Get("value").String()
	s.avatarDirty = true
}

func (s *Shell) saveAvatar(ctx app.Context, e app.Event) {
	if !s.avatarDirty {
		return
	}
	if s.state.UpdateAvatar(s.avatarInput) {
		s.avatarDirty = false
		s.avatarInput = ""
	}
}
