package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/market"
)

func (s *Shell) renderTemplateModal() app.UI {
	t, ok := s.state.SelectedTemplate()
	if !s.templateOpen || !ok {
		return app.Div().Class("modal-slot")
	}
	image := t.IsImage() && t.ImageURL != ""
	copyLabel := "Copy"
	if s.copied {
		copyLabel = "Copied"
	}

	return app.Div().Class("modal").Body(
		app.Div().Class("modal-backdrop").OnClick(s.closeTemplate),
		app.Div().Class("modal-panel").Body(
			app.Div().Class("modal-head").Body(
				app.Div().Body(
					app.Div().Class("modal-tags").Body(
						app.Span().Class("tag").Text(string(t.Category)),
						app.If(image, func() app.UI {
							return app.Span().Class("tag tag-image").Text("Visual_Protocol")
						}),
						app.Span().Class("muted").Text("// ID: "+t.ID),
					),
					app.H2().Text(t.Title),
					app.P().Class("muted").Text(t.Description),
				),
				app.Button().Class("btn-icon").OnClick(s.closeTemplate).Text("✕"),
			),
			app.Div().Class("modal-body").Body(
				app.Div().Class("prompt").Body(
					app.Div().Class("prompt-bar").Body(
						app.Span().Text("prompt_source.txt"),
						app.Button().
							Class(active(s.copied, "btn btn-copy")).
							OnClick(s.copyTemplate).
							Text(copyLabel),
					),
					app.Pre().Class("prompt-text").Body(
						app.Span().Class("muted").Text("root@prompt101:~$ cat prompt.txt"),
						app.Br(),
						app.Text(t.Content),
					),
				),
				app.If(image, func() app.UI {
					return app.Div().Class("sample").Body(
						app.Span().Class("label").Text("Sample Output"),
						app.Img().Src(t.ImageURL).Alt(t.Title),
					)
				}),
				app.Div().Class("modal-meta").Body(
					app.Span().Class("label").Text("Tags / Keywords"),
					app.Range(t.Tags).Slice(func(i int) app.UI {
						return app.Span().Class("hashtag").Text("#" + t.Tags[i])
					}),
				),
				app.Div().Class("modal-stats").Body(
					app.Span().Text("@"+t.Author),
					app.Span().Text(count(t.Likes)+" likes"),
					app.Span().Text(count(t.Uses)+" uses"),
					app.Span().Text(t.CreatedAt),
				),
			),
		),
	)
}

func (s *Shell) renderCreateModal() app.UI {
	if !s.createOpen {
		return app.Div().Class("modal-slot")
	}
	f := &s.createForm
	image := f.Type == market.TypeImage
	cats := market.Categories()

	return app.Div().Class("modal").Body(
		app.Div().Class("modal-backdrop").OnClick(s.onCloseCreate),
		app.Form().Class("modal-panel form").OnSubmit(s.onSubmitTemplate).Body(
			app.Div().Class("modal-head").Body(
				app.Div().Body(
					app.H2().Text("Initialize_Template"),
					app.P().Class("muted").Text("Submit new protocol for network approval"),
				),
				app.Button().Type("button").Class("btn-icon").OnClick(s.onCloseCreate).Text("✕"),
			),
			app.Div().Class("segmented").Body(
				app.Button().Type("button").
					Class(active(!image, "segment")).
					OnClick(func(ctx app.Context, e app.Event) { f.Type = market.TypeText }).
					Text("Text Protocol"),
				app.Button().Type("button").
					Class(active(image, "segment")).
					OnClick(func(ctx app.Context, e app.Event) { f.Type = market.TypeImage }).
					Text("Image Protocol"),
			),
			field("Title", s.createErrors.Get("Title"),
				app.Input().Type("text").Value(f.Title).OnInput(bind(&f.Title)),
			),
			field("Category", s.createErrors.Get("Category"),
				app.Select().OnChange(bind(&f.Category)).Body(
					app.Option().Value("").Disabled(true).Selected(f.Category == "").Text("SELECT_CLASS..."),
					app.Range(cats).Slice(func(i int) app.UI {
						c := string(cats[i])
						return app.Option().Value(c).Selected(f.Category == c).Text(c)
					}),
				),
			),
			field("Description", s.createErrors.Get("Description"),
				app.Input().Type("text").Value(f.Description).OnInput(bind(&f.Description)),
			),
			app.If(image, func() app.UI {
				return field("Featured Image URL", s.createErrors.Get("ImageURL"),
					app.Input().Type("url").Placeholder("https://...").Value(f.ImageURL).OnInput(bind(&f.ImageURL)),
				)
			}),
			field("Prompt Content", s.createErrors.Get("Content"),
				app.Textarea().Rows(8).Text(f.Content).OnInput(bind(&f.Content)),
			),
			field("Keywords (comma_separated)", "",
				app.Input().Type("text").Placeholder("react, typescript").Value(f.Tags).OnInput(bind(&f.Tags)),
			),
			app.If(s.createErrors.Get("form") != "", func() app.UI {
				return app.P().Class("error").Text(s.createErrors.Get("form"))
			}),
			app.P().Class("warning").Text("WARNING: Submission requires admin verification."),
			app.Div().Class("form-actions").Body(
				app.Button().Type("button").Class("btn btn-ghost").OnClick(s.onCloseCreate).Text("Cancel"),
				app.Button().Type("submit").Class("btn btn-neon").Text("Submit_Protocol"),
			),
		),
	)
}

// field wraps an input with its label and validation message.
func field(label, msg string, input app.UI) app.UI {
	return app.Div().Class("field").Body(
		app.Label().Text(label),
		input,
		app.If(msg != "", func() app.UI {
			return app.Span().Class("error").Text(msg)
		}),
	)
}
