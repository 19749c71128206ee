package ui

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/market"
)

// Routes registers the single page. newState is called for every component
// built: the browser returns one shared state, the server prerender a fresh
// seeded one per request.
func Routes(newState func() *market.State) {
	app.Route("/", func() app.Composer {
		return NewShell(newState())
	})
}
