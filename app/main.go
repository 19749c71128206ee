package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/terrabrand/Prompt101/internal/market"
	"github.com/terrabrand/Prompt101/internal/ui"
)

func main() {
	state := market.NewState(market.Options{Injector: ui.BrowserInjector{}})
	ui.Routes(func() *market.State { return state })
	app.RunWhenOnBrowser()
}
