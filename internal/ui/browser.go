package ui

import (
	"fmt"
	"net/url"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

const gtagLoader = "https://www.googletagmanager.com/gtag/js"

// BrowserInjector installs the Google Analytics tag into document.head.
type BrowserInjector struct{}

// Initialized reports whether the page already has a gtag data layer.
func (BrowserInjector) Initialized() bool {
	return app.Window().Get("dataLayer").Truthy()
}

func (BrowserInjector) Inject(measurementID string) {
	doc := app.Window().Get("document")
	head := doc.Get("head")
	if !head.Truthy() {
		app.Log("analytics: no document head")
		return
	}

	loader := doc.Call("createElement", "script")
	loader.Set("async", true)
	loader.Set("src", gtagSrc(measurementID))
	head.Call("appendChild", loader)

	boot := doc.Call("createElement", "script")
	boot.Set("innerHTML", gtagBootstrap(measurementID))
	head.Call("appendChild", boot)
}

func gtagSrc(id string) string {
	return gtagLoader + "?id=" + url.QueryEscape(id)
}

func gtagBootstrap(id string) string {
	return fmt.Sprintf(`window.dataLayer = window.dataLayer || [];
function gtag(){dataLayer.push(arguments);}
gtag('js', new Date());
gtag('config', %q);`, id)
}

func writeClipboard(text string) {
	clip := app.Window().Get("navigator").Get("clipboard")
	if !clip.Truthy() {
		app.Log("clipboard unavailable")
		return
	}
	clip.Call("writeText", text)
}

func openWindow(target string) {
	app.Window().Call("open", target, "_blank", "noopener,noreferrer")
}

func scrollToTop() {
	app.Window().Call("scrollTo", 0, 0)
}
