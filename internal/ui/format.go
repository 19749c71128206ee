package ui

import (
	"bytes"
	"html"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"github.com/yuin/goldmark"

	"github.com/terrabrand/Prompt101/internal/market"
)

// bind copies an input's value into dst on every keystroke.
func bind(dst *string) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		*dst = e.Get("target").Get("value").String()
	}
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

// initial is the upper-cased first letter used for avatars and logos.
func initial(s string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// categoryFilters lists the category bar buttons, "All" first.
func categoryFilters() []string {
	out := []string{market.CategoryAll}
	for _, c := range market.Categories() {
		out = append(out, string(c))
	}
	return out
}

func statusClass(st market.Status) string {
	switch st {
	case market.StatusApproved:
		return "badge badge-approved"
	case market.StatusRejected:
		return "badge badge-rejected"
	default:
		return "badge badge-pending"
	}
}

func statusLabel(st market.Status) string {
	switch st {
	case market.StatusApproved:
		return "Live"
	case market.StatusRejected:
		return "Rejected"
	default:
		return "Pending_Review"
	}
}

func active(on bool, base string) string {
	if on {
		return base + " active"
	}
	return base
}

// markdown renders listing content. The result always has a single root
// element so it can be mounted with app.Raw.
func markdown(src string) string {
	var buf bytes.Buffer
	buf.WriteString(`<div class="prose">`)
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		buf.Reset()
		buf.WriteString(`<div class="prose"><p>` + html.EscapeString(src) + `</p>`)
	}
	buf.WriteString(`</div>`)
	return buf.String()
}
