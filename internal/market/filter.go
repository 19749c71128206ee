package market

import "strings"

// Listing is the public view of the template collection for one query.
type Listing struct {
	All   []Template
	Image []Template
	Text  []Template
}

// Filter keeps approved templates in the given category (or CategoryAll)
// whose title, description or one of its tags contains query, ignoring case.
// Collection order is preserved in every partition.
func Filter(templates []Template, query, category string) Listing {
	q := strings.ToLower(query)
	var l Listing
	for _, t := range templates {
		if !t.Public() {
			continue
		}
		if category != CategoryAll && string(t.Category) != category {
			continue
		}
		if !matches(t, q) {
			continue
		}
		l.All = append(l.All, t)
		if t.IsImage() {
			l.Image = append(l.Image, t)
		} else {
			l.Text = append(l.Text, t)
		}
	}
	return l
}

func matches(t Template, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
