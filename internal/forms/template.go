package forms

import (
	"strings"

	"github.com/terrabrand/Prompt101/internal/market"
)

var templateMessages = map[string]string{
	"Type.oneof":           "Choose a text or image prompt",
	"Title.required":       "Title is required",
	"Description.required": "Description is required",
	"Content.required":     "Prompt content is required",
	"Category.required":    "Category is required",
	"Category.category":    "Category is required",
	"ImageURL.required_if": "Featured Image URL is required",
}

// TemplateForm backs the "create template" dialog. Tags are typed as one
// comma-separated string.
type TemplateForm struct {
	Type        market.TemplateType `validate:"oneof=text image"`
	Title       string              `validate:"required"`
	Description string              `validate:"required"`
	Content     string              `validate:"required"`
	Category    string              `validate:"required,category"`
	ImageURL    string              `validate:"required_if=Type image"`
	Tags        string
}

// NewTemplateForm returns the form as the dialog first shows it.
func NewTemplateForm() TemplateForm {
	return TemplateForm{
		Type:     market.TypeText,
		Category: string(market.CategoryCoding),
	}
}

func (f TemplateForm) trimmed() TemplateForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Content = strings.TrimSpace(f.Content)
	f.Category = strings.TrimSpace(f.Category)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	if f.Type == "" {
		f.Type = market.TypeText
	}
	return f
}

func (f TemplateForm) Validate() Errors {
	return check(f.trimmed(), templateMessages)
}

// Draft converts a valid form into a submission. The image URL is dropped for
// text prompts.
func (f TemplateForm) Draft() market.TemplateDraft {
	f = f.trimmed()
	d := market.TemplateDraft{
		Type:        f.Type,
		Title:       f.Title,
		Description: f.Description,
		Content:     f.Content,
		Category:    market.Category(f.Category),
		Tags:        ParseTags(f.Tags),
	}
	if f.Type == market.TypeImage {
		d.ImageURL = f.ImageURL
	}
	return d
}

// ParseTags splits a comma-separated list, dropping blanks.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
