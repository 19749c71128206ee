package forms

import (
	"strings"

	"github.com/terrabrand/Prompt101/internal/market"
)

var mcpMessages = map[string]string{
	"Name.required":        "Name is required",
	"Description.required": "Description is required",
	"Image.url":            "Image must be a valid URL",
}

// MCPForm is the admin create/edit form for an MCP listing. A non-empty ID
// means an existing listing is being edited.
type MCPForm struct {
	ID          string
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Content     string
	Image       string `validate:"omitempty,url"`
}

func FromMCP(m market.MCP) MCPForm {
	return MCPForm{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Content:     m.Content,
		Image:       m.Image,
	}
}

func (f MCPForm) Editing() bool {
	return f.ID != ""
}

func (f MCPForm) trimmed() MCPForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Content = strings.TrimSpace(f.Content)
	f.Image = strings.TrimSpace(f.Image)
	return f
}

func (f MCPForm) Validate() Errors {
	return check(f.trimmed(), mcpMessages)
}

// MCP builds the listing. Content defaults to the description and the logo
// text is always the name.
func (f MCPForm) MCP() market.MCP {
	f = f.trimmed()
	m := market.MCP{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Content:     f.Content,
		Logo:        f.Name,
		Image:       f.Image,
	}
	if m.Content == "" {
		m.Content = m.Description
	}
	return m
}

var jobMessages = map[string]string{
	"Title.required":   "Job title is required",
	"Company.required": "Company is required",
	"Type.required":    "Work type is required",
	"Type.worktype":    "Work type must be Remote, On-site or Hybrid",
	"ApplyLink.url":    "Apply link must be a valid URL",
}

// JobForm is the admin create/edit form for a job posting.
type JobForm struct {
	ID          string
	Title       string `validate:"required"`
	Company     string `validate:"required"`
	Location    string
	Type        string `validate:"required,worktype"`
	Description string
	Content     string
	Salary      string
	ApplyLink   string `validate:"omitempty,url"`
}

func NewJobForm() JobForm {
	return JobForm{Type: string(market.WorkRemote)}
}

func FromJob(j market.Job) JobForm {
	return JobForm{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Type:        string(j.Type),
		Description: j.Description,
		Content:     j.Content,
		Salary:      j.Salary,
		ApplyLink:   j.ApplyLink,
	}
}

func (f JobForm) Editing() bool {
	return f.ID != ""
}

func (f JobForm) trimmed() JobForm {
	f.Title = strings.TrimSpace(f.Title)
	f.Company = strings.TrimSpace(f.Company)
	f.Location = strings.TrimSpace(f.Location)
	f.Type = strings.TrimSpace(f.Type)
	f.Description = strings.TrimSpace(f.Description)
	f.Content = strings.TrimSpace(f.Content)
	f.Salary = strings.TrimSpace(f.Salary)
	f.ApplyLink = strings.TrimSpace(f.ApplyLink)
	return f
}

func (f JobForm) Validate() Errors {
	return check(f.trimmed(), jobMessages)
}

// Job builds the posting. Content defaults to the description and the logo
// text is always the company.
func (f JobForm) Job() market.Job {
	f = f.trimmed()
	j := market.Job{
		ID:          f.ID,
		Title:       f.Title,
		Company:     f.Company,
		Location:    f.Location,
		Type:        market.WorkType(f.Type),
		Description: f.Description,
		Content:     f.Content,
		Logo:        f.Company,
		Salary:      f.Salary,
		ApplyLink:   f.ApplyLink,
	}
	if j.Content == "" {
		j.Content = j.Description
	}
	return j
}
