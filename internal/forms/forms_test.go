package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrabrand/Prompt101/internal/market"
)

func TestTemplateForm_EmptyReportsEveryField(t *testing.T) {
	f := NewTemplateForm()
	f.Category = ""

	errs := f.Validate()

	assert.Equal(t, "Title is required", errs.Get("Title"))
	assert.Equal(t, "Description is required", errs.Get("Description"))
	assert.Equal(t, "Prompt content is required", errs.Get("Content"))
	assert.Equal(t, "Category is required", errs.Get("Category"))
	assert.Empty(t, errs.Get("ImageURL"), "text prompts need no image")
}

func TestTemplateForm_WhitespaceIsEmpty(t *testing.T) {
	f := NewTemplateForm()
	f.Title = "   "
	f.Description = "d"
	f.Content = "c"

	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Title is required", errs.Get("Title"))
}

func TestTemplateForm_ImageNeedsURL(t *testing.T) {
	f := TemplateForm{
		Type:        market.TypeImage,
		Title:       "Neon",
		Description: "d",
		Content:     "c",
		Category:    "Design",
	}
	assert.Equal(t, "Featured Image URL is required", f.Validate().Get("ImageURL"))

	f.ImageURL = "https://example.com/a.png"
	assert.True(t, f.Validate().Valid())
}

func TestTemplateForm_UnknownCategory(t *testing.T) {
	f := TemplateForm{Title: "t", Description: "d", Content: "c", Category: "Cooking"}
	assert.Equal(t, "Category is required", f.Validate().Get("Category"))
}

func TestTemplateForm_Draft(t *testing.T) {
	f := TemplateForm{
		Type:        market.TypeText,
		Title:       "  Go Reviewer ",
		Description: "Reviews Go",
		Content:     "Act as a reviewer",
		Category:    "Coding",
		ImageURL:    "https://example.com/ignored.png",
		Tags:        "go, review,, ,style ",
	}
	require.True(t, f.Validate().Valid())

	d := f.Draft()
	assert.Equal(t, market.TemplateDraft{
		Type:        market.TypeText,
		Title:       "Go Reviewer",
		Description: "Reviews Go",
		Content:     "Act as a reviewer",
		Category:    market.CategoryCoding,
		Tags:        []string{"go", "review", "style"},
	}, d)
}

func TestTemplateForm_DraftSubmits(t *testing.T) {
	st := market.NewState(market.Options{IDs: &market.SequenceGenerator{}})
	require.True(t, st.LoginDemo(market.RoleUser))

	f := TemplateForm{
		Type:        market.TypeImage,
		Title:       "Neon",
		Description: "d",
		Content:     "c",
		Category:    "Design",
		ImageURL:    "https://example.com/a.png",
	}
	created, err := st.SubmitTemplate(f.Draft())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", created.ImageURL)
	assert.Equal(t, []string{"prompt"}, created.Tags)
	assert.Equal(t, created, st.Store().Pending()[0])
}

func TestParseTags(t *testing.T) {
	assert.Nil(t, ParseTags(""))
	assert.Nil(t, ParseTags(" , ,"))
	assert.Equal(t, []string{"a b", "c"}, ParseTags("a b ,c"))
}

func TestMCPForm(t *testing.T) {
	errs := MCPForm{}.Validate()
	assert.Equal(t, "Name is required", errs.Get("Name"))
	assert.Equal(t, "Description is required", errs.Get("Description"))

	f := MCPForm{Name: "Linear", Description: "Issue tracking", Image: "not a url"}
	assert.Equal(t, "Image must be a valid URL", f.Validate().Get("Image"))

	f.Image = ""
	require.True(t, f.Validate().Valid())
	m := f.MCP()
	assert.Equal(t, "Issue tracking", m.Content)
	assert.Equal(t, "Linear", m.Logo)
	assert.False(t, f.Editing())
}

func TestMCPForm_EditRoundTrip(t *testing.T) {
	st := market.NewState(market.Options{})
	orig, ok := st.Store().MCP("mcp3")
	require.True(t, ok)

	f := FromMCP(orig)
	require.True(t, f.Editing())
	f.Description = "Time tracking"
	require.True(t, st.UpdateMCP(f.MCP()))

	got, _ := st.Store().MCP("mcp3")
	assert.Equal(t, "Time tracking", got.Description)
	assert.Equal(t, orig.Content, got.Content)
}

func TestJobForm(t *testing.T) {
	f := NewJobForm()
	errs := f.Validate()
	assert.Equal(t, "Job title is required", errs.Get("Title"))
	assert.Equal(t, "Company is required", errs.Get("Company"))
	assert.Empty(t, errs.Get("Type"))

	f = JobForm{Title: "SRE", Company: "Acme", Type: "Part-time", ApplyLink: "acme jobs"}
	errs = f.Validate()
	assert.Equal(t, "Work type must be Remote, On-site or Hybrid", errs.Get("Type"))
	assert.Equal(t, "Apply link must be a valid URL", errs.Get("ApplyLink"))

	f.Type = string(market.WorkHybrid)
	f.ApplyLink = "https://acme.dev/jobs"
	f.Description = "Keep it up"
	require.True(t, f.Validate().Valid())

	j := f.Job()
	assert.Equal(t, market.WorkHybrid, j.Type)
	assert.Equal(t, "Keep it up", j.Content)
	assert.Equal(t, "Acme", j.Logo)
	target, ok := j.ApplyTarget()
	assert.True(t, ok)
	assert.Equal(t, "https://acme.dev/jobs", target)
}

func TestFromJob(t *testing.T) {
	st := market.NewState(market.Options{})
	j, ok := st.Store().Job("job3")
	require.True(t, ok)

	f := FromJob(j)
	assert.True(t, f.Editing())
	assert.Equal(t, "On-site", f.Type)
	assert.True(t, f.Validate().Valid())
	assert.Equal(t, j, f.Job())
}

func TestRejectDraft(t *testing.T) {
	var d RejectDraft
	assert.False(t, d.CanCommit())

	d.Open("p1")
	assert.True(t, d.Active("p1"))
	assert.False(t, d.Active("p2"))
	assert.False(t, d.CanCommit())

	d.Comment = "   "
	assert.False(t, d.CanCommit())

	d.Comment = "needs examples"
	assert.True(t, d.CanCommit())

	d.Open("p2")
	assert.Empty(t, d.Comment)

	d.Cancel()
	assert.False(t, d.Active("p2"))
}

func TestAuthForm(t *testing.T) {
	f := AuthForm{Email: "nope"}
	assert.Equal(t, "Enter a valid email address", f.Validate().Get("Email"))

	f.Email = " john@example.com "
	assert.True(t, f.Validate().Valid(), "name is only needed to register")

	f.SwitchTab(true)
	assert.Equal(t, "Name is required", f.Validate().Get("Name"))

	f.Name = " Sarah "
	require.True(t, f.Validate().Valid())
	name, email := f.Credentials()
	assert.Equal(t, "Sarah", name)
	assert.Equal(t, "john@example.com", email)

	assert.Equal(t, "Email is required", AuthForm{}.Validate().Get("Email"))
}

func TestNewValidator_CustomTags(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Var("Coding", "category"))
	assert.Error(t, v.Var("Gardening", "category"))
	assert.NoError(t, v.Var(string(market.WorkHybrid), "worktype"))
	assert.Error(t, v.Var("Sometimes", "worktype"))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { must(nil) })
	assert.PanicsWithValue(t, "forms: register validation: bad tag", func() {
		must(errors.New("bad tag"))
	})
}
