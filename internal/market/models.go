package market

type Category string

const (
	CategoryCoding       Category = "Coding"
	CategoryWriting      Category = "Writing"
	CategoryMarketing    Category = "Marketing"
	CategoryProductivity Category = "Productivity"
	CategoryDesign       Category = "Design"
	CategoryBusiness     Category = "Business"
)

// CategoryAll is the filter sentinel that matches every category.
const CategoryAll = "All"

// Categories returns the enumerated categories in display order.
func Categories() []Category {
	return []Category{
		CategoryCoding,
		CategoryWriting,
		CategoryMarketing,
		CategoryProductivity,
		CategoryDesign,
		CategoryBusiness,
	}
}

// ParseCategory reports whether s names one of the enumerated categories.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type TemplateType string

const (
	TypeText  TemplateType = "text"
	TypeImage TemplateType = "image"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type WorkType string

const (
	WorkRemote WorkType = "Remote"
	WorkOnSite WorkType = "On-site"
	WorkHybrid WorkType = "Hybrid"
)

// WorkTypes returns the job work types in display order.
func WorkTypes() []WorkType {
	return []WorkType{WorkRemote, WorkOnSite, WorkHybrid}
}

type Template struct {
	ID           string       `yaml:"id"`
	Title        string       `yaml:"title"`
	Description  string       `yaml:"description"`
	Content      string       `yaml:"content"`
	ImageURL     string       `yaml:"image_url,omitempty"`
	Category     Category     `yaml:"category"`
	Tags         []string     `yaml:"tags"`
	Type         TemplateType `yaml:"type"`
	Author       string       `yaml:"author"`
	AuthorID     string       `yaml:"author_id"`
	CreatedAt    string       `yaml:"created_at"`
	Likes        int          `yaml:"likes"`
	Uses         int          `yaml:"uses"`
	Status       Status       `yaml:"status"`
	AdminComment string       `yaml:"admin_comment,omitempty"`
}

// IsImage reports whether the template is an image-generation prompt.
// Templates without a type are text prompts.
func (t Template) IsImage() bool {
	return t.Type == TypeImage
}

// Public reports whether the template may appear in the marketplace.
func (t Template) Public() bool {
	return t.Status == StatusApproved
}

type User struct {
	ID     string `yaml:"id"`
	Email  string `yaml:"email"`
	Name   string `yaml:"name"`
	Role   Role   `yaml:"role"`
	Avatar string `yaml:"avatar,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// MCP is a featured integration listing.
type MCP struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
	Logo        string `yaml:"logo,omitempty"`
	Image       string `yaml:"image,omitempty"`
}

type Job struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Company     string   `yaml:"company"`
	Location    string   `yaml:"location"`
	Type        WorkType `yaml:"type"`
	Description string   `yaml:"description"`
	Content     string   `yaml:"content"`
	Logo        string   `yaml:"logo,omitempty"`
	Salary      string   `yaml:"salary,omitempty"`
	ApplyLink   string   `yaml:"apply_link,omitempty"`
}

// ApplyTarget returns the external application URL, if the listing has one.
func (j Job) ApplyTarget() (string, bool) {
	if j.ApplyLink == "" {
		return "", false
	}
	return j.ApplyLink, true
}

type DetailKind int

const (
	DetailMCP DetailKind = iota + 1
	DetailJob
)

// DetailItem is a listing that can be opened on a detail page.
type DetailItem interface {
	DetailID() string
	DetailKind() DetailKind
}

func (m MCP) DetailID() string       { return m.ID }
func (m MCP) DetailKind() DetailKind { return DetailMCP }
func (j Job) DetailID() string       { return j.ID }
func (j Job) DetailKind() DetailKind { return DetailJob }
