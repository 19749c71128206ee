package market

type View string

const (
	ViewMarket    View = "market"
	ViewAuth      View = "auth"
	ViewAdmin     View = "admin"
	ViewUser      View = "user"
	ViewDetailMCP View = "detail-mcp"
	ViewDetailJob View = "detail-job"
	ViewAllMCPs   View = "all-mcps"
	ViewAllJobs   View = "all-jobs"
)

// Router is the navigation state: the requested view plus the selections
// that the template popup and the detail pages read from.
type Router struct {
	view     View
	template string
	detail   DetailItem
}

func NewRouter() Router {
	return Router{view: ViewMarket}
}

// Requested returns the view last assigned, before any guard is applied.
func (r *Router) Requested() View {
	return r.view
}

func (r *Router) Navigate(v View) {
	r.view = v
}

// SelectTemplate sets the template shown in the popup. It does not change
// the current view.
func (r *Router) SelectTemplate(id string) {
	r.template = id
}

func (r *Router) ClearTemplate() {
	r.template = ""
}

func (r *Router) SelectedTemplate() string {
	return r.template
}

// OpenDetail selects item and routes to its detail page.
func (r *Router) OpenDetail(item DetailItem) {
	r.detail = item
	switch item.DetailKind() {
	case DetailMCP:
		r.view = ViewDetailMCP
	case DetailJob:
		r.view = ViewDetailJob
	}
}

func (r *Router) Detail() DetailItem {
	return r.detail
}

// Resolve returns the view that may actually be rendered for the requested
// view, the signed-in user (nil when signed out) and the selected detail
// item. Privileged or incomplete views fall through to the market.
func Resolve(v View, u *User, detail DetailItem) View {
	switch v {
	case ViewAdmin:
		if u == nil || u.Role != RoleAdmin {
			return ViewMarket
		}
	case ViewUser:
		if u == nil || u.Role != RoleUser {
			return ViewMarket
		}
	case ViewDetailMCP:
		if detail == nil || detail.DetailKind() != DetailMCP {
			return ViewMarket
		}
	case ViewDetailJob:
		if detail == nil || detail.DetailKind() != DetailJob {
			return ViewMarket
		}
	case ViewMarket, ViewAuth, ViewAllMCPs, ViewAllJobs:
	default:
		return ViewMarket
	}
	return v
}

// HomeView is where a user lands after signing in.
func HomeView(role Role) View {
	if role == RoleAdmin {
		return ViewAdmin
	}
	return ViewMarket
}
