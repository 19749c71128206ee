package market

import (
	"errors"
	"strings"
)

const createdAtLayout = "Jan 2, 2006"

var (
	ErrNotSignedIn   = errors.New("sign in to submit a template")
	ErrImageRequired = errors.New("image templates need an image URL")
)

// TemplateDraft is the author-supplied part of a new template.
type TemplateDraft struct {
	Type        TemplateType
	Title       string
	Description string
	Content     string
	Category    Category
	Tags        []string
	ImageURL    string
}

// SubmitTemplate files a new pending template for the signed-in user and
// puts it at the head of the collection.
func (s *State) SubmitTemplate(d TemplateDraft) (Template, error) {
	u, ok := s.CurrentUser()
	if !ok {
		return Template{}, ErrNotSignedIn
	}
	if d.Type == "" {
		d.Type = TypeText
	}
	image := strings.TrimSpace(d.ImageURL)
	if d.Type == TypeImage && image == "" {
		return Template{}, ErrImageRequired
	}
	if d.Type != TypeImage {
		image = ""
	}
	tags := d.Tags
	if len(tags) == 0 {
		tags = []string{"prompt"}
	}

	t := Template{
		ID:          "t-" + s.ids.NewID(),
		Title:       d.Title,
		Description: d.Description,
		Content:     d.Content,
		ImageURL:    image,
		Category:    d.Category,
		Tags:        append([]string(nil), tags...),
		Type:        d.Type,
		Author:      u.Name,
		AuthorID:    u.ID,
		CreatedAt:   s.clock().Format(createdAtLayout),
		Status:      StatusPending,
	}
	s.store.PrependTemplate(t)
	s.log.Debug().Str("template_id", t.ID).Str("author_id", u.ID).Msg("template submitted")

	if u.Role == RoleUser {
		s.router.Navigate(ViewUser)
	}
	return t, nil
}

// UserTemplates returns the signed-in user's own templates, any status.
func (s *State) UserTemplates() []Template {
	u, ok := s.CurrentUser()
	if !ok {
		return nil
	}
	return s.store.TemplatesBy(u.ID)
}

// RequestCreate reports whether the create form may open. Signed-out
// visitors are routed to the auth screen instead.
func (s *State) RequestCreate() bool {
	if !s.SignedIn() {
		s.router.Navigate(ViewAuth)
		return false
	}
	return true
}

// Approve, Reject and Delete are the moderation transitions. They carry no
// role check of their own.

func (s *State) Approve(id string) bool {
	ok := s.store.Approve(id)
	s.log.Debug().Str("template_id", id).Bool("found", ok).Msg("approve")
	return ok
}

func (s *State) Reject(id, comment string) bool {
	ok := s.store.Reject(id, comment)
	s.log.Debug().Str("template_id", id).Bool("found", ok).Msg("reject")
	return ok
}

func (s *State) Delete(id string) bool {
	ok := s.store.Delete(id)
	if ok && s.router.SelectedTemplate() == id {
		s.router.ClearTemplate()
	}
	s.log.Debug().Str("template_id", id).Bool("found", ok).Msg("delete")
	return ok
}
