package forms

import "strings"

// RejectDraft is the inline rejection box of the moderation queue. At most
// one template is being rejected at a time.
type RejectDraft struct {
	TargetID string
	Comment  string
}

// Open starts a rejection of id, discarding any earlier draft.
func (d *RejectDraft) Open(id string) {
	d.TargetID = id
	d.Comment = ""
}

func (d *RejectDraft) Cancel() {
	*d = RejectDraft{}
}

func (d RejectDraft) Active(id string) bool {
	return d.TargetID != "" && d.TargetID == id
}

// CanCommit reports whether the reviewer has written a reason.
func (d RejectDraft) CanCommit() bool {
	return d.TargetID != "" && strings.TrimSpace(d.Comment) != ""
}
