package domain

import (
	"time"
)

// DeletedContentPlaceholder replaces a soft-deleted comment's content at
// render time. The stored content is never touched.
const DeletedContentPlaceholder = "**komentar telah dihapus**"

// CommentPayload carries raw client input for comment creation.
type CommentPayload struct {
	Content  any `json:"content"`
	UserId   any `json:"-"`
	ThreadId any `json:"-"`
}

// Comment is a validated comment ready to be persisted. Thread holds the
// parent thread id; it never changes after creation.
type Comment struct {
	Content string
	Owner   string
	Thread  string
}

func NewComment(p CommentPayload) (Comment, error) {
	fields := []struct {
		name  string
		value any
	}{
		{"content", p.Content},
		{"userId", p.UserId},
		{"threadId", p.ThreadId},
	}
	for _, f := range fields {
		if !present(f.value) {
			return Comment{}, missingField(f.name)
		}
	}

	content, err := asString("content", p.Content)
	if err != nil {
		return Comment{}, err
	}
	owner, err := asString("userId", p.UserId)
	if err != nil {
		return Comment{}, err
	}
	thread, err := asString("threadId", p.ThreadId)
	if err != nil {
		return Comment{}, err
	}
	return Comment{Content: content, Owner: owner, Thread: thread}, nil
}

// CreatedComment is the minimal confirmation returned after persisting.
type CreatedComment struct {
	Id      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// CommentRow is one comment as listed by storage, joined with the author's
// display name. IsDeleted is carried so rendering can apply redaction.
type CommentRow struct {
	Id        string
	Username  string
	Date      time.Time
	Content   string
	IsDeleted bool
}

// RenderedCommentPayload feeds NewRenderedComment. Untyped fields mirror the
// entity factories above: the projection validates its own input even when it
// comes from our own storage layer.
type RenderedCommentPayload struct {
	Id        any
	Username  any
	Date      any
	Content   any
	IsDeleted any
}

// RenderedComment is the presentation projection of a stored comment. The
// deletion flag is not retained, only its redaction effect.
type RenderedComment struct {
	Id       string    `json:"id"`
	Username string    `json:"username"`
	Date     time.Time `json:"date"`
	Content  string    `json:"content"`
}

// NewRenderedComment validates the row and applies redaction: when the source
// comment is deleted the content becomes DeletedContentPlaceholder, otherwise
// it is passed through verbatim. A deletion flag of exactly false is a valid
// value, not a missing one.
func NewRenderedComment(p RenderedCommentPayload) (RenderedComment, error) {
	fields := []struct {
		name  string
		value any
	}{
		{"id", p.Id},
		{"username", p.Username},
		{"date", p.Date},
		{"content", p.Content},
		{"isDeleted", p.IsDeleted},
	}
	for _, f := range fields {
		if !present(f.value) {
			return RenderedComment{}, missingField(f.name)
		}
	}
	// A zero time never comes out of storage; treat it as absent.
	if d, ok := p.Date.(time.Time); ok && d.IsZero() {
		return RenderedComment{}, missingField("date")
	}

	id, err := asString("id", p.Id)
	if err != nil {
		return RenderedComment{}, err
	}
	username, err := asString("username", p.Username)
	if err != nil {
		return RenderedComment{}, err
	}
	date, ok := p.Date.(time.Time)
	if !ok {
		return RenderedComment{}, typeMismatch("date")
	}
	content, err := asString("content", p.Content)
	if err != nil {
		return RenderedComment{}, err
	}
	isDeleted, ok := p.IsDeleted.(bool)
	if !ok {
		return RenderedComment{}, typeMismatch("isDeleted")
	}
	if isDeleted {
		content = DeletedContentPlaceholder
	}
	return RenderedComment{Id: id, Username: username, Date: date, Content: content}, nil
}
