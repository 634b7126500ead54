package domain

import (
	"time"
)

// ThreadPayload carries raw client input for thread creation. Fields stay
// untyped so NewThread owns the missing-vs-wrong-type distinction instead of
// the JSON decoder rejecting the body outright.
type ThreadPayload struct {
	Title any `json:"title"`
	Body  any `json:"body"`
	Owner any `json:"-"`
}

// Thread is a validated, immutable thread ready to be persisted.
type Thread struct {
	Title string
	Body  string
	Owner string
}

// NewThread validates the payload and returns the thread value. Validation
// happens here, not in the storage layer, so every caller handles the failure
// at the call site.
func NewThread(p ThreadPayload) (Thread, error) {
	fields := []struct {
		name  string
		value any
	}{
		{"title", p.Title},
		{"body", p.Body},
		{"owner", p.Owner},
	}
	for _, f := range fields {
		if !present(f.value) {
			return Thread{}, missingField(f.name)
		}
	}

	title, err := asString("title", p.Title)
	if err != nil {
		return Thread{}, err
	}
	body, err := asString("body", p.Body)
	if err != nil {
		return Thread{}, err
	}
	owner, err := asString("owner", p.Owner)
	if err != nil {
		return Thread{}, err
	}
	return Thread{Title: title, Body: body, Owner: owner}, nil
}

// CreatedThread is the minimal confirmation returned after persisting.
type CreatedThread struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ThreadRow is a thread's public fields joined with the owner's display name,
// as fetched by storage.
type ThreadRow struct {
	Id       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

// ThreadDetail is the read-model aggregate: the thread's public fields plus
// its rendered comments in creation order. Built once, never mutated.
type ThreadDetail struct {
	Id       string            `json:"id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Date     time.Time         `json:"date"`
	Username string            `json:"username"`
	Comments []RenderedComment `json:"comments"`
}

func NewThreadDetail(row ThreadRow, comments []RenderedComment) ThreadDetail {
	return ThreadDetail{
		Id:       row.Id,
		Title:    row.Title,
		Body:     row.Body,
		Date:     row.Date,
		Username: row.Username,
		Comments: comments,
	}
}
