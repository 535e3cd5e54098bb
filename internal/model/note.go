package model

import (
	"time"
)

// Note is a study note attached to a content item. Importance runs from 1
// (background) to 5 (critical) and is enforced at construction; invalid
// notes never reach the rendering layer.
type Note struct {
	ID         string    `json:"id" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	Body       string    `json:"body"`
	Importance int       `json:"importance" validate:"min=1,max=5"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewNote constructs a validated Note. Out-of-range importance or missing
// identity fields fail fast with a ValidationError.
func NewNote(id, title, body string, importance int, tags ...string) (Note, error) {
	n := Note{
		ID:         id,
		Title:      title,
		Body:       body,
		Importance: importance,
		Tags:       tags,
		CreatedAt:  time.Now().UTC(),
	}
	if err := validateStruct(n); err != nil {
		return Note{}, err
	}
	return n, nil
}
