package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an append-only journal entry recording a message a user sent
// through the registry. Entries are never mutated after creation.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage stamps a message entry with a fresh id and the current time.
func NewMessage(username, content string) Message {
	return Message{
		ID:        uuid.New(),
		Username:  username,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// SearchQuery is an append-only journal entry recording a help-article search
// a user performed. Entries are never mutated after creation.
type SearchQuery struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Query     string    `json:"query"`
	Timestamp time.Time `json:"timestamp"`
}

// NewSearchQuery stamps a search-query entry with a fresh id and the current
// time.
func NewSearchQuery(username, query string) SearchQuery {
	return SearchQuery{
		ID:        uuid.New(),
		Username:  username,
		Query:     query,
		Timestamp: time.Now(),
	}
}
