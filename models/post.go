package models

import "time"

// Post is a short text entry in the feed.
//
// Author and AuthorID are stamped from the verified identity of the creator,
// never from client input. JSON field names follow the feed frontend.
type Post struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"authorId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
