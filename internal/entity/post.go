package entity

import "errors"

// ErrPostNotFound is returned when a post id has no matching row.
var ErrPostNotFound = errors.New("post not found")

type Post struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Community string `json:"community"`
	CreatedAt int64  `json:"created_at"`

	Media         []Media          `json:"media,omitempty"`
	Reactions     map[string]int64 `json:"reactions,omitempty"`
	CommentsCount int64            `json:"comments_count"`
}

type Media struct {
	ID       string `json:"id"`
	PostID   string `json:"post_id"`
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
}

// URL is the public path the file is served under.
func (m Media) URL() string {
	return "/uploads/" + m.Filename
}
