package entity

type Reaction struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	Type      string `json:"type"`
	User      string `json:"user"`
	CreatedAt int64  `json:"created_at"`
}
