package entity

type Comment struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	User      string `json:"user"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"created_at"`
}
