package persistent

import (
	"mural/internal/entity"
	"mural/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		Author:    m.Author,
		Text:      m.Text,
		Community: m.Community,
		CreatedAt: m.CreatedAt,
	}

	if len(m.Media) > 0 {
		post.Media = make([]entity.Media, len(m.Media))
		for i, md := range m.Media {
			post.Media[i] = ToMediaEntity(&md)
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	post := &model.PostModel{
		ID:        e.ID,
		Author:    e.Author,
		Text:      e.Text,
		Community: e.Community,
		CreatedAt: e.CreatedAt,
	}

	if len(e.Media) > 0 {
		post.Media = make([]model.MediaModel, len(e.Media))
		for i, md := range e.Media {
			post.Media[i] = *ToMediaModel(&md)
		}
	}

	return post
}

func ToMediaEntity(m *model.MediaModel) entity.Media {
	if m == nil {
		return entity.Media{}
	}

	return entity.Media{
		ID:       m.ID,
		PostID:   m.PostID,
		Filename: m.Filename,
		Mime:     m.Mime,
	}
}

func ToMediaModel(e *entity.Media) *model.MediaModel {
	if e == nil {
		return nil
	}

	return &model.MediaModel{
		ID:       e.ID,
		PostID:   e.PostID,
		Filename: e.Filename,
		Mime:     e.Mime,
	}
}

func ToReactionEntity(m *model.ReactionModel) *entity.Reaction {
	if m == nil {
		return nil
	}

	return &entity.Reaction{
		ID:        m.ID,
		PostID:    m.PostID,
		Type:      m.Type,
		User:      m.User,
		CreatedAt: m.CreatedAt,
	}
}

func ToReactionModel(e *entity.Reaction) *model.ReactionModel {
	if e == nil {
		return nil
	}

	return &model.ReactionModel{
		ID:        e.ID,
		PostID:    e.PostID,
		Type:      e.Type,
		User:      e.User,
		CreatedAt: e.CreatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		User:      m.User,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		User:      e.User,
		Text:      e.Text,
		CreatedAt: e.CreatedAt,
	}
}
