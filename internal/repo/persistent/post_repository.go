package persistent

import (
	"errors"

	"mural/internal/entity"
	"mural/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List(limit, offset int) ([]*entity.Post, error)
	Delete(id string) error
	MediaByPostID(postID string) ([]entity.Media, error)
	ReactionCountsByPost(postIDs []string) (map[string]map[string]int64, error)
	CommentCountsByPost(postIDs []string) (map[string]int64, error)
	CreateReaction(reaction *entity.Reaction) error
	CreateComment(comment *entity.Comment) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		media := postModel.Media
		postModel.Media = nil

		if err := tx.Create(postModel).Error; err != nil {
			return err
		}

		for i := range media {
			media[i].PostID = postModel.ID
			if media[i].ID == "" {
				media[i].ID = uuid.New().String()
			}
			if err := tx.Create(&media[i]).Error; err != nil {
				return err
			}
		}
		postModel.Media = media

		*post = *ToPostEntity(postModel)
		return nil
	})
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Preload("Media").Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(limit, offset int) ([]*entity.Post, error) {
	var postModels []model.PostModel
	query := r.db.Preload("Media").Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

// Delete removes the post and everything that hangs off it in one
// transaction. Deleting an id with no matching rows is not an error.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.MediaModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.ReactionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PostModel{}).Error
	})
}

func (r *postRepository) MediaByPostID(postID string) ([]entity.Media, error) {
	var mediaModels []model.MediaModel
	if err := r.db.Where("post_id = ?", postID).Find(&mediaModels).Error; err != nil {
		return nil, err
	}

	media := make([]entity.Media, len(mediaModels))
	for i := range mediaModels {
		media[i] = ToMediaEntity(&mediaModels[i])
	}
	return media, nil
}

// ReactionCountsByPost returns, for each post id, the number of reaction
// rows grouped by type. Posts and types with no reactions are absent.
func (r *postRepository) ReactionCountsByPost(postIDs []string) (map[string]map[string]int64, error) {
	counts := make(map[string]map[string]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID string
		Type   string
		Count  int64
	}
	err := r.db.Model(&model.ReactionModel{}).
		Select("post_id, type, count(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if counts[row.PostID] == nil {
			counts[row.PostID] = make(map[string]int64)
		}
		counts[row.PostID][row.Type] = row.Count
	}
	return counts, nil
}

func (r *postRepository) CommentCountsByPost(postIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID string
		Count  int64
	}
	err := r.db.Model(&model.CommentModel{}).
		Select("post_id, count(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

func (r *postRepository) CreateReaction(reaction *entity.Reaction) error {
	reactionModel := ToReactionModel(reaction)
	if err := r.db.Create(reactionModel).Error; err != nil {
		return err
	}
	*reaction = *ToReactionEntity(reactionModel)
	return nil
}

func (r *postRepository) CreateComment(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}
