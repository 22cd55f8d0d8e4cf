package usecase

import (
	"fmt"
	"mime/multipart"

	"mural/internal/entity"
	"mural/internal/repo/persistent"
	"mural/pkg/logger"
	"mural/pkg/storage"
)

const (
	maxMediaPerPost = 6

	defaultAuthor       = "Anônimo"
	defaultReactionType = "like"
	defaultUser         = "anonymous"
)

type PostUseCase interface {
	CreatePost(author, text, community string, files []*multipart.FileHeader) (*entity.Post, error)
	ListPosts(page, limit int) ([]*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	DeletePost(postID string) error
	AddReaction(postID, reactionType, user string) (string, error)
	AddComment(postID, user, text string) (string, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	storage  *storage.Client
	logger   *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, storageClient *storage.Client, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		storage:  storageClient,
		logger:   logger,
	}
}

func (uc *postUseCase) CreatePost(author, text, community string, files []*multipart.FileHeader) (*entity.Post, error) {
	if author == "" {
		author = defaultAuthor
	}

	if len(files) > maxMediaPerPost {
		return nil, fmt.Errorf("maximum %d files allowed per post", maxMediaPerPost)
	}

	var media []entity.Media
	for _, file := range files {
		stored, err := uc.storage.SaveFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to store file: %w", err)
		}
		media = append(media, entity.Media{
			Filename: stored.Filename,
			Mime:     stored.Mime,
		})
	}

	post := &entity.Post{
		Author:    author,
		Text:      text,
		Community: community,
		Media:     media,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// ListPosts returns one feed page, newest first, with media, per-type
// reaction counts and comment totals attached. The related lookups are
// batched per page rather than issued per post.
func (uc *postUseCase) ListPosts(page, limit int) ([]*entity.Post, error) {
	offset := (page - 1) * limit

	posts, err := uc.postRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}

	postIDs := make([]string, len(posts))
	for i, post := range posts {
		postIDs[i] = post.ID
	}

	reactionCounts, err := uc.postRepo.ReactionCountsByPost(postIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := uc.postRepo.CommentCountsByPost(postIDs)
	if err != nil {
		return nil, err
	}

	for _, post := range posts {
		post.Reactions = reactionCounts[post.ID]
		if post.Reactions == nil {
			post.Reactions = map[string]int64{}
		}
		post.CommentsCount = commentCounts[post.ID]
	}

	return posts, nil
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	return uc.postRepo.GetByID(postID)
}

// DeletePost removes the post's attachment files from disk, then its media,
// reaction and comment rows together with the post row in one transaction.
// Filesystem failures are logged and skipped; the rows are removed anyway.
func (uc *postUseCase) DeletePost(postID string) error {
	media, err := uc.postRepo.MediaByPostID(postID)
	if err != nil {
		return err
	}

	for _, m := range media {
		if err := uc.storage.DeleteFile(m.Filename); err != nil {
			uc.logger.Warn("Failed to delete attachment %s: %v", m.Filename, err)
		}
	}

	return uc.postRepo.Delete(postID)
}

func (uc *postUseCase) AddReaction(postID, reactionType, user string) (string, error) {
	if reactionType == "" {
		reactionType = defaultReactionType
	}
	if user == "" {
		user = defaultUser
	}

	reaction := &entity.Reaction{
		PostID: postID,
		Type:   reactionType,
		User:   user,
	}

	if err := uc.postRepo.CreateReaction(reaction); err != nil {
		return "", err
	}
	return reaction.ID, nil
}

func (uc *postUseCase) AddComment(postID, user, text string) (string, error) {
	if user == "" {
		user = defaultUser
	}

	comment := &entity.Comment{
		PostID: postID,
		User:   user,
		Text:   text,
	}

	if err := uc.postRepo.CreateComment(comment); err != nil {
		return "", err
	}
	return comment.ID, nil
}
