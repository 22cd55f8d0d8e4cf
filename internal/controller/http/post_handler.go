package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"mural/internal/entity"
	"mural/internal/usecase"
	"mural/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 8
	maxLimit     = 50
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

func basePost(post *entity.Post) gin.H {
	return gin.H{
		"id":         post.ID,
		"author":     post.Author,
		"text":       post.Text,
		"community":  post.Community,
		"created_at": post.CreatedAt,
	}
}

func formatMedia(media []entity.Media) []gin.H {
	out := make([]gin.H, len(media))
	for i, m := range media {
		out[i] = gin.H{"url": m.URL(), "mime": m.Mime}
	}
	return out
}

func (h *PostHandler) formatFeedPost(post *entity.Post) gin.H {
	response := basePost(post)
	response["media"] = formatMedia(post.Media)
	response["reactions"] = post.Reactions
	response["comments_count"] = post.CommentsCount
	return response
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with optional text and up to 6 file attachments.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        text formData string false "Post text"
// @Param        author formData string false "Author name (defaults to Anônimo)"
// @Param        community formData string false "Community tag"
// @Param        files formData file false "Attachments (up to 6)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	text := c.PostForm("text")
	author := c.PostForm("author")
	community := c.PostForm("community")

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil {
		files = form.File["files"]
	}

	post, err := h.postUseCase.CreatePost(author, text, community, files)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "post": basePost(post)})
}

// ListPosts godoc
// @Summary      List posts
// @Description  Paginated feed, newest first, with media, reaction counts and comment totals.
// @Tags         posts
// @Produce      json
// @Param        page query int false "Page number (min 1, default 1)"
// @Param        limit query int false "Page size (1-50, default 8)"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page := defaultPage
	limit := defaultLimit

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 1 {
			page = p
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l >= 1 {
			limit = l
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	posts, err := h.postUseCase.ListPosts(page, limit)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	formatted := make([]gin.H, len(posts))
	for i, post := range posts {
		formatted[i] = h.formatFeedPost(post)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "page": page, "limit": limit, "posts": formatted})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Single post with its media list.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")

	post, err := h.postUseCase.GetPost(postID)
	if err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
			return
		}
		h.logger.Error("Failed to get post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	response := basePost(post)
	response["media"] = formatMedia(post.Media)
	c.JSON(http.StatusOK, gin.H{"success": true, "post": response})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Removes the post, its attachments and every reaction and comment on it.
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")

	if err := h.postUseCase.DeletePost(postID); err != nil {
		h.logger.Error("Failed to delete post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type addReactionRequest struct {
	Type string `json:"type"`
	User string `json:"user"`
}

// AddReaction godoc
// @Summary      React to a post
// @Description  Appends a reaction row. Repeated reactions are not deduplicated.
// @Tags         reactions
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body addReactionRequest false "Reaction"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts/{id}/reactions [post]
func (h *PostHandler) AddReaction(c *gin.Context) {
	postID := c.Param("id")

	var req addReactionRequest
	// Body is optional; missing fields fall back to defaults.
	_ = c.ShouldBindJSON(&req)

	id, err := h.postUseCase.AddReaction(postID, req.Type, req.User)
	if err != nil {
		h.logger.Error("Failed to add reaction to post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

type addCommentRequest struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// AddComment godoc
// @Summary      Comment on a post
// @Description  Appends a comment row. Empty text is rejected before anything is written.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body addCommentRequest true "Comment"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	postID := c.Param("id")

	var req addCommentRequest
	_ = c.ShouldBindJSON(&req)

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Texto vazio"})
		return
	}

	id, err := h.postUseCase.AddComment(postID, req.User, req.Text)
	if err != nil {
		h.logger.Error("Failed to add comment to post %s: %v", postID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
