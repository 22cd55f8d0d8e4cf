package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mural/internal/entity"
	"mural/internal/usecase"
	"mural/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(author, text, community string, files []*multipart.FileHeader) (*entity.Post, error) {
	args := m.Called(author, text, community, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(page, limit int) ([]*entity.Post, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(postID string) error {
	args := m.Called(postID)
	return args.Error(0)
}

func (m *MockPostUseCase) AddReaction(postID, reactionType, user string) (string, error) {
	args := m.Called(postID, reactionType, user)
	return args.String(0), args.Error(1)
}

func (m *MockPostUseCase) AddComment(postID, user, text string) (string, error) {
	args := m.Called(postID, user, text)
	return args.String(0), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func setupTestRouter(handler *PostHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/posts", handler.CreatePost)
		api.GET("/posts", handler.ListPosts)
		api.GET("/posts/:id", handler.GetPost)
		api.DELETE("/posts/:id", handler.DeletePost)
		api.POST("/posts/:id/reactions", handler.AddReaction)
		api.POST("/posts/:id/comments", handler.AddComment)
	}
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func TestCreatePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockPost := &entity.Post{
		ID:        "post-123",
		Author:    "Bob",
		Text:      "hi",
		CreatedAt: 1700000000000,
	}
	mockUseCase.On("CreatePost", "Bob", "hi", "", mock.Anything).Return(mockPost, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("text", "hi")
	writer.WriteField("author", "Bob")
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, true, response["success"])

	post := response["post"].(map[string]interface{})
	assert.Equal(t, "post-123", post["id"])
	assert.Equal(t, "Bob", post["author"])
	assert.NotContains(t, post, "media")

	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_StoreError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockUseCase.On("CreatePost", "", "oops", "", mock.Anything).Return(nil, errors.New("disk full"))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.WriteField("text", "oops")
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "disk full", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestListPosts_Defaults(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	posts := []*entity.Post{
		{
			ID:            "post-1",
			Author:        "Anônimo",
			Text:          "first",
			Reactions:     map[string]int64{"like": 2},
			CommentsCount: 1,
			Media:         []entity.Media{{Filename: "123_abc.png", Mime: "image/png"}},
		},
	}
	mockUseCase.On("ListPosts", 1, 8).Return(posts, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/posts", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, float64(1), response["page"])
	assert.Equal(t, float64(8), response["limit"])

	items := response["posts"].([]interface{})
	assert.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), item["comments_count"])
	assert.Equal(t, map[string]interface{}{"like": float64(2)}, item["reactions"])

	media := item["media"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "/uploads/123_abc.png", media["url"])
	assert.Equal(t, "image/png", media["mime"])

	mockUseCase.AssertExpectations(t)
}

func TestListPosts_ClampsPageAndLimit(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockUseCase.On("ListPosts", 1, 50).Return([]*entity.Post{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/posts?page=0&limit=100", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, float64(1), response["page"])
	assert.Equal(t, float64(50), response["limit"])

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockPost := &entity.Post{
		ID:     "post-1",
		Author: "alice",
		Text:   "hello",
		Media:  []entity.Media{{Filename: "999_xyz.jpg", Mime: "image/jpeg"}},
	}
	mockUseCase.On("GetPost", "post-1").Return(mockPost, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	post := response["post"].(map[string]interface{})
	assert.Equal(t, "alice", post["author"])
	assert.NotContains(t, post, "reactions")
	assert.NotContains(t, post, "comments_count")

	media := post["media"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "/uploads/999_xyz.jpg", media["url"])

	mockUseCase.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockUseCase.On("GetPost", "missing").Return(nil, entity.ErrPostNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/posts/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "not found", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockUseCase.On("DeletePost", "post-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, true, response["success"])

	mockUseCase.AssertExpectations(t)
}

func TestDeletePost_StoreError(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockUseCase.On("DeletePost", "post-1").Return(errors.New("locked"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/posts/post-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddReaction_EmptyBodyUsesDefaults(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	// Handler passes raw values through; defaulting happens in the use case.
	mockUseCase.On("AddReaction", "post-1", "", "").Return("reaction-1", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/post-1/reactions", nil)
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "reaction-1", response["id"])

	mockUseCase.AssertExpectations(t)
}

func TestAddReaction_WithBody(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockUseCase.On("AddReaction", "post-1", "wow", "carol").Return("reaction-2", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/post-1/reactions", bytes.NewBufferString(`{"type":"wow","user":"carol"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestAddComment_Success(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	mockUseCase.On("AddComment", "post-1", "A", "nice").Return("comment-1", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/post-1/comments", bytes.NewBufferString(`{"user":"A","text":"nice"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "comment-1", response["id"])

	mockUseCase.AssertExpectations(t)
}

func TestAddComment_EmptyText(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, logger.New())
	router := setupTestRouter(handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/posts/post-1/comments", bytes.NewBufferString(`{"user":"A","text":""}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Texto vazio", response["error"])

	mockUseCase.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything)
}
