package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"mural/internal/entity"
	"mural/internal/repo/persistent"
	"mural/pkg/config"
	"mural/pkg/database"
	"mural/pkg/logger"
	"mural/pkg/storage"
)

// Seeds the database with demo posts (cat images from CATAAS), reactions
// and comments so the feed has something to show during development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()

	db, err := database.NewSQLiteDB(cfg)
	if err != nil {
		log.Error("Failed to open database: %v", err)
		panic(err)
	}

	storageClient, err := storage.NewClient(cfg.UploadsDir)
	if err != nil {
		log.Error("Failed to prepare uploads directory: %v", err)
		panic(err)
	}

	repo := persistent.NewPostRepository(db)

	if err := seedDatabase(repo, storageClient, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(repo persistent.PostRepository, storageClient *storage.Client, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	authors := []string{"alice", "bob", "charlie"}
	communities := []string{"gatos", "", "fotografia"}

	for i, author := range authors {
		post, err := createPostWithCatImage(repo, storageClient, httpClient, author, communities[i], i, log)
		if err != nil {
			log.Error("Failed to create post for %s: %v", author, err)
			continue
		}

		for _, reactionType := range []string{"like", "like", "wow"} {
			reaction := &entity.Reaction{PostID: post.ID, Type: reactionType, User: author}
			if err := repo.CreateReaction(reaction); err != nil {
				log.Error("Failed to create reaction: %v", err)
			}
		}

		comment := &entity.Comment{PostID: post.ID, User: "anonymous", Text: fmt.Sprintf("Nice one, %s!", author)}
		if err := repo.CreateComment(comment); err != nil {
			log.Error("Failed to create comment: %v", err)
		}

		time.Sleep(200 * time.Millisecond)
	}

	return nil
}

func createPostWithCatImage(repo persistent.PostRepository, storageClient *storage.Client, httpClient *http.Client, author, community string, index int, log *logger.Logger) (*entity.Post, error) {
	cataasURL := "https://cataas.com/cat"
	if index%2 == 0 {
		cataasURL += fmt.Sprintf("/says/Hello from %s", author)
	}

	log.Info("Fetching cat image from %s", cataasURL)
	resp, err := httpClient.Get(cataasURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("received empty image data")
	}

	stored, err := storageClient.Save(bytes.NewReader(imageData), fmt.Sprintf("seed_%d.jpg", index), "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	post := &entity.Post{
		Author:    author,
		Text:      fmt.Sprintf("Cat post #%d by %s", index+1, author),
		Community: community,
		Media: []entity.Media{
			{Filename: stored.Filename, Mime: stored.Mime},
		},
	}

	if err := repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.Info("Created post %s by %s", post.ID, author)
	return post, nil
}
