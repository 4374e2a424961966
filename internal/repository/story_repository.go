package repository

import (
	"database/sql"

	"github.com/keepitcheesy/agente/internal/model"
)

type StoryRepository struct {
	db *sql.DB
}

func NewStoryRepository(db *sql.DB) *StoryRepository {
	return &StoryRepository{db: db}
}

// SaveStory archives an accepted story. Returns false when the guid was
// already archived.
func (r *StoryRepository) SaveStory(story *model.Story) (bool, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO story(guid, title, summary, link, source, publisher, image_url, published_at, fetched_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (guid) DO NOTHING
		RETURNING id
	`, story.GUID, story.Title, story.Summary, story.Link, story.Source, story.Publisher, story.ImageURL, story.PublishedAt, story.FetchedAt).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *StoryRepository) GetByGUID(guid string) (*model.Story, error) {
	var s model.Story
	err := r.db.QueryRow(`
		SELECT guid, title, summary, link, source, publisher, image_url, published_at, fetched_at
		FROM story
		WHERE guid = $1
	`, guid).Scan(&s.GUID, &s.Title, &s.Summary, &s.Link, &s.Source, &s.Publisher, &s.ImageURL, &s.PublishedAt, &s.FetchedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *StoryRepository) ListRecent(limit int) ([]model.Story, error) {
	rows, err := r.db.Query(`
		SELECT guid, title, summary, link, source, publisher, image_url, published_at, fetched_at
		FROM story
		ORDER BY fetched_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stories []model.Story
	for rows.Next() {
		var s model.Story
		err := rows.Scan(&s.GUID, &s.Title, &s.Summary, &s.Link, &s.Source, &s.Publisher, &s.ImageURL, &s.PublishedAt, &s.FetchedAt)
		if err != nil {
			return nil, err
		}
		stories = append(stories, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stories, nil
}
