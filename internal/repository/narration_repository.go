package repository

import (
	"database/sql"

	"github.com/keepitcheesy/agente/internal/model"
)

type NarrationRepository struct {
	db *sql.DB
}

func NewNarrationRepository(db *sql.DB) *NarrationRepository {
	return &NarrationRepository{db: db}
}

func (r *NarrationRepository) SaveNarration(rec *model.NarrationRecord) error {
	return r.db.QueryRow(`
		INSERT INTO narration(story_guid, anchor_name, text, voice, audio_path, video_path, cache_hit, episode_id)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, rec.StoryGUID, rec.AnchorName, rec.Text, rec.Voice, rec.AudioPath, rec.VideoPath, rec.CacheHit, rec.EpisodeID).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *NarrationRepository) ListRecent(limit int) ([]model.NarrationRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, story_guid, anchor_name, text, voice, audio_path, video_path, cache_hit, episode_id, created_at
		FROM narration
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.NarrationRecord
	for rows.Next() {
		var rec model.NarrationRecord
		err := rows.Scan(&rec.ID, &rec.StoryGUID, &rec.AnchorName, &rec.Text, &rec.Voice, &rec.AudioPath, &rec.VideoPath, &rec.CacheHit, &rec.EpisodeID, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
