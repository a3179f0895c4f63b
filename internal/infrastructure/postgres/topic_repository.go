package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forum-hub/forum-hub/internal/domain/reaction"
	"github.com/forum-hub/forum-hub/internal/domain/topic"
)

// TopicRepository implements topic.Repository.
type TopicRepository struct {
	pool *pgxpool.Pool
}

func NewTopicRepository(pool *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{pool: pool}
}

func (r *TopicRepository) Create(ctx context.Context, t *topic.Topic) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO topics (title, content, author_id, moderated, like_count, dislike_count, version, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`, t.Title, t.Content, t.AuthorID, t.Moderated, t.LikeCount, t.DislikeCount, t.Version, t.CreatedAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *TopicRepository) FindByID(ctx context.Context, id int64) (*topic.Topic, error) {
	var t topic.Topic
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, content, author_id, moderated, like_count, dislike_count, version, created_at
		FROM topics WHERE id=$1
	`, id).Scan(&t.ID, &t.Title, &t.Content, &t.AuthorID, &t.Moderated, &t.LikeCount, &t.DislikeCount, &t.Version, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reaction.ErrNotFound
		}
		return nil, fmt.Errorf("find topic: %w", err)
	}
	if t.LikedBy, err = loadMembers(ctx, r.pool, "topic_likes", "topic_id", id); err != nil {
		return nil, err
	}
	if t.DislikedBy, err = loadMembers(ctx, r.pool, "topic_dislikes", "topic_id", id); err != nil {
		return nil, err
	}
	return &t, nil
}

// Save persists counters and membership in one transaction; see
// CommentRepository.Save for the versioning contract.
func (r *TopicRepository) Save(ctx context.Context, t *topic.Topic) (*topic.Topic, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("save topic: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE topics
		SET title=$1, content=$2, moderated=$3, like_count=$4, dislike_count=$5, version=version+1
		WHERE id=$6 AND version=$7
	`, t.Title, t.Content, t.Moderated, t.LikeCount, t.DislikeCount, t.ID, t.Version)
	if err != nil {
		return nil, fmt.Errorf("save topic: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, staleOrMissing(ctx, tx, "topics", t.ID)
	}

	if err := syncMembers(ctx, tx, "topic_likes", "topic_id", t.ID, t.LikedBy); err != nil {
		return nil, err
	}
	if err := syncMembers(ctx, tx, "topic_dislikes", "topic_id", t.ID, t.DislikedBy); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("save topic: %w", err)
	}
	t.Version++
	return t, nil
}

func (r *TopicRepository) ListModerated(ctx context.Context, limit, offset int) ([]*topic.Topic, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, author_id, moderated, like_count, dislike_count, version, created_at
		FROM topics WHERE moderated ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()
	var out []*topic.Topic
	for rows.Next() {
		var t topic.Topic
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &t.AuthorID, &t.Moderated, &t.LikeCount, &t.DislikeCount, &t.Version, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// IncrementLikes is the fast-path counter bump. It advances the version
// so an in-flight toggle save observes the increment as a conflict
// instead of overwriting the counter.
func (r *TopicRepository) IncrementLikes(ctx context.Context, topicID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		UPDATE topics SET like_count = like_count + 1, version = version + 1
		WHERE id=$1 RETURNING like_count
	`, topicID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, reaction.ErrNotFound
		}
		return 0, fmt.Errorf("increment topic likes: %w", err)
	}
	return count, nil
}
