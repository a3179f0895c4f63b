package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forum-hub/forum-hub/internal/domain/comment"
	"github.com/forum-hub/forum-hub/internal/domain/reaction"
)

// CommentRepository implements comment.Repository.
type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (topic_id, author_id, body, like_count, dislike_count, version, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, c.TopicID, c.AuthorID, c.Text, c.LikeCount, c.DislikeCount, c.Version, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (*comment.Comment, error) {
	var c comment.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, topic_id, author_id, body, like_count, dislike_count, version, created_at
		FROM comments WHERE id=$1
	`, id).Scan(&c.ID, &c.TopicID, &c.AuthorID, &c.Text, &c.LikeCount, &c.DislikeCount, &c.Version, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reaction.ErrNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if c.LikedBy, err = loadMembers(ctx, r.pool, "comment_likes", "comment_id", id); err != nil {
		return nil, err
	}
	if c.DislikedBy, err = loadMembers(ctx, r.pool, "comment_dislikes", "comment_id", id); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save persists counters and membership in one transaction. The version
// check detects concurrent updates; a stale version surfaces as
// reaction.ErrConflict with nothing applied.
func (r *CommentRepository) Save(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE comments
		SET body=$1, like_count=$2, dislike_count=$3, version=version+1
		WHERE id=$4 AND version=$5
	`, c.Text, c.LikeCount, c.DislikeCount, c.ID, c.Version)
	if err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, staleOrMissing(ctx, tx, "comments", c.ID)
	}

	if err := syncMembers(ctx, tx, "comment_likes", "comment_id", c.ID, c.LikedBy); err != nil {
		return nil, err
	}
	if err := syncMembers(ctx, tx, "comment_dislikes", "comment_id", c.ID, c.DislikedBy); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("save comment: %w", err)
	}
	c.Version++
	return c, nil
}

func (r *CommentRepository) ListByTopic(ctx context.Context, topicID int64) ([]*comment.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, topic_id, author_id, body, like_count, dislike_count, version, created_at
		FROM comments WHERE topic_id=$1 ORDER BY created_at ASC
	`, topicID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()
	var out []*comment.Comment
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.TopicID, &c.AuthorID, &c.Text, &c.LikeCount, &c.DislikeCount, &c.Version, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
