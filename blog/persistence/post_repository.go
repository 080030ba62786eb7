package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/dfryer1193/factsdaily/blog/domain"
	"github.com/dfryer1193/factsdaily/shared/db"
)

var _ domain.PostLedger = (*SQLitePostRepository)(nil)

// ErrPostNotFound is returned by GetPost when no post exists for a date.
var ErrPostNotFound = errors.New("post not found")

// SQLitePostRepository records generated posts and rotation advances in SQLite
type SQLitePostRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewPostRepository creates a new SQLitePostRepository from a standard sql.DB
func NewPostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db:  db,
		now: time.Now,
	}
}

const upsertPostQuery = `
	INSERT INTO posts (date, title, fact, fact_index, html_path, updated_at, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(date) DO UPDATE SET
		title = excluded.title,
		fact = excluded.fact,
		fact_index = excluded.fact_index,
		html_path = excluded.html_path,
		updated_at = excluded.updated_at,
		created_at = COALESCE(posts.created_at, excluded.created_at)
`

const insertRotationQuery = `
	INSERT INTO rotations (post_date, fact_index, rotated_at)
	VALUES (?, ?, ?)
`

// RecordPost upserts the post row and appends a rotation row in one transaction
func (r *SQLitePostRepository) RecordPost(ctx context.Context, p *domain.Post) error {
	if p == nil {
		return fmt.Errorf("post cannot be nil")
	}

	if p.Date == "" {
		return fmt.Errorf("post date cannot be empty")
	}

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}
	updatedAt := r.now().UTC()

	return db.RunInTransaction(ctx, r.db, func(txCtx context.Context, ex db.Executor) error {
		_, err := ex.ExecContext(txCtx, upsertPostQuery,
			p.Date,
			p.Title,
			p.Fact,
			p.FactIndex,
			path.Join(postsDirName, p.Filename),
			updatedAt,
			createdAt,
		)
		if err != nil {
			return fmt.Errorf("%w: failed to upsert post: %w", domain.ErrIO, err)
		}

		_, err = ex.ExecContext(txCtx, insertRotationQuery, p.Date, p.FactIndex, updatedAt)
		if err != nil {
			return fmt.Errorf("%w: failed to record rotation: %w", domain.ErrIO, err)
		}

		return nil
	})
}

const getPostQuery = `
		SELECT date, title, fact, fact_index, html_path, updated_at, created_at
		FROM posts
		WHERE date = ?
`

// GetPost retrieves a single post by date
func (r *SQLitePostRepository) GetPost(ctx context.Context, date string) (*LedgerPost, error) {
	if date == "" {
		return nil, fmt.Errorf("post date cannot be empty")
	}

	var row postRow
	err := db.GetExecutor(ctx, r.db).QueryRowContext(ctx, getPostQuery, date).Scan(
		&row.Date,
		&row.Title,
		&row.Fact,
		&row.FactIndex,
		&row.HTMLPath,
		&row.UpdatedAt,
		&row.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, date)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return row.toLedgerPost(), nil
}

const listPostsQuery = `
	SELECT date, title, fact, fact_index, html_path, updated_at, created_at
	FROM posts
	ORDER BY date DESC
	LIMIT ? OFFSET ?
`

// ListPosts retrieves recorded posts ordered by date descending
func (r *SQLitePostRepository) ListPosts(ctx context.Context, limit, offset int) ([]*LedgerPost, error) {
	if limit <= 0 {
		limit = 10 // Default limit
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := db.GetExecutor(ctx, r.db).QueryContext(ctx, listPostsQuery, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*LedgerPost, 0)
	for rows.Next() {
		var row postRow
		err := rows.Scan(
			&row.Date,
			&row.Title,
			&row.Fact,
			&row.FactIndex,
			&row.HTMLPath,
			&row.UpdatedAt,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, row.toLedgerPost())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return posts, nil
}

// CountRotations returns how many times the rotation has advanced
func (r *SQLitePostRepository) CountRotations(ctx context.Context) (int, error) {
	var n int
	if err := db.GetExecutor(ctx, r.db).QueryRowContext(ctx, "SELECT COUNT(*) FROM rotations").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rotations: %w", err)
	}
	return n, nil
}

// LedgerPost is a post as recorded in the ledger
type LedgerPost struct {
	Date      string
	Title     string
	Fact      string
	FactIndex int
	HTMLPath  string
	UpdatedAt time.Time
	CreatedAt time.Time
}

// postRow is a private struct used to scan database rows
type postRow struct {
	Date      string       `db:"date"`
	Title     string       `db:"title"`
	Fact      string       `db:"fact"`
	FactIndex int          `db:"fact_index"`
	HTMLPath  string       `db:"html_path"`
	UpdatedAt sql.NullTime `db:"updated_at"`
	CreatedAt sql.NullTime `db:"created_at"`
}

func (pr *postRow) toLedgerPost() *LedgerPost {
	post := &LedgerPost{
		Date:      pr.Date,
		Title:     pr.Title,
		Fact:      pr.Fact,
		FactIndex: pr.FactIndex,
		HTMLPath:  pr.HTMLPath,
	}

	if pr.UpdatedAt.Valid {
		post.UpdatedAt = pr.UpdatedAt.Time
	}
	if pr.CreatedAt.Valid {
		post.CreatedAt = pr.CreatedAt.Time
	}

	return post
}
