// Package sqlite reads the schema owned by the tg_parser ingestion process.
// The store never writes: folders, channels and posts are created elsewhere.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"tg_summariser/internal/domain"
)

type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at path. The connection is marked
// query-only since this service holds no ownership of the schema.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	// Single connection keeps the pragma below applied to every query.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set query_only: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Folders returns all folders ordered by name.
func (s *Store) Folders(ctx context.Context) ([]domain.Folder, error) {
	var folders []domain.Folder
	err := s.db.SelectContext(ctx, &folders,
		"SELECT id, user_id, name, created_at FROM folders ORDER BY name")
	if err != nil {
		return nil, err
	}
	return folders, nil
}

// Folder returns one folder, or nil when no folder has the given id.
func (s *Store) Folder(ctx context.Context, id int64) (*domain.Folder, error) {
	var folder domain.Folder
	err := s.db.GetContext(ctx, &folder,
		"SELECT id, user_id, name, created_at FROM folders WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

// Channels returns the channels in a folder ordered by title.
func (s *Store) Channels(ctx context.Context, folderID int64) ([]domain.Channel, error) {
	var channels []domain.Channel
	err := s.db.SelectContext(ctx, &channels, `
		SELECT id, folder_id, tg_id, username, title, created_at
		FROM channels
		WHERE folder_id = ?
		ORDER BY title`,
		folderID)
	if err != nil {
		return nil, err
	}
	return channels, nil
}

const postColumns = "p.id, p.channel_id, p.tg_post_id, p.date, p.text, p.link, p.created_at"

// PostsByFolder returns the posts of all channels in a folder, newest first.
// A positive daysBack restricts to posts dated within the last daysBack days;
// a positive limit caps the row count.
func (s *Store) PostsByFolder(ctx context.Context, folderID int64, limit, daysBack int) ([]domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN channels c ON p.channel_id = c.id
		WHERE c.folder_id = ?`
	args := []interface{}{folderID}

	if daysBack > 0 {
		cutoff := time.Now().AddDate(0, 0, -daysBack)
		query += " AND p.date >= ?"
		args = append(args, cutoff)
	}

	query += " ORDER BY p.date DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var posts []domain.Post
	if err := s.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsByChannel returns the posts of one channel, newest first, capped to
// limit when positive.
func (s *Store) PostsByChannel(ctx context.Context, channelID int64, limit int) ([]domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		WHERE p.channel_id = ?
		ORDER BY p.date DESC`
	args := []interface{}{channelID}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var posts []domain.Post
	if err := s.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostWithChannel returns one post joined with its channel metadata, or nil
// when absent.
func (s *Store) PostWithChannel(ctx context.Context, postID int64) (*domain.PostWithChannel, error) {
	var post domain.PostWithChannel
	err := s.db.GetContext(ctx, &post, `
		SELECT `+postColumns+`, c.title AS channel_title, c.username AS channel_username
		FROM posts p
		JOIN channels c ON p.channel_id = c.id
		WHERE p.id = ?`,
		postID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SearchPosts returns the posts in a folder whose text contains term as a
// substring, newest first. A non-positive limit falls back to 50.
func (s *Store) SearchPosts(ctx context.Context, folderID int64, term string, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 50
	}

	var posts []domain.Post
	err := s.db.SelectContext(ctx, &posts, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN channels c ON p.channel_id = c.id
		WHERE c.folder_id = ? AND p.text LIKE ?
		ORDER BY p.date DESC
		LIMIT ?`,
		folderID, "%"+term+"%", limit)
	if err != nil {
		return nil, err
	}
	return posts, nil
}
