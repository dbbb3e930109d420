package domain

import "time"

// Folder is a user-defined grouping of channels, the unit of summarisation
// scope. Folders are created by the external ingestion process; this service
// never writes them.
type Folder struct {
	ID        int64      `db:"id" json:"id"`
	UserID    *int64     `db:"user_id" json:"user_id,omitempty"`
	Name      string     `db:"name" json:"name"`
	CreatedAt *time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Channel is a Telegram channel whose posts are ingested into the store.
type Channel struct {
	ID        int64      `db:"id" json:"id"`
	FolderID  int64      `db:"folder_id" json:"folder_id"`
	TGID      int64      `db:"tg_id" json:"tg_id"`
	Username  *string    `db:"username" json:"username,omitempty"`
	Title     *string    `db:"title" json:"title,omitempty"`
	CreatedAt *time.Time `db:"created_at" json:"created_at,omitempty"`
}

// Post is one ingested message. Posts are immutable once ingested.
type Post struct {
	ID        int64      `db:"id" json:"id"`
	ChannelID int64      `db:"channel_id" json:"channel_id"`
	TGPostID  int64      `db:"tg_post_id" json:"tg_post_id"`
	Date      time.Time  `db:"date" json:"date"`
	Text      *string    `db:"text" json:"text,omitempty"`
	Link      *string    `db:"link" json:"link,omitempty"`
	CreatedAt *time.Time `db:"created_at" json:"created_at,omitempty"`
}

// PostWithChannel is a post joined with the title and username of its channel.
type PostWithChannel struct {
	Post
	ChannelTitle    *string `db:"channel_title" json:"channel_title,omitempty"`
	ChannelUsername *string `db:"channel_username" json:"channel_username,omitempty"`
}
