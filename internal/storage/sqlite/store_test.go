package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

const testSchema = `
	CREATE TABLE folders (
		id INTEGER PRIMARY KEY,
		user_id BIGINT,
		name VARCHAR(128) NOT NULL,
		created_at DATETIME
	);
	CREATE TABLE channels (
		id INTEGER PRIMARY KEY,
		folder_id INTEGER,
		tg_id BIGINT NOT NULL,
		username VARCHAR(128),
		title VARCHAR(256),
		created_at DATETIME,
		FOREIGN KEY(folder_id) REFERENCES folders (id)
	);
	CREATE TABLE posts (
		id INTEGER PRIMARY KEY,
		channel_id INTEGER,
		tg_post_id BIGINT NOT NULL,
		date DATETIME NOT NULL,
		text TEXT,
		link VARCHAR(512),
		created_at DATETIME,
		FOREIGN KEY(channel_id) REFERENCES channels (id)
	);
`

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
	now   time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Now().UTC().Truncate(time.Second)

	path := filepath.Join(s.T().TempDir(), "tg_parser.db")
	s.seed(path)

	store, err := Open(path)
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TearDownTest() {
	if s.store != nil {
		s.NoError(s.store.Close())
	}
}

// seed writes the tg_parser schema and fixtures through a separate writable
// connection; the store under test opens the file query-only.
func (s *StoreTestSuite) seed(path string) {
	db, err := sqlx.Connect("sqlite", path)
	s.Require().NoError(err)
	defer db.Close()

	_, err = db.Exec(testSchema)
	s.Require().NoError(err)

	_, err = db.Exec(
		"INSERT INTO folders (id, user_id, name) VALUES (1, 10, 'Tech News'), (2, NULL, 'Crypto')")
	s.Require().NoError(err)

	_, err = db.Exec(`
		INSERT INTO channels (id, folder_id, tg_id, username, title) VALUES
			(1, 1, 1001, 'technews', 'Tech News Daily'),
			(2, 1, 1002, NULL, 'Private Channel'),
			(3, 2, 1003, 'cryptofeed', 'Crypto Feed')`)
	s.Require().NoError(err)

	type postRow struct {
		id, channelID, tgPostID int64
		date                    time.Time
		text, link              interface{}
	}
	rows := []postRow{
		{1, 1, 101, s.now.Add(-1 * time.Hour), "golang generics release announced", "https://t.me/technews/101"},
		{2, 1, 102, s.now.Add(-2 * time.Hour), "new golang compiler update", nil},
		{3, 2, 201, s.now.Add(-3 * time.Hour), "internal memo about roadmap", nil},
		{4, 1, 103, s.now.AddDate(0, 0, -10), "old post about conferences", nil},
		{5, 3, 301, s.now.Add(-30 * time.Minute), "bitcoin hits new high", nil},
	}
	for _, r := range rows {
		_, err = db.Exec(
			"INSERT INTO posts (id, channel_id, tg_post_id, date, text, link) VALUES (?, ?, ?, ?, ?, ?)",
			r.id, r.channelID, r.tgPostID, r.date, r.text, r.link)
		s.Require().NoError(err)
	}
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestFolders_OrderedByName() {
	folders, err := s.store.Folders(s.ctx)
	s.NoError(err)
	s.Require().Len(folders, 2)
	s.Equal("Crypto", folders[0].Name)
	s.Equal("Tech News", folders[1].Name)
	s.Nil(folders[0].UserID)
	s.Require().NotNil(folders[1].UserID)
	s.Equal(int64(10), *folders[1].UserID)
}

func (s *StoreTestSuite) TestFolder_Found() {
	folder, err := s.store.Folder(s.ctx, 1)
	s.NoError(err)
	s.Require().NotNil(folder)
	s.Equal("Tech News", folder.Name)
}

func (s *StoreTestSuite) TestFolder_NotFound() {
	folder, err := s.store.Folder(s.ctx, 999)
	s.NoError(err)
	s.Nil(folder)
}

func (s *StoreTestSuite) TestChannels_OrderedByTitle() {
	channels, err := s.store.Channels(s.ctx, 1)
	s.NoError(err)
	s.Require().Len(channels, 2)
	s.Equal("Private Channel", *channels[0].Title)
	s.Equal("Tech News Daily", *channels[1].Title)
	s.Nil(channels[0].Username)
	s.Require().NotNil(channels[1].Username)
	s.Equal("technews", *channels[1].Username)
}

func (s *StoreTestSuite) TestPostsByFolder_NewestFirst() {
	posts, err := s.store.PostsByFolder(s.ctx, 1, 0, 0)
	s.NoError(err)
	s.Require().Len(posts, 4)
	s.Equal(int64(1), posts[0].ID)
	s.Equal(int64(2), posts[1].ID)
	s.Equal(int64(3), posts[2].ID)
	s.Equal(int64(4), posts[3].ID)
}

func (s *StoreTestSuite) TestPostsByFolder_DaysBackFilter() {
	posts, err := s.store.PostsByFolder(s.ctx, 1, 0, 7)
	s.NoError(err)
	s.Len(posts, 3)
	for _, p := range posts {
		s.NotEqual(int64(4), p.ID)
	}
}

func (s *StoreTestSuite) TestPostsByFolder_Limit() {
	posts, err := s.store.PostsByFolder(s.ctx, 1, 2, 0)
	s.NoError(err)
	s.Require().Len(posts, 2)
	s.Equal(int64(1), posts[0].ID)
}

func (s *StoreTestSuite) TestPostsByFolder_Empty() {
	posts, err := s.store.PostsByFolder(s.ctx, 999, 0, 0)
	s.NoError(err)
	s.Empty(posts)
}

func (s *StoreTestSuite) TestPostsByChannel() {
	posts, err := s.store.PostsByChannel(s.ctx, 1, 0)
	s.NoError(err)
	s.Require().Len(posts, 3)
	s.Equal(int64(1), posts[0].ID)

	posts, err = s.store.PostsByChannel(s.ctx, 1, 1)
	s.NoError(err)
	s.Len(posts, 1)
}

func (s *StoreTestSuite) TestPostWithChannel() {
	post, err := s.store.PostWithChannel(s.ctx, 1)
	s.NoError(err)
	s.Require().NotNil(post)
	s.Require().NotNil(post.ChannelTitle)
	s.Equal("Tech News Daily", *post.ChannelTitle)
	s.Require().NotNil(post.ChannelUsername)
	s.Equal("technews", *post.ChannelUsername)

	missing, err := s.store.PostWithChannel(s.ctx, 999)
	s.NoError(err)
	s.Nil(missing)
}

func (s *StoreTestSuite) TestSearchPosts() {
	posts, err := s.store.SearchPosts(s.ctx, 1, "golang", 0)
	s.NoError(err)
	s.Require().Len(posts, 2)
	s.Equal(int64(1), posts[0].ID)
	s.Equal(int64(2), posts[1].ID)
}

func (s *StoreTestSuite) TestSearchPosts_ScopedToFolder() {
	posts, err := s.store.SearchPosts(s.ctx, 1, "bitcoin", 0)
	s.NoError(err)
	s.Empty(posts)
}

func (s *StoreTestSuite) TestSearchPosts_NoMatches() {
	posts, err := s.store.SearchPosts(s.ctx, 1, "nonexistent term", 0)
	s.NoError(err)
	s.Empty(posts)
}

func (s *StoreTestSuite) TestQueryOnly() {
	_, err := s.store.db.Exec("INSERT INTO folders (id, name) VALUES (99, 'nope')")
	s.Error(err)
}
