package index

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL DEFAULT '',
    has_title INTEGER NOT NULL DEFAULT 0,
    date TEXT NOT NULL,
    summary TEXT NOT NULL DEFAULT ''
);

CREATE VIRTUAL TABLE IF NOT EXISTS posts_fts USING fts5(
    title, summary, tags, headings,
    tokenize='porter unicode61 remove_diacritics 2'
);

CREATE TABLE IF NOT EXISTS tags (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS post_tags (
    post_id INTEGER REFERENCES posts(id) ON DELETE CASCADE,
    tag_id INTEGER REFERENCES tags(id) ON DELETE CASCADE,
    PRIMARY KEY (post_id, tag_id)
);

CREATE TABLE IF NOT EXISTS headings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
    level INTEGER NOT NULL,
    text TEXT NOT NULL,
    line INTEGER NOT NULL
);
`

// DB wraps the SQLite catalog connection.
type DB struct {
	conn *sql.DB
}

// Open opens or creates the catalog at the given path.
func Open(path string) (*DB, error) {
	return open(path + "?_pragma=foreign_keys(on)")
}

// OpenMemory opens an in-memory catalog (for testing).
func OpenMemory() (*DB, error) {
	return open(":memory:?_pragma=foreign_keys(on)")
}

func open(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// A second pooled connection to :memory: would see an empty database.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			return nil, fmt.Errorf("init schema: %w (close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// InsertPost adds a post row and returns its ID.
func (db *DB) InsertPost(name, title string, hasTitle bool, date, summary string) (int64, error) {
	res, err := db.conn.Exec(`
		INSERT INTO posts (name, title, has_title, date, summary)
		VALUES (?, ?, ?, ?, ?)
	`, name, title, hasTitle, date, summary)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateFTS replaces the full-text entry for a post.
func (db *DB) UpdateFTS(postID int64, title, summary, tags, headings string) error {
	if _, err := db.conn.Exec("DELETE FROM posts_fts WHERE rowid = ?", postID); err != nil {
		return err
	}
	_, err := db.conn.Exec("INSERT INTO posts_fts(rowid, title, summary, tags, headings) VALUES(?, ?, ?, ?, ?)",
		postID, title, summary, tags, headings)
	return err
}

// UpsertTag ensures a tag exists and returns its ID. The display name of
// an existing tag is left unchanged.
func (db *DB) UpsertTag(slug, name string) (int64, error) {
	_, err := db.conn.Exec("INSERT OR IGNORE INTO tags (slug, name) VALUES (?, ?)", slug, name)
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.conn.QueryRow("SELECT id FROM tags WHERE slug = ?", slug).Scan(&id)
	return id, err
}

// LinkPostTag associates a tag with a post.
func (db *DB) LinkPostTag(postID, tagID int64) error {
	_, err := db.conn.Exec("INSERT OR IGNORE INTO post_tags (post_id, tag_id) VALUES (?, ?)", postID, tagID)
	return err
}

// InsertHeading adds a heading record.
func (db *DB) InsertHeading(postID int64, level int, text string, line int) error {
	_, err := db.conn.Exec("INSERT INTO headings (post_id, level, text, line) VALUES (?, ?, ?, ?)",
		postID, level, text, line)
	return err
}
