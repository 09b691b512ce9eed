package index

import (
	"database/sql"
)

// SearchResult represents a single catalog match.
type SearchResult struct {
	ID    int64
	Name  string
	Title string
	Date  string
	Rank  float64
}

// TagCount represents a tag and the number of posts referencing it.
type TagCount struct {
	Slug  string
	Name  string
	Count int
}

// Search performs a full-text search across post titles, summaries, tags
// and headings.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.conn.Query(`
		SELECT p.id, p.name, p.title, p.date, rank
		FROM posts_fts
		JOIN posts p ON p.id = posts_fts.rowid
		WHERE posts_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}
	return scanResults(rows)
}

// PostsByTag returns the posts carrying a tag slug, most recent first.
func (db *DB) PostsByTag(slug string) ([]SearchResult, error) {
	rows, err := db.conn.Query(`
		SELECT p.id, p.name, p.title, p.date, 0 as rank
		FROM posts p
		JOIN post_tags pt ON pt.post_id = p.id
		JOIN tags t ON t.id = pt.tag_id
		WHERE t.slug = ?
		ORDER BY p.date DESC, p.id
	`, slug)
	if err != nil {
		return nil, err
	}
	return scanResults(rows)
}

// ListTags returns all tags, most referenced first.
func (db *DB) ListTags() ([]TagCount, error) {
	rows, err := db.conn.Query(`
		SELECT t.slug, t.name, COUNT(pt.post_id) AS n
		FROM tags t
		LEFT JOIN post_tags pt ON pt.tag_id = t.id
		GROUP BY t.id
		ORDER BY n DESC, t.id
	`)
	if err != nil {
		return nil, err
	}

	var results []TagCount
	for rows.Next() {
		var r TagCount
		if err := rows.Scan(&r.Slug, &r.Name, &r.Count); err != nil {
			_ = rows.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanResults(rows *sql.Rows) ([]SearchResult, error) {
	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.Title, &r.Date, &r.Rank); err != nil {
			_ = rows.Close()
			return nil, err
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	return results, nil
}
