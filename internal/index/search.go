package index

// SearchResult is a single full-text search hit.
type SearchResult struct {
	ID    int64
	Path  string
	Title string
	Rank  float64
}

// Backlink is one link pointing at a page, with its origin.
type Backlink struct {
	SourcePath  string
	SourceTitle string
	TargetPage  string // page name as written in the source note
	Line        int
	Col         int
}

// Search performs a full-text search across indexed notes.
func (db *DB) Search(query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.conn.Query(`
		SELECT n.id, n.path, n.title, rank
		FROM notes_fts
		JOIN notes n ON n.id = notes_fts.rowid
		WHERE notes_fts MATCH ?
		ORDER BY rank
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []SearchResult
	for rows.Next() {
		var r SearchResult
		if err := rows.Scan(&r.ID, &r.Path, &r.Title, &r.Rank); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Backlinks returns every link whose target matches the page, either by
// the page name as written or by its normalized file name. A flat index
// lookup; no graph walking.
func (db *DB) Backlinks(pageName, fileName string) ([]Backlink, error) {
	rows, err := db.conn.Query(`
		SELECT n.path, n.title, l.target_page, l.line, l.col
		FROM links l
		JOIN notes n ON n.id = l.source_id
		WHERE l.target_page = ? OR l.target_file = ?
		ORDER BY n.path, l.line
	`, pageName, fileName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var links []Backlink
	for rows.Next() {
		var b Backlink
		if err := rows.Scan(&b.SourcePath, &b.SourceTitle, &b.TargetPage, &b.Line, &b.Col); err != nil {
			return nil, err
		}
		links = append(links, b)
	}
	return links, rows.Err()
}
