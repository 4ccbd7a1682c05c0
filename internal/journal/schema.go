package journal

// Schema DDL for the edit journal. The database is kept across sessions, so
// every statement is idempotent.
const schemaSQL = `CREATE TABLE IF NOT EXISTS edits (
    edit_id TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    member TEXT NOT NULL,
    before_value TEXT NOT NULL,
    after_value TEXT NOT NULL,
    edited_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_edits_edited_at ON edits(edited_at);`

const (
	insertEdit = `INSERT INTO edits (edit_id, path, member, before_value, after_value, edited_at)
VALUES (?, ?, ?, ?, ?, ?)`

	selectEdits = `SELECT edit_id, path, member, before_value, after_value, edited_at
FROM edits ORDER BY edited_at DESC, rowid DESC LIMIT ?`
)
