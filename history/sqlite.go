package history

import (
	"database/sql"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bankbuddy/bankbuddy/core"
)

// SQLiteStore is a durable core.HistoryStore backed by a local SQLite file.
// The schema is created on open. A single writer per session is assumed, as
// with every HistoryStore implementation.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (or creates) the database at dbPath and initializes
// the chat_history table.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err = createTables(db); err != nil {
		return nil, err
	}

	return &SQLiteStore{conn: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func createTables(db *sql.DB) error {
	// rowid keeps insertion order even if two entries land on the same
	// nanosecond timestamp.
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS chat_history (
			id TEXT NOT NULL,
			user_query TEXT NOT NULL,
			bot_response TEXT NOT NULL,
			matched_question_id TEXT,
			timestamp INTEGER NOT NULL,
			was_helpful BOOLEAN
		)
	`)
	return err
}

// LogInteraction appends a new entry for one completed turn.
func (s *SQLiteStore) LogInteraction(userQuery, botResponse string, matchedQuestionID *string) error {
	now := time.Now()
	var matched sql.NullString
	if matchedQuestionID != nil {
		matched = sql.NullString{String: *matchedQuestionID, Valid: true}
	}
	_, err := s.conn.Exec(
		"INSERT INTO chat_history (id, user_query, bot_response, matched_question_id, timestamp) VALUES (?, ?, ?, ?, ?)",
		strconv.FormatInt(now.UnixNano(), 10), userQuery, botResponse, matched, now.UnixNano(),
	)
	return err
}

// History returns all entries in insertion order.
func (s *SQLiteStore) History() ([]core.ChatHistoryEntry, error) {
	rows, err := s.conn.Query(`
		SELECT id, user_query, bot_response, matched_question_id, timestamp, was_helpful
		FROM chat_history
		ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []core.ChatHistoryEntry
	for rows.Next() {
		var (
			e       core.ChatHistoryEntry
			matched sql.NullString
			ts      int64
			helpful sql.NullBool
		)
		if err := rows.Scan(&e.ID, &e.UserQuery, &e.BotResponse, &matched, &ts, &helpful); err != nil {
			return nil, err
		}
		if matched.Valid {
			v := matched.String
			e.MatchedQuestionID = &v
		}
		if helpful.Valid {
			v := helpful.Bool
			e.WasHelpful = &v
		}
		e.Timestamp = time.Unix(0, ts).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// UnansweredQueries groups unmatched entries by normalized query text,
// sorted by count descending.
func (s *SQLiteStore) UnansweredQueries() ([]core.UnansweredQuery, error) {
	rows, err := s.conn.Query(`
		SELECT LOWER(TRIM(user_query)) AS query, COUNT(*) AS count
		FROM chat_history
		WHERE matched_question_id IS NULL
		GROUP BY query
		ORDER BY count DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []core.UnansweredQuery
	for rows.Next() {
		var q core.UnansweredQuery
		if err := rows.Scan(&q.Query, &q.Count); err != nil {
			return nil, err
		}
		result = append(result, q)
	}
	return result, rows.Err()
}

// MarkHelpfulness sets the WasHelpful flag on an existing entry.
func (s *SQLiteStore) MarkHelpfulness(id string, wasHelpful bool) error {
	res, err := s.conn.Exec(
		"UPDATE chat_history SET was_helpful = ? WHERE id = ?",
		wasHelpful, id,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}
