// internal/store/sqlite.go
package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sca-trainer/backend/internal/domain/consultation"
	"github.com/sca-trainer/backend/internal/domain/patientcase"
	"github.com/sca-trainer/backend/internal/domain/user"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cases (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    presenting TEXT NOT NULL,
    context TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS consultations (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    case_id TEXT NOT NULL,
    transcript TEXT NOT NULL,
    domain_scores TEXT NOT NULL,
    overall REAL NOT NULL,
    is_shared INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id),
    FOREIGN KEY (case_id) REFERENCES cases(id)
);

CREATE TABLE IF NOT EXISTS peer_comments (
    id TEXT PRIMARY KEY,
    consultation_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    comment TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (consultation_id) REFERENCES consultations(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Users
// ============================================================================

func (s *SQLiteStore) SaveUser(u *user.User) error {
	_, err := s.db.Exec(
		"INSERT INTO users (id, first_name, last_name, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.FirstName, u.LastName, u.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) GetUser(id string) (*user.User, error) {
	var u user.User
	var createdAt string

	err := s.db.QueryRow("SELECT id, first_name, last_name, created_at FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.FirstName, &u.LastName, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &u, nil
}

// ============================================================================
// Cases
// ============================================================================

func (s *SQLiteStore) SaveCase(c *patientcase.Case) error {
	_, err := s.db.Exec(
		"INSERT INTO cases (id, name, age, presenting, context, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		c.ID, c.Patient.Name, c.Patient.Age, c.Patient.Presenting, c.Patient.Context,
		c.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) GetCase(id string) (*patientcase.Case, error) {
	var c patientcase.Case
	var createdAt string

	err := s.db.QueryRow("SELECT id, name, age, presenting, context, created_at FROM cases WHERE id = ?", id).
		Scan(&c.ID, &c.Patient.Name, &c.Patient.Age, &c.Patient.Presenting, &c.Patient.Context, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}

func (s *SQLiteStore) ListCases() ([]*patientcase.Case, error) {
	rows, err := s.db.Query("SELECT id, name, age, presenting, context, created_at FROM cases ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cases []*patientcase.Case
	for rows.Next() {
		var c patientcase.Case
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Patient.Name, &c.Patient.Age, &c.Patient.Presenting, &c.Patient.Context, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		cases = append(cases, &c)
	}
	return cases, nil
}

func (s *SQLiteStore) DeleteCase(id string) error {
	result, err := s.db.Exec("DELETE FROM cases WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ============================================================================
// Consultations
// ============================================================================

func (s *SQLiteStore) SaveConsultation(c *consultation.Consultation) error {
	scoresJSON, err := json.Marshal(c.Result.Domains)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		"INSERT INTO consultations (id, user_id, case_id, transcript, domain_scores, overall, is_shared, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.UserID, c.CaseID, c.Transcript, string(scoresJSON), c.Result.Overall,
		boolToInt(c.IsShared), c.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) GetConsultation(id string) (*consultation.Consultation, error) {
	row := s.db.QueryRow(
		"SELECT id, user_id, case_id, transcript, domain_scores, overall, is_shared, created_at FROM consultations WHERE id = ?",
		id,
	)
	c, err := scanConsultation(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *SQLiteStore) ListConsultationsByUser(userID string) ([]*consultation.Consultation, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, case_id, transcript, domain_scores, overall, is_shared, created_at FROM consultations WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectConsultations(rows)
}

func (s *SQLiteStore) ListSharedConsultations() ([]*consultation.Consultation, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, case_id, transcript, domain_scores, overall, is_shared, created_at FROM consultations WHERE is_shared = 1 ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectConsultations(rows)
}

func (s *SQLiteStore) SetConsultationShared(id string, shared bool) error {
	result, err := s.db.Exec("UPDATE consultations SET is_shared = ? WHERE id = ?", boolToInt(shared), id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultation(row rowScanner) (*consultation.Consultation, error) {
	var c consultation.Consultation
	var scoresJSON, createdAt string
	var isShared int

	err := row.Scan(&c.ID, &c.UserID, &c.CaseID, &c.Transcript, &scoresJSON, &c.Result.Overall, &isShared, &createdAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(scoresJSON), &c.Result.Domains); err != nil {
		return nil, err
	}
	c.IsShared = isShared != 0
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}

func collectConsultations(rows *sql.Rows) ([]*consultation.Consultation, error) {
	var consultations []*consultation.Consultation
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		consultations = append(consultations, c)
	}
	return consultations, rows.Err()
}

// ============================================================================
// Peer comments
// ============================================================================

func (s *SQLiteStore) SaveComment(c *consultation.PeerComment) error {
	_, err := s.db.Exec(
		"INSERT INTO peer_comments (id, consultation_id, user_id, comment, created_at) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.ConsultationID, c.UserID, c.Comment, c.CreatedAt.Format(time.RFC3339),
	)
	return err
}

func (s *SQLiteStore) ListComments(consultationID string) ([]*consultation.PeerComment, error) {
	rows, err := s.db.Query(
		"SELECT id, consultation_id, user_id, comment, created_at FROM peer_comments WHERE consultation_id = ? ORDER BY created_at",
		consultationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*consultation.PeerComment
	for rows.Next() {
		var c consultation.PeerComment
		var createdAt string
		if err := rows.Scan(&c.ID, &c.ConsultationID, &c.UserID, &c.Comment, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// ============================================================================
// Stats
// ============================================================================

func (s *SQLiteStore) GetStats() (*Stats, error) {
	var st Stats

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM users", &st.Users},
		{"SELECT COUNT(*) FROM cases", &st.Cases},
		{"SELECT COUNT(*) FROM consultations", &st.Consultations},
		{"SELECT COUNT(*) FROM consultations WHERE is_shared = 1", &st.Shared},
	}
	for _, c := range counts {
		if err := s.db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	return &st, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
