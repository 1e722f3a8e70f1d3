package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/frageverk/internal/models"
)

// ErrConflict reports an attempt to register a username or email that
// already exists, whether caught by the pre-insert lookup or by the
// unique constraint when two registrations race.
var ErrConflict = errors.New("username or email already exists")

type AccountStore interface {
	Close() error
	ApplyMigrations(dir string) error

	CreateUser(user *models.User) error
	FindByUsernameOrEmail(username, email string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)

	CreateScore(score *models.Score) error
	ListScores(userID int64) ([]models.Score, error)
}

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

func (s *BaseStore) FindByUsernameOrEmail(username, email string) (*models.User, error) {
	var user models.User
	query := s.Converter(`
		SELECT id, username, email, password_hash
		FROM users
		WHERE username = ?
		OR email = ?
		LIMIT 1
	`)

	err := s.DB.Get(&user, query, username, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up username/email: %w", err)
	}
	return &user, nil
}

func (s *BaseStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := s.Converter(`
		SELECT id, username, email, password_hash
		FROM users
		WHERE email = ?
	`)

	err := s.DB.Get(&user, query, email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (s *BaseStore) GetUserByID(id int64) (*models.User, error) {
	var user models.User
	query := s.Converter(`
		SELECT id, username, email, password_hash
		FROM users
		WHERE id = ?
	`)

	err := s.DB.Get(&user, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// ListScores returns all scores for a user. Scores are append-only, so
// ascending id order is submission order.
func (s *BaseStore) ListScores(userID int64) ([]models.Score, error) {
	var scores []models.Score
	query := s.Converter(`
		SELECT id, score, user_id
		FROM scores
		WHERE user_id = ?
		ORDER BY id ASC
	`)

	err := s.DB.Select(&scores, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return scores, nil
}
