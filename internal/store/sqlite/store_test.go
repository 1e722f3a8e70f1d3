package sqlite

import (
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/frageverk/internal/models"
	"github.com/shrimpsizemoose/frageverk/internal/store"
)

// setupTestDB creates an in-memory SQLite database and initializes schema
func setupTestDB(t *testing.T) (*SQLiteStore, func()) {
	// Create tables directly instead of using migrations for tests
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		score INTEGER NOT NULL CHECK (score >= 0),
		user_id INTEGER NOT NULL REFERENCES users(id)
	);`

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err, "Failed to create store")

	_, err = s.DB.Exec(schema)
	require.NoError(t, err, "Failed to create schema")

	cleanup := func() {
		err := s.Close()
		require.NoError(t, err, "Failed to close database")
	}

	return s, cleanup
}

func mustCreateUser(t *testing.T, s *SQLiteStore, username, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
	require.NoError(t, s.CreateUser(user))
	require.NotZero(t, user.ID)
	return user
}

func countUsers(t *testing.T, s *SQLiteStore) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB.Get(&n, "SELECT COUNT(*) FROM users"))
	return n
}

func TestMain(m *testing.M) {
	log.Println("Starting SQLite store tests...")
	code := m.Run()
	log.Println("Finished SQLite store tests")
	os.Exit(code)
}

func TestCreateAndGetUser(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	user := mustCreateUser(t, s, "alice", "alice@example.com")

	t.Run("get by email", func(t *testing.T) {
		got, err := s.GetUserByEmail("alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, user.PasswordHash, got.PasswordHash)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := s.GetUserByID(user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice@example.com", got.Email)
	})

	t.Run("unknown email yields no user and no error", func(t *testing.T) {
		got, err := s.GetUserByEmail("nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestFindByUsernameOrEmail(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreateUser(t, s, "alice", "alice@example.com")

	t.Run("matches on username alone", func(t *testing.T) {
		got, err := s.FindByUsernameOrEmail("alice", "other@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("matches on email alone", func(t *testing.T) {
		got, err := s.FindByUsernameOrEmail("bob", "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := s.FindByUsernameOrEmail("bob", "bob@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCreateUserConflict(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreateUser(t, s, "alice", "alice@example.com")

	t.Run("duplicate username", func(t *testing.T) {
		err := s.CreateUser(&models.User{
			Username:     "alice",
			Email:        "new@example.com",
			PasswordHash: "x",
		})
		assert.ErrorIs(t, err, store.ErrConflict)
		assert.Equal(t, 1, countUsers(t, s), "conflicting insert must not add a row")
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := s.CreateUser(&models.User{
			Username:     "alice2",
			Email:        "alice@example.com",
			PasswordHash: "x",
		})
		assert.ErrorIs(t, err, store.ErrConflict)
		assert.Equal(t, 1, countUsers(t, s))
	})
}

func TestScoreOperations(t *testing.T) {
	s, cleanup := setupTestDB(t)
	defer cleanup()

	alice := mustCreateUser(t, s, "alice", "alice@example.com")
	bob := mustCreateUser(t, s, "bob", "bob@example.com")

	t.Run("create scores", func(t *testing.T) {
		for _, v := range []int{12, 30, 0} {
			score := &models.Score{Score: v, UserID: alice.ID}
			require.NoError(t, s.CreateScore(score))
			require.NotZero(t, score.ID)
		}
	})

	t.Run("list returns only own scores in insertion order", func(t *testing.T) {
		require.NoError(t, s.CreateScore(&models.Score{Score: 7, UserID: bob.ID}))

		scores, err := s.ListScores(alice.ID)
		require.NoError(t, err)
		require.Len(t, scores, 3)
		assert.Equal(t, 12, scores[0].Score)
		assert.Equal(t, 30, scores[1].Score)
		assert.Equal(t, 0, scores[2].Score)
		for _, sc := range scores {
			assert.Equal(t, alice.ID, sc.UserID)
		}
	})

	t.Run("no scores yields empty list", func(t *testing.T) {
		carol := mustCreateUser(t, s, "carol", "carol@example.com")
		scores, err := s.ListScores(carol.ID)
		require.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("score must reference an existing user", func(t *testing.T) {
		err := s.CreateScore(&models.Score{Score: 5, UserID: 424242})
		assert.Error(t, err)
	})
}
