package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/frageverk/internal/models"
	"github.com/shrimpsizemoose/frageverk/internal/quiz"
	"github.com/shrimpsizemoose/frageverk/internal/session"
)

// IssueQuiz samples a fresh selection and parks it in the session,
// replacing whatever selection was there before.
func (s *Service) IssueQuiz(ctx context.Context, sid string) (quiz.Selection, error) {
	selection := quiz.Sample(s.Bank, s.Config.Quiz.QuestionsPerQuiz)

	payload, err := json.Marshal(selection)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selection: %w", err)
	}
	if err := s.Sessions.Set(ctx, sid, session.KeyQuiz, string(payload)); err != nil {
		return nil, fmt.Errorf("failed to store selection in session: %w", err)
	}

	return selection, nil
}

// SubmitQuiz grades the session's stored selection against the
// submitted answers and appends one Score row. A session without a
// stored selection (expired, or a POST with no prior page load) grades
// an empty selection and records 0 rather than failing.
func (s *Service) SubmitQuiz(ctx context.Context, sid string, userID int64, answers map[int]string) (int, error) {
	raw, err := s.Sessions.Get(ctx, sid, session.KeyQuiz)
	if err != nil {
		return 0, fmt.Errorf("failed to read selection from session: %w", err)
	}

	selection := quiz.Selection{}
	if raw == "" {
		logger.Debug.Printf("Submission without a stored quiz for session %s, grading empty selection", sid)
	} else if err := json.Unmarshal([]byte(raw), &selection); err != nil {
		return 0, fmt.Errorf("failed to decode stored selection: %w", err)
	}

	total := quiz.ComputeScore(selection, answers)

	score := &models.Score{Score: total, UserID: userID}
	if err := s.Store.CreateScore(score); err != nil {
		return 0, fmt.Errorf("failed to persist score: %w", err)
	}

	// The next GET overwrites the selection anyway, but a consumed quiz
	// should not be gradable twice.
	if err := s.Sessions.Delete(ctx, sid, session.KeyQuiz); err != nil {
		logger.Debug.Printf("Failed to clear consumed quiz for session %s: %v", sid, err)
	}

	return total, nil
}

// ListScores returns the user's full score history in submission order.
func (s *Service) ListScores(userID int64) ([]models.Score, error) {
	scores, err := s.Store.ListScores(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	return scores, nil
}
