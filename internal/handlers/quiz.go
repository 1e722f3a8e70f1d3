package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/frageverk/internal/metrics"
	"github.com/shrimpsizemoose/frageverk/internal/models"
)

// questionView is what the quiz page gets to see: it has no field for
// the correct answer, so the answer key cannot leak into the payload.
type questionView struct {
	ID      int
	Prompt  string
	Options []string
}

type quizView struct {
	Username  string
	Questions []questionView
}

type resultsView struct {
	Username string
	MaxScore int
	Scores   []models.Score
}

func (h *QuizHandler) HandleQuizPage(w http.ResponseWriter, r *http.Request, userID int64, username, sid string) {
	start := time.Now()
	defer func() {
		metrics.HTTPRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(time.Since(start).Seconds())
	}()

	selection, err := h.service.IssueQuiz(r.Context(), sid)
	if err != nil {
		logger.Error.Printf("Failed to issue quiz for %s: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	metrics.QuizzesIssuedTotal.Inc()

	questions := make([]questionView, 0, len(selection))
	for _, q := range selection {
		questions = append(questions, questionView{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options,
		})
	}
	// Selection is a map; give the page a stable display order.
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })

	h.render(w, "quiz.html", quizView{Username: username, Questions: questions})
}

func (h *QuizHandler) HandleQuizSubmit(w http.ResponseWriter, r *http.Request, userID int64, username, sid string) {
	start := time.Now()
	defer func() {
		metrics.HTTPRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"303",
		).Observe(time.Since(start).Seconds())
	}()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	// Answer fields are named by question id; anything else in the form
	// is not an answer.
	answers := make(map[int]string)
	for field, values := range r.PostForm {
		id, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		if len(values) > 0 {
			answers[id] = values[0]
		}
	}

	total, err := h.service.SubmitQuiz(r.Context(), sid, userID, answers)
	if err != nil {
		logger.Error.Printf("Failed to grade submission for %s: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	metrics.QuizSubmissionsTotal.Inc()
	metrics.QuizScoreHistogram.Observe(float64(total))

	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

func (h *QuizHandler) HandleResults(w http.ResponseWriter, r *http.Request, userID int64, username, sid string) {
	scores, err := h.service.ListScores(userID)
	if err != nil {
		logger.Error.Printf("Failed to list scores for %s: %v", username, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, "results.html", resultsView{
		Username: username,
		MaxScore: h.service.Config.Quiz.QuestionsPerQuiz,
		Scores:   scores,
	})
}
