package services

import (
	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/google/uuid"
)

type SessionState int

const (
	StateIdle SessionState = iota
	StateLoaded
	StateInProgress
	StateCompleted
)

// QuizSession drives one student's run through one quiz: load the
// questions, record answers while the student navigates, then score
// and persist everything in a single terminal write.
//
// A session is not safe for concurrent use; callers serialize access
// per attempt (see SessionManager).
type QuizSession struct {
	catalog Catalog
	store   AttemptStore

	state          SessionState
	quiz           *models.Quiz
	questions      []SessionQuestion
	attempt        *models.QuizAttempt
	currentIndex   int
	selectedAnswer *int
	answers        map[uuid.UUID]int
}

func NewQuizSession(catalog Catalog, store AttemptStore) *QuizSession {
	return &QuizSession{
		catalog: catalog,
		store:   store,
		answers: make(map[uuid.UUID]int),
	}
}

// LoadQuiz fetches the quiz and its questions (ordered by order index)
// and normalizes every question's options. On failure the previous
// session state is left untouched. Transient navigation state is not
// reset here; StartAttempt and Reset do that explicitly.
func (s *QuizSession) LoadQuiz(quizID uuid.UUID) error {
	quiz, err := s.catalog.QuizByID(quizID)
	if err != nil {
		return err
	}

	rows, err := s.catalog.QuestionsByQuiz(quizID)
	if err != nil {
		return err
	}

	questions := make([]SessionQuestion, 0, len(rows))
	for _, row := range rows {
		q, err := normalizeQuestion(row)
		if err != nil {
			return err
		}
		questions = append(questions, q)
	}

	s.quiz = quiz
	s.questions = questions
	if s.state == StateIdle {
		s.state = StateLoaded
	}
	return nil
}

// StartAttempt creates the attempt record, with total_questions taken
// from the already loaded question list, and clears all navigation
// and answer state from any previous run.
func (s *QuizSession) StartAttempt(userID uuid.UUID) (*models.QuizAttempt, error) {
	if s.quiz == nil || len(s.questions) == 0 {
		return nil, ErrQuizNotLoaded
	}

	attempt, err := s.store.CreateAttempt(userID, s.quiz.ID, len(s.questions))
	if err != nil {
		return nil, err
	}

	s.attempt = attempt
	s.currentIndex = 0
	s.selectedAnswer = nil
	s.answers = make(map[uuid.UUID]int)
	s.state = StateInProgress
	return attempt, nil
}

// SubmitAnswer records the chosen option for a question, overwriting
// any earlier choice. The index must fall inside the question's
// option list.
func (s *QuizSession) SubmitAnswer(questionID uuid.UUID, optionIndex int) error {
	if s.state != StateInProgress {
		return ErrNoActiveAttempt
	}

	question, ok := s.findQuestion(questionID)
	if !ok {
		return ErrUnknownQuestion
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return ErrInvalidAnswerIndex
	}

	s.answers[questionID] = optionIndex
	selected := optionIndex
	s.selectedAnswer = &selected
	return nil
}

// NextQuestion advances to the next question, restoring the answer
// recorded for it, if any. No-op at the last question.
func (s *QuizSession) NextQuestion() {
	if s.currentIndex >= len(s.questions)-1 {
		return
	}
	s.currentIndex++
	s.restoreSelection()
}

// PreviousQuestion is the mirror of NextQuestion. No-op at index 0.
func (s *QuizSession) PreviousQuestion() {
	if s.currentIndex <= 0 {
		return
	}
	s.currentIndex--
	s.restoreSelection()
}

// Complete scores the attempt and persists one response per question,
// answered or not, together with the final attempt totals in a single
// transactional write. The score is the sum of the point values of
// correctly answered questions; a blank question is always incorrect.
func (s *QuizSession) Complete(timeTakenSeconds int) (*models.QuizAttempt, error) {
	if s.state == StateCompleted {
		return nil, ErrAttemptCompleted
	}
	if s.state != StateInProgress || s.attempt == nil {
		return nil, ErrNoActiveAttempt
	}

	score := 0
	correctAnswers := 0
	responses := make([]models.QuestionResponse, 0, len(s.questions))
	for _, q := range s.questions {
		response := models.QuestionResponse{
			QuizAttemptID: s.attempt.ID,
			QuestionID:    q.ID,
		}
		if idx, ok := s.answers[q.ID]; ok {
			selected := idx
			response.SelectedOption = &selected
			response.IsCorrect = idx == q.CorrectAnswer
		}
		if response.IsCorrect {
			correctAnswers++
			score += q.Points
		}
		responses = append(responses, response)
	}

	updated, err := s.store.FinishAttempt(s.attempt.ID, responses, score, correctAnswers, timeTakenSeconds)
	if err != nil {
		return nil, err
	}

	s.attempt = updated
	s.state = StateCompleted
	return updated, nil
}

// Reset abandons the session and returns it to Idle. Any started but
// uncompleted attempt record stays behind; the stale-attempt sweep
// cleans those up.
func (s *QuizSession) Reset() {
	s.quiz = nil
	s.questions = nil
	s.attempt = nil
	s.currentIndex = 0
	s.selectedAnswer = nil
	s.answers = make(map[uuid.UUID]int)
	s.state = StateIdle
}

func (s *QuizSession) State() SessionState          { return s.state }
func (s *QuizSession) Quiz() *models.Quiz           { return s.quiz }
func (s *QuizSession) Questions() []SessionQuestion { return s.questions }
func (s *QuizSession) Attempt() *models.QuizAttempt { return s.attempt }
func (s *QuizSession) CurrentIndex() int            { return s.currentIndex }
func (s *QuizSession) SelectedAnswer() *int         { return s.selectedAnswer }

// CurrentQuestion returns the question at the navigation cursor.
func (s *QuizSession) CurrentQuestion() (SessionQuestion, bool) {
	if s.currentIndex < 0 || s.currentIndex >= len(s.questions) {
		return SessionQuestion{}, false
	}
	return s.questions[s.currentIndex], true
}

func (s *QuizSession) findQuestion(questionID uuid.UUID) (SessionQuestion, bool) {
	for _, q := range s.questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return SessionQuestion{}, false
}

func (s *QuizSession) restoreSelection() {
	q := s.questions[s.currentIndex]
	if idx, ok := s.answers[q.ID]; ok {
		selected := idx
		s.selectedAnswer = &selected
	} else {
		s.selectedAnswer = nil
	}
}
