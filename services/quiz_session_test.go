package services

import (
	"errors"
	"testing"
	"time"

	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type fakeCatalog struct {
	quiz      *models.Quiz
	questions []models.Question
	err       error
}

func (f *fakeCatalog) QuizByID(id uuid.UUID) (*models.Quiz, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.quiz, nil
}

func (f *fakeCatalog) QuestionsByQuiz(quizID uuid.UUID) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type fakeAttemptStore struct {
	created   *models.QuizAttempt
	finished  *models.QuizAttempt
	responses []models.QuestionResponse
	createErr error
	finishErr error
}

func (f *fakeAttemptStore) CreateAttempt(userID, quizID uuid.UUID, totalQuestions int) (*models.QuizAttempt, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &models.QuizAttempt{
		ID:             uuid.New(),
		UserID:         userID,
		QuizID:         quizID,
		TotalQuestions: totalQuestions,
		StartedAt:      time.Now(),
	}
	return f.created, nil
}

func (f *fakeAttemptStore) FinishAttempt(attemptID uuid.UUID, responses []models.QuestionResponse, score, correctAnswers, timeTakenSeconds int) (*models.QuizAttempt, error) {
	if f.finishErr != nil {
		return nil, f.finishErr
	}
	f.responses = responses
	now := time.Now()
	f.finished = &models.QuizAttempt{
		ID:               attemptID,
		UserID:           f.created.UserID,
		QuizID:           f.created.QuizID,
		Score:            score,
		TotalQuestions:   f.created.TotalQuestions,
		CorrectAnswers:   correctAnswers,
		TimeTakenSeconds: &timeTakenSeconds,
		StartedAt:        f.created.StartedAt,
		CompletedAt:      &now,
	}
	return f.finished, nil
}

func testQuestion(quizID uuid.UUID, order, correct, points int) models.Question {
	return models.Question{
		ID:            uuid.New(),
		QuizID:        quizID,
		QuestionText:  "question",
		Options:       datatypes.JSON(`["A","B","C","D"]`),
		CorrectAnswer: correct,
		Points:        points,
		OrderIndex:    order,
	}
}

// threeQuestionSession builds a loaded, in-progress session over a
// quiz with points 1, 1, 2 and correct answers 0, 1, 2.
func threeQuestionSession(t *testing.T) (*QuizSession, *fakeAttemptStore) {
	t.Helper()

	quizID := uuid.New()
	catalog := &fakeCatalog{
		quiz: &models.Quiz{ID: quizID, Title: "Fractions", Subject: "math", Grade: 4, IsActive: true},
		questions: []models.Question{
			testQuestion(quizID, 0, 0, 1),
			testQuestion(quizID, 1, 1, 1),
			testQuestion(quizID, 2, 2, 2),
		},
	}
	store := &fakeAttemptStore{}

	session := NewQuizSession(catalog, store)
	if err := session.LoadQuiz(quizID); err != nil {
		t.Fatalf("LoadQuiz: %v", err)
	}
	if _, err := session.StartAttempt(uuid.New()); err != nil {
		t.Fatalf("StartAttempt: %v", err)
	}
	return session, store
}

func TestLoadQuizFailureLeavesStateUntouched(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("quiz not found")}
	session := NewQuizSession(catalog, &fakeAttemptStore{})

	if err := session.LoadQuiz(uuid.New()); err == nil {
		t.Fatal("expected LoadQuiz to fail")
	}
	if session.State() != StateIdle {
		t.Errorf("state = %v, want StateIdle", session.State())
	}
	if session.Quiz() != nil || session.Questions() != nil {
		t.Error("failed load should not set quiz or questions")
	}
}

func TestStartAttemptRequiresLoadedQuiz(t *testing.T) {
	session := NewQuizSession(&fakeCatalog{}, &fakeAttemptStore{})
	if _, err := session.StartAttempt(uuid.New()); !errors.Is(err, ErrQuizNotLoaded) {
		t.Errorf("err = %v, want ErrQuizNotLoaded", err)
	}
}

func TestStartAttemptFailureKeepsAttemptNil(t *testing.T) {
	quizID := uuid.New()
	catalog := &fakeCatalog{
		quiz:      &models.Quiz{ID: quizID},
		questions: []models.Question{testQuestion(quizID, 0, 0, 1)},
	}
	store := &fakeAttemptStore{createErr: errors.New("insert failed")}
	session := NewQuizSession(catalog, store)

	if err := session.LoadQuiz(quizID); err != nil {
		t.Fatalf("LoadQuiz: %v", err)
	}
	if _, err := session.StartAttempt(uuid.New()); err == nil {
		t.Fatal("expected StartAttempt to fail")
	}
	if session.Attempt() != nil {
		t.Error("failed StartAttempt must not set the attempt")
	}
	if session.State() != StateLoaded {
		t.Errorf("state = %v, want StateLoaded", session.State())
	}
}

func TestSubmitAnswerOverwrites(t *testing.T) {
	session, _ := threeQuestionSession(t)
	q1 := session.Questions()[0].ID

	if err := session.SubmitAnswer(q1, 2); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := session.SubmitAnswer(q1, 0); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	if got := session.answers[q1]; got != 0 {
		t.Errorf("answers[q1] = %d, want 0", got)
	}
	if sel := session.SelectedAnswer(); sel == nil || *sel != 0 {
		t.Errorf("SelectedAnswer = %v, want 0", sel)
	}
}

func TestSubmitAnswerBounds(t *testing.T) {
	session, _ := threeQuestionSession(t)
	q1 := session.Questions()[0].ID

	if err := session.SubmitAnswer(q1, 4); !errors.Is(err, ErrInvalidAnswerIndex) {
		t.Errorf("index 4: err = %v, want ErrInvalidAnswerIndex", err)
	}
	if err := session.SubmitAnswer(q1, -1); !errors.Is(err, ErrInvalidAnswerIndex) {
		t.Errorf("index -1: err = %v, want ErrInvalidAnswerIndex", err)
	}
	if err := session.SubmitAnswer(uuid.New(), 0); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown question: err = %v, want ErrUnknownQuestion", err)
	}
}

func TestSubmitAnswerRequiresInProgress(t *testing.T) {
	session := NewQuizSession(&fakeCatalog{}, &fakeAttemptStore{})
	if err := session.SubmitAnswer(uuid.New(), 0); !errors.Is(err, ErrNoActiveAttempt) {
		t.Errorf("err = %v, want ErrNoActiveAttempt", err)
	}
}

func TestNavigationBounds(t *testing.T) {
	session, _ := threeQuestionSession(t)

	session.PreviousQuestion()
	if session.CurrentIndex() != 0 {
		t.Errorf("PreviousQuestion at 0: index = %d, want 0", session.CurrentIndex())
	}

	session.NextQuestion()
	session.NextQuestion()
	if session.CurrentIndex() != 2 {
		t.Fatalf("index = %d, want 2", session.CurrentIndex())
	}
	session.NextQuestion()
	if session.CurrentIndex() != 2 {
		t.Errorf("NextQuestion at last: index = %d, want 2", session.CurrentIndex())
	}
}

func TestNavigationRestoresSelection(t *testing.T) {
	session, _ := threeQuestionSession(t)
	q1 := session.Questions()[0].ID

	if err := session.SubmitAnswer(q1, 3); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	session.NextQuestion()
	if session.SelectedAnswer() != nil {
		t.Error("unanswered question should clear the selection")
	}

	session.PreviousQuestion()
	if sel := session.SelectedAnswer(); sel == nil || *sel != 3 {
		t.Errorf("SelectedAnswer = %v, want 3", sel)
	}
}

func TestCompleteScoring(t *testing.T) {
	session, store := threeQuestionSession(t)
	questions := session.Questions()

	// Q1 correct, Q2 wrong, Q3 left blank.
	if err := session.SubmitAnswer(questions[0].ID, 0); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := session.SubmitAnswer(questions[1].ID, 3); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	attempt, err := session.Complete(120)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if attempt.CorrectAnswers != 1 {
		t.Errorf("CorrectAnswers = %d, want 1", attempt.CorrectAnswers)
	}
	if attempt.Score != 1 {
		t.Errorf("Score = %d, want 1", attempt.Score)
	}
	if attempt.TimeTakenSeconds == nil || *attempt.TimeTakenSeconds != 120 {
		t.Errorf("TimeTakenSeconds = %v, want 120", attempt.TimeTakenSeconds)
	}
	if attempt.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}

	if len(store.responses) != 3 {
		t.Fatalf("wrote %d responses, want one per question", len(store.responses))
	}
	for i, resp := range store.responses {
		if resp.QuestionID != questions[i].ID {
			t.Errorf("response %d out of order", i)
		}
	}
	if !store.responses[0].IsCorrect || store.responses[1].IsCorrect || store.responses[2].IsCorrect {
		t.Errorf("correctness flags = [%v %v %v], want [true false false]",
			store.responses[0].IsCorrect, store.responses[1].IsCorrect, store.responses[2].IsCorrect)
	}
	if store.responses[2].SelectedOption != nil {
		t.Error("blank question must be written with a null selected option")
	}

	if session.State() != StateCompleted {
		t.Errorf("state = %v, want StateCompleted", session.State())
	}
}

func TestCompletePerfectScore(t *testing.T) {
	session, _ := threeQuestionSession(t)
	for _, q := range session.Questions() {
		if err := session.SubmitAnswer(q.ID, q.CorrectAnswer); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
	}

	attempt, err := session.Complete(90)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if attempt.CorrectAnswers != 3 {
		t.Errorf("CorrectAnswers = %d, want 3", attempt.CorrectAnswers)
	}
	if attempt.Score != 4 {
		t.Errorf("Score = %d, want 4 (1+1+2)", attempt.Score)
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	session, _ := threeQuestionSession(t)
	if _, err := session.Complete(10); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if _, err := session.Complete(10); !errors.Is(err, ErrAttemptCompleted) {
		t.Errorf("second Complete: err = %v, want ErrAttemptCompleted", err)
	}
}

func TestCompleteFailureKeepsSessionInProgress(t *testing.T) {
	session, store := threeQuestionSession(t)
	store.finishErr = errors.New("write failed")

	if _, err := session.Complete(10); err == nil {
		t.Fatal("expected Complete to fail")
	}
	if session.State() != StateInProgress {
		t.Errorf("state = %v, want StateInProgress after failed write", session.State())
	}
}

func TestResetClearsEverything(t *testing.T) {
	session, _ := threeQuestionSession(t)
	q1 := session.Questions()[0].ID
	if err := session.SubmitAnswer(q1, 1); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	session.NextQuestion()

	session.Reset()

	if session.Quiz() != nil {
		t.Error("Reset should clear the quiz")
	}
	if session.Questions() != nil {
		t.Error("Reset should clear the questions")
	}
	if session.Attempt() != nil {
		t.Error("Reset should clear the attempt")
	}
	if session.CurrentIndex() != 0 {
		t.Errorf("CurrentIndex = %d, want 0", session.CurrentIndex())
	}
	if session.SelectedAnswer() != nil {
		t.Error("Reset should clear the selection")
	}
	if len(session.answers) != 0 {
		t.Error("Reset should clear recorded answers")
	}
	if session.State() != StateIdle {
		t.Errorf("state = %v, want StateIdle", session.State())
	}
}
