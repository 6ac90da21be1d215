package services

import (
	"encoding/json"
	"fmt"

	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/google/uuid"
)

// SessionQuestion is a question with its options already normalized
// into an ordered list of strings.
type SessionQuestion struct {
	ID            uuid.UUID
	QuizID        uuid.UUID
	QuestionText  string
	ImageURL      *string
	Options       []string
	CorrectAnswer int
	Points        int
	OrderIndex    int
	Difficulty    *string
}

// DecodeOptions normalizes the stored options column into a list of
// option strings. The column usually holds a JSON array, but rows
// imported from the old loader hold a JSON string whose content is
// itself a JSON array ("[\"A\",\"B\"]"); both decode to the same list.
func DecodeOptions(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("question has no options")
	}

	var options []string
	if err := json.Unmarshal(raw, &options); err == nil {
		return options, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &options); err == nil {
			return options, nil
		}
	}

	return nil, fmt.Errorf("cannot decode question options: %s", string(raw))
}

func normalizeQuestion(q models.Question) (SessionQuestion, error) {
	options, err := DecodeOptions(q.Options)
	if err != nil {
		return SessionQuestion{}, fmt.Errorf("question %s: %v", q.ID, err)
	}

	return SessionQuestion{
		ID:            q.ID,
		QuizID:        q.QuizID,
		QuestionText:  q.QuestionText,
		ImageURL:      q.ImageURL,
		Options:       options,
		CorrectAnswer: q.CorrectAnswer,
		Points:        q.Points,
		OrderIndex:    q.OrderIndex,
		Difficulty:    q.Difficulty,
	}, nil
}
