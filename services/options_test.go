package services

import (
	"reflect"
	"testing"

	"github.com/plandanogtav2-cell/eduquest-hub/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestDecodeOptionsNativeArray(t *testing.T) {
	got, err := DecodeOptions([]byte(`["A","B","C","D"]`))
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeOptionsDoubleEncoded(t *testing.T) {
	// Rows from the old loader store the array as a JSON string.
	got, err := DecodeOptions([]byte(`"[\"A\",\"B\",\"C\",\"D\"]"`))
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDecodeOptionsBothFormsNormalizeIdentically(t *testing.T) {
	native, err := DecodeOptions([]byte(`["True","False"]`))
	if err != nil {
		t.Fatalf("native: %v", err)
	}
	encoded, err := DecodeOptions([]byte(`"[\"True\",\"False\"]"`))
	if err != nil {
		t.Fatalf("encoded: %v", err)
	}
	if !reflect.DeepEqual(native, encoded) {
		t.Errorf("native %v != encoded %v", native, encoded)
	}
}

func TestDecodeOptionsRejectsGarbage(t *testing.T) {
	if _, err := DecodeOptions(nil); err == nil {
		t.Error("empty input should fail")
	}
	if _, err := DecodeOptions([]byte(`{"a":1}`)); err == nil {
		t.Error("non-array JSON should fail")
	}
	if _, err := DecodeOptions([]byte(`"not an array"`)); err == nil {
		t.Error("string without an inner array should fail")
	}
}

func TestNormalizeQuestionKeepsFields(t *testing.T) {
	difficulty := "easy"
	row := models.Question{
		ID:            uuid.New(),
		QuizID:        uuid.New(),
		QuestionText:  "What is 2 + 2?",
		Options:       datatypes.JSON(`["3","4","5","6"]`),
		CorrectAnswer: 1,
		Points:        2,
		OrderIndex:    5,
		Difficulty:    &difficulty,
	}

	q, err := normalizeQuestion(row)
	if err != nil {
		t.Fatalf("normalizeQuestion: %v", err)
	}
	if q.ID != row.ID || q.QuizID != row.QuizID {
		t.Error("identifiers not carried over")
	}
	if q.CorrectAnswer != 1 || q.Points != 2 || q.OrderIndex != 5 {
		t.Errorf("scoring fields not carried over: %+v", q)
	}
	if len(q.Options) != 4 || q.Options[1] != "4" {
		t.Errorf("options = %v", q.Options)
	}
}
