package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestSessionManagerUnknownAttempt(t *testing.T) {
	manager := NewSessionManager()
	err := manager.With(uuid.New(), func(*QuizSession) error { return nil })
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionManagerRemove(t *testing.T) {
	manager := NewSessionManager()
	attemptID := uuid.New()
	manager.Put(attemptID, NewQuizSession(&fakeCatalog{}, &fakeAttemptStore{}))

	if err := manager.With(attemptID, func(*QuizSession) error { return nil }); err != nil {
		t.Fatalf("With: %v", err)
	}

	manager.Remove(attemptID)
	err := manager.With(attemptID, func(*QuizSession) error { return nil })
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("after Remove: err = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionManagerSerializesAccess(t *testing.T) {
	manager := NewSessionManager()
	attemptID := uuid.New()
	manager.Put(attemptID, NewQuizSession(&fakeCatalog{}, &fakeAttemptStore{}))

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = manager.With(attemptID, func(*QuizSession) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}
