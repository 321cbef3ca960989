package dialogue

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bowerhall/voxtutor/internal/llm"
	"github.com/bowerhall/voxtutor/internal/session"
)

type fakeLLM struct {
	candidates []string
	err        error
	requests   [][]llm.Message
}

func (f *fakeLLM) Chat(_ context.Context, messages []llm.Message) ([]string, error) {
	copied := make([]llm.Message, len(messages))
	copy(copied, messages)
	f.requests = append(f.requests, copied)

	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func TestConverseRecordsExchange(t *testing.T) {
	model := &fakeLLM{candidates: []string{"hi there"}}
	sessions := session.NewStore()
	engine := NewEngine(model, sessions)

	reply, err := engine.Converse(context.Background(), 1, "Hello")
	if err != nil {
		t.Fatalf("converse failed: %v", err)
	}
	if reply != "hi there" {
		t.Errorf("expected reply 'hi there', got %q", reply)
	}

	turns := sessions.Turns(1)
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Role != llm.RoleUser || turns[0].Content != "Hello" {
		t.Errorf("user turn mismatch: %+v", turns[0])
	}
	if turns[1].Role != llm.RoleAssistant || turns[1].Content != "hi there" {
		t.Errorf("assistant turn mismatch: %+v", turns[1])
	}
}

func TestConverseJoinsCandidates(t *testing.T) {
	model := &fakeLLM{candidates: []string{"one", "two", "three"}}
	engine := NewEngine(model, session.NewStore())

	reply, err := engine.Converse(context.Background(), 1, "Hello")
	if err != nil {
		t.Fatalf("converse failed: %v", err)
	}
	if reply != "one | two | three" {
		t.Errorf("expected joined candidates, got %q", reply)
	}
}

func TestConverseForwardsFullHistory(t *testing.T) {
	model := &fakeLLM{candidates: []string{"reply"}}
	sessions := session.NewStore()
	engine := NewEngine(model, sessions)

	if _, err := engine.Converse(context.Background(), 1, "first"); err != nil {
		t.Fatalf("converse failed: %v", err)
	}
	if _, err := engine.Converse(context.Background(), 1, "second"); err != nil {
		t.Fatalf("converse failed: %v", err)
	}

	if len(model.requests) != 2 {
		t.Fatalf("expected 2 model calls, got %d", len(model.requests))
	}

	want := []llm.Message{
		{Role: llm.RoleUser, Content: "first"},
		{Role: llm.RoleAssistant, Content: "reply"},
		{Role: llm.RoleUser, Content: "second"},
	}

	got := model.requests[1]
	if len(got) != len(want) {
		t.Fatalf("expected %d messages submitted, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestConverseFailureLeavesSessionUntouched(t *testing.T) {
	model := &fakeLLM{err: errors.New("model is overloaded")}
	sessions := session.NewStore()
	engine := NewEngine(model, sessions)

	_, err := engine.Converse(context.Background(), 1, "Hello")
	if err == nil {
		t.Fatal("expected error from failed completion")
	}
	if !strings.Contains(err.Error(), "model is overloaded") {
		t.Errorf("error should carry the upstream message, got %q", err)
	}

	if turns := sessions.Turns(1); len(turns) != 0 {
		t.Errorf("failed converse must not record turns, got %d", len(turns))
	}
}

func TestConverseFailureThenSuccessKeepsHistoryClean(t *testing.T) {
	model := &fakeLLM{err: errors.New("boom")}
	sessions := session.NewStore()
	engine := NewEngine(model, sessions)

	if _, err := engine.Converse(context.Background(), 1, "lost message"); err == nil {
		t.Fatal("expected error")
	}

	model.err = nil
	model.candidates = []string{"ok"}

	if _, err := engine.Converse(context.Background(), 1, "kept message"); err != nil {
		t.Fatalf("converse failed: %v", err)
	}

	// the unanswered turn must not have poisoned the submitted history
	lastRequest := model.requests[len(model.requests)-1]
	if len(lastRequest) != 1 || lastRequest[0].Content != "kept message" {
		t.Errorf("unexpected submitted history: %+v", lastRequest)
	}
}

func TestCorrectDoesNotTouchSessions(t *testing.T) {
	model := &fakeLLM{candidates: []string{"Fixed text"}}
	sessions := session.NewStore()
	engine := NewEngine(model, sessions)

	fixed, err := engine.Correct(context.Background(), "me has mistake")
	if err != nil {
		t.Fatalf("correct failed: %v", err)
	}
	if fixed != "Fixed text" {
		t.Errorf("expected 'Fixed text', got %q", fixed)
	}

	if turns := sessions.Turns(1); len(turns) != 0 {
		t.Errorf("correct must not record turns, got %d", len(turns))
	}

	if len(model.requests) != 1 {
		t.Fatalf("expected 1 model call, got %d", len(model.requests))
	}
	prompt := model.requests[0][0]
	if prompt.Role != llm.RoleUser || !strings.Contains(prompt.Content, "me has mistake") {
		t.Errorf("unexpected correction prompt: %+v", prompt)
	}
	if !strings.HasPrefix(prompt.Content, "Fix the sentence mistakes:") {
		t.Errorf("correction prompt should use the fixed template, got %q", prompt.Content)
	}
}
