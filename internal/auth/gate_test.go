package auth

import "testing"

func TestGateAllowed(t *testing.T) {
	gate := NewGate([]int64{111, 222})

	if !gate.Allowed(111) {
		t.Error("111 should be allowed")
	}
	if !gate.Allowed(222) {
		t.Error("222 should be allowed")
	}
	if gate.Allowed(333) {
		t.Error("333 should not be allowed")
	}
}

func TestGateEmptyAllowListRejectsEveryone(t *testing.T) {
	gate := NewGate(nil)

	if gate.Allowed(1) {
		t.Error("empty allow-list should reject everyone")
	}
}

func TestGuardRunsActionForAllowedSender(t *testing.T) {
	gate := NewGate([]int64{111})

	var replies []string
	ran := false

	gate.Guard(111, func(text string) error {
		replies = append(replies, text)
		return nil
	}, func() {
		ran = true
	})

	if !ran {
		t.Error("action should run for allowed sender")
	}
	if len(replies) != 0 {
		t.Errorf("no rejection reply expected, got %v", replies)
	}
}

func TestGuardRejectsUnknownSender(t *testing.T) {
	gate := NewGate([]int64{111})

	var replies []string
	ran := false

	gate.Guard(333, func(text string) error {
		replies = append(replies, text)
		return nil
	}, func() {
		ran = true
	})

	if ran {
		t.Error("action must not run for rejected sender")
	}
	if len(replies) != 1 {
		t.Fatalf("expected exactly one rejection reply, got %d", len(replies))
	}
	if replies[0] != RestrictedMessage {
		t.Errorf("expected fixed rejection message, got %q", replies[0])
	}
}
