package cmd

import (
	"testing"
)

func TestReplyText(t *testing.T) {
	got := replyText("hello")
	want := "Got the message: 'hello'"
	if got != want {
		t.Fatalf("replyText = %q, want %q", got, want)
	}
}

func TestAllowFromSet(t *testing.T) {
	if allowFromSet(nil) != nil {
		t.Fatal("empty allow list should produce nil set")
	}
	if allowFromSet([]string{" ", ""}) != nil {
		t.Fatal("blank-only allow list should produce nil set")
	}

	set := allowFromSet([]string{" 10 ", "20"})
	if len(set) != 2 {
		t.Fatalf("set size = %d, want 2", len(set))
	}
	if _, ok := set["10"]; !ok {
		t.Fatal("expected trimmed entry 10 in set")
	}
}

func TestSenderAllowed(t *testing.T) {
	open := &replyBot{}
	if !open.senderAllowed("999") {
		t.Fatal("no allow list should accept every sender")
	}

	restricted := &replyBot{allowFrom: allowFromSet([]string{"10"})}
	if !restricted.senderAllowed("10") {
		t.Fatal("listed sender should be accepted")
	}
	if restricted.senderAllowed("11") {
		t.Fatal("unlisted sender should be rejected")
	}
}
