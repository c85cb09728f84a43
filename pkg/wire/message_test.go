package wire

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRawMessageAbsentFieldsStayAbsent(t *testing.T) {
	payload := `{
	  "message_id": 1,
	  "date": 1000,
	  "chat": {"id": 7, "type": "private", "first_name": "Ann"}
	}`

	var raw RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if raw.MessageID != 1 {
		t.Fatalf("message_id = %d, want 1", raw.MessageID)
	}
	if raw.From != nil {
		t.Fatal("from should be absent")
	}
	if raw.Text != nil {
		t.Fatal("text should be absent")
	}
	if raw.Entities != nil {
		t.Fatal("entities should be absent")
	}
	if raw.Photo != nil {
		t.Fatal("photo should be absent")
	}
	if raw.ForwardDate != nil || raw.ForwardFrom != nil || raw.ForwardFromChat != nil || raw.ForwardFromMessageID != nil {
		t.Fatal("forward fields should be absent")
	}
	if raw.DeleteChatPhoto != nil {
		t.Fatal("delete_chat_photo should be absent")
	}
}

func TestRawMessagePresentEmptyListIsNotAbsent(t *testing.T) {
	payload := `{
	  "message_id": 1,
	  "date": 1000,
	  "chat": {"id": 7, "type": "private", "first_name": "Ann"},
	  "text": "hi",
	  "entities": []
	}`

	var raw RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if raw.Entities == nil {
		t.Fatal("entities = nil, want present empty list")
	}
	if len(raw.Entities) != 0 {
		t.Fatalf("entities len = %d, want 0", len(raw.Entities))
	}
}

func TestRawMessageFieldTypeMismatch(t *testing.T) {
	// chat must be an object, not a string.
	payload := `{"message_id": 1, "date": 1000, "chat": "oops"}`

	var raw RawMessage
	err := json.Unmarshal([]byte(payload), &raw)
	if err == nil {
		t.Fatal("expected type mismatch error")
	}

	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("error = %T, want *json.UnmarshalTypeError", err)
	}
}

func TestRawMessageEntityTypeKey(t *testing.T) {
	payload := `{"type": "text_link", "offset": 2, "length": 5, "url": "https://x"}`

	var raw RawMessageEntity
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if raw.Type != "text_link" {
		t.Fatalf("type = %q, want %q", raw.Type, "text_link")
	}
	if raw.Offset != 2 || raw.Length != 5 {
		t.Fatalf("offset/length = %d/%d, want 2/5", raw.Offset, raw.Length)
	}
	if raw.URL == nil || *raw.URL != "https://x" {
		t.Fatalf("url = %v, want https://x", raw.URL)
	}
	if raw.User != nil {
		t.Fatal("user should be absent")
	}
}

func TestRawMessageNestedReplyDecodes(t *testing.T) {
	payload := `{
	  "message_id": 2,
	  "date": 2000,
	  "chat": {"id": 7, "type": "group", "title": "room"},
	  "text": "pong",
	  "reply_to_message": {
	    "message_id": 1,
	    "date": 1000,
	    "chat": {"id": 7, "type": "group", "title": "room"},
	    "text": "ping"
	  }
	}`

	var raw RawMessage
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if raw.ReplyToMessage == nil {
		t.Fatal("reply_to_message should be present")
	}
	if raw.ReplyToMessage.MessageID != 1 {
		t.Fatalf("reply message_id = %d, want 1", raw.ReplyToMessage.MessageID)
	}
	if raw.ReplyToMessage.Text == nil || *raw.ReplyToMessage.Text != "ping" {
		t.Fatalf("reply text = %v, want ping", raw.ReplyToMessage.Text)
	}
}
