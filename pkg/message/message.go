// Package message normalizes flat Bot API records into a tagged domain
// model: every message carries exactly one content kind, forward provenance
// is reconstructed and validated, and unrecognized shapes are preserved in
// explicit Unknown variants instead of failing the decode.
//
// Decoding is pure and deterministic. Values are built once and never
// mutated afterwards, so independent callers can decode concurrently
// without coordination.
package message

import (
	"encoding/json"

	"telewire/pkg/wire"
)

// Message is the normalized domain message.
type Message struct {
	// Unique message identifier inside this chat.
	ID wire.MessageID
	// Sender; nil for messages sent to channels.
	From *wire.User
	// Date the message was sent, Unix time.
	Date int64
	// Conversation the message belongs to.
	Chat Chat
	// Forward provenance; nil when the message was not forwarded.
	Forward *Forward
	// For replies, the replied-to message. ReplyTo.ReplyTo is always nil:
	// the one-level truncation promised by the upstream API is enforced
	// here at construction, not merely assumed.
	ReplyTo *Message
	// Date the message was last edited, Unix time.
	EditDate *int64
	// Exactly one content kind.
	Kind MessageKind
}

// Forward describes where a forwarded message originally came from.
type Forward struct {
	// Date the original message was sent, Unix time.
	Date int64
	From ForwardFrom
}

// ForwardFrom is the origin of a forwarded message: exactly one of
// ForwardFromUser or ForwardFromChannel.
type ForwardFrom interface {
	isForwardFrom()
}

// ForwardFromUser is a message forwarded from a user.
type ForwardFromUser struct {
	User wire.User
}

// ForwardFromChannel is a channel post forwarded into this chat.
type ForwardFromChannel struct {
	Channel Channel
	// Identifier of the original message in the channel.
	MessageID wire.MessageID
}

func (f ForwardFromUser) isForwardFrom()    {}
func (f ForwardFromChannel) isForwardFrom() {}

// Decode normalizes one flat message record. It fails only on malformed
// forward combinations and on recognized entity tags missing their
// mandatory payload; an unrecognized content shape is not a failure and
// decodes to the Unknown kind instead.
func Decode(raw wire.RawMessage) (Message, error) {
	forward, err := decodeForward(&raw)
	if err != nil {
		return Message{}, err
	}

	reply, err := decodeReply(raw.ReplyToMessage)
	if err != nil {
		return Message{}, err
	}

	kind, err := classify(raw)
	if err != nil {
		return Message{}, err
	}

	return Message{
		ID:       raw.MessageID,
		From:     raw.From,
		Date:     raw.Date,
		Chat:     DecodeChat(raw.Chat),
		Forward:  forward,
		ReplyTo:  reply,
		EditDate: raw.EditDate,
		Kind:     kind,
	}, nil
}

// decodeForward reconstructs forward provenance from the 4-tuple of
// forward fields. The match is exhaustive over presence/absence:
//
//	none present                      -> not forwarded
//	date + user                       -> forwarded from a user
//	date + channel chat + message id  -> forwarded from a channel
//	anything else                     -> invalid_forward
//
// A partially reconstructed provenance value would be actively misleading,
// so this is the one place malformed input is rejected outright.
func decodeForward(raw *wire.RawMessage) (*Forward, error) {
	date := raw.ForwardDate
	from := raw.ForwardFrom
	chat := raw.ForwardFromChat
	messageID := raw.ForwardFromMessageID

	switch {
	case date == nil && from == nil && chat == nil && messageID == nil:
		return nil, nil

	case date != nil && from != nil && chat == nil && messageID == nil:
		return &Forward{
			Date: *date,
			From: ForwardFromUser{User: *from},
		}, nil

	case date != nil && from == nil && chat != nil && messageID != nil:
		channel, ok := DecodeChat(*chat).(Channel)
		if !ok {
			return nil, invalidForward("forward_from_chat is not a channel")
		}
		return &Forward{
			Date: *date,
			From: ForwardFromChannel{Channel: channel, MessageID: *messageID},
		}, nil

	default:
		return nil, invalidForward("forward fields do not match a known combination")
	}
}

// decodeReply normalizes a raw reply target, stripping any reply reference
// of its own. The upstream API promises one level of nesting; enforcing the
// truncation here makes the promise structural instead of trusted.
func decodeReply(raw *wire.RawMessage) (*Message, error) {
	if raw == nil {
		return nil, nil
	}

	truncated := *raw
	truncated.ReplyToMessage = nil

	reply, err := Decode(truncated)
	if err != nil {
		return nil, err
	}

	return &reply, nil
}

// UnmarshalJSON decodes the wire JSON object straight into the domain
// shape. Type mismatches surface as field_type decode errors.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw wire.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return normalizeJSONError(err)
	}

	decoded, err := Decode(raw)
	if err != nil {
		return err
	}

	*m = decoded
	return nil
}
