package message

import (
	"encoding/json"

	"telewire/pkg/wire"
)

// Update is one normalized long-poll envelope.
type Update struct {
	ID   int64
	Kind UpdateKind
}

// UpdateKind is the payload of an update: exactly one variant.
type UpdateKind interface {
	isUpdateKind()
}

// UpdateMessage is a new incoming message.
type UpdateMessage struct {
	Data Message
}

// UpdateEditedMessage is a new version of a known message.
type UpdateEditedMessage struct {
	Data Message
}

// UpdateChannelPost is a new incoming channel post.
type UpdateChannelPost struct {
	Data Message
}

// UpdateEditedChannelPost is a new version of a known channel post.
type UpdateEditedChannelPost struct {
	Data Message
}

// UpdateUnknown preserves an envelope whose payload slot is not
// recognized.
type UpdateUnknown struct {
	Raw wire.RawUpdate
}

func (k UpdateMessage) isUpdateKind()           {}
func (k UpdateEditedMessage) isUpdateKind()     {}
func (k UpdateChannelPost) isUpdateKind()       {}
func (k UpdateEditedChannelPost) isUpdateKind() {}
func (k UpdateUnknown) isUpdateKind()           {}

// DecodeUpdate normalizes one envelope. The slots are checked in a fixed
// order (message, edited_message, channel_post, edited_channel_post); an
// envelope with no recognized slot becomes UpdateUnknown, same open-world
// policy as message classification.
func DecodeUpdate(raw wire.RawUpdate) (Update, error) {
	update := Update{ID: raw.UpdateID}

	switch {
	case raw.Message != nil:
		data, err := Decode(*raw.Message)
		if err != nil {
			return Update{}, err
		}
		update.Kind = UpdateMessage{Data: data}
	case raw.EditedMessage != nil:
		data, err := Decode(*raw.EditedMessage)
		if err != nil {
			return Update{}, err
		}
		update.Kind = UpdateEditedMessage{Data: data}
	case raw.ChannelPost != nil:
		data, err := Decode(*raw.ChannelPost)
		if err != nil {
			return Update{}, err
		}
		update.Kind = UpdateChannelPost{Data: data}
	case raw.EditedChannelPost != nil:
		data, err := Decode(*raw.EditedChannelPost)
		if err != nil {
			return Update{}, err
		}
		update.Kind = UpdateEditedChannelPost{Data: data}
	default:
		update.Kind = UpdateUnknown{Raw: raw}
	}

	return update, nil
}

// UnmarshalJSON decodes the wire JSON envelope straight into the
// normalized update.
func (u *Update) UnmarshalJSON(data []byte) error {
	var raw wire.RawUpdate
	if err := json.Unmarshal(data, &raw); err != nil {
		return normalizeJSONError(err)
	}

	decoded, err := DecodeUpdate(raw)
	if err != nil {
		return err
	}

	*u = decoded
	return nil
}
