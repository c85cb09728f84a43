package message

import "telewire/pkg/wire"

// MessageKind is the content of a message: exactly one of the variants
// below. Consumers type-switch over it; Unknown is a legitimate outcome
// and should be handled, not treated as a bug.
type MessageKind interface {
	isMessageKind()
}

// Text is a plain text message.
type Text struct {
	// UTF-8 text of the message, 0-4096 characters.
	Data string
	// Annotations over the text. Never nil; a text message without
	// annotations carries an empty slice.
	Entities []MessageEntity
}

// Audio is an audio file treated as music.
type Audio struct {
	Data wire.Audio
}

// Document is a general file.
type Document struct {
	Data wire.Document
	// Caption, 0-200 characters.
	Caption *string
}

// Photo is a photo in its available sizes.
type Photo struct {
	Data []wire.PhotoSize
	// Caption, 0-200 characters.
	Caption *string
}

// Sticker is a sticker.
type Sticker struct {
	Data wire.Sticker
}

// Video is a video file.
type Video struct {
	Data wire.Video
	// Caption, 0-200 characters.
	Caption *string
}

// Voice is a voice note.
type Voice struct {
	Data wire.Voice
}

// Contact is a shared phone contact.
type Contact struct {
	Data wire.Contact
}

// Location is a shared point on the map.
type Location struct {
	Data wire.Location
}

// Venue is a shared venue.
type Venue struct {
	Data wire.Venue
}

// NewChatMember reports a member added to the group (possibly the bot).
type NewChatMember struct {
	Data wire.User
}

// LeftChatMember reports a member removed from the group (possibly the bot).
type LeftChatMember struct {
	Data wire.User
}

// NewChatTitle reports a chat title change.
type NewChatTitle struct {
	Data string
}

// NewChatPhoto reports a chat photo change.
type NewChatPhoto struct {
	Data wire.PhotoSize
}

// DeleteChatPhoto is the service message for a deleted chat photo.
type DeleteChatPhoto struct{}

// GroupChatCreated is the service message for group creation.
type GroupChatCreated struct{}

// SupergroupChatCreated is the service message for supergroup creation.
// Only ever seen inside a reply target.
type SupergroupChatCreated struct{}

// ChannelChatCreated is the service message for channel creation. Only
// ever seen inside a reply target.
type ChannelChatCreated struct{}

// MigrateToChatID reports migration of the group to a supergroup.
type MigrateToChatID struct {
	Data wire.ChatID
}

// MigrateFromChatID reports migration of the supergroup from a group.
type MigrateFromChatID struct {
	Data wire.ChatID
}

// PinnedMessage reports that the given message was pinned. The pinned
// message carries no reply target of its own, same truncation contract as
// Message.ReplyTo.
type PinnedMessage struct {
	Data *Message
}

// Unknown preserves a record whose content shape is not recognized, so new
// message kinds introduced upstream surface as an opaque-but-complete
// variant instead of a decode failure. Raw retains every wire field.
type Unknown struct {
	Raw wire.RawMessage
}

func (k Text) isMessageKind()                  {}
func (k Audio) isMessageKind()                 {}
func (k Document) isMessageKind()              {}
func (k Photo) isMessageKind()                 {}
func (k Sticker) isMessageKind()               {}
func (k Video) isMessageKind()                 {}
func (k Voice) isMessageKind()                 {}
func (k Contact) isMessageKind()               {}
func (k Location) isMessageKind()              {}
func (k Venue) isMessageKind()                 {}
func (k NewChatMember) isMessageKind()         {}
func (k LeftChatMember) isMessageKind()        {}
func (k NewChatTitle) isMessageKind()          {}
func (k NewChatPhoto) isMessageKind()          {}
func (k DeleteChatPhoto) isMessageKind()       {}
func (k GroupChatCreated) isMessageKind()      {}
func (k SupergroupChatCreated) isMessageKind() {}
func (k ChannelChatCreated) isMessageKind()    {}
func (k MigrateToChatID) isMessageKind()       {}
func (k MigrateFromChatID) isMessageKind()     {}
func (k PinnedMessage) isMessageKind()         {}
func (k Unknown) isMessageKind()               {}

// classify inspects the content slots of a flat record in a fixed priority
// order and moves the first populated one into its kind. The order is part
// of the decode contract:
//
//	text, audio, document, photo, sticker, video, voice, contact,
//	location, venue, new_chat_member, left_chat_member, new_chat_title,
//	new_chat_photo, delete_chat_photo, group_chat_created,
//	supergroup_chat_created, channel_chat_created, migrate_to_chat_id,
//	migrate_from_chat_id, pinned_message
//
// The upstream API guarantees mutual exclusivity of the slots, so the
// order only matters for malformed input, where it deterministically picks
// a winner instead of erroring. A record with no populated slot classifies
// as Unknown; that path never fails.
func classify(raw wire.RawMessage) (MessageKind, error) {
	if raw.Text != nil {
		entities, err := decodeEntities(raw.Entities)
		if err != nil {
			return nil, err
		}
		return Text{Data: *raw.Text, Entities: entities}, nil
	}
	if raw.Audio != nil {
		return Audio{Data: *raw.Audio}, nil
	}
	if raw.Document != nil {
		return Document{Data: *raw.Document, Caption: raw.Caption}, nil
	}
	if raw.Photo != nil {
		return Photo{Data: raw.Photo, Caption: raw.Caption}, nil
	}
	if raw.Sticker != nil {
		return Sticker{Data: *raw.Sticker}, nil
	}
	if raw.Video != nil {
		return Video{Data: *raw.Video, Caption: raw.Caption}, nil
	}
	if raw.Voice != nil {
		return Voice{Data: *raw.Voice}, nil
	}
	if raw.Contact != nil {
		return Contact{Data: *raw.Contact}, nil
	}
	if raw.Location != nil {
		return Location{Data: *raw.Location}, nil
	}
	if raw.Venue != nil {
		return Venue{Data: *raw.Venue}, nil
	}
	if raw.NewChatMember != nil {
		return NewChatMember{Data: *raw.NewChatMember}, nil
	}
	if raw.LeftChatMember != nil {
		return LeftChatMember{Data: *raw.LeftChatMember}, nil
	}
	if raw.NewChatTitle != nil {
		return NewChatTitle{Data: *raw.NewChatTitle}, nil
	}
	if raw.NewChatPhoto != nil {
		return NewChatPhoto{Data: *raw.NewChatPhoto}, nil
	}
	if raw.DeleteChatPhoto != nil && *raw.DeleteChatPhoto {
		return DeleteChatPhoto{}, nil
	}
	if raw.GroupChatCreated != nil && *raw.GroupChatCreated {
		return GroupChatCreated{}, nil
	}
	if raw.SupergroupChatCreated != nil && *raw.SupergroupChatCreated {
		return SupergroupChatCreated{}, nil
	}
	if raw.ChannelChatCreated != nil && *raw.ChannelChatCreated {
		return ChannelChatCreated{}, nil
	}
	if raw.MigrateToChatID != nil {
		return MigrateToChatID{Data: *raw.MigrateToChatID}, nil
	}
	if raw.MigrateFromChatID != nil {
		return MigrateFromChatID{Data: *raw.MigrateFromChatID}, nil
	}
	if raw.PinnedMessage != nil {
		pinned, err := decodeReply(raw.PinnedMessage)
		if err != nil {
			return nil, err
		}
		return PinnedMessage{Data: pinned}, nil
	}

	return Unknown{Raw: raw}, nil
}

// KindName returns a stable snake_case name for a kind, for logs and
// display. Unknown kinds report "unknown".
func KindName(kind MessageKind) string {
	switch kind.(type) {
	case Text:
		return "text"
	case Audio:
		return "audio"
	case Document:
		return "document"
	case Photo:
		return "photo"
	case Sticker:
		return "sticker"
	case Video:
		return "video"
	case Voice:
		return "voice"
	case Contact:
		return "contact"
	case Location:
		return "location"
	case Venue:
		return "venue"
	case NewChatMember:
		return "new_chat_member"
	case LeftChatMember:
		return "left_chat_member"
	case NewChatTitle:
		return "new_chat_title"
	case NewChatPhoto:
		return "new_chat_photo"
	case DeleteChatPhoto:
		return "delete_chat_photo"
	case GroupChatCreated:
		return "group_chat_created"
	case SupergroupChatCreated:
		return "supergroup_chat_created"
	case ChannelChatCreated:
		return "channel_chat_created"
	case MigrateToChatID:
		return "migrate_to_chat_id"
	case MigrateFromChatID:
		return "migrate_from_chat_id"
	case PinnedMessage:
		return "pinned_message"
	default:
		return "unknown"
	}
}
