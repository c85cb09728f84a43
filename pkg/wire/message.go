// Package wire holds the flat Bot API record shapes exactly as the upstream
// server sends them: one struct per wire object, every optional field a
// pointer (or nil-able slice), JSON keys mapped 1:1. No classification or
// validation happens here; that is pkg/message's job.
package wire

// RawMessage is the flat message record. A well-formed record populates
// exactly one of the content/service fields; pkg/message turns that bag of
// optionals into a single tagged kind.
type RawMessage struct {
	// Unique message identifier inside this chat.
	MessageID MessageID `json:"message_id"`
	// Sender; empty for messages sent to channels.
	From *User `json:"from,omitempty"`
	// Date the message was sent, Unix time.
	Date int64 `json:"date"`
	// Conversation the message belongs to.
	Chat RawChat `json:"chat"`

	// For forwarded messages, date the original message was sent.
	ForwardDate *int64 `json:"forward_date,omitempty"`
	// For forwarded messages, sender of the original message.
	ForwardFrom *User `json:"forward_from,omitempty"`
	// For messages forwarded from a channel, the original channel.
	ForwardFromChat *RawChat `json:"forward_from_chat,omitempty"`
	// For forwarded channel posts, identifier of the original message.
	ForwardFromMessageID *MessageID `json:"forward_from_message_id,omitempty"`

	// For replies, the original message. The upstream API strips any deeper
	// reply_to_message from this nested record.
	ReplyToMessage *RawMessage `json:"reply_to_message,omitempty"`
	// Date the message was last edited, Unix time.
	EditDate *int64 `json:"edit_date,omitempty"`

	// For text messages, the actual UTF-8 text, 0-4096 characters.
	Text *string `json:"text,omitempty"`
	// For text messages, annotations over ranges of the text.
	Entities []RawMessageEntity `json:"entities,omitempty"`
	// Message is an audio file.
	Audio *Audio `json:"audio,omitempty"`
	// Message is a general file.
	Document *Document `json:"document,omitempty"`
	// Message is a photo, available sizes of the photo.
	Photo []PhotoSize `json:"photo,omitempty"`
	// Message is a sticker.
	Sticker *Sticker `json:"sticker,omitempty"`
	// Message is a video.
	Video *Video `json:"video,omitempty"`
	// Message is a voice note.
	Voice *Voice `json:"voice,omitempty"`
	// Caption for the document, photo or video, 0-200 characters.
	Caption *string `json:"caption,omitempty"`
	// Message is a shared contact.
	Contact *Contact `json:"contact,omitempty"`
	// Message is a shared location.
	Location *Location `json:"location,omitempty"`
	// Message is a venue.
	Venue *Venue `json:"venue,omitempty"`

	// A new member was added to the group (may be the bot itself).
	NewChatMember *User `json:"new_chat_member,omitempty"`
	// A member was removed from the group (may be the bot itself).
	LeftChatMember *User `json:"left_chat_member,omitempty"`
	// The chat title was changed to this value.
	NewChatTitle *string `json:"new_chat_title,omitempty"`
	// The chat photo was changed to this value.
	NewChatPhoto *PhotoSize `json:"new_chat_photo,omitempty"`
	// Service marker: the chat photo was deleted.
	DeleteChatPhoto *bool `json:"delete_chat_photo,omitempty"`
	// Service marker: the group has been created.
	GroupChatCreated *bool `json:"group_chat_created,omitempty"`
	// Service marker: the supergroup has been created. Only ever seen inside
	// reply_to_message, since the bot cannot be a member at creation time.
	SupergroupChatCreated *bool `json:"supergroup_chat_created,omitempty"`
	// Service marker: the channel has been created. Only ever seen inside
	// reply_to_message, for the same reason.
	ChannelChatCreated *bool `json:"channel_chat_created,omitempty"`
	// The group has been migrated to a supergroup with this identifier.
	MigrateToChatID *ChatID `json:"migrate_to_chat_id,omitempty"`
	// The supergroup has been migrated from a group with this identifier.
	MigrateFromChatID *ChatID `json:"migrate_from_chat_id,omitempty"`
	// The specified message was pinned. Same one-level truncation contract
	// as reply_to_message.
	PinnedMessage *RawMessage `json:"pinned_message,omitempty"`
}

// RawMessageEntity is one flat text annotation. Offset and Length are
// measured in UTF-16 code units, not bytes or runes; that is the upstream
// wire contract and consumers must convert themselves.
type RawMessageEntity struct {
	// Free-text tag such as "mention", "url", or "text_link". Named "type"
	// on the wire.
	Type string `json:"type"`
	// Offset in UTF-16 code units to the start of the entity.
	Offset int64 `json:"offset"`
	// Length of the entity in UTF-16 code units.
	Length int64 `json:"length"`
	// For "text_link" only, URL opened when the text is tapped.
	URL *string `json:"url,omitempty"`
	// For "text_mention" only, the mentioned user.
	User *User `json:"user,omitempty"`
}

// RawUpdate is one long-poll envelope. At most one of the message slots is
// populated per update.
type RawUpdate struct {
	UpdateID          int64       `json:"update_id"`
	Message           *RawMessage `json:"message,omitempty"`
	EditedMessage     *RawMessage `json:"edited_message,omitempty"`
	ChannelPost       *RawMessage `json:"channel_post,omitempty"`
	EditedChannelPost *RawMessage `json:"edited_channel_post,omitempty"`
}
