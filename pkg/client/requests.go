package client

import (
	"telewire/pkg/message"
	"telewire/pkg/wire"
)

// SendMessage is the sendMessage payload. Builders are pure data carriers;
// optional fields stay off the wire until set.
type SendMessage struct {
	ChatID                wire.ChatID     `json:"chat_id"`
	Text                  string          `json:"text"`
	ParseMode             *string         `json:"parse_mode,omitempty"`
	DisableWebPagePreview *bool           `json:"disable_web_page_preview,omitempty"`
	DisableNotification   *bool           `json:"disable_notification,omitempty"`
	ReplyToMessageID      *wire.MessageID `json:"reply_to_message_id,omitempty"`
}

// NewSendMessage builds a text message to the given chat.
func NewSendMessage(chatID wire.ChatID, text string) *SendMessage {
	return &SendMessage{ChatID: chatID, Text: text}
}

// WithParseMode sets the text formatting mode ("Markdown" or "HTML").
func (r *SendMessage) WithParseMode(mode string) *SendMessage {
	r.ParseMode = &mode
	return r
}

// WithoutWebPagePreview disables link previews for this message.
func (r *SendMessage) WithoutWebPagePreview() *SendMessage {
	disabled := true
	r.DisableWebPagePreview = &disabled
	return r
}

// Silently sends the message without a notification sound.
func (r *SendMessage) Silently() *SendMessage {
	silent := true
	r.DisableNotification = &silent
	return r
}

// InReplyTo marks the message as a reply to the given message.
func (r *SendMessage) InReplyTo(messageID wire.MessageID) *SendMessage {
	r.ReplyToMessageID = &messageID
	return r
}

// ReplyTo builds a reply to the given normalized message in its own chat.
func ReplyTo(target message.Message, text string) *SendMessage {
	return NewSendMessage(target.Chat.ID(), text).InReplyTo(target.ID)
}

// ForwardMessage is the forwardMessage payload.
type ForwardMessage struct {
	ChatID              wire.ChatID    `json:"chat_id"`
	FromChatID          wire.ChatID    `json:"from_chat_id"`
	MessageID           wire.MessageID `json:"message_id"`
	DisableNotification *bool          `json:"disable_notification,omitempty"`
}

// NewForwardMessage forwards one message into the given chat.
func NewForwardMessage(chatID wire.ChatID, fromChatID wire.ChatID, messageID wire.MessageID) *ForwardMessage {
	return &ForwardMessage{ChatID: chatID, FromChatID: fromChatID, MessageID: messageID}
}

// Silently forwards the message without a notification sound.
func (r *ForwardMessage) Silently() *ForwardMessage {
	silent := true
	r.DisableNotification = &silent
	return r
}

// GetUserProfilePhotos is the getUserProfilePhotos payload.
type GetUserProfilePhotos struct {
	UserID wire.UserID `json:"user_id"`
	Offset *int64      `json:"offset,omitempty"`
	Limit  *int64      `json:"limit,omitempty"`
}

// NewGetUserProfilePhotos requests profile pictures for the given user.
func NewGetUserProfilePhotos(userID wire.UserID) *GetUserProfilePhotos {
	return &GetUserProfilePhotos{UserID: userID}
}

// WithOffset skips the first photos in the result page.
func (r *GetUserProfilePhotos) WithOffset(offset int64) *GetUserProfilePhotos {
	r.Offset = &offset
	return r
}

// WithLimit bounds the number of photos returned (1-100).
func (r *GetUserProfilePhotos) WithLimit(limit int64) *GetUserProfilePhotos {
	r.Limit = &limit
	return r
}

// GetUpdates is the getUpdates payload.
type GetUpdates struct {
	Offset *int64 `json:"offset,omitempty"`
	Limit  *int64 `json:"limit,omitempty"`
	// Long-poll timeout in seconds; 0 means short polling.
	Timeout *int64 `json:"timeout,omitempty"`
}

// NewGetUpdates builds an update fetch.
func NewGetUpdates() *GetUpdates {
	return &GetUpdates{}
}

// WithOffset confirms all updates below the given identifier.
func (r *GetUpdates) WithOffset(offset int64) *GetUpdates {
	r.Offset = &offset
	return r
}

// WithLimit bounds the batch size (1-100).
func (r *GetUpdates) WithLimit(limit int64) *GetUpdates {
	r.Limit = &limit
	return r
}

// WithTimeout enables long polling with the given timeout in seconds.
func (r *GetUpdates) WithTimeout(seconds int64) *GetUpdates {
	r.Timeout = &seconds
	return r
}
