package wire

// MessageID identifies a message inside one chat. IDs are only unique per
// chat, so comparing them across chats is meaningless.
type MessageID int64

// UserID identifies a Telegram user or bot account.
type UserID int64

// ChatID identifies a private, group, supergroup, or channel chat.
type ChatID int64
