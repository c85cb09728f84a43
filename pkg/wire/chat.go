package wire

// Chat type tags as sent in RawChat.Type.
const (
	ChatTypePrivate    = "private"
	ChatTypeGroup      = "group"
	ChatTypeSupergroup = "supergroup"
	ChatTypeChannel    = "channel"
)

// User is a Telegram user or bot account.
type User struct {
	ID UserID `json:"id"`
	// First name as set by the user.
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name,omitempty"`
	Username  *string `json:"username,omitempty"`
}

// RawChat is the flat conversation record. Which fields are meaningful
// depends on Type: private chats carry names, groups and channels carry a
// title, and so on. pkg/message resolves it into a tagged Chat variant.
type RawChat struct {
	ID ChatID `json:"id"`
	// Conversation kind tag, one of the ChatType constants for known kinds.
	Type string `json:"type"`
	// Title, for groups, supergroups and channels.
	Title *string `json:"title,omitempty"`
	// Username, for private chats, supergroups and channels if available.
	Username *string `json:"username,omitempty"`
	// First name of the other party in a private chat.
	FirstName *string `json:"first_name,omitempty"`
	// Last name of the other party in a private chat.
	LastName *string `json:"last_name,omitempty"`
	// True if all members of the group are administrators.
	AllMembersAreAdministrators *bool `json:"all_members_are_administrators,omitempty"`
}
