package message

import "telewire/pkg/wire"

// Chat is the resolved conversation a message belongs to: exactly one of
// PrivateChat, GroupChat, SupergroupChat, Channel, or UnknownChat.
type Chat interface {
	isChat()
	// ID returns the chat identifier regardless of variant.
	ID() wire.ChatID
}

// PrivateChat is a one-on-one conversation with a user.
type PrivateChat struct {
	ChatID    wire.ChatID
	FirstName string
	LastName  *string
	Username  *string
}

// GroupChat is a basic group.
type GroupChat struct {
	ChatID                      wire.ChatID
	Title                       string
	AllMembersAreAdministrators bool
}

// SupergroupChat is a supergroup.
type SupergroupChat struct {
	ChatID   wire.ChatID
	Title    string
	Username *string
}

// Channel is a broadcast channel. Forward provenance reconstruction only
// accepts this variant as a forwarding chat.
type Channel struct {
	ChatID   wire.ChatID
	Title    string
	Username *string
}

// UnknownChat preserves a conversation record whose type tag is not
// recognized, so new chat kinds introduced upstream degrade gracefully.
type UnknownChat struct {
	Raw wire.RawChat
}

func (c PrivateChat) isChat()    {}
func (c GroupChat) isChat()      {}
func (c SupergroupChat) isChat() {}
func (c Channel) isChat()        {}
func (c UnknownChat) isChat()    {}

func (c PrivateChat) ID() wire.ChatID    { return c.ChatID }
func (c GroupChat) ID() wire.ChatID      { return c.ChatID }
func (c SupergroupChat) ID() wire.ChatID { return c.ChatID }
func (c Channel) ID() wire.ChatID        { return c.ChatID }
func (c UnknownChat) ID() wire.ChatID    { return c.Raw.ID }

// DecodeChat resolves a flat conversation record into a Chat variant. It
// never fails: unrecognized type tags become UnknownChat with the raw
// record preserved.
func DecodeChat(raw wire.RawChat) Chat {
	switch raw.Type {
	case wire.ChatTypePrivate:
		return PrivateChat{
			ChatID:    raw.ID,
			FirstName: stringOrEmpty(raw.FirstName),
			LastName:  raw.LastName,
			Username:  raw.Username,
		}
	case wire.ChatTypeGroup:
		return GroupChat{
			ChatID:                      raw.ID,
			Title:                       stringOrEmpty(raw.Title),
			AllMembersAreAdministrators: raw.AllMembersAreAdministrators != nil && *raw.AllMembersAreAdministrators,
		}
	case wire.ChatTypeSupergroup:
		return SupergroupChat{
			ChatID:   raw.ID,
			Title:    stringOrEmpty(raw.Title),
			Username: raw.Username,
		}
	case wire.ChatTypeChannel:
		return Channel{
			ChatID:   raw.ID,
			Title:    stringOrEmpty(raw.Title),
			Username: raw.Username,
		}
	default:
		return UnknownChat{Raw: raw}
	}
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
