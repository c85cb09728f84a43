package message

import (
	"reflect"
	"testing"

	"telewire/pkg/wire"
)

func TestDecodeChatKnownVariants(t *testing.T) {
	private := DecodeChat(wire.RawChat{
		ID:        1,
		Type:      wire.ChatTypePrivate,
		FirstName: ptr("Ann"),
		Username:  ptr("ann"),
	})
	privateChat, ok := private.(PrivateChat)
	if !ok {
		t.Fatalf("chat = %T, want PrivateChat", private)
	}
	if privateChat.FirstName != "Ann" || privateChat.Username == nil || *privateChat.Username != "ann" {
		t.Fatalf("private chat = %+v, want Ann/@ann", privateChat)
	}

	group := DecodeChat(wire.RawChat{
		ID:                          -2,
		Type:                        wire.ChatTypeGroup,
		Title:                       ptr("room"),
		AllMembersAreAdministrators: ptr(true),
	})
	groupChat, ok := group.(GroupChat)
	if !ok {
		t.Fatalf("chat = %T, want GroupChat", group)
	}
	if groupChat.Title != "room" || !groupChat.AllMembersAreAdministrators {
		t.Fatalf("group chat = %+v, want room/all-admin", groupChat)
	}

	supergroup := DecodeChat(wire.RawChat{ID: -3, Type: wire.ChatTypeSupergroup, Title: ptr("big room")})
	if _, ok := supergroup.(SupergroupChat); !ok {
		t.Fatalf("chat = %T, want SupergroupChat", supergroup)
	}

	channel := DecodeChat(wire.RawChat{ID: -4, Type: wire.ChatTypeChannel, Title: ptr("news")})
	channelChat, ok := channel.(Channel)
	if !ok {
		t.Fatalf("chat = %T, want Channel", channel)
	}
	if channelChat.Title != "news" {
		t.Fatalf("channel title = %q, want news", channelChat.Title)
	}
}

func TestDecodeChatUnknownTypePreservesRaw(t *testing.T) {
	raw := wire.RawChat{ID: 5, Type: "business", Title: ptr("shop")}

	chat := DecodeChat(raw)
	unknown, ok := chat.(UnknownChat)
	if !ok {
		t.Fatalf("chat = %T, want UnknownChat", chat)
	}
	if !reflect.DeepEqual(unknown.Raw, raw) {
		t.Fatalf("unknown raw = %+v, want original %+v", unknown.Raw, raw)
	}
	if unknown.ID() != 5 {
		t.Fatalf("id = %d, want 5", unknown.ID())
	}
}

func TestChatIDAcrossVariants(t *testing.T) {
	chats := []Chat{
		PrivateChat{ChatID: 1},
		GroupChat{ChatID: 2},
		SupergroupChat{ChatID: 3},
		Channel{ChatID: 4},
	}

	for i, chat := range chats {
		if got := chat.ID(); got != wire.ChatID(i+1) {
			t.Fatalf("chat %d id = %d, want %d", i, got, i+1)
		}
	}
}
