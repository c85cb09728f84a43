package message

import (
	"encoding/json"

	"telewire/pkg/wire"
)

// MessageEntity is one annotation over a range of a text message. Offset
// and Length are in UTF-16 code units, carried through from the wire
// contract verbatim.
type MessageEntity struct {
	Offset int64
	Length int64
	Kind   MessageEntityKind
}

// MessageEntityKind is the resolved annotation kind: exactly one variant.
type MessageEntityKind interface {
	isMessageEntityKind()
}

// No-payload annotation kinds.
type (
	// Mention is an @username mention.
	Mention struct{}
	// Hashtag is a #hashtag span.
	Hashtag struct{}
	// BotCommand is a /command span.
	BotCommand struct{}
	// URL is a literal URL span.
	URL struct{}
	// Email is an email address span.
	Email struct{}
	// Bold is bold text.
	Bold struct{}
	// Italic is italic text.
	Italic struct{}
	// Code is a monowidth string.
	Code struct{}
	// Pre is a monowidth block.
	Pre struct{}
)

// TextLink is clickable text opening the given URL.
type TextLink struct {
	URL string
}

// TextMention mentions a user without a username.
type TextMention struct {
	User wire.User
}

// UnknownEntity preserves an annotation whose tag is not recognized. Raw
// retains every wire field, so re-resolving after a schema update needs no
// re-fetch.
type UnknownEntity struct {
	Raw wire.RawMessageEntity
}

func (k Mention) isMessageEntityKind()       {}
func (k Hashtag) isMessageEntityKind()       {}
func (k BotCommand) isMessageEntityKind()    {}
func (k URL) isMessageEntityKind()           {}
func (k Email) isMessageEntityKind()         {}
func (k Bold) isMessageEntityKind()          {}
func (k Italic) isMessageEntityKind()        {}
func (k Code) isMessageEntityKind()          {}
func (k Pre) isMessageEntityKind()           {}
func (k TextLink) isMessageEntityKind()      {}
func (k TextMention) isMessageEntityKind()   {}
func (k UnknownEntity) isMessageEntityKind() {}

// entitySpec ties one known tag to its mandatory companion field and
// constructor. Keeping the policy in one table means adding a new known
// tag is a single entry here.
type entitySpec struct {
	// Wire key that must be present for this tag, "" when none.
	required string
	build    func(raw wire.RawMessageEntity) MessageEntityKind
}

var entitySpecs = map[string]entitySpec{
	"mention":     {build: func(wire.RawMessageEntity) MessageEntityKind { return Mention{} }},
	"hashtag":     {build: func(wire.RawMessageEntity) MessageEntityKind { return Hashtag{} }},
	"bot_command": {build: func(wire.RawMessageEntity) MessageEntityKind { return BotCommand{} }},
	"url":         {build: func(wire.RawMessageEntity) MessageEntityKind { return URL{} }},
	"email":       {build: func(wire.RawMessageEntity) MessageEntityKind { return Email{} }},
	"bold":        {build: func(wire.RawMessageEntity) MessageEntityKind { return Bold{} }},
	"italic":      {build: func(wire.RawMessageEntity) MessageEntityKind { return Italic{} }},
	"code":        {build: func(wire.RawMessageEntity) MessageEntityKind { return Code{} }},
	"pre":         {build: func(wire.RawMessageEntity) MessageEntityKind { return Pre{} }},
	"text_link": {
		required: "url",
		build:    func(raw wire.RawMessageEntity) MessageEntityKind { return TextLink{URL: *raw.URL} },
	},
	"text_mention": {
		required: "user",
		build:    func(raw wire.RawMessageEntity) MessageEntityKind { return TextMention{User: *raw.User} },
	},
}

// DecodeEntity resolves one flat annotation record. An unrecognized tag is
// not an error and resolves to UnknownEntity; only a recognized tag missing
// its mandatory companion field fails.
func DecodeEntity(raw wire.RawMessageEntity) (MessageEntity, error) {
	entity := MessageEntity{Offset: raw.Offset, Length: raw.Length}

	spec, known := entitySpecs[raw.Type]
	if !known {
		entity.Kind = UnknownEntity{Raw: raw}
		return entity, nil
	}

	if spec.required != "" && !hasEntityField(raw, spec.required) {
		return MessageEntity{}, missingRequiredField(spec.required)
	}

	entity.Kind = spec.build(raw)
	return entity, nil
}

func hasEntityField(raw wire.RawMessageEntity, field string) bool {
	switch field {
	case "url":
		return raw.URL != nil
	case "user":
		return raw.User != nil
	default:
		return false
	}
}

// decodeEntities resolves a text message's annotation list. A nil wire
// list normalizes to an empty slice: text messages always carry a
// (possibly empty) entity sequence.
func decodeEntities(raw []wire.RawMessageEntity) ([]MessageEntity, error) {
	entities := make([]MessageEntity, 0, len(raw))
	for _, rawEntity := range raw {
		entity, err := DecodeEntity(rawEntity)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

// UnmarshalJSON decodes the wire JSON object straight into the resolved
// entity shape.
func (e *MessageEntity) UnmarshalJSON(data []byte) error {
	var raw wire.RawMessageEntity
	if err := json.Unmarshal(data, &raw); err != nil {
		return normalizeJSONError(err)
	}

	decoded, err := DecodeEntity(raw)
	if err != nil {
		return err
	}

	*e = decoded
	return nil
}
