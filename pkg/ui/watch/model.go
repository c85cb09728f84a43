package watch

import (
	"fmt"
	"strings"
	"time"

	"telewire/pkg/message"
	"telewire/pkg/wire"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const previewLimit = 80

// RuntimeInfo is the header line context shown above the feed.
type RuntimeInfo struct {
	BotUsername string
}

type updateMsg message.Update

type streamClosedMsg struct{}

// line is one rendered feed entry, split by region so the view can style
// each part.
type line struct {
	at      time.Time
	kind    string
	unknown bool
	chat    string
	sender  string
	forward string
	preview string
}

type model struct {
	updates <-chan message.Update

	theme    theme
	viewport viewport.Model
	lines    []line
	width    int
	height   int
	isReady  bool
	closed   bool
	seen     int
	runtime  RuntimeInfo
}

func newModel(updates <-chan message.Update, info RuntimeInfo) *model {
	vp := viewport.New(80, 20)

	return &model{
		updates:  updates,
		theme:    defaultTheme(),
		viewport: vp,
		width:    100,
		height:   28,
		runtime:  info,
	}
}

func (m *model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

// waitForUpdate blocks on the stream channel and turns the next update
// into a tea message.
func waitForUpdate(updates <-chan message.Update) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return streamClosedMsg{}
		}
		return updateMsg(update)
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.viewport.Width = typed.Width
		m.viewport.Height = max(typed.Height-4, 3)
		m.refreshViewport()
		m.isReady = true
		return m, nil

	case updateMsg:
		m.seen++
		m.lines = append(m.lines, summarize(message.Update(typed)))
		m.refreshViewport()
		return m, waitForUpdate(m.updates)

	case streamClosedMsg:
		m.closed = true
		return m, nil

	case tea.KeyMsg:
		switch typed.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := m.theme.header.Render("telewire watch")
	if m.runtime.BotUsername != "" {
		header += " " + m.theme.status.Render("@"+m.runtime.BotUsername)
	}

	status := m.theme.status.Render(fmt.Sprintf("%d updates · q to quit", m.seen))
	if m.closed {
		status = m.theme.closed.Render("stream closed") + " " + status
	}

	divider := m.theme.divider.Render(strings.Repeat("─", max(m.width, 10)))

	return strings.Join([]string{header, divider, m.viewport.View(), status}, "\n")
}

func (m *model) refreshViewport() {
	rendered := make([]string, 0, len(m.lines))
	for _, entry := range m.lines {
		rendered = append(rendered, m.renderLine(entry))
	}

	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

func (m *model) renderLine(entry line) string {
	kindStyle := m.theme.kind
	if entry.unknown {
		kindStyle = m.theme.kindOther
	}

	parts := []string{
		m.theme.timestamp.Render(entry.at.Format("15:04:05")),
		kindStyle.Render(entry.kind),
		m.theme.chat.Render(entry.chat),
	}
	if entry.sender != "" {
		parts = append(parts, m.theme.sender.Render(entry.sender))
	}
	if entry.forward != "" {
		parts = append(parts, m.theme.forward.Render(entry.forward))
	}
	if entry.preview != "" {
		parts = append(parts, m.theme.preview.Render(entry.preview))
	}

	return strings.Join(parts, " ")
}

// summarize flattens one normalized update into a feed entry.
func summarize(update message.Update) line {
	entry := line{at: time.Now()}

	var msg *message.Message
	switch kind := update.Kind.(type) {
	case message.UpdateMessage:
		msg = &kind.Data
	case message.UpdateEditedMessage:
		msg = &kind.Data
		entry.forward = "edited"
	case message.UpdateChannelPost:
		msg = &kind.Data
	case message.UpdateEditedChannelPost:
		msg = &kind.Data
		entry.forward = "edited"
	case message.UpdateUnknown:
		entry.kind = "unknown_update"
		entry.unknown = true
		entry.chat = fmt.Sprintf("update=%d", update.ID)
		return entry
	}

	entry.kind = message.KindName(msg.Kind)
	if _, isUnknown := msg.Kind.(message.Unknown); isUnknown {
		entry.unknown = true
	}
	entry.chat = chatLabel(msg.Chat)
	if msg.From != nil {
		entry.sender = senderLabel(*msg.From)
	}
	if msg.Forward != nil {
		entry.forward = forwardLabel(*msg.Forward)
	}
	entry.preview = kindPreview(msg.Kind)

	return entry
}

func chatLabel(chat message.Chat) string {
	switch typed := chat.(type) {
	case message.PrivateChat:
		return "private:" + typed.FirstName
	case message.GroupChat:
		return "group:" + typed.Title
	case message.SupergroupChat:
		return "supergroup:" + typed.Title
	case message.Channel:
		return "channel:" + typed.Title
	default:
		return fmt.Sprintf("chat:%d", chat.ID())
	}
}

func senderLabel(user wire.User) string {
	if user.Username != nil {
		return "@" + *user.Username
	}
	return user.FirstName
}

func forwardLabel(forward message.Forward) string {
	switch from := forward.From.(type) {
	case message.ForwardFromUser:
		return "fwd:" + senderLabel(from.User)
	case message.ForwardFromChannel:
		return "fwd:channel:" + from.Channel.Title
	default:
		return "fwd"
	}
}

func kindPreview(kind message.MessageKind) string {
	switch typed := kind.(type) {
	case message.Text:
		preview := previewText(typed.Data)
		if len(typed.Entities) > 0 {
			preview = fmt.Sprintf("%s [%d entities]", preview, len(typed.Entities))
		}
		return preview
	case message.Document:
		return previewCaption(typed.Caption)
	case message.Photo:
		return previewCaption(typed.Caption)
	case message.Video:
		return previewCaption(typed.Caption)
	case message.NewChatTitle:
		return previewText(typed.Data)
	default:
		return ""
	}
}

func previewCaption(caption *string) string {
	if caption == nil {
		return ""
	}
	return previewText(*caption)
}

// previewText returns a bounded single-line preview.
func previewText(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if len(collapsed) <= previewLimit {
		return collapsed
	}

	return collapsed[:previewLimit] + "..."
}
