// Package popupctl manages the modal popups drawn over the current view.
package popupctl

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/serein/internal/ui/helpbindings"
	"github.com/llehouerou/serein/internal/ui/popup"
	"github.com/llehouerou/serein/internal/ui/render"
	"github.com/llehouerou/serein/internal/ui/styles"
)

type textPopup struct {
	title   string
	content string
	offset  int
}

type confirmPopup struct {
	title   string
	message string
	context any
}

// Manager manages all modal popups and overlays.
type Manager struct {
	help     *helpbindings.Model
	texts    map[Type]*textPopup
	confirm  *confirmPopup
	errorMsg string
	width    int
	height   int
}

// New creates an empty Manager.
func New() *Manager {
	return &Manager{texts: make(map[Type]*textPopup)}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	if p.help != nil {
		p.help.SetSize(width, height)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Help:
		return p.help != nil
	case Confirm:
		return p.confirm != nil
	case Error:
		return p.errorMsg != ""
	case Script, SetupHelp:
		return p.texts[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
	case Help:
		p.help = nil
	case Confirm:
		p.confirm = nil
	case Error:
		p.errorMsg = ""
	case Script, SetupHelp:
		delete(p.texts, t)
	}
}

// ShowHelp displays the key reference for the given contexts.
func (p *Manager) ShowHelp(contexts ...string) {
	h := helpbindings.New(contexts...)
	h.SetSize(p.width, p.height)
	p.help = &h
}

// ShowText displays a scrollable text popup. Only Script and SetupHelp
// carry text.
func (p *Manager) ShowText(t Type, title, content string) {
	if t != Script && t != SetupHelp {
		return
	}
	p.texts[t] = &textPopup{title: title, content: content}
}

// ShowConfirm asks a yes/no question. context is returned in the
// ConfirmResultMsg.
func (p *Manager) ShowConfirm(title, message string, context any) {
	p.confirm = &confirmPopup{title: title, message: message, context: context}
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the error currently shown, if any.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// HandleKey routes a key to the active popup. It reports false when no
// popup is open.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch t := p.ActivePopup(); t {
	case None:
		return false, nil
	case Error:
		p.errorMsg = ""
		return true, nil
	case Help:
		h, cmd := p.help.Update(msg)
		p.help = &h
		return true, cmd
	case Confirm:
		return true, p.handleConfirmKey(msg)
	case Script, SetupHelp:
		p.handleTextKey(t, msg)
		return true, nil
	}
	return false, nil
}

func (p *Manager) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	var confirmed bool
	switch msg.String() {
	case "y", "enter":
		confirmed = true
	case "n", "esc", "q":
	default:
		return nil
	}
	ctx := p.confirm.context
	p.confirm = nil
	return func() tea.Msg {
		return ConfirmResultMsg{Confirmed: confirmed, Context: ctx}
	}
}

func (p *Manager) handleTextKey(t Type, msg tea.KeyMsg) {
	tp := p.texts[t]
	switch msg.String() {
	case "esc", "q", "enter", "r", "h":
		p.Hide(t)
	case "j", "down":
		tp.offset = min(tp.offset+1, p.maxOffset(tp))
	case "k", "up":
		tp.offset = max(tp.offset-1, 0)
	case "g", "home":
		tp.offset = 0
	}
}

// Render draws the visible popups over base.
func (p *Manager) Render(base string) string {
	out := base
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}
		out = p.render(t, out)
	}
	return out
}

func (p *Manager) render(t Type, base string) string {
	switch t {
	case None:
		return base
	case Help:
		return p.help.View(base)
	case Confirm:
		d := popup.Dialog{
			Title:   p.confirm.title,
			Content: p.confirm.message,
			Footer:  "y confirm · n cancel",
			Accent:  styles.T().Warning,
		}
		return d.Over(base, p.width, p.height)
	case Error:
		d := popup.Dialog{
			Title:   "Something went wrong",
			Content: p.errorMsg,
			Footer:  "press any key",
			Accent:  styles.T().Error,
		}
		return d.Over(base, p.width, p.height)
	case Script, SetupHelp:
		tp := p.texts[t]
		d := popup.Dialog{
			Title:   tp.title,
			Content: tp.content,
			Footer:  "j/k scroll · esc close",
			Width:   p.textWidth(),
			Offset:  tp.offset,
		}
		return d.Over(base, p.width, p.height)
	}
	return base
}

func (p *Manager) textWidth() int {
	return max(min(p.width-8, 72), 10)
}

func (p *Manager) maxOffset(tp *textPopup) int {
	lines := strings.Count(render.Wrap(tp.content, p.textWidth()), "\n") + 1
	return max(lines-max(p.height-8, 1), 0)
}
