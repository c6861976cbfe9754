package app

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/llehouerou/serein/internal/app/popupctl"
	"github.com/llehouerou/serein/internal/catalog"
	"github.com/llehouerou/serein/internal/journal"
	"github.com/llehouerou/serein/internal/keymap"
	"github.com/llehouerou/serein/internal/notify"
	"github.com/llehouerou/serein/internal/playback"
	"github.com/llehouerou/serein/internal/state"
	"github.com/llehouerou/serein/internal/ui/cursor"
	"github.com/llehouerou/serein/internal/ui/styles"
)

// View identifies the top-level screen.
type View int

const (
	ViewHome View = iota
	ViewMeditations
	ViewJournal
)

const viewCount = 3

// String returns the view name used by the header bar.
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewMeditations:
		return "meditations"
	case ViewJournal:
		return "journal"
	default:
		return "unknown"
	}
}

// DefaultAffirmationDelay is how long a new affirmation takes to appear.
const DefaultAffirmationDelay = 2 * time.Second

// Deps are the services the model drives.
type Deps struct {
	Catalog  *catalog.Catalog
	Player   *playback.Controller
	Journal  *journal.Service
	State    state.Interface
	Notifier notify.Notifier // optional
	Logger   hclog.Logger    // optional
	// AudioBase is shown in the setup help.
	AudioBase string
	// Rand draws affirmations; nil seeds a new source.
	Rand *rand.Rand
	// AffirmationDelay overrides DefaultAffirmationDelay when positive.
	AffirmationDelay time.Duration
}

type homeModel struct {
	current    catalog.Affirmation
	has        bool
	generating bool
	saved      bool
	showSaved  bool
	items      []state.SavedAffirmation
	cursor     cursor.Cursor
}

type meditationsModel struct {
	cursor cursor.Cursor
	// selected is the meditation shown in the player bar; empty after Stop.
	selected string
	textMode bool
}

type journalModel struct {
	editor        textarea.Model
	editing       bool
	pending       bool
	entry         string
	reply         *journal.Reply
	showQuestions bool
	showHistory   bool
	history       []state.JournalEntry
	cursor        cursor.Cursor
}

// Model is the root application model.
type Model struct {
	catalog          *catalog.Catalog
	player           *playback.Controller
	journal          *journal.Service
	state            state.Interface
	notifier         notify.Notifier
	log              hclog.Logger
	audioBase        string
	rng              *rand.Rand
	affirmationDelay time.Duration

	keys    *keymap.Resolver
	popups  *popupctl.Manager
	sub     *playback.Subscription
	spinner spinner.Model

	view          View
	width, height int

	home homeModel
	med  meditationsModel
	jrnl journalModel

	status        string
	statusIsError bool
	statusVersion int
	statusDelay   time.Duration
}

// New creates the root model. It subscribes to the player immediately so
// no event is missed before Init.
func New(d Deps) Model {
	if d.Logger == nil {
		d.Logger = hclog.NewNullLogger()
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if d.AffirmationDelay <= 0 {
		d.AffirmationDelay = DefaultAffirmationDelay
	}
	if d.Catalog == nil {
		d.Catalog = catalog.Default()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = lipgloss.NewStyle().Foreground(styles.T().Blush)

	m := Model{
		catalog:          d.Catalog,
		player:           d.Player,
		journal:          d.Journal,
		state:            d.State,
		notifier:         d.Notifier,
		log:              d.Logger,
		audioBase:        d.AudioBase,
		rng:              d.Rand,
		affirmationDelay: d.AffirmationDelay,
		keys:             keymap.NewResolver(keymap.All),
		popups:           popupctl.New(),
		spinner:          sp,
		jrnl:             journalModel{editor: newEditor()},
		statusDelay:      statusDuration,
	}
	if d.Player != nil {
		m.sub = d.Player.Subscribe()
	}
	return m
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "How are you feeling today? Write freely…"
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.Prompt = "┃ "
	ta.SetHeight(6)
	return ta
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchPlayback(), m.loadSavedCmd())
}

// busy reports whether something is animating the spinner.
func (m Model) busy() bool {
	if m.home.generating || m.jrnl.pending {
		return true
	}
	return m.med.selected != "" && m.player != nil && m.player.State().IsLoading
}

// setStatus shows a transient message in the footer.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.status = msg
	m.statusIsError = isErr
	m.statusVersion++
	return statusTimeoutCmd(m.statusVersion, m.statusDelay)
}
