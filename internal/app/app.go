// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/backdrop/internal/config"
	"github.com/llehouerou/backdrop/internal/keymap"
	"github.com/llehouerou/backdrop/internal/notify"
	"github.com/llehouerou/backdrop/internal/playback"
	"github.com/llehouerou/backdrop/internal/player"
	"github.com/llehouerou/backdrop/internal/ui/styles"
)

const defaultWidth = 60

// Model is the root application model.
type Model struct {
	Service playback.Service
	Keys    *keymap.Resolver

	help    help.Model
	helpMap keymap.HelpMap
	sub     *playback.Subscription

	// Cached from the service on every playback message.
	snap playback.Snapshot
	info *player.TrackInfo

	notifier     notify.Notifier
	notifyCfg    config.NotificationsConfig
	notifyID     uint32
	lastNotified string

	Notice        string
	noticeVersion int
	Width         int
	Height        int
}

// New creates the model and subscribes to the playback service.
func New(svc playback.Service) Model {
	h := help.New()
	h.Styles.ShortKey = styles.T().S().Base
	h.Styles.ShortDesc = styles.T().S().Muted
	h.Styles.FullKey = styles.T().S().Base
	h.Styles.FullDesc = styles.T().S().Muted

	m := Model{
		Service: svc,
		Keys:    keymap.NewResolver(keymap.All),
		help:    h,
		helpMap: keymap.NewHelpMap(keymap.All),
		sub:     svc.Subscribe(),
		Width:   defaultWidth,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.WatchServiceEvents()
}

// refresh re-reads the controller snapshot and the loaded track's tags.
func (m *Model) refresh() {
	m.snap = m.Service.Snapshot()
	m.info = m.Service.Player().TrackInfo()
}
