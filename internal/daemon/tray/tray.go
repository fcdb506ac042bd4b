// Package tray implements the system tray icon and menu for the daemon.
package tray

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/getlantern/systray"

	"github.com/codetray/codetray/internal/daemon/dispatch"
	"github.com/codetray/codetray/internal/daemon/tray/slots"
	"github.com/codetray/codetray/internal/menu"
)

// Controller provides the menu tree and carries out its actions.
type Controller interface {
	Tree() menu.Tree
	Dispatch(ctx context.Context, action menu.Action) error
}

// slot is a pre-allocated menu item and the action it currently stands for.
type slot struct {
	item *systray.MenuItem

	mu     sync.Mutex
	action menu.Action
}

func (s *slot) set(e slots.Entry) {
	s.mu.Lock()
	s.action = e.Action
	s.mu.Unlock()

	s.item.SetTitle(e.Title)
	if e.Action == nil {
		s.item.Disable()
	} else {
		s.item.Enable()
	}
	s.item.Show()
}

func (s *slot) get() menu.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.action
}

func (s *slot) hide() {
	s.mu.Lock()
	s.action = nil
	s.mu.Unlock()
	s.item.Hide()
}

// groupSlot is a pre-allocated submenu.
type groupSlot struct {
	item     *systray.MenuItem
	children []*slot
}

func (g *groupSlot) set(gr slots.Group) {
	g.item.SetTitle(gr.Title)
	for i, c := range g.children {
		if i < len(gr.Children) {
			c.set(gr.Children[i])
		} else {
			c.hide()
		}
	}
	g.item.Show()
}

func (g *groupSlot) hide() {
	for _, c := range g.children {
		c.hide()
	}
	g.item.Hide()
}

// Tray renders menu trees from a Controller and feeds clicks back to it.
// All dispatching happens on one goroutine.
type Tray struct {
	ctrl Controller
	icon []byte

	ctx     context.Context
	cancel  context.CancelFunc
	clicks  chan menu.Action
	refresh chan struct{}
	onStart func()
	onExit  func()

	add      *slot
	projects []*groupSlot
	currency *groupSlot
	login    *slot
	quit     *slot
}

// New creates a tray for ctrl with the given template icon.
func New(ctrl Controller, icon []byte) *Tray {
	ctx, cancel := context.WithCancel(context.Background())
	return &Tray{
		ctrl:    ctrl,
		icon:    icon,
		ctx:     ctx,
		cancel:  cancel,
		clicks:  make(chan menu.Action),
		refresh: make(chan struct{}, 1),
	}
}

// Run starts the system tray. This blocks the calling goroutine (must be main).
// onStart is called once the menu exists; onExit when the tray exits.
func (t *Tray) Run(onStart, onExit func()) {
	t.onStart = onStart
	t.onExit = onExit
	systray.Run(t.onReady, t.onQuit)
}

// Refresh asks the tray to render a fresh tree. It never blocks.
func (t *Tray) Refresh() {
	select {
	case t.refresh <- struct{}{}:
	default:
	}
}

// Quit signals the tray to exit.
func (t *Tray) Quit() {
	systray.Quit()
}

func (t *Tray) onReady() {
	systray.SetTemplateIcon(t.icon, t.icon)

	t.add = t.newSlot(systray.AddMenuItem("", ""))
	systray.AddSeparator()

	for i := 0; i < slots.MaxProjects; i++ {
		t.projects = append(t.projects, t.newGroup(systray.AddMenuItem("", ""), slots.MaxChildren))
	}
	systray.AddSeparator()

	t.currency = t.newGroup(systray.AddMenuItem("", ""), slots.MaxTickers)
	systray.AddSeparator()

	t.login = t.newSlot(systray.AddMenuItemCheckbox("", "", false))
	systray.AddSeparator()

	t.quit = t.newSlot(systray.AddMenuItem("", ""))

	if t.onStart != nil {
		t.onStart()
	}

	t.render()
	go t.loop()
}

func (t *Tray) onQuit() {
	t.cancel()
	if t.onExit != nil {
		t.onExit()
	}
}

func (t *Tray) newSlot(item *systray.MenuItem) *slot {
	s := &slot{item: item}
	go t.watchClicks(s)
	return s
}

func (t *Tray) newGroup(item *systray.MenuItem, children int) *groupSlot {
	g := &groupSlot{item: item}
	for i := 0; i < children; i++ {
		g.children = append(g.children, t.newSlot(item.AddSubMenuItem("", "")))
	}
	g.hide()
	return g
}

// watchClicks forwards clicks on s to the dispatch loop.
func (t *Tray) watchClicks(s *slot) {
	for {
		select {
		case <-t.ctx.Done():
			return
		case <-s.item.ClickedCh:
			a := s.get()
			if a == nil {
				continue
			}
			select {
			case t.clicks <- a:
			case <-t.ctx.Done():
				return
			}
		}
	}
}

func (t *Tray) loop() {
	for {
		select {
		case <-t.ctx.Done():
			return
		case a := <-t.clicks:
			if err := t.ctrl.Dispatch(t.ctx, a); err != nil {
				if errors.Is(err, dispatch.ErrQuit) {
					log.Println("[tray] Quit requested")
					systray.Quit()
					return
				}
				log.Printf("[tray] Action failed: %v", err)
			}
		case <-t.refresh:
			t.render()
		}
	}
}

// render builds a fresh tree and applies it to the slots.
func (t *Tray) render() {
	l := slots.Plan(t.ctrl.Tree())

	systray.SetTooltip(l.Tooltip)
	t.add.set(l.Add)
	t.quit.set(l.Quit)

	t.login.set(l.Login)
	if l.Login.Checked {
		t.login.item.Check()
	} else {
		t.login.item.Uncheck()
	}

	for i, g := range t.projects {
		if i < len(l.Projects) {
			g.set(l.Projects[i])
		} else {
			g.hide()
		}
	}

	if l.Currency != nil {
		t.currency.set(*l.Currency)
	} else {
		t.currency.hide()
	}
}
