// Package slots maps menu trees onto the tray's fixed set of items.
package slots

import (
	"log"

	"github.com/codetray/codetray/internal/menu"
)

// Slot limits. Tray items cannot be removed, so the tray allocates this
// many up front and hides the ones a tree does not use.
const (
	MaxProjects = 40
	MaxChildren = 10
	MaxTickers  = 8
)

// Entry is one clickable item of a layout.
type Entry struct {
	Title   string
	Action  menu.Action
	Checked bool
}

// Group is a submenu of a layout.
type Group struct {
	Title    string
	Children []Entry
}

// Layout is a tree mapped onto the tray's fixed item slots.
type Layout struct {
	Tooltip  string
	Add      Entry
	Projects []Group
	Currency *Group
	Login    Entry
	Quit     Entry
}

// Plan maps tree onto the slot layout, dropping what does not fit.
func Plan(tree menu.Tree) Layout {
	l := Layout{Tooltip: tree.Tooltip}
	for _, n := range tree.Nodes {
		switch n.Kind {
		case menu.KindSeparator:
			// Separators are fixed in the tray.
		case menu.KindCheckbox:
			l.Login = Entry{Title: n.Label, Action: n.Action, Checked: n.Checked}
		case menu.KindAction:
			switch n.ID {
			case menu.IDAdd:
				l.Add = Entry{Title: n.Label, Action: n.Action}
			case menu.IDQuit:
				l.Quit = Entry{Title: n.Label, Action: n.Action}
			default:
				log.Printf("[slots] No slot for action %q", n.ID)
			}
		case menu.KindSubmenu:
			g := toGroup(n)
			if n.ID == menu.IDCurrency {
				if len(g.Children) > MaxTickers {
					g.Children = g.Children[:MaxTickers]
				}
				l.Currency = &g
				continue
			}
			if len(l.Projects) == MaxProjects {
				log.Printf("[slots] Menu full, not showing project %q", n.Label)
				continue
			}
			if len(g.Children) > MaxChildren {
				// Keep the trailing remove entry reachable.
				g.Children = append(g.Children[:MaxChildren-1], g.Children[len(g.Children)-1])
			}
			l.Projects = append(l.Projects, g)
		}
	}
	return l
}

func toGroup(n menu.Node) Group {
	g := Group{Title: n.Label}
	for _, c := range n.Children {
		g.Children = append(g.Children, Entry{Title: c.Label, Action: c.Action, Checked: c.Checked})
	}
	return g
}
