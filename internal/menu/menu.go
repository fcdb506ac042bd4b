// Package menu builds the declarative tray menu from application state.
package menu

import (
	"fmt"

	"github.com/codetray/codetray/internal/locale"
	"github.com/codetray/codetray/internal/models"
)

// Kind is the type of a menu node.
type Kind int

// Node kinds.
const (
	KindAction Kind = iota
	KindSubmenu
	KindSeparator
	KindCheckbox
)

func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindSubmenu:
		return "submenu"
	case KindSeparator:
		return "separator"
	case KindCheckbox:
		return "checkbox"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node IDs for the fixed entries of the tree. Project submenus use the
// project path as their ID.
const (
	IDAdd      = "add"
	IDCurrency = "currency"
	IDLogin    = "login"
	IDQuit     = "quit"
)

// Node is one entry of the menu tree.
type Node struct {
	Kind     Kind
	ID       string
	Label    string
	Icon     string
	Action   Action // nil for submenus and separators
	Checked  bool   // checkbox only
	Children []Node // submenu only
}

// Tree is a full tray menu plus the tooltip that goes with it.
type Tree struct {
	Nodes   []Node
	Tooltip string
}

// Action is what a clickable node does when selected.
type Action interface {
	action()
}

// OpenEditor opens Path in the editor with the given ID.
type OpenEditor struct {
	Editor string
	Path   string
}

// RemoveProject unregisters the project at Path.
type RemoveProject struct {
	Path string
}

// AddProject asks the user for a folder and registers it.
type AddProject struct{}

// ToggleAutoLogin sets the launch-at-login flag to Enabled.
type ToggleAutoLogin struct {
	Enabled bool
}

// FetchTicker looks up and shows the price for Code.
type FetchTicker struct {
	Code string
}

// Quit ends the tray process.
type Quit struct{}

func (OpenEditor) action()      {}
func (RemoveProject) action()   {}
func (AddProject) action()      {}
func (ToggleAutoLogin) action() {}
func (FetchTicker) action()     {}
func (Quit) action()            {}

// Input is everything the menu depends on.
type Input struct {
	Projects  []models.Project
	Strings   locale.Strings
	AutoLogin bool
	Editors   []models.EditorConfig
	Tickers   []string
}

// Build turns the input into a menu tree. It has no side effects and the
// same input always yields the same tree.
//
// Layout: add, separator, one submenu per project, separator, currency
// submenu (only when tickers are configured), separator, login checkbox,
// separator, quit.
func Build(in Input) Tree {
	s := in.Strings
	nodes := make([]Node, 0, len(in.Projects)+8)

	nodes = append(nodes, Node{Kind: KindAction, ID: IDAdd, Label: s.Get("add"), Action: AddProject{}})
	nodes = append(nodes, separator())

	for _, p := range in.Projects {
		nodes = append(nodes, projectNode(p, s, in.Editors))
	}
	nodes = append(nodes, separator())

	if len(in.Tickers) > 0 {
		children := make([]Node, 0, len(in.Tickers))
		for _, code := range in.Tickers {
			children = append(children, Node{Kind: KindAction, ID: IDCurrency + ":" + code, Label: code, Action: FetchTicker{Code: code}})
		}
		nodes = append(nodes, Node{Kind: KindSubmenu, ID: IDCurrency, Label: s.Get("currency"), Children: children})
	}
	nodes = append(nodes, separator())

	nodes = append(nodes, Node{
		Kind:    KindCheckbox,
		ID:      IDLogin,
		Label:   s.Get("initLogin"),
		Checked: in.AutoLogin,
		Action:  ToggleAutoLogin{Enabled: !in.AutoLogin},
	})
	nodes = append(nodes, separator())

	nodes = append(nodes, Node{Kind: KindAction, ID: IDQuit, Label: s.Get("close"), Action: Quit{}})

	return Tree{Nodes: nodes, Tooltip: Tooltip(len(in.Projects), s)}
}

// Tooltip formats the project count shown on the tray icon.
func Tooltip(count int, s locale.Strings) string {
	return fmt.Sprintf("%d %s", count, s.Get("count"))
}

func projectNode(p models.Project, s locale.Strings, editors []models.EditorConfig) Node {
	children := make([]Node, 0, len(editors)+1)
	for _, e := range editors {
		children = append(children, Node{
			Kind:   KindAction,
			ID:     p.Path + ":" + e.ID,
			Label:  s.Get(e.Label),
			Action: OpenEditor{Editor: e.ID, Path: p.Path},
		})
	}
	children = append(children, Node{
		Kind:   KindAction,
		ID:     p.Path + ":remove",
		Label:  s.Get("remove"),
		Action: RemoveProject{Path: p.Path},
	})
	return Node{Kind: KindSubmenu, ID: p.Path, Label: p.Name, Children: children}
}

func separator() Node {
	return Node{Kind: KindSeparator}
}

// Projects returns the project submenus of a tree, in order.
func (t Tree) Projects() []Node {
	var out []Node
	for _, n := range t.Nodes {
		if n.Kind == KindSubmenu && n.ID != IDCurrency {
			out = append(out, n)
		}
	}
	return out
}

// Find returns the top-level node with the given ID.
func (t Tree) Find(id string) (Node, bool) {
	for _, n := range t.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
