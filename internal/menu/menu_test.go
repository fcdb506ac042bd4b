package menu

import (
	"reflect"
	"testing"

	"github.com/codetray/codetray/internal/locale"
	"github.com/codetray/codetray/internal/models"
)

func testInput(projects ...models.Project) Input {
	return Input{
		Projects: projects,
		Strings:  locale.MustNew().Resolve("en"),
		Editors:  models.NewSettings().Editors,
		Tickers:  []string{"BTC"},
	}
}

func kinds(nodes []Node) []Kind {
	out := make([]Kind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind
	}
	return out
}

func TestBuildSingleProject(t *testing.T) {
	tree := Build(testInput(models.NewProject("/home/u/app")))

	projects := tree.Projects()
	if len(projects) != 1 {
		t.Fatalf("got %d project submenus, want 1", len(projects))
	}
	sub := projects[0]
	if sub.Label != "app" {
		t.Errorf("submenu label = %q, want app", sub.Label)
	}

	wantActions := []Action{
		OpenEditor{Editor: "code", Path: "/home/u/app"},
		OpenEditor{Editor: "subl", Path: "/home/u/app"},
		OpenEditor{Editor: "pstorm", Path: "/home/u/app"},
		RemoveProject{Path: "/home/u/app"},
	}
	if len(sub.Children) != len(wantActions) {
		t.Fatalf("got %d children, want %d", len(sub.Children), len(wantActions))
	}
	for i, c := range sub.Children {
		if c.Action != wantActions[i] {
			t.Errorf("child %d action = %#v, want %#v", i, c.Action, wantActions[i])
		}
	}
	if sub.Children[0].Label != "Open in VS Code" {
		t.Errorf("editor label = %q", sub.Children[0].Label)
	}
	if tree.Tooltip != "1 projects" {
		t.Errorf("Tooltip = %q", tree.Tooltip)
	}
}

func TestBuildOrder(t *testing.T) {
	in := testInput(
		models.NewProject("/a/one"),
		models.NewProject("/b/two"),
		models.NewProject("/c/three"),
	)
	tree := Build(in)

	want := []Kind{
		KindAction, KindSeparator,
		KindSubmenu, KindSubmenu, KindSubmenu,
		KindSeparator,
		KindSubmenu, // currency
		KindSeparator,
		KindCheckbox,
		KindSeparator,
		KindAction,
	}
	if got := kinds(tree.Nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	first, last := tree.Nodes[0], tree.Nodes[len(tree.Nodes)-1]
	if first.Action != (AddProject{}) {
		t.Errorf("first node action = %#v", first.Action)
	}
	if last.Action != (Quit{}) {
		t.Errorf("last node action = %#v", last.Action)
	}

	var labels []string
	for _, p := range tree.Projects() {
		labels = append(labels, p.Label)
	}
	if !reflect.DeepEqual(labels, []string{"one", "two", "three"}) {
		t.Errorf("project order = %v", labels)
	}
}

func TestBuildWithoutTickers(t *testing.T) {
	in := testInput()
	in.Tickers = nil
	tree := Build(in)

	if _, ok := tree.Find(IDCurrency); ok {
		t.Error("currency submenu present without tickers")
	}
	want := []Kind{KindAction, KindSeparator, KindSeparator, KindSeparator, KindCheckbox, KindSeparator, KindAction}
	if got := kinds(tree.Nodes); !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if tree.Tooltip != "0 projects" {
		t.Errorf("Tooltip = %q", tree.Tooltip)
	}
}

func TestBuildLoginCheckbox(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		in := testInput()
		in.AutoLogin = enabled
		node, ok := Build(in).Find(IDLogin)
		if !ok {
			t.Fatal("no login node")
		}
		if node.Checked != enabled {
			t.Errorf("Checked = %v, want %v", node.Checked, enabled)
		}
		if node.Action != (ToggleAutoLogin{Enabled: !enabled}) {
			t.Errorf("Action = %#v, want toggle to %v", node.Action, !enabled)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	in := testInput(models.NewProject("/x/a"), models.NewProject("/x/b"))
	in.AutoLogin = true
	first := Build(in)
	for i := 0; i < 10; i++ {
		if got := Build(in); !reflect.DeepEqual(got, first) {
			t.Fatalf("build %d differs:\n%+v\n%+v", i, got, first)
		}
	}
}

func TestBuildLiteralEditorLabel(t *testing.T) {
	in := testInput(models.NewProject("/x/a"))
	in.Editors = []models.EditorConfig{{ID: "zed", Command: "zed", Label: "Open in Zed"}}
	sub := Build(in).Projects()[0]
	if sub.Children[0].Label != "Open in Zed" {
		t.Errorf("label = %q", sub.Children[0].Label)
	}
}

func TestBuildLocalized(t *testing.T) {
	in := testInput(models.NewProject("/x/a"))
	in.Strings = locale.MustNew().Resolve("pt-BR")
	tree := Build(in)
	if tree.Nodes[0].Label != "Adicionar projeto" {
		t.Errorf("add label = %q", tree.Nodes[0].Label)
	}
	if tree.Tooltip != "1 projetos" {
		t.Errorf("Tooltip = %q", tree.Tooltip)
	}
}
