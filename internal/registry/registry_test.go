package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-crawler/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state, Changed: true}
}

func stubFactory(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", stubFactory("stub_b"))
	Register("stub_a", stubFactory("stub_a"))

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Fatal("Exists() reports the wrong games")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	// Each Create returns an independent instance.
	g.Step(core.NewInputFrame())
	other, _ := Create("stub_a")
	if other.State().Score != 0 {
		t.Error("instances share state")
	}

	want := []GameInfo{
		{ID: "stub_a", Title: "Stub stub_a"},
		{ID: "stub_b", Title: "Stub stub_b"},
	}
	if diff := cmp.Diff(want, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", stubFactory("stub_dup"))

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on duplicate registration")
		}
	}()
	Register("stub_dup", stubFactory("stub_dup"))
}
