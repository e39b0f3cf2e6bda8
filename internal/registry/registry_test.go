package registry

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                     { return g.id }
func (g stubGame) Title() string                  { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)       {}
func (g stubGame) Step(core.Tick) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)            {}
func (g stubGame) State() core.GameState          { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func(Env) Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("stub-a", Env{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game", Env{}); err == nil {
		t.Error("Create() of an unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-b", func(Env) Game { return stubGame{id: "stub-b"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-b", func(Env) Game { return stubGame{id: "stub-b"} })
}
