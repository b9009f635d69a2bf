package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (s *stubGame) ID() string                          { return s.id }
func (s *stubGame) Title() string                       { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)            { s.state = core.GameState{} }
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: s.state} }
func (s *stubGame) Render(*core.Screen)                 {}
func (s *stubGame) State() core.GameState               { return s.state }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegistryLookups(t *testing.T) {
	Register("test_lookup", stub("test_lookup"))

	tests := []struct {
		id     string
		exists bool
		title  string
	}{
		{"test_lookup", true, "Stub test_lookup"},
		{"no_such_variant", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Exists(tt.id); got != tt.exists {
				t.Errorf("Exists = %v, want %v", got, tt.exists)
			}

			info, ok := Lookup(tt.id)
			if ok != tt.exists || info.Title != tt.title {
				t.Errorf("Lookup = %+v, %v; want title %q, %v", info, ok, tt.title, tt.exists)
			}

			g, err := Create(tt.id)
			if !tt.exists {
				if !errors.Is(err, ErrUnknownVariant) {
					t.Errorf("Create error = %v, want ErrUnknownVariant", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if g.ID() != tt.id {
				t.Errorf("ID = %q, want %q", g.ID(), tt.id)
			}
		})
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	Register("test_fresh", stub("test_fresh"))

	a, _ := Create("test_fresh")
	b, _ := Create("test_fresh")
	if a == b {
		t.Error("Create should build a new game every call")
	}
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	Register("test_order_z", stub("test_order_z"))
	Register("test_order_a", stub("test_order_a"))

	z, a := -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test_order_z":
			z = i
		case "test_order_a":
			a = i
		}
	}
	if z < 0 || a < 0 {
		t.Fatal("registered variants missing from List")
	}
	if z > a {
		t.Errorf("List order: test_order_z at %d, test_order_a at %d", z, a)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", stub("test_dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", stub("test_dup"))
}
