package scene

import (
	"errors"
	"testing"

	"github.com/san-kum/lorenz/internal/engine"
)

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()
	tests := []struct {
		key  engine.Key
		want Action
	}{
		{engine.KeyEscape, ActionQuit},
		{"r", ActionReset},
		{engine.KeyLeft, ActionSlower},
		{engine.KeyRight, ActionFaster},
		{"m", ActionToggleMode},
	}
	for _, tt := range tests {
		got, ok := b.Lookup(tt.key)
		if !ok || got != tt.want {
			t.Errorf("Lookup(%q) = %v, %v; want %v", tt.key, got, ok, tt.want)
		}
	}
	if _, ok := b.Lookup("x"); ok {
		t.Error("x should be unbound")
	}
	if b.Len() != 5 {
		t.Errorf("Len = %d, want 5", b.Len())
	}
}

func TestBindingsHelp(t *testing.T) {
	want := "ESC quit  R reset  ← decrease-speed  → increase-speed  M toggle-mode"
	if got := DefaultBindings().Help(); got != want {
		t.Errorf("Help = %q\nwant %q", got, want)
	}
}

func TestBindKeepsOrder(t *testing.T) {
	b := DefaultBindings()
	if err := b.Bind("p", ActionReset); err != nil {
		t.Fatal(err)
	}
	if _, ok := b.Lookup("r"); ok {
		t.Error("old key r still bound")
	}
	if a, _ := b.Lookup("p"); a != ActionReset {
		t.Errorf("p bound to %v", a)
	}
	want := "ESC quit  P reset  ← decrease-speed  → increase-speed  M toggle-mode"
	if got := b.Help(); got != want {
		t.Errorf("Help = %q", got)
	}
}

func TestBindErrors(t *testing.T) {
	b := DefaultBindings()
	if err := b.Bind("m", ActionReset); !errors.Is(err, ErrKeyInUse) {
		t.Errorf("rebinding m: got %v, want ErrKeyInUse", err)
	}
	if err := b.Bind("z", ActionNone); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("binding none: got %v, want ErrUnknownAction", err)
	}
	if err := b.Bind("m", ActionToggleMode); err != nil {
		t.Errorf("rebinding to the same action: %v", err)
	}
}

func TestApply(t *testing.T) {
	b := DefaultBindings()
	err := b.Apply(map[string]string{"toggle-mode": "T", "quit": "q"})
	if err != nil {
		t.Fatal(err)
	}
	if a, _ := b.Lookup("t"); a != ActionToggleMode {
		t.Errorf("t bound to %v", a)
	}
	if a, _ := b.Lookup("q"); a != ActionQuit {
		t.Errorf("q bound to %v", a)
	}

	if err := b.Apply(map[string]string{"jump": "j"}); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("got %v, want ErrUnknownAction", err)
	}
}

func TestApplySwapsKeys(t *testing.T) {
	b := DefaultBindings()
	if err := b.Apply(map[string]string{"reset": "m", "toggle-mode": "r"}); err != nil {
		t.Fatal(err)
	}
	if a, _ := b.Lookup("m"); a != ActionReset {
		t.Errorf("m bound to %v", a)
	}
	if a, _ := b.Lookup("r"); a != ActionToggleMode {
		t.Errorf("r bound to %v", a)
	}
	want := "ESC quit  M reset  ← decrease-speed  → increase-speed  R toggle-mode"
	if got := b.Help(); got != want {
		t.Errorf("Help = %q", got)
	}
}

func TestApplyConflictLeavesBindings(t *testing.T) {
	b := DefaultBindings()
	before := b.Help()
	err := b.Apply(map[string]string{"reset": "q", "quit": "q"})
	if !errors.Is(err, ErrKeyInUse) {
		t.Fatalf("got %v, want ErrKeyInUse", err)
	}
	if err := b.Apply(map[string]string{"reset": "m"}); !errors.Is(err, ErrKeyInUse) {
		t.Errorf("reset onto toggle-mode's key: got %v, want ErrKeyInUse", err)
	}
	if got := b.Help(); got != before {
		t.Errorf("failed Apply changed bindings: %q", got)
	}
}

func TestParseAction(t *testing.T) {
	for a, name := range actionNames {
		got, err := ParseAction(name)
		if err != nil || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", name, got, err)
		}
		if a.String() != name {
			t.Errorf("%d.String() = %q", a, a.String())
		}
	}
	if ActionNone.String() != "none" {
		t.Errorf("ActionNone.String() = %q", ActionNone.String())
	}
}
