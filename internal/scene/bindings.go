package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/san-kum/lorenz/internal/engine"
)

// Action is a scene command triggered by a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionReset
	ActionSlower
	ActionFaster
	ActionToggleMode
)

var actionNames = map[Action]string{
	ActionQuit:       "quit",
	ActionReset:      "reset",
	ActionSlower:     "decrease-speed",
	ActionFaster:     "increase-speed",
	ActionToggleMode: "toggle-mode",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

var (
	ErrUnknownAction = errors.New("scene: unknown action")
	ErrKeyInUse      = errors.New("scene: key already bound")
)

// ParseAction resolves an action name such as "toggle-mode".
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Bindings maps keys to actions in a stable order, which is also the order
// Help lists them in.
type Bindings struct {
	keys *orderedmap.OrderedMap[engine.Key, Action]
}

func DefaultBindings() *Bindings {
	b := &Bindings{keys: orderedmap.NewOrderedMap[engine.Key, Action]()}
	b.keys.Set(engine.KeyEscape, ActionQuit)
	b.keys.Set("r", ActionReset)
	b.keys.Set(engine.KeyLeft, ActionSlower)
	b.keys.Set(engine.KeyRight, ActionFaster)
	b.keys.Set("m", ActionToggleMode)
	return b
}

func (b *Bindings) Lookup(k engine.Key) (Action, bool) {
	return b.keys.Get(k)
}

// Bind moves action a to key k, keeping a's place in the order.
func (b *Bindings) Bind(k engine.Key, a Action) error {
	if _, ok := actionNames[a]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAction, a)
	}
	if cur, ok := b.keys.Get(k); ok && cur != a {
		return fmt.Errorf("%w: %q is %s", ErrKeyInUse, k, cur)
	}

	next := orderedmap.NewOrderedMap[engine.Key, Action]()
	placed := false
	for el := b.keys.Front(); el != nil; el = el.Next() {
		if el.Value == a {
			if !placed {
				next.Set(k, a)
				placed = true
			}
			continue
		}
		next.Set(el.Key, el.Value)
	}
	if !placed {
		next.Set(k, a)
	}
	b.keys = next
	return nil
}

// Apply rebinds every action named in overrides (action name -> key name).
// The new table is checked as a whole, so actions may swap keys. On error
// the bindings are left unchanged.
func (b *Bindings) Apply(overrides map[string]string) error {
	want := make(map[Action]engine.Key, len(overrides))
	for name, key := range overrides {
		a, err := ParseAction(name)
		if err != nil {
			return err
		}
		want[a] = engine.Key(strings.ToLower(key))
	}

	next := orderedmap.NewOrderedMap[engine.Key, Action]()
	for el := b.keys.Front(); el != nil; el = el.Next() {
		k := el.Key
		if nk, ok := want[el.Value]; ok {
			k = nk
			delete(want, el.Value)
		}
		if cur, ok := next.Get(k); ok {
			return fmt.Errorf("%w: %q is %s", ErrKeyInUse, k, cur)
		}
		next.Set(k, el.Value)
	}
	// Actions that had no key yet go last, in a stable order.
	rest := make([]Action, 0, len(want))
	for a := range want {
		rest = append(rest, a)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for _, a := range rest {
		if cur, ok := next.Get(want[a]); ok {
			return fmt.Errorf("%w: %q is %s", ErrKeyInUse, want[a], cur)
		}
		next.Set(want[a], a)
	}

	b.keys = next
	return nil
}

func (b *Bindings) Len() int { return b.keys.Len() }

// Help renders the bindings as "ESC quit  R reset ...".
func (b *Bindings) Help() string {
	parts := make([]string, 0, b.keys.Len())
	for el := b.keys.Front(); el != nil; el = el.Next() {
		parts = append(parts, fmt.Sprintf("%s %s", keyLabel(el.Key), el.Value))
	}
	return strings.Join(parts, "  ")
}

func keyLabel(k engine.Key) string {
	switch k {
	case engine.KeyEscape:
		return "ESC"
	case engine.KeyLeft:
		return "←"
	case engine.KeyRight:
		return "→"
	}
	return strings.ToUpper(string(k))
}
