package input

import "github.com/gdamore/tcell/v2"

// Trigger identifies a discrete input event
type Trigger struct {
	Key  tcell.Key
	Rune rune // set only when Key is tcell.KeyRune
}

// Handlers are the closures invoked per action
// Stick is called for every stick action with its analog deflection
type Handlers struct {
	Actions map[Action]func()
	Stick   func(x, y float64)
	Resize  func(w, h int)
}

// Dispatcher routes terminal events to handler closures
// The trigger table is resolved once at construction; dispatch is a single map lookup.
type Dispatcher struct {
	table  map[Trigger]func()
	resize func(w, h int)
}

// NewDispatcher binds every key of kt whose action has a handler
func NewDispatcher(kt *KeyTable, h Handlers) *Dispatcher {
	d := &Dispatcher{
		table:  make(map[Trigger]func(), len(kt.SpecialKeys)+len(kt.Runes)),
		resize: h.Resize,
	}
	bind := func(t Trigger, a Action) {
		if fn := resolve(a, h); fn != nil {
			d.table[t] = fn
		}
	}
	for k, a := range kt.SpecialKeys {
		bind(Trigger{Key: k}, a)
	}
	for r, a := range kt.Runes {
		bind(Trigger{Key: tcell.KeyRune, Rune: r}, a)
	}
	return d
}

func resolve(a Action, h Handlers) func() {
	if x, y, ok := a.StickVector(); ok {
		if h.Stick == nil {
			return nil
		}
		return func() { h.Stick(x, y) }
	}
	return h.Actions[a]
}

// Dispatch handles ev, reporting whether a handler ran
func (d *Dispatcher) Dispatch(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		t := Trigger{Key: e.Key()}
		if t.Key == tcell.KeyRune {
			t.Rune = e.Rune()
		}
		return d.Fire(t)
	case *tcell.EventResize:
		if d.resize != nil {
			w, h := e.Size()
			d.resize(w, h)
			return true
		}
	}
	return false
}

// Fire runs the handler bound to t, reporting whether one exists
func (d *Dispatcher) Fire(t Trigger) bool {
	fn, ok := d.table[t]
	if ok {
		fn()
	}
	return ok
}

// Bound reports whether t has a handler
func (d *Dispatcher) Bound(t Trigger) bool {
	_, ok := d.table[t]
	return ok
}
