package input

import "github.com/gdamore/tcell/v2"

// Mapper turns tcell events into actions
// Mouse presses are edge-triggered: holding the button flaps once
type Mapper struct {
	table   *KeyTable
	buttons tcell.ButtonMask
}

// NewMapper creates a mapper over table; nil uses the default bindings
func NewMapper(table *KeyTable) *Mapper {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Mapper{table: table}
}

// FromEvent maps a key or mouse event; other events yield ActionNone
func (m *Mapper) FromEvent(ev tcell.Event) Action {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return m.table.Lookup(e)
	case *tcell.EventMouse:
		pressed := e.Buttons() & tcell.Button1
		was := m.buttons & tcell.Button1
		m.buttons = e.Buttons()
		if pressed != 0 && was == 0 {
			return ActionFlap
		}
	}
	return ActionNone
}
