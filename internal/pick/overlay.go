package pick

// OverlayHandle is an opaque reference to a host-rendered overlay (an
// annotation widget, a highlight copy). The engine never inspects handles;
// it only hands them back for cleanup.
type OverlayHandle any

// Overlay holds the host-attached visual state of one selection. The
// annotation and its extras are cleared together.
type Overlay struct {
	Annotation OverlayHandle
	Extras     []OverlayHandle
}

// OverlayTable maps selection identities to their overlay records. It keeps
// Selection itself immutable: the mutable visual state lives here, owned by
// the host and keyed by Selection.ID.
type OverlayTable struct {
	entries map[uint64]*Overlay
}

// NewOverlayTable creates an empty overlay table.
func NewOverlayTable() *OverlayTable {
	return &OverlayTable{entries: make(map[uint64]*Overlay)}
}

// Overlay returns the overlay record for sel, creating it on first use.
func (t *OverlayTable) Overlay(sel *Selection) *Overlay {
	if sel == nil {
		return nil
	}
	ov, ok := t.entries[sel.id]
	if !ok {
		ov = &Overlay{}
		t.entries[sel.id] = ov
	}
	return ov
}

// Clear removes sel's overlay record and returns every attached handle so
// the host can dispose of them. Returns nil if nothing was attached.
func (t *OverlayTable) Clear(sel *Selection) []OverlayHandle {
	if sel == nil {
		return nil
	}
	ov, ok := t.entries[sel.id]
	if !ok {
		return nil
	}
	delete(t.entries, sel.id)
	handles := make([]OverlayHandle, 0, 1+len(ov.Extras))
	if ov.Annotation != nil {
		handles = append(handles, ov.Annotation)
	}
	return append(handles, ov.Extras...)
}

// Len reports how many selections currently hold overlays.
func (t *OverlayTable) Len() int { return len(t.entries) }
