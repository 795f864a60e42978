package selection

import "github.com/matzehuels/cropframe/pkg/geom"

// TargetKind says what a pointer-down landed on.
type TargetKind int

const (
	// TargetSurface is empty surface outside any selection.
	TargetSurface TargetKind = iota
	// TargetBody is the inside of the current selection.
	TargetBody
	// TargetHandle is one of the resize grips.
	TargetHandle
)

func (k TargetKind) String() string {
	switch k {
	case TargetSurface:
		return "surface"
	case TargetBody:
		return "body"
	case TargetHandle:
		return "handle"
	}
	return "unknown"
}

// HitTarget is the host's classification of a pointer-down.
// Handle is only meaningful when Kind is TargetHandle.
type HitTarget struct {
	Kind   TargetKind
	Handle Handle
}

// OnSurface is the hit target for empty surface.
var OnSurface = HitTarget{Kind: TargetSurface}

// OnBody is the hit target for the selection body.
var OnBody = HitTarget{Kind: TargetBody}

// OnHandle returns the hit target for handle h.
func OnHandle(h Handle) HitTarget { return HitTarget{Kind: TargetHandle, Handle: h} }

func (t HitTarget) String() string {
	if t.Kind == TargetHandle {
		return "handle:" + t.Handle.String()
	}
	return t.Kind.String()
}

// HitTest classifies p against a selection whose handles have the given hit
// size. Handles win over the body, corners win over edges. Hosts that do their
// own hit testing can ignore this helper.
func HitTest(r geom.Rect, p geom.Point, handleSize geom.Size) HitTarget {
	if r.IsNoSelection() || r.Empty() {
		return OnSurface
	}
	for _, h := range Handles {
		if HandleRect(r, h, handleSize).Contains(p) {
			return OnHandle(h)
		}
	}
	if r.Contains(p) {
		return OnBody
	}
	return OnSurface
}
