package engine

// GameObjectRef is a weak reference to a GameObject by UID. It does not keep
// the target alive: once the object leaves the scene, Get returns nil.
//
// Example:
//
//	type Holder struct {
//	    engine.BaseComponent
//	    Held engine.GameObjectRef
//	}
//
//	func (h *Holder) Update(dt float32) {
//	    if obj := h.Held.Get(h.GetGameObject().Scene); obj != nil {
//	        // Use the held object...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // 0 = none
}

// RefTo returns a reference to g (the empty reference for nil).
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty or the GameObject isn't in scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid reports whether the reference points at something.
// It doesn't check that the GameObject still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
