package engine

// GameObjectRef is a serializable reference to a GameObject by name.
// Scene files store names because UIDs are assigned at load time.
//
// Example:
//
//	type MyScript struct {
//	    engine.BaseComponent
//	    ScoreText engine.GameObjectRef
//	}
//
//	func (s *MyScript) Start() {
//	    if obj := s.ScoreText.Get(s.GetGameObject().Scene); obj != nil {
//	        // Use the text...
//	    }
//	}
type GameObjectRef struct {
	Name string
}

// Ref builds a reference to the named object.
func Ref(name string) GameObjectRef {
	return GameObjectRef{Name: name}
}

// Get resolves the reference. Returns nil if the reference is empty or the
// object is not in the scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.Name == "" || scene == nil {
		return nil
	}
	return scene.FindByName(r.Name)
}

// IsValid returns true if the reference names something.
// It does not check that the object exists.
func (r GameObjectRef) IsValid() bool {
	return r.Name != ""
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.Name = ""
	} else {
		r.Name = g.Name
	}
}
