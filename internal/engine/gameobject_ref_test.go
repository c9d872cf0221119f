package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	ref := Ref("Target")

	found := ref.Get(scene)
	if found != obj {
		t.Errorf("Get() failed: expected %v, got %v", obj, found)
	}
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")

	if found := (GameObjectRef{}).Get(scene); found != nil {
		t.Error("Get() with empty name should return nil")
	}

	if found := Ref("Missing").Get(scene); found != nil {
		t.Error("Get() with unknown name should return nil")
	}

	if found := Ref("Target").Get(nil); found != nil {
		t.Error("Get() with nil scene should return nil")
	}
}

func TestGameObjectRefSetAndClear(t *testing.T) {
	obj := NewGameObject("ScoreText")

	var ref GameObjectRef
	if ref.IsValid() {
		t.Error("zero GameObjectRef should be invalid")
	}

	ref.Set(obj)
	if ref.Name != "ScoreText" || !ref.IsValid() {
		t.Errorf("Set() should store the name, got %q", ref.Name)
	}

	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the reference")
	}
}
