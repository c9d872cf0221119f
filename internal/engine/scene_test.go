package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// stubWorld records what components ask of the world.
type stubWorld struct {
	now      float64
	paused   bool
	consumed []*GameObject
}

func (w *stubWorld) Now() float64          { return w.now }
func (w *stubWorld) Pause()                { w.paused = true }
func (w *stubWorld) Paused() bool          { return w.paused }
func (w *stubWorld) Consume(g *GameObject) { w.consumed = append(w.consumed, g) }
func (w *stubWorld) Destroy(g *GameObject) { g.Scene.RemoveGameObject(g) }
func (w *stubWorld) Logger() *zap.Logger   { return zap.NewNop() }
func (w *stubWorld) OverlapSphere(rl.Vector3, float32, Layer) []*GameObject {
	return nil
}

// pickupScript consumes its own object through the scene's world on Update.
type pickupScript struct {
	BaseComponent
	starts int
}

func (p *pickupScript) Start() { p.starts++ }

func (p *pickupScript) Update(float32) {
	g := p.GetGameObject()
	g.Scene.World.Consume(g)
}

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Level1")
	coin := NewGameObject("Coin1")

	scene.AddGameObject(coin)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != coin {
		t.Fatalf("expected Coin1 as the only object, got %d objects", len(scene.GameObjects))
	}
	if coin.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if scene.FindByUID(coin.UID) != coin {
		t.Error("FindByUID should find an added object")
	}
	if scene.FindByUID(coin.UID+1000) != nil {
		t.Error("FindByUID should return nil for an unknown UID")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Level1")
	player := NewGameObject("Player")
	check := NewGameObject("GroundCheck")
	coin := NewGameObject("Coin1")

	scene.AddGameObject(player)
	scene.AddGameObject(check)
	scene.AddGameObject(coin)
	player.AddChild(check)

	scene.RemoveGameObject(player)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != coin {
		t.Errorf("expected only Coin1 left, got %d objects", len(scene.GameObjects))
	}
	if scene.FindByUID(player.UID) != nil || scene.FindByUID(check.UID) != nil {
		t.Error("removed objects still in UID map")
	}
	if scene.FindByName("GroundCheck") != nil {
		t.Error("child should be removed with its parent")
	}
}

func TestSceneFindByTagIncludesChildren(t *testing.T) {
	scene := NewScene("Level1")
	platform := NewGameObject("Platform")
	platform.Tags = []string{"Ground"}
	ledge := NewGameObject("Ledge")
	ledge.Tags = []string{"Ground"}
	coin := NewGameObject("Coin3")
	coin.Tags = []string{"Collectible"}

	scene.AddGameObject(platform)
	scene.AddGameObject(ledge)
	scene.AddGameObject(coin)
	platform.AddChild(ledge)
	platform.AddChild(coin)

	if got := scene.FindByTag("Ground"); len(got) != 2 {
		t.Errorf("expected parent and child ground, got %d", len(got))
	}
	if got := scene.FindByTag("Collectible"); len(got) != 1 || got[0] != coin {
		t.Errorf("expected the child coin, got %v", got)
	}
	if got := scene.FindByTag("PowerUp"); len(got) != 0 {
		t.Error("FindByTag should return nothing for an unused tag")
	}
}

func TestSceneComponentsReachWorld(t *testing.T) {
	scene := NewScene("Level1")
	world := &stubWorld{now: 1.5}
	scene.World = world

	coin := NewGameObject("Coin1")
	script := &pickupScript{}
	coin.AddComponent(script)
	scene.AddGameObject(coin)

	scene.Start()
	scene.Start()
	if script.starts != 1 {
		t.Errorf("Start should run once per object, got %d", script.starts)
	}

	scene.Update(0.02)
	if len(world.consumed) != 1 || world.consumed[0] != coin {
		t.Errorf("expected Coin1 consumed through the world, got %v", world.consumed)
	}
}

func TestSceneStartsObjectsSpawnedDuringStart(t *testing.T) {
	scene := NewScene("Level1")
	spawner := NewGameObject("Spawner")
	spawned := &pickupScript{}
	spawner.AddComponent(&spawnOnStart{spawn: func() {
		coin := NewGameObject("Coin4")
		coin.AddComponent(spawned)
		scene.AddGameObject(coin)
	}})
	scene.AddGameObject(spawner)

	scene.Start()

	if spawned.starts != 1 {
		t.Errorf("object added during Start should be started, got %d", spawned.starts)
	}
}

type spawnOnStart struct {
	BaseComponent
	spawn func()
}

func (s *spawnOnStart) Start() { s.spawn() }

func TestSceneFixedUpdateSkipsInactive(t *testing.T) {
	scene := NewScene("Level1")
	active := NewGameObject("Player")
	idle := NewGameObject("Coin1")
	a, b := &fixedCounter{}, &fixedCounter{}
	active.AddComponent(a)
	idle.AddComponent(b)
	scene.AddGameObject(active)
	scene.AddGameObject(idle)
	idle.SetActive(false)

	scene.FixedUpdate(0.02)

	if a.ticks != 1 || b.ticks != 0 {
		t.Errorf("expected ticks 1/0, got %d/%d", a.ticks, b.ticks)
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Bare"}
	obj := NewGameObject("Player")
	scene.AddGameObject(obj)

	if scene.FindByUID(obj.UID) != obj {
		t.Error("AddGameObject should initialise the UID map on a zero Scene")
	}
}
