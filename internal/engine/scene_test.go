package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}

	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
}

func TestSceneUIDLookup(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)

	if found := scene.FindByUID(obj.UID); found != obj {
		t.Errorf("FindByUID failed: expected %v, got %v", obj, found)
	}

	if scene.FindByUID(0) != nil {
		t.Error("FindByUID should return nil for non-existent UID")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Player")
	obj2 := NewGameObject("Enemy")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	if !scene.RemoveGameObject(obj1) {
		t.Error("RemoveGameObject should report success")
	}

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}

	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	if scene.FindByUID(obj1.UID) != nil {
		t.Error("Removed GameObject still in UID map")
	}

	if obj1.Scene != nil {
		t.Error("Removed GameObject should not keep its scene")
	}

	if scene.RemoveGameObject(obj1) {
		t.Error("Removing twice should fail")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("UniquePlayer")

	scene.AddGameObject(obj)

	if scene.FindByName("UniquePlayer") != obj {
		t.Error("FindByName failed")
	}

	if scene.FindByName("DoesNotExist") != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Enemy1")
	obj2 := NewGameObject("Enemy2")
	obj3 := NewGameObject("Player")

	obj1.Tags = []string{"enemy", "ai"}
	obj2.Tags = []string{"enemy"}
	obj3.Tags = []string{"player"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if enemies := scene.FindByTag("enemy"); len(enemies) != 2 {
		t.Errorf("Expected 2 enemies, got %d", len(enemies))
	}

	if players := scene.FindByTag("player"); len(players) != 1 {
		t.Errorf("Expected 1 player, got %d", len(players))
	}

	if notFound := scene.FindByTag("nonexistent"); len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneClear(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("A")
	scene.AddGameObject(obj)

	scene.Clear()

	if len(scene.GameObjects) != 0 || scene.FindByUID(obj.UID) != nil {
		t.Error("Clear should empty the scene")
	}
	if obj.Scene != nil {
		t.Error("Cleared objects should not keep their scene")
	}
}

type selfRemover struct {
	BaseComponent
}

func (s *selfRemover) Update(deltaTime float32) {
	g := s.GetGameObject()
	g.Scene.RemoveGameObject(g)
}

func TestSceneUpdateAllowsRemoval(t *testing.T) {
	scene := NewScene("Test")
	a := NewGameObject("A")
	a.AddComponent(&selfRemover{})
	b := NewGameObject("B")
	counter := &countingComponent{}
	b.AddComponent(counter)
	scene.AddGameObject(a)
	scene.AddGameObject(b)

	scene.Update(0.1)

	if counter.updates != 1 {
		t.Errorf("Removal during Update should not skip other objects, got %d updates", counter.updates)
	}
	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 object left, got %d", len(scene.GameObjects))
	}
}

func TestSceneUIDMapInitialization(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	obj := NewGameObject("Test")
	scene.AddGameObject(obj) // Should not panic

	if scene.FindByUID(obj.UID) != obj {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}
