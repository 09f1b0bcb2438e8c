package ui

import "testing"

func TestAddToggleBindsFunctionKeys(t *testing.T) {
	p := NewPanel()
	p.AddToggle("Debug Mode", true, nil)
	p.AddToggle("Wireframe Nodes", false, nil)

	toggles := p.Toggles()
	if len(toggles) != 2 {
		t.Fatalf("expected 2 toggles, got %d", len(toggles))
	}
	if toggles[0].Key != "f1" || toggles[1].Key != "f2" {
		t.Errorf("keys = %s, %s; want f1, f2", toggles[0].Key, toggles[1].Key)
	}
	if !toggles[0].Value() || toggles[1].Value() {
		t.Error("initial values not kept")
	}
}

func TestHandleKeyFlipsAndNotifies(t *testing.T) {
	p := NewPanel()
	var got []bool
	p.AddToggle("Debug Mode", true, func(v bool) { got = append(got, v) })

	if !p.HandleKey("f1") {
		t.Fatal("f1 should be handled")
	}
	if p.HandleKey("f2") {
		t.Error("f2 has no toggle")
	}
	p.HandleKey("f1")

	if len(got) != 2 || got[0] != false || got[1] != true {
		t.Errorf("callbacks = %v, want [false true]", got)
	}
}

func TestSetSameValueDoesNotNotify(t *testing.T) {
	p := NewPanel()
	calls := 0
	p.AddToggle("Debug Mode", false, func(bool) { calls++ })

	p.Toggle("Debug Mode").Set(false)
	if calls != 0 {
		t.Errorf("expected no callback, got %d", calls)
	}
}

func TestReRegisterKeepsKey(t *testing.T) {
	p := NewPanel()
	p.AddToggle("Debug Mode", true, nil)
	p.AddToggle("Other", true, nil)
	p.AddToggle("Debug Mode", false, nil)

	if n := len(p.Toggles()); n != 2 {
		t.Fatalf("expected 2 toggles, got %d", n)
	}
	tg := p.Toggle("Debug Mode")
	if tg.Key != "f1" || tg.Value() {
		t.Errorf("re-registered toggle key=%s value=%v", tg.Key, tg.Value())
	}
}

func TestStatus(t *testing.T) {
	p := NewPanel()
	p.AddToggle("Debug Mode", true, nil)
	p.AddToggle("Grid", false, nil)

	want := "Debug Mode [F1]: on  Grid [F2]: off"
	if got := p.Status(); got != want {
		t.Errorf("Status() = %q, want %q", got, want)
	}
}
