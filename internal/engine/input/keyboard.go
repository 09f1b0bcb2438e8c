package input

// Synthetic key set while either shift key is held.
const KeyShift = "shift"

// Movement is a planar movement intent. Each component is -1, 0 or 1;
// negative Z is forward.
type Movement struct {
	X, Z float32
}

// IsZero reports whether there is no intent.
func (m Movement) IsZero() bool {
	return m.X == 0 && m.Z == 0
}

// Forward reports forward intent.
func (m Movement) Forward() bool {
	return m.Z < 0
}

// Keyboard tracks which keys are held, by lower-cased key name.
type Keyboard struct {
	pressed map[string]bool
}

// NewKeyboard creates a keyboard with nothing held.
func NewKeyboard() *Keyboard {
	return &Keyboard{pressed: make(map[string]bool)}
}

// Press marks key as held.
func (k *Keyboard) Press(key string) {
	k.pressed[key] = true
	if isShift(key) {
		k.pressed[KeyShift] = true
	}
}

// Release marks key as released.
func (k *Keyboard) Release(key string) {
	delete(k.pressed, key)
	if isShift(key) && !k.pressed["left shift"] && !k.pressed["right shift"] {
		delete(k.pressed, KeyShift)
	}
}

// Clear releases every key. Called on focus loss, since the key-up
// events go to another window.
func (k *Keyboard) Clear() {
	clear(k.pressed)
}

// Pressed reports whether key is held.
func (k *Keyboard) Pressed(key string) bool {
	return k.pressed[key]
}

// Movement derives the intent from WASD and the arrow keys. On each axis
// s overrides w and d overrides a.
func (k *Keyboard) Movement() Movement {
	var m Movement
	if k.any("w", "up") {
		m.Z = -1
	}
	if k.any("s", "down") {
		m.Z = 1
	}
	if k.any("a", "left") {
		m.X = -1
	}
	if k.any("d", "right") {
		m.X = 1
	}
	return m
}

// Running reports whether shift is held.
func (k *Keyboard) Running() bool {
	return k.pressed[KeyShift]
}

func (k *Keyboard) any(keys ...string) bool {
	for _, key := range keys {
		if k.pressed[key] {
			return true
		}
	}
	return false
}

func isShift(key string) bool {
	return key == "left shift" || key == "right shift"
}
