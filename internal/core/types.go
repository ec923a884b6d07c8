package core

// Scene is the minimal contract something shown next to the HUD implements.
type Scene interface {
	Name() string
}
