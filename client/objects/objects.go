package objects

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is implemented by scenes and every object in their trees.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	GetChild(id string) GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

// InitTree initializes the object and then each of its children.
func InitTree(obj GameObject) error {
	if obj == nil {
		return nil
	}
	if err := obj.Init(); err != nil {
		return err
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of the object before the object itself.
func DestroyTree(obj GameObject) error {
	if obj == nil {
		return nil
	}
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	return obj.Destroy()
}

func UpdateTree(obj GameObject) error {
	if obj == nil {
		return nil
	}
	if err := obj.Update(); err != nil {
		return err
	}
	// children may remove themselves during update
	children := append([]GameObject(nil), obj.GetChildren()...)
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

func DrawTree(obj GameObject, screen *ebiten.Image) {
	if obj == nil {
		return
	}
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
