package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseObject implements the tree bookkeeping shared by every GameObject.
// Concrete objects embed it and override the lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childCollection
}

type NewBaseObjectOpts struct {
	// ZIndex is the z-index of the object.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildCollection(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.objects
}

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

// AddChild initializes the child tree and appends it.
// The parent recorded on the child is this BaseObject, not the embedding object.
func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

// childCollection keeps children in insertion order with lookup by id.
type childCollection struct {
	objects      []GameObject
	idxIDObjects map[string]int
}

func newChildCollection() *childCollection {
	return &childCollection{
		objects:      make([]GameObject, 0),
		idxIDObjects: make(map[string]int),
	}
}

func (c *childCollection) Add(id string, obj GameObject) {
	c.idxIDObjects[id] = len(c.objects)
	c.objects = append(c.objects, obj)
}

func (c *childCollection) Get(id string) GameObject {
	idx, ok := c.idxIDObjects[id]
	if !ok {
		return nil
	}
	return c.objects[idx]
}

func (c *childCollection) Remove(id string) {
	idx, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	c.objects = append(c.objects[:idx], c.objects[idx+1:]...)
	delete(c.idxIDObjects, id)
	for i := idx; i < len(c.objects); i++ {
		c.idxIDObjects[c.objects[i].GetID()] = i
	}
}
