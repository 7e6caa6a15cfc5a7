package scene

// Node is anything that can live in a Scene.
type Node interface {
	Object() *Object3D
}

// Scene is the flat list of everything that can be drawn. Nodes are never removed.
type Scene struct {
	Children []Node
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) Add(n Node) {
	s.Children = append(s.Children, n)
}

// Each calls fn for every LineSegments child in insertion order.
func (s *Scene) Each(fn func(*LineSegments)) {
	for _, n := range s.Children {
		if ls, ok := n.(*LineSegments); ok {
			fn(ls)
		}
	}
}
