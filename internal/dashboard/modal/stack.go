package modal

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// BaseZ is the z-index of the page beneath every modal layer.
const BaseZ = 1000

type Layer struct {
	ID string `json:"id"`
	Z  int    `json:"z"`
}

// Stack orders open overlays. A pushed layer always sits above every layer
// already on the stack, and removing a layer leaves the others untouched.
type Stack struct {
	mu     sync.Mutex
	layers []Layer
	lastZ  int
}

func NewStack() *Stack {
	return &Stack{lastZ: BaseZ}
}

func (s *Stack) Push() Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastZ++

	layer := Layer{ID: uuid.NewString(), Z: s.lastZ}
	s.layers = append(s.layers, layer)

	return layer
}

// Remove drops the layer with the given id and reports whether it was present.
func (s *Stack) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.layers, func(l Layer) bool { return l.ID == id })
	if idx < 0 {
		return false
	}

	s.layers = slices.Delete(s.layers, idx, idx+1)

	if len(s.layers) == 0 {
		s.lastZ = BaseZ
	}

	return true
}

func (s *Stack) Top() (Layer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.layers) == 0 {
		return Layer{}, false
	}

	return s.layers[len(s.layers)-1], true
}

// Layers returns the open layers from bottom to top.
func (s *Stack) Layers() []Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.layers)
}

func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.layers)
}
