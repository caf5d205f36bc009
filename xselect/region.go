package xselect

// Region is one resolved rectangular selection in root-window coordinates.
// FromRight and FromBottom are the distances between the selection and the
// opposite screen edges, so FromRight+X+Width equals the root width.
// Border and Depth are copied from the root window's geometry; they carry
// no real meaning for a virtual selection but are always populated so that
// format strings can reference them.
type Region struct {
	X, Y       int
	FromRight  int
	FromBottom int
	Width      uint
	Height     uint
	Border     uint
	Depth      uint
}
