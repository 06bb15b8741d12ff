// The geom subpackage defines 2D vectors and rectangles with
// [fixmath.Fixed] coordinates, for simulations that need positions
// and directions to evolve identically on every machine.
//
// Like the scalar operations they are built on, all the methods
// panic with a *fixmath.Error on overflow. Use [fixmath.Recover]
// to turn that into an error at the boundary of a simulation step.
//
// Ebitengine helpers can be excluded with the noebiten build tag.
package geom
