package bsp

import "errors"

// ErrFaceCeilingExceeded is returned by Build when Config.MaxFaces is set
// and the tree would grow past it.
var ErrFaceCeilingExceeded = errors.New("bsp: face count ceiling exceeded")

// ErrDepthExceeded is returned by ClipFaces, ClipTo and AllFaces when
// recursion would exceed Config.MaxDepth. A production-sized tree never
// approaches the default cap; it exists as a caller-visible safety valve
// for adversarial input (see Config.MaxDepth).
var ErrDepthExceeded = errors.New("bsp: tree depth exceeded")
