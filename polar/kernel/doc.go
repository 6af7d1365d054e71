// Package kernel holds the numeric building blocks of successive-cancellation
// polar decoding.
//
// Every kernel works on frame-interleaved buffers: the value of element e of
// frame f lives at index e*frames+f, so one call processes a whole batch of
// independent codewords in lockstep. Kernels never allocate; a buffer that is
// shorter than the requested shape makes the call panic.
//
// Each kernel has a runtime-sized form (F, G, Rep, ...) and, for the small
// element counts that dominate real decoding trees, a form unrolled at build
// time (see z_intra.go). Set resolves a kernel name and element count to one
// of the two.
package kernel
