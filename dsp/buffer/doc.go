// Package buffer provides reusable sample buffers and a filter workspace
// for allocation-free processing loops.
//
// The filter packages take every output and scratch slice from the caller.
// [Workspace] owns those slices once, sized for the largest block and
// order the loop will see, so repeated filter calls do not allocate.
package buffer
