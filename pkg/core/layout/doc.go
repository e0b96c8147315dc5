// Package layout computes initial node placements.
//
// Every placement writes into an interleaved position buffer
// (x0, y0, x1, y1, ...) of a world spanning [-spread, +spread] on both
// axes. [Spread] derives the default world size from the node count.
//
// # Modes
//
//   - [Random]: uniform over the world square
//   - [Grid]: row-major square grid, cells centered in the world
//   - [Circular]: evenly spaced on a circle of radius spread
//   - [ByParameters]: two node parameters mapped linearly onto X and Y
//     through package coords
//
// # Yielding
//
// Placements process nodes in batches of batchSize (default
// [DefaultBatchSize]). Between batches they yield the processor with
// runtime.Gosched and check the context, so a caller driving an event loop
// on another goroutine stays responsive and can cancel a large placement.
package layout
