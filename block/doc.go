// Package block manages a set of independently updatable terminal lines.
//
// A Block prints its lines once and afterwards rewrites any one of them in
// place using relative VT100 cursor movement. It handles:
//   - Tracking which terminal row each Line occupies
//   - Moving the cursor between rows and back to the resting offset
//   - Rewriting and clearing single rows or the whole block
//   - Funnelling updates from many producers to one writer (Reporter)
//
// A Block is not safe for concurrent use. Exactly one goroutine may drive a
// Block at a time; producers should send Update values through a Reporter
// and let the owning goroutine call Consume. Any output written to the same
// stream outside the Block desynchronizes its cursor state.
package block
