// Package gray implements reflected binary Gray code counters that never
// convert between binary and Gray form.
//
// Each code carries one extra hidden position to the right of the visible
// state. A forward step flips the hidden position, then flips the position to
// the left of the right-most one. A backward step applies the same two flips
// in the reverse order. The visible positions step through the Gray code.
//
// State performs the steps by symbol manipulation over any two symbol
// alphabet, in both directions. Log performs the forward step over a packed
// integer whose lowest bit is the hidden position.
package gray
