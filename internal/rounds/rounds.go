// Package rounds implements the word-level round schedules of the TEA cipher
// family. Both schedules transform a 64-bit block in place under a 128-bit
// key and are branch-free: control flow depends only on the round count,
// never on key or block bits.
package rounds

// Delta is the golden-ratio-derived constant folded into the round sum once
// per round.
const Delta = 0x9E3779B9
