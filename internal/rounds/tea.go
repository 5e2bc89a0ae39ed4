package rounds

// TEAEncipher transforms v in place under key using n rounds of the classic
// Feistel schedule: v[0] is mixed with key[0] and key[1], v[1] with key[2]
// and key[3], the sum advancing once per round.
func TEAEncipher(v *[2]uint32, key *[4]uint32, n uint32) {
	v0, v1 := v[0], v[1]
	k0, k1, k2, k3 := key[0], key[1], key[2], key[3]

	var sum uint32
	for range n {
		sum += Delta
		v0 += ((v1 << 4) + k0) ^ (v1 + sum) ^ ((v1 >> 5) + k1)
		v1 += ((v0 << 4) + k2) ^ (v0 + sum) ^ ((v0 >> 5) + k3)
	}

	v[0], v[1] = v0, v1
}

// TEADecipher inverts TEAEncipher for the same key and round count. The sum
// starts at n*Delta (wrapping) and the half-round updates run in reverse.
func TEADecipher(v *[2]uint32, key *[4]uint32, n uint32) {
	v0, v1 := v[0], v[1]
	k0, k1, k2, k3 := key[0], key[1], key[2], key[3]

	sum := n * Delta
	for range n {
		v1 -= ((v0 << 4) + k2) ^ (v0 + sum) ^ ((v0 >> 5) + k3)
		v0 -= ((v1 << 4) + k0) ^ (v1 + sum) ^ ((v1 >> 5) + k1)
		sum -= Delta
	}

	v[0], v[1] = v0, v1
}
