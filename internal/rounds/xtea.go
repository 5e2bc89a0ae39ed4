package rounds

// XTEAEncipher transforms v in place under key using n rounds of the XTEA
// schedule. The key word is selected by the low bits of the sum before it
// advances and by bits 11-12 after, and the second half-round mixes the
// already-updated v[0] rather than its pre-round value.
func XTEAEncipher(v *[2]uint32, key *[4]uint32, n uint32) {
	v0, v1 := v[0], v[1]

	var sum uint32
	for range n {
		v0 += (((v1 << 4) ^ (v1 >> 5)) + v1) ^ (sum + key[sum&3])
		sum += Delta
		v1 += (((v0 << 4) ^ (v0 >> 5)) + v0) ^ (sum + key[(sum>>11)&3])
	}

	v[0], v[1] = v0, v1
}

// XTEADecipher inverts XTEAEncipher for the same key and round count.
func XTEADecipher(v *[2]uint32, key *[4]uint32, n uint32) {
	v0, v1 := v[0], v[1]

	sum := n * Delta
	for range n {
		v1 -= (((v0 << 4) ^ (v0 >> 5)) + v0) ^ (sum + key[(sum>>11)&3])
		sum -= Delta
		v0 -= (((v1 << 4) ^ (v1 >> 5)) + v1) ^ (sum + key[sum&3])
	}

	v[0], v[1] = v0, v1
}
