// Package hashmap implements a fixed-capacity, two-choice fingerprint hash
// map keyed on 64-bit integers. Each key hashes to one
// candidate bucket on each of two sides of the bucket array; Put places a
// new entry in whichever candidate has more free slots, and Get/Remove scan
// both candidates, comparing the slot's fingerprint bits before ever touching the
// backing key/value pairs table. There is no rehashing and no resize: Put
// can fail even when the map is not globally full, if both of a key's two
// candidate buckets happen to be full.
//
// The slot layout is part of the contract, not an implementation detail: a
// slot is a single 32-bit word packing the fingerprint above the pair index
// (kvxMsk/fpMsk), and the two candidate buckets come from two multiplicative
// hashes (multipliers 0xA96347C5 and 0xE65AC2D3) of the key folded from 64
// to 32 bits, so callers that read raw slots always see the same packing.
// The free/used pair-index pool is package listpair.
package hashmap
