package hashmap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/selfadjust/listpair"
)

// MaxSize is the largest capacity a HashMap may be constructed with.
const MaxSize = 1<<20 - 1

// UndefVal is returned by Get for a key that is not present.
const UndefVal = math.MinInt32

const bktSize = 8

const (
	mult0 = uint64(0xA96347C5)
	mult1 = uint64(0xE65AC2D3)
)

type kvPair struct {
	key uint64
	val int64
}

// HashMap is a fixed-capacity, two-choice fingerprint hash map from 64-bit
// keys to values. Capacity is fixed at construction: there is no
// rehashing, and Put may refuse an insertion even when the map overall is
// not full. The zero value is not usable; construct with New.
type HashMap struct {
	n      int
	nb     int // bucket-array half-width; 2*nb total buckets
	bktMsk uint32
	kvxMsk uint32
	fpMsk  uint32
	bkt    [][bktSize]uint32
	pairs  []kvPair
	kvx    *listpair.ListPair // "in" = pair index in use, "out" = free
}

// New returns a HashMap with capacity n (n <= MaxSize).
func New(n int) *HashMap {
	if n < 0 || n > MaxSize {
		panic(fmt.Sprintf("hashmap: size %d out of range (max %d)", n, MaxSize))
	}

	nb := 1
	for 8*nb <= n {
		nb <<= 1
	}
	if nb < 4 {
		nb = 4
	}

	m := &HashMap{
		n:      n,
		nb:     nb,
		bktMsk: uint32(nb - 1),
		kvxMsk: uint32(8*nb - 1),
	}
	m.fpMsk = ^m.kvxMsk
	m.bkt = make([][bktSize]uint32, 2*nb)
	m.pairs = make([]kvPair, n+1)
	m.kvx = listpair.NewAllOut(n)

	return m
}

// Clear empties the map, keeping its capacity.
func (m *HashMap) Clear() {
	for i := range m.bkt {
		m.bkt[i] = [bktSize]uint32{}
	}
	m.kvx.Clear()
}

// hashit computes the candidate bucket and fingerprint for key under hash
// function hf (0 or 1): the key is folded from 64 to 32 bits, multiplied by
// the selected hash multiplier, and sliced into bucket and fingerprint
// fields.
func (m *HashMap) hashit(key uint64, hf int) (b, fp uint32) {
	x := uint32(((key >> 16) & 0xffff0000) | (key & 0xffff))
	y := uint32(((key >> 48) & 0xffff) | (key & 0xffff0000))
	z := uint64(x ^ y)
	if hf == 0 {
		z *= mult0
	} else {
		z *= mult1
	}
	b = uint32(z>>16) & m.bktMsk
	fp = uint32(z>>13) & m.fpMsk

	return b, fp
}

// Get returns the value stored for key, or UndefVal if key is absent.
func (m *HashMap) Get(key uint64) int64 {
	b0, fp0 := m.hashit(key, 0)
	for i := 0; i < bktSize; i++ {
		if m.bkt[b0][i] != 0 && m.bkt[b0][i]&m.fpMsk == fp0 {
			kvi := m.bkt[b0][i] & m.kvxMsk
			if m.pairs[kvi].key == key {
				return m.pairs[kvi].val
			}
		}
	}

	b1, fp1 := m.hashit(key, 1)
	b1 += uint32(m.nb)
	for i := 0; i < bktSize; i++ {
		if m.bkt[b1][i] != 0 && m.bkt[b1][i]&m.fpMsk == fp1 {
			kvi := m.bkt[b1][i] & m.kvxMsk
			if m.pairs[kvi].key == key {
				return m.pairs[kvi].val
			}
		}
	}

	return UndefVal
}

// Put stores val under key, replacing any value already stored for that
// key. It returns false, refusing the insertion, if key is new and both of
// its two candidate buckets are already full.
func (m *HashMap) Put(key uint64, val int64) bool {
	b0, fp0 := m.hashit(key, 0)
	n0, j0 := 0, 0
	for i := 0; i < bktSize; i++ {
		switch {
		case m.bkt[b0][i] == 0:
			n0++
			j0 = i
		case m.bkt[b0][i]&m.fpMsk == fp0:
			kvi := m.bkt[b0][i] & m.kvxMsk
			if m.pairs[kvi].key == key {
				m.pairs[kvi].val = val

				return true
			}
		}
	}

	b1, fp1 := m.hashit(key, 1)
	b1 += uint32(m.nb)
	n1, j1 := 0, 0
	for i := 0; i < bktSize; i++ {
		switch {
		case m.bkt[b1][i] == 0:
			n1++
			j1 = i
		case m.bkt[b1][i]&m.fpMsk == fp1:
			kvi := m.bkt[b1][i] & m.kvxMsk
			if m.pairs[kvi].key == key {
				m.pairs[kvi].val = val

				return true
			}
		}
	}

	if n0+n1 == 0 {
		return false
	}

	kvIndex := m.kvx.FirstOut()
	if kvIndex == 0 {
		return false
	}
	m.kvx.Swap(kvIndex)
	m.pairs[kvIndex] = kvPair{key: key, val: val}
	if n0 >= n1 {
		m.bkt[b0][j0] = fp0 | (uint32(kvIndex) & m.kvxMsk)
	} else {
		m.bkt[b1][j1] = fp1 | (uint32(kvIndex) & m.kvxMsk)
	}

	return true
}

// Remove deletes key from the map, if present.
func (m *HashMap) Remove(key uint64) {
	b0, fp0 := m.hashit(key, 0)
	for i := 0; i < bktSize; i++ {
		if m.bkt[b0][i] != 0 && m.bkt[b0][i]&m.fpMsk == fp0 {
			kvi := m.bkt[b0][i] & m.kvxMsk
			if m.pairs[kvi].key == key {
				m.bkt[b0][i] = 0
				m.kvx.Swap(int(kvi))

				return
			}
		}
	}

	b1, fp1 := m.hashit(key, 1)
	b1 += uint32(m.nb)
	for i := 0; i < bktSize; i++ {
		if m.bkt[b1][i] != 0 && m.bkt[b1][i]&m.fpMsk == fp1 {
			kvi := m.bkt[b1][i] & m.kvxMsk
			if m.pairs[kvi].key == key {
				m.bkt[b1][i] = 0
				m.kvx.Swap(int(kvi))

				return
			}
		}
	}
}
