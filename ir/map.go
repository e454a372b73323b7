package ir

import "fmt"

// linearLimit is the map size up to which lookups scan keys rather than
// consult the hash index. Only mutators write the index, so concurrent
// reads of a map are safe.
const linearLimit = 8

type KeyVal struct {
	Key *Node
	Val *Node
}

func NewMap() *Node {
	return &Node{Type: MapType, Keys: []*Node{}, Values: []*Node{}}
}

// FromKeyVals builds a map from kvs in order. A later duplicate key
// overwrites the value of the earlier one.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewMap()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// Set associates key with val in the map y, replacing the value of an equal
// key if there is one.
func (y *Node) Set(key, val *Node) *Node {
	y.mustMap("Set")
	if i := y.find(key); i >= 0 {
		y.Values[i] = val
		return y
	}
	y.Keys = append(y.Keys, key)
	y.Values = append(y.Values, val)
	switch {
	case y.index != nil:
		h := key.Hash()
		y.index[h] = append(y.index[h], len(y.Keys)-1)
	case len(y.Keys) > linearLimit:
		y.reindex()
	}
	return y
}

// Get returns the value for key in the map y, or nil.
func (y *Node) Get(key *Node) *Node {
	y.mustMap("Get")
	if i := y.find(key); i >= 0 {
		return y.Values[i]
	}
	return nil
}

// Delete removes key from the map y, reporting whether it was present.
func (y *Node) Delete(key *Node) bool {
	y.mustMap("Delete")
	i := y.find(key)
	if i < 0 {
		return false
	}
	y.Keys = append(y.Keys[:i], y.Keys[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.index = nil
	if len(y.Keys) > linearLimit {
		y.reindex()
	}
	return true
}

// Entries returns the key value pairs of y in insertion order.
func (y *Node) Entries() []KeyVal {
	y.mustMap("Entries")
	res := make([]KeyVal, len(y.Keys))
	for i := range y.Keys {
		res[i] = KeyVal{Key: y.Keys[i], Val: y.Values[i]}
	}
	return res
}

func (y *Node) reindex() {
	y.index = make(map[uint64][]int, len(y.Keys))
	for i, k := range y.Keys {
		h := k.Hash()
		y.index[h] = append(y.index[h], i)
	}
}

// find returns the position of key in y, or -1. Maps built without Set
// have no index and are scanned.
func (y *Node) find(key *Node) int {
	if y.index == nil || len(y.Keys) <= linearLimit {
		for i, k := range y.Keys {
			if Equal(k, key) {
				return i
			}
		}
		return -1
	}
	for _, i := range y.index[key.Hash()] {
		if Equal(y.Keys[i], key) {
			return i
		}
	}
	return -1
}

func (y *Node) mustMap(op string) {
	if y.Type != MapType {
		panic(fmt.Sprintf("ir: %s on %s node", op, y.Type))
	}
}
