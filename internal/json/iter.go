package json

import (
	jsoniter "github.com/json-iterator/go"
)

// Iter returns an iterator with a buffer big enough for a typical release
// payload, so decoding gets by without reallocations.
func Iter() *jsoniter.Iterator {
	return jsoniter.Parse(jsoniter.ConfigFastest, nil, 1024*64)
}

// ResetBytes re-arms the iterator for a new payload.
func ResetBytes(iter *jsoniter.Iterator, bytes []byte) {
	iter.ResetBytes(bytes)
	// Workaround for the fact ResetBytes doesn't do this
	iter.Error = nil
}
