// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package omap provides an insertion-ordered multimap.
package omap

import "iter"

// Multimap maps keys to ordered lists of values. Iteration visits keys in the
// order they were first inserted, and values in insertion order.
//
// A zero value is ready to use.
type Multimap[K comparable, V any] struct {
	index map[K]int
	keys  []K
	vals  [][]V
}

// Put appends values under key. If key has not been seen before, it is
// placed after all existing keys, even if values is empty.
func (m *Multimap[K, V]) Put(key K, values ...V) {
	i, ok := m.index[key]
	if !ok {
		if m.index == nil {
			m.index = make(map[K]int)
		}
		i = len(m.keys)
		m.index[key] = i
		m.keys = append(m.keys, key)
		m.vals = append(m.vals, nil)
	}
	m.vals[i] = append(m.vals[i], values...)
}

// Get returns the values for key, in insertion order.
func (m *Multimap[K, V]) Get(key K) []V {
	i, ok := m.index[key]
	if !ok {
		return nil
	}
	return m.vals[i]
}

// Len returns the number of distinct keys.
func (m *Multimap[K, V]) Len() int {
	return len(m.keys)
}

// Size returns the total number of values across all keys.
func (m *Multimap[K, V]) Size() int {
	var n int
	for _, v := range m.vals {
		n += len(v)
	}
	return n
}

// All returns an iterator over each key and its values.
func (m *Multimap[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over every value, grouped by key.
func (m *Multimap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, vs := range m.vals {
			for _, v := range vs {
				if !yield(v) {
					return
				}
			}
		}
	}
}
