// This file implements LRU eviction.

package eviction

import "container/list"

/*
lru tracks recency with a doubly-linked list plus a key index.

The front of the list is the most recently used key, the back the
least recently used one. The index makes every operation O(1).
*/
type lru struct {
	order *list.List // of string keys, front = most recent
	index map[string]*list.Element
}

func newLRU() *lru {
	return &lru{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// OnGet marks the key as most recently used.
func (l *lru) OnGet(key string) {
	if el, ok := l.index[key]; ok {
		l.order.MoveToFront(el)
	}
}

// OnPut starts tracking a new key at the most-recently-used position.
func (l *lru) OnPut(key string) {
	if _, ok := l.index[key]; ok {
		return
	}
	l.index[key] = l.order.PushFront(key)
}

// Evict removes and returns the least recently used key.
func (l *lru) Evict() (string, bool) {
	back := l.order.Back()
	if back == nil {
		return "", false
	}
	key := back.Value.(string)
	l.order.Remove(back)
	delete(l.index, key)
	return key, true
}

// Remove stops tracking an explicitly deleted key.
func (l *lru) Remove(key string) {
	if el, ok := l.index[key]; ok {
		l.order.Remove(el)
		delete(l.index, key)
	}
}

func (l *lru) Len() int {
	return l.order.Len()
}
