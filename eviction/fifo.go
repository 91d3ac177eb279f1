// This file implements FIFO eviction.

package eviction

import "container/list"

// fifo keeps keys in insertion order and ignores reads entirely.
// The back of the list is the oldest key and the next victim.
type fifo struct {
	order *list.List // of string keys, front = newest insertion
	index map[string]*list.Element
}

func newFIFO() *fifo {
	return &fifo{
		order: list.New(),
		index: make(map[string]*list.Element),
	}
}

// OnGet does nothing: FIFO only cares about insertion order.
func (f *fifo) OnGet(string) {}

func (f *fifo) OnPut(key string) {
	if _, ok := f.index[key]; ok {
		return
	}
	f.index[key] = f.order.PushFront(key)
}

// Evict removes and returns the oldest inserted key.
func (f *fifo) Evict() (string, bool) {
	back := f.order.Back()
	if back == nil {
		return "", false
	}
	key := back.Value.(string)
	f.order.Remove(back)
	delete(f.index, key)
	return key, true
}

func (f *fifo) Remove(key string) {
	if el, ok := f.index[key]; ok {
		f.order.Remove(el)
		delete(f.index, key)
	}
}

func (f *fifo) Len() int {
	return f.order.Len()
}
