package floodfill

import (
	"container/list"
	"image"
)

// frontier is the pending work of a session. Entries are always pushed at
// the back; the algorithm decides which end is popped.
type frontier struct {
	l list.List
}

func (f *frontier) push(p image.Point) { f.l.PushBack(p) }

func (f *frontier) pop(alg Algorithm) (image.Point, bool) {
	e := f.l.Front()
	if alg == DFS {
		e = f.l.Back()
	}
	if e == nil {
		return image.Point{}, false
	}
	return f.l.Remove(e).(image.Point), true
}

func (f *frontier) len() int { return f.l.Len() }

func (f *frontier) clear() { f.l.Init() }

// positions lists the entries from front to back.
func (f *frontier) positions() []image.Point {
	out := make([]image.Point, 0, f.l.Len())
	for e := f.l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(image.Point))
	}
	return out
}
