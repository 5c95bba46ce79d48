package quarkgl

// Transform is per-object scratch for one frame: the model matrix, the
// composed model-view-projection matrix and every vertex in clip space.
type Transform struct {
	Model Mat4
	MVP   Mat4
	Clip  []Vec4

	busy bool
}

// TransformArena hands out Transform slots reused across objects and frames.
// A slot is never handed out again until it is released, so two objects
// in flight never share buffers.
type TransformArena struct {
	slots []*Transform
}

// Acquire returns a free slot with Clip sized to n vertices.
func (a *TransformArena) Acquire(n int) *Transform {
	var t *Transform
	for _, s := range a.slots {
		if !s.busy {
			t = s
			break
		}
	}
	if t == nil {
		t = &Transform{}
		a.slots = append(a.slots, t)
	}
	if cap(t.Clip) < n {
		t.Clip = make([]Vec4, n)
	}
	t.Clip = t.Clip[:n]
	t.busy = true
	return t
}

// Release returns t to the arena. Releasing a slot that is not in flight
// panics.
func (a *TransformArena) Release(t *Transform) {
	if t == nil || !t.busy {
		panic("quarkgl: transform released twice")
	}
	t.busy = false
}

// Slots reports how many slots exist and how many are in flight.
func (a *TransformArena) Slots() (total, busy int) {
	for _, s := range a.slots {
		if s.busy {
			busy++
		}
	}
	return len(a.slots), busy
}
