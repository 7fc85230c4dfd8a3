package model

import "sync"

// SnapshotPool recycles snapshot buffers between steps so a long-running
// driver does not allocate a new buffer per generation.
type SnapshotPool struct {
	pool sync.Pool
}

func NewSnapshotPool() *SnapshotPool {
	return &SnapshotPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Snapshot{}
			},
		},
	}
}

// Capture takes a snapshot of g into a pooled buffer.
func (p *SnapshotPool) Capture(g *Grid) *Snapshot {
	s := p.pool.Get().(*Snapshot)
	g.snapshotInto(s)
	return s
}

// Put returns a snapshot to the pool. The caller must not use s afterwards.
func (p *SnapshotPool) Put(s *Snapshot) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}

// SnapshotToPool returns s to pool when pooling is enabled.
func SnapshotToPool(s *Snapshot, pool *SnapshotPool) {
	if pool == nil {
		return
	}
	pool.Put(s)
}
