package farm

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/degenfarm/internal/domain"
)

// session is the single writer for one player's state. mu serializes every
// engine transition; reads of state and character also hold mu.
//
// A degraded session could not read its snapshot and runs on defaults. It
// never writes to the store or the leaderboard, and retries the read on every
// action. An evicted session has left the service's map and must not be used.
type session struct {
	username string

	mu        sync.Mutex
	loaded    bool
	degraded  bool
	evicted   bool
	lastUsed  time.Time
	character domain.Character
	state     domain.PlayerState
	version   uint64

	saves      writeSeq
	syncs      writeSeq
	saveFailed atomic.Bool
	inflight   atomic.Int32 // queued persist and sync jobs
}

// commit installs a new snapshot and returns its version. Caller holds mu.
func (s *session) commit(next domain.PlayerState) uint64 {
	s.state = next
	s.version++
	return s.version
}

// idle reports whether no background write is queued and the store holds
// the committed snapshot. Degraded state is never written, so it counts as
// idle. Caller holds mu.
func (s *session) idle() bool {
	if s.inflight.Load() != 0 {
		return false
	}
	return s.degraded || s.saves.done(s.version)
}

// notices drains the pending notices for this session. Caller holds mu.
func (s *session) notices(extra ...string) []string {
	out := append([]string(nil), extra...)
	if s.degraded {
		out = append(out, NoticeStateNotLoaded)
	}
	if s.saveFailed.Swap(false) {
		out = append(out, NoticeLastSaveFailed)
	}
	return out
}

// writeSeq orders background writes for one session so an older snapshot
// never overwrites a newer one when jobs run on different workers.
type writeSeq struct {
	mu   sync.Mutex
	last uint64
}

// run calls fn unless a write at or after version already happened.
func (w *writeSeq) run(version uint64, fn func() error) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if version <= w.last {
		return false, nil
	}
	if err := fn(); err != nil {
		return true, err
	}
	w.last = version
	return true, nil
}

// mark records that the store already holds version.
func (w *writeSeq) mark(version uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if version > w.last {
		w.last = version
	}
}

func (w *writeSeq) done(version uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last >= version
}
