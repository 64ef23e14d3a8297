// Package farm is the application service around the progression engine.
// It owns one session per player, serializes actions on that session, and
// hands persistence and leaderboard sync to background jobs.
package farm

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/osse101/degenfarm/internal/accrual"
	"github.com/osse101/degenfarm/internal/character"
	"github.com/osse101/degenfarm/internal/domain"
	"github.com/osse101/degenfarm/internal/engine"
	"github.com/osse101/degenfarm/internal/event"
	"github.com/osse101/degenfarm/internal/leaderboard"
	"github.com/osse101/degenfarm/internal/logger"
	"github.com/osse101/degenfarm/internal/metrics"
	"github.com/osse101/degenfarm/internal/state"
	"github.com/osse101/degenfarm/internal/worker"
)

// Service defines the farm business logic
type Service interface {
	Register(ctx context.Context, username, characterID string) (*RegisterResult, error)
	View(ctx context.Context, username string) (*FarmView, error)
	Collect(ctx context.Context, username string) (*CollectResult, error)
	PurchaseUpgrade(ctx context.Context, username, upgradeID string) (*PurchaseResult, error)
	Upgrades(ctx context.Context, username string) (*UpgradesView, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	Characters() []domain.Character
	ReconcileAll(ctx context.Context) (int, error)
}

// Leaderboard is the remote standings collaborator
type Leaderboard interface {
	Register(ctx context.Context, username, characterID string, now time.Time) (domain.LeaderboardEntry, error)
	Sync(ctx context.Context, entry domain.LeaderboardEntry) error
	Lookup(ctx context.Context, username string) (domain.LeaderboardEntry, error)
	Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// JobQueue accepts background work without blocking
type JobQueue interface {
	TryEnqueue(job worker.Job) bool
}

// Option configures the service
type Option func(*service)

// WithSessionIdleTTL evicts sessions untouched for ttl. Zero keeps them forever.
func WithSessionIdleTTL(ttl time.Duration) Option {
	return func(s *service) {
		if ttl >= 0 {
			s.idleTTL = ttl
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

type service struct {
	engine *engine.Engine
	store  state.Store
	board  Leaderboard
	jobs   JobQueue
	bus    event.Bus
	now    func() time.Time

	mu        sync.Mutex
	sessions  map[string]*session
	idleTTL   time.Duration
	lastSweep time.Time
}

var _ worker.Reconciler = (*service)(nil)

// NewService creates a new farm service. bus may be nil.
func NewService(eng *engine.Engine, store state.Store, board Leaderboard, jobs JobQueue, bus event.Bus, opts ...Option) Service {
	s := &service{
		engine:   eng,
		store:    store,
		board:    board,
		jobs:     jobs,
		bus:      bus,
		now:      time.Now,
		sessions: make(map[string]*session),
		idleTTL:  DefaultSessionIdleTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register claims a username on the leaderboard and starts a fresh farm.
func (s *service) Register(ctx context.Context, username, characterID string) (*RegisterResult, error) {
	if err := leaderboard.ValidateUsername(username); err != nil {
		s.reject(ctx, username, ActionRegister, err)
		return nil, err
	}
	char, err := character.Lookup(characterID)
	if err != nil {
		s.reject(ctx, username, ActionRegister, err)
		return nil, err
	}

	now := s.now()
	if _, err := s.board.Register(ctx, username, char.ID, now); err != nil {
		if domain.IsRejection(err) {
			s.reject(ctx, username, ActionRegister, err)
		}
		return nil, err
	}

	sess := s.lockSession(ctx, username)
	defer sess.mu.Unlock()

	sess.character = char
	sess.loaded = true
	sess.degraded = false
	sess.lastUsed = now
	version := sess.commit(domain.NewPlayerState(now))

	var notices []string
	if err := state.SaveCharacter(ctx, s.store, username, char.ID); err != nil {
		s.storeFailed(ctx, username, metrics.OperationSave, err)
		notices = append(notices, NoticeCharacterNotSet)
	}
	snap := sess.state.Clone()
	if _, err := sess.saves.run(version, func() error { return state.Save(ctx, s.store, username, snap) }); err != nil {
		s.storeFailed(ctx, username, metrics.OperationSave, err)
		notices = append(notices, NoticeStateNotSaved)
	}

	s.publish(ctx, event.NewPlayerRegisteredEvent(username, char.ID))
	return &RegisterResult{
		Username:  username,
		Character: char,
		CreatedAt: now,
		Notices:   notices,
	}, nil
}

// View returns balance, pending and bonus without changing state.
func (s *service) View(ctx context.Context, username string) (*FarmView, error) {
	sess, now, err := s.acquire(ctx, username, ActionView)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	p, char := sess.state, sess.character
	capacity := s.engine.Capacity(p, char)
	view := &FarmView{
		Username:       username,
		Character:      char,
		Slots:          s.engine.CharacterSlots(p),
		StreakState:    s.engine.StreakState(p, now),
		Balance:        p.SeedsTotal.Float(),
		Pending:        s.engine.ComputePending(p, char, now).Float(),
		Bonus:          s.engine.CurrentBonus(p, char, now),
		StreakCount:    p.StreakCount,
		CollectedToday: p.CollectedToday,
		HarvestCount:   p.HarvestCount,
		Purchased:      p.PurchasedIDs(),
		AsOf:           now,
		Notices:        sess.notices(),
	}
	if capacity != accrual.Unbounded {
		c := capacity.Float()
		view.Capacity = &c
		if d, ok := accrual.TimeToFull(now, p.LastCollectionAt, char.BaseRatePerHour, capacity); ok {
			fullAt := now.Add(d)
			view.FullAt = &fullAt
		}
	}
	return view, nil
}

// Collect harvests the pending seeds.
func (s *service) Collect(ctx context.Context, username string) (*CollectResult, error) {
	sess, now, err := s.acquire(ctx, username, ActionCollect)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	next, res := s.engine.Collect(sess.state, sess.character, now)
	version := sess.commit(next)
	s.persist(ctx, sess, version)
	s.sync(ctx, sess, version, now)

	logger.FromContext(ctx).Info(LogMsgHarvestCollected,
		"username", username,
		"gained", res.Gained.String(),
		"multiplier", res.Multiplier.Total,
		"streak", res.StreakAfter)

	s.publish(ctx, event.NewHarvestCollectedEvent(event.HarvestCollectedPayloadV1{
		Player:        username,
		CharacterID:   sess.character.ID,
		Gained:        int64(res.Gained),
		Multiplier:    res.Multiplier.Total,
		StreakCount:   res.StreakAfter,
		HarvestNumber: res.HarvestNumber,
		Timestamp:     now.Unix(),
	}))
	if res.StreakBroken {
		s.streakBroken(ctx, username, res.StreakBefore)
	}

	out := newCollectResult(username, res)
	out.Notices = sess.notices()
	return out, nil
}

// PurchaseUpgrade buys an upgrade. Rejections leave the session untouched.
func (s *service) PurchaseUpgrade(ctx context.Context, username, upgradeID string) (*PurchaseResult, error) {
	sess, now, err := s.acquire(ctx, username, ActionPurchase)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	next, res, err := s.engine.PurchaseUpgrade(sess.state, sess.character, upgradeID)
	if err != nil {
		s.reject(ctx, username, ActionPurchase, err)
		return nil, err
	}
	version := sess.commit(next)
	s.persist(ctx, sess, version)
	s.sync(ctx, sess, version, now)

	logger.FromContext(ctx).Info(LogMsgUpgradePurchased, "username", username, "upgrade_id", res.UpgradeID, "cost", res.Cost)
	s.publish(ctx, event.NewUpgradePurchasedEvent(username, res.UpgradeID, res.Cost, now))

	return &PurchaseResult{
		Username:  username,
		UpgradeID: res.UpgradeID,
		Cost:      res.Cost,
		Balance:   res.BalanceAfter.Float(),
		Notices:   sess.notices(),
	}, nil
}

// Upgrades lists the catalog with the player's prices and statuses.
func (s *service) Upgrades(ctx context.Context, username string) (*UpgradesView, error) {
	sess, _, err := s.acquire(ctx, username, ActionView)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &UpgradesView{
		Username: username,
		Balance:  sess.state.SeedsTotal.Float(),
		Upgrades: s.engine.Listings(sess.state, sess.character),
		Notices:  sess.notices(),
	}, nil
}

// Leaderboard returns the top players.
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	return s.board.Top(ctx, limit)
}

// Characters returns the selectable roster.
func (s *service) Characters() []domain.Character {
	return character.All()
}

// ReconcileAll brings every loaded session up to the current day and
// returns how many changed.
func (s *service) ReconcileAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	s.sweepLocked(ctx, s.now(), true)
	sessions := slices.Collect(maps.Values(s.sessions))
	s.mu.Unlock()

	changed := 0
	for _, sess := range sessions {
		if err := ctx.Err(); err != nil {
			return changed, err
		}
		if s.reconcile(ctx, sess) {
			changed++
		}
	}

	logger.FromContext(ctx).Info(LogMsgReconciled, "sessions", len(sessions), "changed", changed)
	return changed, nil
}

func (s *service) reconcile(ctx context.Context, sess *session) bool {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.loaded || sess.degraded || sess.evicted {
		return false
	}

	now := s.now()
	before := sess.state.StreakCount
	next, changed := s.engine.Reconcile(sess.state, now)
	if !changed {
		return false
	}
	version := sess.commit(next)
	s.persist(ctx, sess, version)
	s.sync(ctx, sess, version, now)
	if before > 0 && next.StreakCount == 0 {
		s.streakBroken(ctx, sess.username, before)
	}
	return true
}

// session returns the player's session, creating an unloaded one if needed.
func (s *service) session(ctx context.Context, username string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(ctx, now, false)
	sess, ok := s.sessions[username]
	if !ok {
		sess = &session{username: username, lastUsed: now}
		s.sessions[username] = sess
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
	}
	return sess
}

// lockSession returns the player's live session with mu held. A session
// evicted between lookup and lock is replaced.
func (s *service) lockSession(ctx context.Context, username string) *session {
	for {
		sess := s.session(ctx, username)
		sess.mu.Lock()
		if !sess.evicted {
			return sess
		}
		sess.mu.Unlock()
	}
}

// forget drops a session that failed to load. Caller holds sess.mu.
func (s *service) forget(sess *session) {
	sess.evicted = true
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[sess.username] == sess {
		delete(s.sessions, sess.username)
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
	}
}

// sweepLocked evicts sessions idle for at least idleTTL whose writes have
// all landed. It runs at most every idleTTL/2 unless forced. Busy sessions
// are skipped. Caller holds s.mu.
func (s *service) sweepLocked(ctx context.Context, now time.Time, force bool) {
	if s.idleTTL <= 0 {
		return
	}
	if !force && now.Sub(s.lastSweep) < s.idleTTL/2 {
		return
	}
	s.lastSweep = now

	evicted := 0
	for name, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if now.Sub(sess.lastUsed) >= s.idleTTL && sess.idle() {
			sess.evicted = true
			delete(s.sessions, name)
			evicted++
		}
		sess.mu.Unlock()
	}
	if evicted > 0 {
		metrics.SessionsEvicted.Add(float64(evicted))
		metrics.ActiveSessions.Set(float64(len(s.sessions)))
		logger.FromContext(ctx).Debug(LogMsgSessionsEvicted, "evicted", evicted, "remaining", len(s.sessions))
	}
}

// acquire returns the player's loaded session with mu held, and the action's now.
func (s *service) acquire(ctx context.Context, username, action string) (*session, time.Time, error) {
	if err := leaderboard.ValidateUsername(username); err != nil {
		s.reject(ctx, username, action, err)
		return nil, time.Time{}, err
	}

	sess := s.lockSession(ctx, username)
	now := s.now()
	if err := s.ensureLoaded(ctx, sess, now); err != nil {
		s.forget(sess)
		sess.mu.Unlock()
		return nil, time.Time{}, err
	}
	sess.lastUsed = now
	return sess, now, nil
}

// ensureLoaded resolves the character and reads the snapshot on first use.
// A failed read is not fatal: the session runs on defaults in memory and
// every later action retries the read until it succeeds. Nothing is written
// while the real snapshot is unknown.
// Caller holds sess.mu.
func (s *service) ensureLoaded(ctx context.Context, sess *session, now time.Time) error {
	if sess.loaded && !sess.degraded {
		return nil
	}
	if !sess.loaded {
		char, err := s.resolveCharacter(ctx, sess.username)
		if err != nil {
			return err
		}
		sess.character = char
	}

	p, err := state.Load(ctx, s.store, sess.username, now)
	if err != nil {
		s.storeFailed(ctx, sess.username, metrics.OperationLoad, err)
		if !sess.loaded {
			sess.loaded = true
			sess.degraded = true
			sess.commit(p)
		}
		return nil
	}

	recovered := sess.degraded
	before := p.StreakCount
	p, changed := s.engine.Reconcile(p, now)
	sess.loaded = true
	sess.degraded = false
	version := sess.commit(p)
	if changed {
		s.persist(ctx, sess, version)
		s.sync(ctx, sess, version, now)
		if before > 0 && p.StreakCount == 0 {
			s.streakBroken(ctx, sess.username, before)
		}
	} else {
		sess.saves.mark(version)
	}

	log := logger.FromContext(ctx)
	if recovered {
		log.Info(LogMsgSessionRecovered, "username", sess.username)
	}
	log.Debug(LogMsgSessionLoaded, "username", sess.username, "character_id", sess.character.ID, "reconciled", changed)
	return nil
}

// resolveCharacter reads the player's character, falling back to the
// leaderboard and caching the answer in the store.
func (s *service) resolveCharacter(ctx context.Context, username string) (domain.Character, error) {
	characterID, found, err := state.LoadCharacter(ctx, s.store, username)
	if err != nil {
		s.storeFailed(ctx, username, metrics.OperationLoad, err)
	}
	if !found {
		entry, err := s.board.Lookup(ctx, username)
		if err != nil {
			return domain.Character{}, err
		}
		characterID = entry.CharacterID
		if err := state.SaveCharacter(ctx, s.store, username, characterID); err != nil {
			s.storeFailed(ctx, username, metrics.OperationSave, err)
		}
	}
	char, err := character.Lookup(characterID)
	if err != nil {
		return domain.Character{}, fmt.Errorf("%w: %s has %q", domain.ErrInvalidCharacter, username, characterID)
	}
	return char, nil
}

// persist saves the committed snapshot in the background. A degraded
// session never writes. Caller holds sess.mu.
func (s *service) persist(ctx context.Context, sess *session, version uint64) {
	if sess.degraded {
		return
	}
	snap := sess.state.Clone()
	username := sess.username
	sess.inflight.Add(1)
	queued := s.jobs.TryEnqueue(worker.JobFunc(func(runCtx context.Context) error {
		defer sess.inflight.Add(-1)
		runCtx = withRequestID(runCtx, ctx)
		_, err := sess.saves.run(version, func() error {
			return state.Save(runCtx, s.store, username, snap)
		})
		if err != nil {
			sess.saveFailed.Store(true)
			s.storeFailed(runCtx, username, metrics.OperationSave, err)
			return err
		}
		return nil
	}))
	if !queued {
		sess.inflight.Add(-1)
		sess.saveFailed.Store(true)
		logger.FromContext(ctx).Warn(LogMsgPersistDropped, "username", username)
	}
}

// sync upserts the standing in the background. Failures are logged and dropped.
func (s *service) sync(ctx context.Context, sess *session, version uint64, now time.Time) {
	if sess.degraded {
		return
	}
	entry := domain.NewLeaderboardEntry(sess.username, sess.character.ID, sess.state, now)
	sess.inflight.Add(1)
	queued := s.jobs.TryEnqueue(worker.JobFunc(func(runCtx context.Context) error {
		defer sess.inflight.Add(-1)
		runCtx = withRequestID(runCtx, ctx)
		_, err := sess.syncs.run(version, func() error {
			return s.board.Sync(runCtx, entry)
		})
		if err != nil {
			s.publish(runCtx, event.NewFailureEvent(event.LeaderboardFailed, entry.Username, err))
		}
		return nil
	}))
	if !queued {
		sess.inflight.Add(-1)
		logger.FromContext(ctx).Warn(LogMsgSyncDropped, "username", entry.Username)
	}
}

func (s *service) storeFailed(ctx context.Context, username, operation string, err error) {
	metrics.StoreFailures.WithLabelValues(operation).Inc()
	logger.FromContext(ctx).Warn(LogMsgStoreFailed, "username", username, "operation", operation, "error", err)
	s.publish(ctx, event.NewFailureEvent(event.StorageDegraded, username, err))
}

func (s *service) streakBroken(ctx context.Context, username string, before int) {
	logger.FromContext(ctx).Info(LogMsgStreakBroken, "username", username, "streak_before", before)
	s.publish(ctx, event.NewStreakBrokenEvent(username, before))
}

func (s *service) reject(ctx context.Context, username, action string, err error) {
	reason := domain.ReasonOf(err)
	logger.FromContext(ctx).Info(LogMsgActionRejected, "username", username, "action", action, "reason", reason)
	s.publish(ctx, event.NewActionRejectedEvent(username, action, string(reason)))
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}

// withRequestID copies the request id of src onto dst so background jobs log
// under the request that caused them.
func withRequestID(dst, src context.Context) context.Context {
	if id, ok := logger.RequestIDFromContext(src); ok {
		return logger.WithRequestID(dst, id)
	}
	return dst
}
