package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vietanh2810/hunt-api/internal/domain"
)

// memStore keeps hunts in memory. A transaction works on a copy of one hunt
// and its participants and is written back only when fn succeeds.
type memStore struct {
	mu           sync.Mutex
	huntLocks    map[uint]*sync.Mutex
	hunts        map[uint]domain.Hunt
	participants map[uint][]domain.Participant
	nextHuntID   uint
	nextRowID    uint

	// conflicts makes the next InHuntTx calls fail as lost races.
	conflicts int
	// failHunts makes every transaction on these hunts fail.
	failHunts map[uint]error
	// beforeTx runs one queued func, nil meaning nothing, at the start of
	// each InHuntTx call.
	beforeTx []func()
}

func newMemStore() *memStore {
	return &memStore{
		huntLocks:    map[uint]*sync.Mutex{},
		hunts:        map[uint]domain.Hunt{},
		participants: map[uint][]domain.Participant{},
		failHunts:    map[uint]error{},
	}
}

func (m *memStore) CreateHunt(_ context.Context, hunt domain.Hunt) (domain.Hunt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextHuntID++
	hunt.ID = m.nextHuntID
	m.hunts[hunt.ID] = hunt
	m.huntLocks[hunt.ID] = &sync.Mutex{}

	return hunt, nil
}

// seed stores participants as they are, bypassing every guard.
func (m *memStore) seed(huntID uint, participants ...domain.Participant) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range participants {
		m.nextRowID++
		p.ID = m.nextRowID
		p.HuntID = huntID
		if p.PaymentStatus == "" {
			p.PaymentStatus = domain.PaymentNotRequired
		}
		m.participants[huntID] = append(m.participants[huntID], p)
	}
}

func (m *memStore) GetHunt(_ context.Context, id uint) (domain.Hunt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hunt, ok := m.hunts[id]
	if !ok {
		return domain.Hunt{}, domain.ErrHuntNotFound
	}

	return hunt, nil
}

func (m *memStore) participant(huntID, userID uint) domain.Participant {
	p, _ := m.FindParticipant(context.Background(), huntID, userID)

	return p
}

func (m *memStore) FindParticipant(_ context.Context, huntID, userID uint) (domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.participants[huntID] {
		if p.UserID == userID {
			return p, nil
		}
	}

	return domain.Participant{}, domain.ErrNotAParticipant
}

func (m *memStore) ListParticipants(_ context.Context, huntID uint, statuses ...domain.ParticipantStatus) ([]domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return filter(m.participants[huntID], statuses), nil
}

func (m *memStore) FindExpiredRequests(_ context.Context, now time.Time) ([]domain.ParticipantRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var refs []domain.ParticipantRef
	for huntID := range m.hunts {
		for _, p := range m.participants[huntID] {
			if p.IsExpired(now) {
				refs = append(refs, p.Ref())
			}
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].HuntID != refs[j].HuntID {
			return refs[i].HuntID < refs[j].HuntID
		}
		return refs[i].UserID < refs[j].UserID
	})

	return refs, nil
}

func (m *memStore) InHuntTx(_ context.Context, huntID uint, fn func(tx HuntTx) error) error {
	m.mu.Lock()
	if len(m.beforeTx) > 0 {
		hook := m.beforeTx[0]
		m.beforeTx = m.beforeTx[1:]
		if hook != nil {
			m.mu.Unlock()
			hook()
			m.mu.Lock()
		}
	}
	if m.conflicts > 0 {
		m.conflicts--
		m.mu.Unlock()
		return domain.ErrWriteConflict
	}
	if err := m.failHunts[huntID]; err != nil {
		m.mu.Unlock()
		return err
	}
	lock, ok := m.huntLocks[huntID]
	m.mu.Unlock()
	if !ok {
		return domain.ErrHuntNotFound
	}

	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	hunt, ok := m.hunts[huntID]
	if !ok {
		m.mu.Unlock()
		return domain.ErrHuntNotFound
	}
	tx := &memTx{
		store:        m,
		hunt:         hunt,
		participants: append([]domain.Participant(nil), m.participants[huntID]...),
	}
	m.mu.Unlock()

	if err := fn(tx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if tx.deleted {
		delete(m.hunts, huntID)
	} else {
		m.hunts[huntID] = tx.hunt
	}
	m.participants[huntID] = tx.participants

	return nil
}

type memTx struct {
	store        *memStore
	hunt         domain.Hunt
	participants []domain.Participant
	deleted      bool
}

func (t *memTx) Hunt() domain.Hunt {
	return t.hunt
}

func (t *memTx) SaveHunt(_ context.Context, hunt domain.Hunt) (domain.Hunt, error) {
	hunt.ID = t.hunt.ID
	t.hunt = hunt

	return hunt, nil
}

func (t *memTx) DeleteHunt(context.Context) error {
	t.deleted = true

	return nil
}

func (t *memTx) FindParticipant(_ context.Context, userID uint) (domain.Participant, error) {
	for _, p := range t.participants {
		if p.UserID == userID {
			return p, nil
		}
	}

	return domain.Participant{}, domain.ErrNotAParticipant
}

func (t *memTx) Participants(_ context.Context, statuses ...domain.ParticipantStatus) ([]domain.Participant, error) {
	return filter(t.participants, statuses), nil
}

func (t *memTx) SaveParticipant(_ context.Context, p domain.Participant) (domain.Participant, error) {
	if err := p.Validate(); err != nil {
		return domain.Participant{}, err
	}
	p.HuntID = t.hunt.ID

	if p.ID == 0 {
		for _, existing := range t.participants {
			if existing.UserID == p.UserID {
				return domain.Participant{}, domain.ErrAlreadyParticipant
			}
		}
		t.store.mu.Lock()
		t.store.nextRowID++
		p.ID = t.store.nextRowID
		t.store.mu.Unlock()
		t.participants = append(t.participants, p)

		return p, nil
	}

	for i, existing := range t.participants {
		if existing.ID == p.ID {
			t.participants[i] = p
			return p, nil
		}
	}

	return domain.Participant{}, domain.ErrNotAParticipant
}

func (t *memTx) ConfirmedCount(context.Context) (int, error) {
	return domain.ConfirmedCount(t.participants), nil
}

func (t *memTx) PendingCount(context.Context) (int, error) {
	return domain.CountByStatus(t.participants, domain.StatusPending), nil
}

func (t *memTx) HasInTransition(context.Context) (bool, error) {
	return domain.HasInTransition(t.participants), nil
}

func (t *memTx) HasConfirmedPayments(context.Context) (bool, error) {
	return domain.HasConfirmedPayments(t.participants), nil
}

func (t *memTx) NextWaitlistPosition(context.Context) (int, error) {
	return domain.NextWaitlistPosition(t.participants), nil
}

func (t *memTx) NextWaitlisted(_ context.Context, limit int) ([]domain.Participant, error) {
	queue := domain.Waitlist(t.participants)
	if limit > 0 && len(queue) > limit {
		queue = queue[:limit]
	}

	return queue, nil
}

func filter(participants []domain.Participant, statuses []domain.ParticipantStatus) []domain.Participant {
	out := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		if len(statuses) == 0 {
			out = append(out, p)
			continue
		}
		for _, s := range statuses {
			if p.Status == s {
				out = append(out, p)
				break
			}
		}
	}

	return out
}

type fakeUsers struct {
	mu          sync.Mutex
	unverified  map[uint]bool
	capability  map[uint]domain.PaymentCapability
	huntsJoined map[uint]int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		unverified:  map[uint]bool{},
		capability:  map[uint]domain.PaymentCapability{},
		huntsJoined: map[uint]int{},
	}
}

func (f *fakeUsers) PaymentCapability(_ context.Context, ownerID uint) (domain.PaymentCapability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.capability[ownerID], nil
}

func (f *fakeUsers) IsEmailVerified(_ context.Context, userID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return !f.unverified[userID], nil
}

func (f *fakeUsers) IncrementHuntsJoined(_ context.Context, userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.huntsJoined[userID]++

	return nil
}

func (f *fakeUsers) joined(userID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.huntsJoined[userID]
}

type fakeCache struct {
	mu          sync.Mutex
	summaries   map[uint]domain.HuntSummary
	invalidated map[uint]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{summaries: map[uint]domain.HuntSummary{}, invalidated: map[uint]int{}}
}

func (f *fakeCache) Get(_ context.Context, huntID uint) (domain.HuntSummary, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.summaries[huntID]

	return s, ok, nil
}

func (f *fakeCache) Set(_ context.Context, summary domain.HuntSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.summaries[summary.HuntID] = summary

	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, huntID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.summaries, huntID)
	f.invalidated[huntID]++

	return nil
}

type fakeScheduler struct {
	mu        sync.Mutex
	scheduled map[uint]time.Time
}

func (f *fakeScheduler) SchedulePurge(_ context.Context, hunt domain.Hunt) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.scheduled == nil {
		f.scheduled = map[uint]time.Time{}
	}
	f.scheduled[hunt.ID] = hunt.PurgeAt()

	return nil
}
