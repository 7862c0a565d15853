package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/models"
)

// memStore is an in-memory VotesRepo with the same guarded transition as Postgres
type memStore struct {
	mu          sync.Mutex
	categories  map[int64]models.Category
	positions   map[int64]models.Position
	candidates  map[int64]models.Candidate
	payments    map[string]*models.Payment
	votes       map[string]*models.Vote
	transitions int
}

func newMemStore() *memStore {
	s := &memStore{
		categories: map[int64]models.Category{},
		positions:  map[int64]models.Position{},
		candidates: map[int64]models.Candidate{},
		payments:   map[string]*models.Payment{},
		votes:      map[string]*models.Vote{},
	}
	s.categories[1] = models.Category{ID: 1, Name: "Church", Status: "active"}
	s.categories[2] = models.Category{ID: 2, Name: "National", Status: "active"}
	s.positions[10] = models.Position{ID: 10, CategoryID: 1, CategoryName: "Church", Name: "Elder", DisplayOrder: 1, Status: "active"}
	s.positions[20] = models.Position{ID: 20, CategoryID: 2, CategoryName: "National", Name: "President", DisplayOrder: 1, Status: "active"}
	s.candidates[100] = models.Candidate{ID: 100, PositionID: 10, Name: "Grace", Status: "active"}
	s.candidates[101] = models.Candidate{ID: 101, PositionID: 10, Name: "Samuel", Status: "active"}
	s.candidates[200] = models.Candidate{ID: 200, PositionID: 20, Name: "Kofi", Status: "active"}
	return s
}

func (s *memStore) ListActiveCategories(context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Category{}
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) ListActivePositions(context.Context) ([]models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Position{}
	for _, p := range s.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) GetPosition(_ context.Context, id int64) (*models.Position, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.positions[id]
	if !ok {
		return nil, apperror.NotFound("Position not found")
	}
	return &p, nil
}

func (s *memStore) GetCandidate(_ context.Context, id int64) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.candidates[id]
	if !ok {
		return nil, apperror.NotFound("Candidate not found")
	}
	return &c, nil
}

func (s *memStore) ListCandidatesByPosition(_ context.Context, positionID int64) ([]models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Candidate{}
	for _, c := range s.candidates {
		if c.PositionID == positionID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memStore) CreatePendingVote(_ context.Context, payment *models.Payment, vote *models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.payments[payment.Reference]; ok {
		return fmt.Errorf("duplicate reference %s", payment.Reference)
	}
	p, v := *payment, *vote
	s.payments[payment.Reference] = &p
	s.votes[vote.PaymentReference] = &v
	return nil
}

func (s *memStore) GetReceipt(_ context.Context, reference string) (*models.ReceiptRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[reference]
	if !ok {
		return nil, apperror.NotFound("Payment not found")
	}
	v := s.votes[reference]
	c := s.candidates[v.CandidateID]
	pos := s.positions[v.PositionID]
	return &models.ReceiptRow{
		Reference:     p.Reference,
		Amount:        p.Amount,
		VoteCount:     v.VoteCount,
		CandidateID:   c.ID,
		CandidateName: c.Name,
		PositionID:    pos.ID,
		PositionName:  pos.Name,
		CategoryID:    pos.CategoryID,
		VoterEmail:    v.VoterEmail,
		Status:        p.Status,
	}, nil
}

func (s *memStore) SaveProviderResponse(_ context.Context, reference string, providerResponse json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[reference]
	if !ok || p.Status != models.PaymentStatusPending {
		return nil
	}
	p.ProviderResponse = providerResponse
	return nil
}

func (s *memStore) SettlePayment(_ context.Context, reference string, status models.PaymentStatus, providerResponse json.RawMessage, settledAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[reference]
	if !ok || !p.Status.CanTransitionTo(status) {
		return false, nil
	}
	p.Status = status
	p.ProviderResponse = providerResponse
	v := s.votes[reference]
	v.PaymentStatus = status
	if status == models.PaymentStatusSuccess {
		at := settledAt
		v.VotedAt = &at
	}
	s.transitions++
	return true, nil
}

func (s *memStore) ListStalePending(_ context.Context, before time.Time, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []string{}
	for ref, p := range s.payments {
		if p.Status == models.PaymentStatusPending && p.CreatedAt.Before(before) && len(out) < limit {
			out = append(out, ref)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *memStore) payment(reference string) models.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.payments[reference]
}

func (s *memStore) vote(reference string) models.Vote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.votes[reference]
}

func (s *memStore) rowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments) + len(s.votes)
}

// totalVotes sums success votes of a candidate the way the results query does
func (s *memStore) totalVotes(candidateID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, v := range s.votes {
		if v.CandidateID == candidateID && v.PaymentStatus == models.PaymentStatusSuccess {
			total += v.VoteCount
		}
	}
	return total
}

// countingCache is a JSON cache that counts invalidation batches
type countingCache struct {
	mu            sync.Mutex
	values        map[string][]byte
	deleteBatches [][]string
}

func newCountingCache() *countingCache {
	return &countingCache{values: map[string][]byte{}}
}

func (c *countingCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *countingCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = raw
	return nil
}

func (c *countingCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteBatches = append(c.deleteBatches, keys)
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *countingCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok
}

func (c *countingCache) batches() [][]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([][]string(nil), c.deleteBatches...)
}

// fakeProvider records calls and answers with fixed results
type fakeProvider struct {
	mu            sync.Mutex
	initResult    models.InitializeTransactionResult
	verifyResult  models.VerifyTransactionResult
	initPayloads  []models.InitializeTransactionPayload
	verifyCalls   int
	verifyLatency time.Duration
}

func (p *fakeProvider) InitializeTransaction(_ context.Context, payload models.InitializeTransactionPayload) models.InitializeTransactionResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.initPayloads = append(p.initPayloads, payload)
	return p.initResult
}

func (p *fakeProvider) VerifyTransaction(_ context.Context, reference string) models.VerifyTransactionResult {
	p.mu.Lock()
	p.verifyCalls++
	result := p.verifyResult
	latency := p.verifyLatency
	p.mu.Unlock()
	time.Sleep(latency)
	result.Data.Reference = reference
	return result
}

func (p *fakeProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.verifyCalls
}

// eventLog records published settlement events
type eventLog struct {
	mu     sync.Mutex
	events []models.VoteSettledEvent
}

func (l *eventLog) PublishVoteSettled(_ context.Context, event models.VoteSettledEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
	return nil
}

func (l *eventLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

// memSessions is a one-shot session slot store
type memSessions struct {
	mu    sync.Mutex
	slots map[string]string
}

func (s *memSessions) PutPaymentRef(_ context.Context, sessionID, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[sessionID] = reference
	return nil
}

func (s *memSessions) TakePaymentRef(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := s.slots[sessionID]
	delete(s.slots, sessionID)
	return ref, nil
}

// memSettings is a minimal settings store
type memSettings struct {
	mu     sync.Mutex
	values map[string]string
}

func (s *memSettings) Get(_ context.Context, key, defaultValue string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v, nil
	}
	return defaultValue, nil
}

func (s *memSettings) GetBool(ctx context.Context, key string, defaultValue bool) (bool, error) {
	v, _ := s.Get(ctx, key, strconv.FormatBool(defaultValue))
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue, nil
	}
	return b, nil
}

func (s *memSettings) Set(_ context.Context, key, value, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *memSettings) SetBool(ctx context.Context, key string, value bool, description string) error {
	return s.Set(ctx, key, strconv.FormatBool(value), description)
}

func (s *memSettings) AppendScheduleLog(context.Context, models.ScheduleLogEntry) error { return nil }

func (s *memSettings) ScheduleLogs(context.Context) ([]models.ScheduleLogEntry, error) {
	return nil, nil
}

func (s *memSettings) PruneScheduleLogs(context.Context, int) (int, error) { return 0, nil }
