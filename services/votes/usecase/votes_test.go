package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/evoting/internal/pkg/apperror"
	"github.com/piresc/evoting/internal/pkg/constants"
	"github.com/piresc/evoting/internal/pkg/models"
)

const testSecret = "sk_test_secret"

type harness struct {
	uc       *VotesUC
	store    *memStore
	cache    *countingCache
	provider *fakeProvider
	events   *eventLog
	sessions *memSessions
	settings *memSettings
}

func newHarness() *harness {
	h := &harness{
		store: newMemStore(),
		cache: newCountingCache(),
		provider: &fakeProvider{
			initResult: models.InitializeTransactionResult{
				Status:           true,
				AuthorizationURL: "https://checkout.example/abc",
				Raw:              []byte(`{"status":true,"data":{"authorization_url":"https://checkout.example/abc"}}`),
			},
			verifyResult: models.VerifyTransactionResult{Status: true, Data: models.ProviderTransaction{Status: "success"}, Raw: []byte(`{"status":true}`)},
		},
		events:   &eventLog{},
		sessions: &memSessions{slots: map[string]string{}},
		settings: &memSettings{values: map[string]string{
			"church_voting_active":   "true",
			"national_voting_active": "true",
		}},
	}
	cfg := &models.Config{
		App:      models.AppConfig{URL: "https://api.example.com/"},
		Paystack: models.PaystackConfig{SecretKey: testSecret},
		Voting:   models.VotingConfig{UnitPriceMinor: 100, MaxVotesPerTxn: 100, PendingExpiryHours: 24},
	}
	h.uc = NewVotesUC(cfg, h.store, h.sessions, h.settings, h.provider, h.events, h.cache)
	return h
}

func (h *harness) initialize(t *testing.T, candidateID, positionID int64, count int) string {
	resp, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
		CandidateID: candidateID,
		PositionID:  positionID,
		VoteCount:   count,
		Amount:      float64(count),
		Email:       "voter@example.com",
	}, "")
	require.NoError(t, err)
	return resp.Reference
}

func sign(body []byte) string {
	mac := hmac.New(sha512.New, []byte(testSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookBody(event, reference string) []byte {
	return []byte(fmt.Sprintf(`{"event":%q,"data":{"status":"success","reference":%q,"amount":500}}`, event, reference))
}

func TestInitialize_CreatesPendingPair(t *testing.T) {
	// Arrange
	h := newHarness()

	// Act
	resp, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
		CandidateID: 100, PositionID: 10, VoteCount: 5, Amount: 5.0, Email: "Voter@Example.com", Phone: "0240000000",
	}, "sid-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/abc", resp.AuthorizationURL)
	require.NotEmpty(t, resp.Reference)

	payment := h.store.payment(resp.Reference)
	vote := h.store.vote(resp.Reference)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, models.PaymentStatusPending, vote.PaymentStatus)
	assert.Equal(t, payment.Reference, vote.PaymentReference)
	assert.Equal(t, int64(500), payment.Amount)
	assert.Equal(t, "voter@example.com", vote.VoterEmail)
	assert.Nil(t, vote.VotedAt)
	assert.JSONEq(t, `{"candidate_id":100,"candidate_name":"Grace","position_id":10,"position_name":"Elder","vote_count":5}`, string(payment.Metadata))

	require.Len(t, h.provider.initPayloads, 1)
	assert.Equal(t, int64(500), h.provider.initPayloads[0].Amount)
	assert.Equal(t, "https://api.example.com/api/payment/success?reference="+resp.Reference, h.provider.initPayloads[0].CallbackURL)
	assert.Equal(t, resp.Reference, h.sessions.slots["sid-1"])
	assert.JSONEq(t, `{"status":true,"data":{"authorization_url":"https://checkout.example/abc"}}`, string(payment.ProviderResponse))
}

func TestInitialize_AmountMismatchCreatesNothing(t *testing.T) {
	for _, amount := range []float64{4.99, 5.01, 50, 0.5} {
		t.Run(fmt.Sprintf("amount %.2f", amount), func(t *testing.T) {
			h := newHarness()

			_, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
				CandidateID: 100, PositionID: 10, VoteCount: 5, Amount: amount, Email: "voter@example.com",
			}, "")

			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
			assert.Contains(t, appErr.Fields, "amount")
			assert.Equal(t, 0, h.store.rowCount())
			assert.Empty(t, h.provider.initPayloads)
		})
	}
}

func TestInitialize_FloatAmountRounds(t *testing.T) {
	h := newHarness()

	_, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
		CandidateID: 100, PositionID: 10, VoteCount: 3, Amount: 0.1 + 0.2 + 2.7, Email: "voter@example.com",
	}, "")

	require.NoError(t, err)
}

func TestInitialize_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     models.InitializeVoteRequest
		kind    apperror.Kind
		message string
	}{
		{
			name: "unknown candidate",
			req:  models.InitializeVoteRequest{CandidateID: 999, PositionID: 10, VoteCount: 1, Amount: 1, Email: "v@example.com"},
			kind: apperror.KindNotFound,
		},
		{
			name: "unknown position",
			req:  models.InitializeVoteRequest{CandidateID: 100, PositionID: 999, VoteCount: 1, Amount: 1, Email: "v@example.com"},
			kind: apperror.KindNotFound,
		},
		{
			name:    "candidate of another position",
			req:     models.InitializeVoteRequest{CandidateID: 200, PositionID: 10, VoteCount: 1, Amount: 1, Email: "v@example.com"},
			kind:    apperror.KindConflict,
			message: "Candidate does not belong to the selected position",
		},
		{
			name: "too many votes",
			req:  models.InitializeVoteRequest{CandidateID: 100, PositionID: 10, VoteCount: 101, Amount: 101, Email: "v@example.com"},
			kind: apperror.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()

			_, err := h.uc.Initialize(context.Background(), tt.req, "")

			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, appErr.Kind)
			if tt.message != "" {
				assert.Equal(t, tt.message, appErr.Message)
			}
			assert.Equal(t, 0, h.store.rowCount())
		})
	}
}

func TestInitialize_LockedCategory(t *testing.T) {
	t.Run("configured message", func(t *testing.T) {
		h := newHarness()
		h.settings.values["church_voting_active"] = "false"
		h.settings.values["church_voting_lock_message"] = "Church voting opens Sunday at 9am"

		_, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
			CandidateID: 100, PositionID: 10, VoteCount: 1, Amount: 1, Email: "v@example.com",
		}, "")

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindLocked, appErr.Kind)
		assert.Equal(t, "Church voting opens Sunday at 9am", appErr.Message)
		assert.Equal(t, 0, h.store.rowCount())
	})

	t.Run("default message", func(t *testing.T) {
		h := newHarness()
		delete(h.settings.values, "national_voting_active")

		_, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
			CandidateID: 200, PositionID: 20, VoteCount: 1, Amount: 1, Email: "v@example.com",
		}, "")

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindLocked, appErr.Kind)
		assert.Equal(t, DefaultLockMessage("National"), appErr.Message)
	})

	t.Run("other category stays open", func(t *testing.T) {
		h := newHarness()
		h.settings.values["church_voting_active"] = "false"

		ref := h.initialize(t, 200, 20, 2)
		assert.NotEmpty(t, ref)
	})
}

func TestInitialize_InactivePosition(t *testing.T) {
	h := newHarness()
	elder := h.store.positions[10]
	elder.Status = "inactive"
	h.store.positions[10] = elder

	_, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
		CandidateID: 100, PositionID: 10, VoteCount: 1, Amount: 1, Email: "v@example.com",
	}, "")

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	assert.Equal(t, 0, h.store.rowCount())
	assert.Empty(t, h.provider.initPayloads)
}

func TestInitialize_ProviderRejectsClosesPair(t *testing.T) {
	h := newHarness()
	h.provider.initResult = models.InitializeTransactionResult{Status: false, Message: "Invalid key", Raw: []byte(`{"status":false,"message":"Invalid key"}`)}

	_, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
		CandidateID: 100, PositionID: 10, VoteCount: 2, Amount: 2, Email: "v@example.com",
	}, "sid-1")

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindUpstream, appErr.Kind)
	assert.Equal(t, "Invalid key", appErr.Message)

	ref := h.provider.initPayloads[0].Reference
	assert.Equal(t, models.PaymentStatusFailed, h.store.payment(ref).Status)
	assert.Equal(t, models.PaymentStatusFailed, h.store.vote(ref).PaymentStatus)
	assert.JSONEq(t, `{"status":false,"message":"Invalid key"}`, string(h.store.payment(ref).ProviderResponse))
	assert.Empty(t, h.sessions.slots)
	assert.Empty(t, h.cache.batches(), "failed settlements do not touch result caches")
}

func TestVerify_SettlesOnceAndIsIdempotent(t *testing.T) {
	// Arrange
	h := newHarness()
	ref := h.initialize(t, 100, 10, 5)
	ctx := context.Background()

	// Act
	first, err := h.uc.Verify(ctx, ref)
	require.NoError(t, err)
	second, err := h.uc.Verify(ctx, ref)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, models.PaymentStatusSuccess, first.Status)
	assert.Equal(t, first, second)
	assert.Equal(t, 5.0, first.Amount)
	assert.Equal(t, "Grace", first.CandidateName)
	assert.Equal(t, "Elder", first.PositionName)
	assert.Equal(t, 1, h.provider.calls())
	assert.Equal(t, 1, h.store.transitions)
	assert.Equal(t, 1, h.events.count())
	assert.NotNil(t, h.store.vote(ref).VotedAt)

	// memo gone: the settled row still short-circuits the provider
	require.NoError(t, h.cache.Delete(ctx, fmt.Sprintf(constants.KeyPaymentVerified, ref)))
	third, err := h.uc.Verify(ctx, ref)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, third.Status)
	assert.Equal(t, 1, h.provider.calls())
}

func TestVerify_InvalidatesCachesOnSuccess(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	ref := h.initialize(t, 100, 10, 1)

	for _, key := range []string{
		constants.KeyDashboardSummary,
		constants.KeyPublicResultsAll,
		"results:public:position:10",
		"results:public:category:1",
		constants.KeyAdminResultsAll,
		"results:admin:position:10",
		"results:admin:category:1",
		"candidates:position:10",
	} {
		require.NoError(t, h.cache.Set(ctx, key, "stale", time.Minute))
	}

	_, err := h.uc.Verify(ctx, ref)
	require.NoError(t, err)

	batches := h.cache.batches()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 8)
	for _, key := range batches[0] {
		assert.False(t, h.cache.has(key), key)
	}
	assert.True(t, h.cache.has(fmt.Sprintf(constants.KeyPaymentVerified, ref)))
}

func TestVerify_ProviderStates(t *testing.T) {
	tests := []struct {
		name     string
		result   models.VerifyTransactionResult
		status   models.PaymentStatus
		kind     apperror.Kind
		wantErr  bool
		settled  bool
		eventCnt int
	}{
		{
			name:   "still processing",
			result: models.VerifyTransactionResult{Status: true, Data: models.ProviderTransaction{Status: "ongoing"}},
			status: models.PaymentStatusPending,
		},
		{
			name:     "abandoned",
			result:   models.VerifyTransactionResult{Status: true, Data: models.ProviderTransaction{Status: "abandoned"}},
			status:   models.PaymentStatusFailed,
			settled:  true,
			eventCnt: 1,
		},
		{
			name:    "provider unreachable leaves pending",
			result:  models.VerifyTransactionResult{Status: false, Message: "Unable to reach payment provider"},
			kind:    apperror.KindUpstream,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			ref := h.initialize(t, 100, 10, 1)
			h.provider.verifyResult = tt.result

			receipt, err := h.uc.Verify(context.Background(), ref)

			if tt.wantErr {
				assert.True(t, apperror.Is(err, tt.kind))
				assert.Equal(t, models.PaymentStatusPending, h.store.payment(ref).Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, receipt.Status)
			assert.Equal(t, tt.status, h.store.payment(ref).Status)
			assert.Equal(t, tt.eventCnt, h.events.count())
			assert.Empty(t, h.cache.batches())
		})
	}
}

func TestVerify_UnknownReference(t *testing.T) {
	h := newHarness()

	_, err := h.uc.Verify(context.Background(), "VOTE_NOPE")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = h.uc.Verify(context.Background(), "  ")
	assert.True(t, apperror.Is(err, apperror.KindValidation))
}

func TestSettle_ConcurrentTriggersTransitionOnce(t *testing.T) {
	// Arrange
	h := newHarness()
	h.provider.verifyLatency = 5 * time.Millisecond
	ref := h.initialize(t, 100, 10, 5)
	body := webhookBody(models.EventChargeSuccess, ref)
	sig := sign(body)

	// Act
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := context.Background()
			switch i % 3 {
			case 0:
				_, _ = h.uc.Verify(ctx, ref)
			case 1:
				_ = h.uc.HandleWebhook(ctx, body, sig)
			default:
				_ = h.uc.CompleteRedirect(ctx, ref, "")
			}
		}(i)
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 1, h.store.transitions)
	assert.Equal(t, 1, h.events.count())
	require.NotEmpty(t, h.cache.batches())
	for _, batch := range h.cache.batches() {
		assert.Len(t, batch, 8)
	}
	assert.Equal(t, 5, h.store.totalVotes(100))
}

func TestHandleWebhook(t *testing.T) {
	t.Run("bad signature mutates nothing", func(t *testing.T) {
		h := newHarness()
		ref := h.initialize(t, 100, 10, 5)
		body := webhookBody(models.EventChargeSuccess, ref)

		err := h.uc.HandleWebhook(context.Background(), body, sign([]byte("something else")))

		assert.True(t, apperror.Is(err, apperror.KindSignature))
		assert.Equal(t, models.PaymentStatusPending, h.store.payment(ref).Status)
		assert.Equal(t, 0, h.events.count())

		err = h.uc.HandleWebhook(context.Background(), body, "")
		assert.True(t, apperror.Is(err, apperror.KindSignature))
	})

	t.Run("charge.success settles exactly once", func(t *testing.T) {
		h := newHarness()
		ref := h.initialize(t, 100, 10, 5)
		body := webhookBody(models.EventChargeSuccess, ref)

		for i := 0; i < 3; i++ {
			require.NoError(t, h.uc.HandleWebhook(context.Background(), body, sign(body)))
		}

		assert.Equal(t, models.PaymentStatusSuccess, h.store.payment(ref).Status)
		assert.JSONEq(t, string(body), string(h.store.payment(ref).ProviderResponse))
		assert.Equal(t, 1, h.store.transitions)
		assert.Equal(t, 1, h.events.count())
		assert.Equal(t, 0, h.provider.calls())
	})

	t.Run("charge.failed then success keeps failed", func(t *testing.T) {
		h := newHarness()
		ref := h.initialize(t, 100, 10, 5)
		failed := webhookBody(models.EventChargeFailed, ref)
		success := webhookBody(models.EventChargeSuccess, ref)

		require.NoError(t, h.uc.HandleWebhook(context.Background(), failed, sign(failed)))
		require.NoError(t, h.uc.HandleWebhook(context.Background(), success, sign(success)))

		assert.Equal(t, models.PaymentStatusFailed, h.store.payment(ref).Status)
		assert.Nil(t, h.store.vote(ref).VotedAt)
	})

	t.Run("acknowledged without processing", func(t *testing.T) {
		h := newHarness()
		bodies := [][]byte{
			[]byte(`{"event":"transfer.success","data":{"reference":"X"}}`),
			[]byte(`{"event":"charge.success","data":{}}`),
			[]byte(`{"event":"charge.success","data":{"reference":"VOTE_UNKNOWN"}}`),
			[]byte(`not json`),
		}

		for _, body := range bodies {
			assert.NoError(t, h.uc.HandleWebhook(context.Background(), body, sign(body)))
		}
		assert.Equal(t, 0, h.store.transitions)
	})
}

func TestCompleteRedirect(t *testing.T) {
	ctx := context.Background()

	t.Run("reference from query", func(t *testing.T) {
		h := newHarness()
		ref := h.initialize(t, 100, 10, 1)

		outcome := h.uc.CompleteRedirect(ctx, ref, "")

		assert.True(t, outcome.Success)
		assert.Equal(t, ref, outcome.Reference)
	})

	t.Run("reference from one-shot session slot", func(t *testing.T) {
		h := newHarness()
		resp, err := h.uc.Initialize(ctx, models.InitializeVoteRequest{
			CandidateID: 100, PositionID: 10, VoteCount: 1, Amount: 1, Email: "v@example.com",
		}, "sid-9")
		require.NoError(t, err)

		outcome := h.uc.CompleteRedirect(ctx, "", "sid-9")
		assert.True(t, outcome.Success)
		assert.Equal(t, resp.Reference, outcome.Reference)

		again := h.uc.CompleteRedirect(ctx, "", "sid-9")
		assert.Equal(t, models.RedirectMissingReference, again.ErrorCode)
	})

	t.Run("already settled reference refreshes caches", func(t *testing.T) {
		h := newHarness()
		ref := h.initialize(t, 100, 10, 2)
		_, err := h.uc.Verify(ctx, ref)
		require.NoError(t, err)
		require.NoError(t, h.cache.Set(ctx, "results:public:position:10", "stale", time.Minute))

		outcome := h.uc.CompleteRedirect(ctx, ref, "")

		assert.True(t, outcome.Success)
		assert.Equal(t, 1, h.provider.calls())
		assert.Equal(t, 1, h.store.transitions)
		assert.Len(t, h.cache.batches(), 2)
		assert.False(t, h.cache.has("results:public:position:10"))
	})

	t.Run("fresh settlement invalidates once", func(t *testing.T) {
		h := newHarness()
		ref := h.initialize(t, 100, 10, 2)

		outcome := h.uc.CompleteRedirect(ctx, ref, "")

		assert.True(t, outcome.Success)
		assert.Len(t, h.cache.batches(), 1)
	})

	t.Run("error codes", func(t *testing.T) {
		h := newHarness()
		assert.Equal(t, models.RedirectMissingReference, h.uc.CompleteRedirect(ctx, "", "").ErrorCode)
		assert.Equal(t, models.RedirectPaymentNotFound, h.uc.CompleteRedirect(ctx, "VOTE_NOPE", "").ErrorCode)

		ref := h.initialize(t, 100, 10, 1)
		h.provider.verifyResult = models.VerifyTransactionResult{Status: false}
		assert.Equal(t, models.RedirectVerificationFailed, h.uc.CompleteRedirect(ctx, ref, "").ErrorCode)

		h.provider.verifyResult = models.VerifyTransactionResult{Status: true, Data: models.ProviderTransaction{Status: "pending"}}
		assert.Equal(t, models.RedirectPaymentPending, h.uc.CompleteRedirect(ctx, ref, "").ErrorCode)

		h.provider.verifyResult = models.VerifyTransactionResult{Status: true, Data: models.ProviderTransaction{Status: "failed"}}
		assert.Equal(t, models.RedirectPaymentFailed, h.uc.CompleteRedirect(ctx, ref, "").ErrorCode)
	})
}

func TestScenario_ChurchWebhookAddsVotes(t *testing.T) {
	h := newHarness()
	before := h.store.totalVotes(100)

	resp, err := h.uc.Initialize(context.Background(), models.InitializeVoteRequest{
		CandidateID: 100, PositionID: 10, VoteCount: 5, Amount: 5.0, Email: "e@example.com",
	}, "")
	require.NoError(t, err)

	body := webhookBody(models.EventChargeSuccess, resp.Reference)
	require.NoError(t, h.uc.HandleWebhook(context.Background(), body, sign(body)))

	assert.Equal(t, models.PaymentStatusSuccess, h.store.vote(resp.Reference).PaymentStatus)
	assert.Equal(t, before+5, h.store.totalVotes(100))
}

func TestExpirePending(t *testing.T) {
	h := newHarness()
	now := time.Now()
	h.uc.now = func() time.Time { return now.Add(-48 * time.Hour) }
	stale := h.initialize(t, 100, 10, 1)
	settledStale := h.initialize(t, 100, 10, 1)
	h.uc.now = func() time.Time { return now }
	fresh := h.initialize(t, 100, 10, 1)

	_, err := h.uc.Verify(context.Background(), settledStale)
	require.NoError(t, err)

	n, err := h.uc.ExpirePending(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, models.PaymentStatusFailed, h.store.payment(stale).Status)
	assert.Equal(t, models.PaymentStatusSuccess, h.store.payment(settledStale).Status)
	assert.Equal(t, models.PaymentStatusPending, h.store.payment(fresh).Status)
}

func TestListCategories(t *testing.T) {
	h := newHarness()
	h.settings.values["national_voting_active"] = "false"
	h.settings.values["national_voting_lock_message"] = "Results are being counted"

	listings, err := h.uc.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.True(t, listings[0].VotingActive)
	assert.Empty(t, listings[0].LockMessage)
	assert.Len(t, listings[0].Positions, 1)
	assert.False(t, listings[1].VotingActive)
	assert.Equal(t, "Results are being counted", listings[1].LockMessage)
}

func TestListCandidates_Cached(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	first, err := h.uc.ListCandidates(ctx, 10)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.True(t, h.cache.has("candidates:position:10"))

	h.store.mu.Lock()
	delete(h.store.candidates, 101)
	h.store.mu.Unlock()

	second, err := h.uc.ListCandidates(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, second, 2, "served from cache")

	_, err = h.uc.ListCandidates(ctx, 999)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
