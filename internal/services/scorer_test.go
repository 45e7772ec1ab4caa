package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadpilot/lead-intent-api/internal/models"
	"leadpilot/lead-intent-api/internal/repositories"
)

type fakeOfferRepo struct {
	offers map[uuid.UUID]*models.Offer
}

func (f *fakeOfferRepo) Create(offer *models.Offer) error { return nil }

func (f *fakeOfferRepo) FindByID(id uuid.UUID) (*models.Offer, error) {
	offer, ok := f.offers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return offer, nil
}

func (f *fakeOfferRepo) ListByOwner(ownerID uuid.UUID) ([]models.Offer, error) { return nil, nil }

type fakeLeadRepo struct {
	unscored []models.Lead
}

func (f *fakeLeadRepo) CreateBatch(leads []*models.Lead) error { return nil }

func (f *fakeLeadRepo) ListByOwner(ownerID uuid.UUID) ([]models.Lead, error) { return nil, nil }

func (f *fakeLeadRepo) FindUnscoredForOffer(ownerID, offerID uuid.UUID) ([]models.Lead, error) {
	return f.unscored, nil
}

type fakeResultRepo struct {
	existing map[uuid.UUID]bool // keyed by lead id
	dupOn    map[uuid.UUID]bool // leads whose insert loses the race
	created  []*models.Result
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{
		existing: map[uuid.UUID]bool{},
		dupOn:    map[uuid.UUID]bool{},
	}
}

func (f *fakeResultRepo) Create(result *models.Result) error {
	if f.dupOn[result.LeadID] {
		return repositories.ErrDuplicatePair
	}
	f.created = append(f.created, result)
	return nil
}

func (f *fakeResultRepo) Exists(leadID, offerID uuid.UUID) (bool, error) {
	return f.existing[leadID], nil
}

func (f *fakeResultRepo) ListByOwner(ownerID uuid.UUID) ([]models.Result, error) { return nil, nil }

type fakeClassifier struct {
	verdict *Verdict
	err     error
	errFor  map[uuid.UUID]error // per-lead failures
	calls   []uuid.UUID
}

func (f *fakeClassifier) ClassifyLead(ctx context.Context, offer *models.Offer, lead *models.Lead) (*Verdict, error) {
	f.calls = append(f.calls, lead.ID)
	if err, ok := f.errFor[lead.ID]; ok {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.verdict, nil
}

func makeLeads(n int) []models.Lead {
	leads := make([]models.Lead, 0, n)
	for i := 0; i < n; i++ {
		leads = append(leads, models.Lead{
			ID:   uuid.New(),
			Name: fmt.Sprintf("Lead %d", i+1),
		})
	}
	return leads
}

func newTestOffer() (*fakeOfferRepo, *models.Offer) {
	offer := &models.Offer{
		ID:            uuid.New(),
		Name:          "DevOps Platform",
		ValueProps:    "Faster deploys",
		IdealUseCases: "Mid-size engineering orgs",
	}
	return &fakeOfferRepo{offers: map[uuid.UUID]*models.Offer{offer.ID: offer}}, offer
}

func TestScoreOfferAllSucceed(t *testing.T) {
	offerRepo, offer := newTestOffer()
	leadRepo := &fakeLeadRepo{unscored: makeLeads(3)}
	resultRepo := newFakeResultRepo()
	classifier := &fakeClassifier{
		verdict: &Verdict{Intent: IntentHigh, Score: 8, Reasoning: "great fit"},
	}

	scorer := NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	summary, err := scorer.ScoreOffer(context.Background(), uuid.New(), offer.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Processed)
	assert.Empty(t, summary.Skipped)
	require.Len(t, summary.Results, 3)
	require.Len(t, resultRepo.created, 3)

	for _, result := range summary.Results {
		assert.Equal(t, "High", result.AIIntent)
		assert.Equal(t, 8, result.FinalScore)
		assert.Equal(t, offer.ID, result.OfferID)
	}
}

func TestScoreOfferAllClassifierFailures(t *testing.T) {
	offerRepo, offer := newTestOffer()
	leads := makeLeads(4)
	leadRepo := &fakeLeadRepo{unscored: leads}
	resultRepo := newFakeResultRepo()
	classifier := &fakeClassifier{err: ErrUpstreamCallFailed}

	scorer := NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	summary, err := scorer.ScoreOffer(context.Background(), uuid.New(), offer.ID)

	require.NoError(t, err, "classifier failures must never fail the batch")
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, []string{"Lead 1", "Lead 2", "Lead 3", "Lead 4"}, summary.Skipped)
	assert.Empty(t, summary.Results)
	assert.Empty(t, resultRepo.created)
}

func TestScoreOfferPartialFailure(t *testing.T) {
	offerRepo, offer := newTestOffer()
	leads := makeLeads(3)
	leadRepo := &fakeLeadRepo{unscored: leads}
	resultRepo := newFakeResultRepo()
	classifier := &fakeClassifier{
		verdict: &Verdict{Intent: IntentHigh, Score: 7, Reasoning: "fit"},
		errFor:  map[uuid.UUID]error{leads[1].ID: ErrQuotaExhausted},
	}

	scorer := NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	summary, err := scorer.ScoreOffer(context.Background(), uuid.New(), offer.ID)

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, []string{"Lead 2"}, summary.Skipped)
	assert.Len(t, resultRepo.created, 2)
}

func TestScoreOfferNothingToDo(t *testing.T) {
	offerRepo, offer := newTestOffer()
	leadRepo := &fakeLeadRepo{unscored: []models.Lead{}}
	resultRepo := newFakeResultRepo()
	classifier := &fakeClassifier{}

	scorer := NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	_, err := scorer.ScoreOffer(context.Background(), uuid.New(), offer.ID)

	assert.ErrorIs(t, err, ErrNothingToScore)
	assert.Empty(t, classifier.calls)
}

func TestScoreOfferUnknownOffer(t *testing.T) {
	offerRepo, _ := newTestOffer()
	leadRepo := &fakeLeadRepo{unscored: makeLeads(1)}
	resultRepo := newFakeResultRepo()
	classifier := &fakeClassifier{}

	scorer := NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	_, err := scorer.ScoreOffer(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestScoreOfferSkipsAlreadyScoredSilently(t *testing.T) {
	offerRepo, offer := newTestOffer()
	leads := makeLeads(2)
	leadRepo := &fakeLeadRepo{unscored: leads}
	resultRepo := newFakeResultRepo()
	// A concurrent run scored the first lead after the eligible set was taken.
	resultRepo.existing[leads[0].ID] = true
	classifier := &fakeClassifier{
		verdict: &Verdict{Intent: IntentHigh, Score: 6, Reasoning: "fit"},
	}

	scorer := NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	summary, err := scorer.ScoreOffer(context.Background(), uuid.New(), offer.ID)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Processed)
	assert.Empty(t, summary.Skipped, "an already-scored pair is not a skip")
	assert.Equal(t, []uuid.UUID{leads[1].ID}, classifier.calls)
}

func TestScoreOfferDuplicatePairRace(t *testing.T) {
	offerRepo, offer := newTestOffer()
	leads := makeLeads(2)
	leadRepo := &fakeLeadRepo{unscored: leads}
	resultRepo := newFakeResultRepo()
	// The existence check passes but the insert loses the race.
	resultRepo.dupOn[leads[0].ID] = true
	classifier := &fakeClassifier{
		verdict: &Verdict{Intent: IntentLow, Score: 3, Reasoning: "weak fit"},
	}

	scorer := NewScoringService(offerRepo, leadRepo, resultRepo, classifier)
	summary, err := scorer.ScoreOffer(context.Background(), uuid.New(), offer.ID)

	require.NoError(t, err, "losing the create race is not a batch failure")
	assert.Equal(t, 1, summary.Processed)
	assert.Empty(t, summary.Skipped)
	require.Len(t, resultRepo.created, 1)
	assert.Equal(t, leads[1].ID, resultRepo.created[0].LeadID)
}
