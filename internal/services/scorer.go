package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"leadpilot/lead-intent-api/internal/models"
	"leadpilot/lead-intent-api/internal/repositories"
)

type ScoringService interface {
	ScoreOffer(ctx context.Context, ownerID, offerID uuid.UUID) (*models.ScoreSummary, error)
}

type scoringService struct {
	offerRepo  repositories.OfferRepository
	leadRepo   repositories.LeadRepository
	resultRepo repositories.ResultRepository
	classifier ClassifierService
}

func NewScoringService(
	offerRepo repositories.OfferRepository,
	leadRepo repositories.LeadRepository,
	resultRepo repositories.ResultRepository,
	classifier ClassifierService,
) ScoringService {
	return &scoringService{
		offerRepo:  offerRepo,
		leadRepo:   leadRepo,
		resultRepo: resultRepo,
		classifier: classifier,
	}
}

// ScoreOffer implements ScoringService. It scores every unscored
// (lead, offer) pair for the caller, one at a time. A classifier failure
// on one pair never aborts the batch: the lead goes on the skipped list
// and the run continues. The summary always reports exactly what succeeded
// and what did not.
func (s *scoringService) ScoreOffer(ctx context.Context, ownerID, offerID uuid.UUID) (*models.ScoreSummary, error) {
	offer, err := s.offerRepo.FindByID(offerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to resolve offer: %w", err)
	}

	leads, err := s.leadRepo.FindUnscoredForOffer(ownerID, offer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to select leads: %w", err)
	}
	if len(leads) == 0 {
		return nil, ErrNothingToScore
	}

	summary := &models.ScoreSummary{
		Skipped: []string{},
		Results: []models.Result{},
	}

	for i := range leads {
		lead := leads[i]

		// The eligible set is a snapshot; a concurrent run may have
		// scored this pair since. Skip silently if a result appeared.
		exists, err := s.resultRepo.Exists(lead.ID, offer.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check existing result: %w", err)
		}
		if exists {
			continue
		}

		verdict, err := s.classifier.ClassifyLead(ctx, offer, &lead)
		if err != nil {
			log.Printf("⚠️  Classifier failed for lead %s: %v\n", lead.Name, err)
			summary.Skipped = append(summary.Skipped, lead.Name)
			continue
		}

		result := &models.Result{
			LeadID:     lead.ID,
			OfferID:    offer.ID,
			AIIntent:   verdict.Intent,
			FinalScore: verdict.Score,
			Reasoning:  verdict.Reasoning,
		}

		if err := s.resultRepo.Create(result); err != nil {
			if errors.Is(err, repositories.ErrDuplicatePair) {
				// A concurrent run won the race; the pair is scored.
				continue
			}
			return nil, fmt.Errorf("failed to persist result: %w", err)
		}

		result.Lead = lead
		result.Offer = *offer
		summary.Results = append(summary.Results, *result)
	}

	summary.Processed = len(summary.Results)
	return summary, nil
}
