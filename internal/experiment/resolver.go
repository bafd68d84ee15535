package experiment

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/abhisek/wordrecog/internal/wordsets"
)

// Resolver turns a participant id into a session, creating and persisting
// a new assignment the first time an id is seen.
type Resolver struct {
	repo   *Repo
	rng    *rand.Rand
	logger *zap.Logger
}

// NewResolver creates a Resolver. A nil logger is replaced with a no-op.
func NewResolver(repo *Repo, rng *rand.Rand, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{repo: repo, rng: rng, logger: logger}
}

// Resolve validates id and returns its session. created reports whether a
// new assignment was generated. Stored sessions are returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, id string) (s *Session, created bool, err error) {
	if err := ValidateParticipantID(id); err != nil {
		return nil, false, err
	}

	s, err = r.repo.LoadSession(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if s != nil {
		if s.CurrentStep >= Steps {
			return nil, false, fmt.Errorf("participant %s: %w", id, ErrSessionCompleted)
		}
		r.logger.Info("session resumed",
			zap.String("participant", id),
			zap.Int("step", s.StepNumber()))
		return s, false, nil
	}

	s, err = r.newSession(id)
	if err != nil {
		return nil, false, err
	}
	if err := r.repo.SaveSession(ctx, s); err != nil {
		return nil, false, err
	}
	r.logger.Info("session created",
		zap.String("participant", id),
		zap.Any("conditions", s.ConditionOrder),
		zap.Any("sets", s.SetOrder))
	return s, true, nil
}

func (r *Resolver) newSession(id string) (*Session, error) {
	conditions, err := ConditionOrderFor(id)
	if err != nil {
		return nil, err
	}
	sets := make([]wordsets.SetName, len(wordsets.Targets))
	copy(sets, wordsets.Targets)
	Shuffle(r.rng, sets)

	return &Session{
		ParticipantID:  id,
		ConditionOrder: conditions,
		SetOrder:       sets,
	}, nil
}
