package experiment

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/wordrecog/internal/store"
	"github.com/abhisek/wordrecog/internal/wordsets"
)

// SessionKey is the storage key of a participant's session.
func SessionKey(id string) string {
	return "experiment_" + id
}

// TrialsKey is the storage key of the trials for a 1-based step.
func TrialsKey(id string, step int) string {
	return fmt.Sprintf("data_%s_%d", id, step)
}

// Repo maps sessions and trial blocks onto a KVRepo as JSON.
type Repo struct {
	kv store.KVRepo
}

// NewRepo creates a Repo over kv.
func NewRepo(kv store.KVRepo) *Repo {
	return &Repo{kv: kv}
}

// LoadSession returns the stored session, or nil if none exists.
// Undecodable data yields a *CorruptDataError.
func (r *Repo) LoadSession(ctx context.Context, id string) (*Session, error) {
	key := SessionKey(id)
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if err := validateJSON(sessionSchema, raw); err != nil {
		return nil, &CorruptDataError{Key: key, Err: err}
	}
	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, &CorruptDataError{Key: key, Err: err}
	}
	if s.ParticipantID != id {
		return nil, &CorruptDataError{Key: key, Err: fmt.Errorf("belongs to participant %q", s.ParticipantID)}
	}
	for _, set := range s.SetOrder {
		if !wordsets.IsTarget(set) {
			return nil, &CorruptDataError{Key: key, Err: fmt.Errorf("%q is not a memorized set", set)}
		}
	}
	return &s, nil
}

// SaveSession overwrites the stored session.
func (r *Repo) SaveSession(ctx context.Context, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.kv.Set(ctx, SessionKey(s.ParticipantID), string(b)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// LoadTrials returns the trials stored for a step, or nil if none exist.
func (r *Repo) LoadTrials(ctx context.Context, id string, step int) ([]Trial, error) {
	key := TrialsKey(id, step)
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load trials: %w", err)
	}
	if !ok {
		return nil, nil
	}
	if err := validateJSON(trialsSchema, raw); err != nil {
		return nil, &CorruptDataError{Key: key, Err: err}
	}
	var trials []Trial
	if err := json.Unmarshal([]byte(raw), &trials); err != nil {
		return nil, &CorruptDataError{Key: key, Err: err}
	}
	return trials, nil
}

// SaveTrials writes a whole block in one value, replacing any earlier run
// of the same step.
func (r *Repo) SaveTrials(ctx context.Context, id string, step int, trials []Trial) error {
	if trials == nil {
		trials = []Trial{}
	}
	b, err := json.Marshal(trials)
	if err != nil {
		return fmt.Errorf("marshal trials: %w", err)
	}
	if err := r.kv.Set(ctx, TrialsKey(id, step), string(b)); err != nil {
		return fmt.Errorf("save trials: %w", err)
	}
	return nil
}

// Forget deletes every key belonging to a participant.
func (r *Repo) Forget(ctx context.Context, id string) error {
	keys := []string{SessionKey(id)}
	for step := 1; step <= Steps; step++ {
		keys = append(keys, TrialsKey(id, step))
	}
	if err := r.kv.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("forget %s: %w", id, err)
	}
	return nil
}
