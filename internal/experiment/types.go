package experiment

import (
	"math"
	"time"

	"github.com/abhisek/wordrecog/internal/wordsets"
)

// Session is the persisted assignment and progress of one participant.
type Session struct {
	ParticipantID  string             `json:"participantId"`
	ConditionOrder []Condition        `json:"conditionOrder"`
	SetOrder       []wordsets.SetName `json:"setOrder"`
	CurrentStep    int                `json:"currentStep"`
	Completed      bool               `json:"completed"`
}

// Condition returns the condition for the current step.
func (s *Session) Condition() Condition {
	if s.CurrentStep >= len(s.ConditionOrder) {
		return ""
	}
	return s.ConditionOrder[s.CurrentStep]
}

// TargetSet returns the word set memorized in the current step.
func (s *Session) TargetSet() wordsets.SetName {
	if s.CurrentStep >= len(s.SetOrder) {
		return ""
	}
	return s.SetOrder[s.CurrentStep]
}

// StepNumber is the 1-based number of the current step.
func (s *Session) StepNumber() int {
	return s.CurrentStep + 1
}

// Response is the participant's answer to one trial.
type Response string

const (
	ResponseYes     Response = "yes"
	ResponseNo      Response = "no"
	ResponseTimeout Response = "timeout"
)

// IsCorrect applies the scoring rule: "yes" to a target or "no" to a
// distractor. A timeout is never correct.
func IsCorrect(r Response, isTarget bool) bool {
	switch r {
	case ResponseYes:
		return isTarget
	case ResponseNo:
		return !isTarget
	default:
		return false
	}
}

// Trial is one recorded test question.
type Trial struct {
	ParticipantID  string           `json:"participantId"`
	Condition      Condition        `json:"condition"`
	Set            wordsets.SetName `json:"set"`
	Step           int              `json:"step"`
	Word           string           `json:"word"`
	IsTarget       bool             `json:"isTarget"`
	Response       Response         `json:"response"`
	IsCorrect      bool             `json:"isCorrect"`
	ResponseTimeMs int64            `json:"responseTime"`
	IsTimeout      bool             `json:"isTimeout"`
	Timestamp      time.Time        `json:"timestamp"`
	BlockID        string           `json:"blockId"`
}

// PoolItem is one word of a test block.
type PoolItem struct {
	Word     string
	IsTarget bool
}

// Summary aggregates the trials of a block.
type Summary struct {
	Total             int
	Correct           int
	Hits              int // "yes" to a target
	Misses            int // "no" to a target
	FalseAlarms       int // "yes" to a distractor
	CorrectRejections int // "no" to a distractor
	Timeouts          int
}

// Summarize tallies trials.
func Summarize(trials []Trial) Summary {
	var s Summary
	for _, t := range trials {
		s.Total++
		if t.IsCorrect {
			s.Correct++
		}
		switch {
		case t.IsTimeout:
			s.Timeouts++
		case t.Response == ResponseYes && t.IsTarget:
			s.Hits++
		case t.Response == ResponseNo && t.IsTarget:
			s.Misses++
		case t.Response == ResponseYes:
			s.FalseAlarms++
		default:
			s.CorrectRejections++
		}
	}
	return s
}

// AccuracyPercent is round(correct / total * 100).
func (s Summary) AccuracyPercent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
}
