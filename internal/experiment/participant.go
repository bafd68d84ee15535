package experiment

import (
	"regexp"
	"strconv"
)

// Condition is an experimental manipulation label.
type Condition string

const (
	ConditionRM Condition = "RM"
	ConditionLV Condition = "LV"
	ConditionCO Condition = "CO"
)

// Steps is the number of memorize/test blocks per participant.
const Steps = 3

var participantPattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)

// conditionOrders enumerates every ordering of the three conditions. The
// index is derived from the participant number, so the order is fixed.
var conditionOrders = [6][Steps]Condition{
	{ConditionRM, ConditionLV, ConditionCO},
	{ConditionRM, ConditionCO, ConditionLV},
	{ConditionLV, ConditionRM, ConditionCO},
	{ConditionLV, ConditionCO, ConditionRM},
	{ConditionCO, ConditionRM, ConditionLV},
	{ConditionCO, ConditionLV, ConditionRM},
}

// ValidateParticipantID checks the A001 format. Input is not trimmed.
func ValidateParticipantID(id string) error {
	if !participantPattern.MatchString(id) {
		return &ValidationError{Input: id}
	}
	return nil
}

// ConditionOrderFor returns the counterbalanced order for id:
// conditionOrders[(n-1) mod 6] where n is the numeric suffix.
func ConditionOrderFor(id string) ([]Condition, error) {
	if err := ValidateParticipantID(id); err != nil {
		return nil, err
	}
	n, _ := strconv.Atoi(id[1:])
	idx := ((n-1)%len(conditionOrders) + len(conditionOrders)) % len(conditionOrders)

	order := conditionOrders[idx]
	out := make([]Condition, len(order))
	copy(out, order[:])
	return out, nil
}
