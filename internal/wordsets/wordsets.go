// Package wordsets holds the fixed stimulus lists used by the recognition
// experiment and the pairing between target and distractor sets.
package wordsets

import "fmt"

// SetName identifies one of the six predefined word sets.
type SetName string

const (
	Set1A SetName = "Set1A"
	Set2A SetName = "Set2A"
	Set3A SetName = "Set3A"
	Set1B SetName = "Set1B"
	Set2B SetName = "Set2B"
	Set3B SetName = "Set3B"
)

// SetSize is the number of words in every set.
const SetSize = 15

// Targets lists the memorized sets in canonical order.
var Targets = []SetName{Set1A, Set2A, Set3A}

var sets = map[SetName][]string{
	Set1A: {"いす", "そら", "かご", "とり", "みち", "はな", "さら", "いぬ", "かべ", "つえ", "うま", "めし", "やま", "うた", "みず"},
	Set2A: {"つめ", "かぜ", "かさ", "かに", "うち", "つき", "なべ", "むし", "いけ", "ほん", "たこ", "みそ", "さと", "はし", "しる"},
	Set3A: {"ゆか", "むら", "かぎ", "うし", "そと", "ほし", "とぶ", "たか", "まち", "はり", "くり", "すし", "はま", "つむ", "なみ"},
	Set1B: {"たな", "くも", "はこ", "ねこ", "もり", "くさ", "かめ", "さる", "にわ", "ふで", "ふね", "まめ", "うみ", "まい", "しお"},
	Set2B: {"ふろ", "ゆき", "ふた", "かめ", "みせ", "あめ", "てら", "へび", "もと", "かみ", "あし", "さけ", "かわ", "たつ", "あき"},
	Set3B: {"はし", "やみ", "ぬの", "かも", "しま", "かげ", "つな", "くま", "はら", "のり", "ゆめ", "いも", "みな", "かく", "たね"},
}

// distractors pairs each target set with the foils shown alongside it.
var distractors = map[SetName]SetName{
	Set1A: Set1B,
	Set2A: Set2B,
	Set3A: Set3B,
}

// Words returns a copy of the named set in presentation order.
func Words(name SetName) ([]string, error) {
	w, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("unknown word set %q", name)
	}
	out := make([]string, len(w))
	copy(out, w)
	return out, nil
}

// DistractorFor returns the distractor set paired with a target set.
func DistractorFor(target SetName) (SetName, error) {
	d, ok := distractors[target]
	if !ok {
		return "", fmt.Errorf("%q is not a target set", target)
	}
	return d, nil
}

// IsTarget reports whether name is one of the memorized sets.
func IsTarget(name SetName) bool {
	_, ok := distractors[name]
	return ok
}
