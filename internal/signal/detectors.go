package signal

import "strings"

// Normalize collapses zero-width non-joiners into spaces and lower-cases
// the text so vocab entries match loosely-typed user input.
func Normalize(text string) string {
	return strings.ToLower(strings.ReplaceAll(text, "‌", " "))
}

// HasAny reports whether any vocab entry is a literal substring of the
// normalized text. Every detector below is pure and order-independent.
func HasAny(text string, vocab Vocab) bool {
	t := Normalize(text)
	for _, v := range vocab {
		if strings.Contains(t, strings.ToLower(v)) {
			return true
		}
	}
	return false
}

// IsManiaLike reports manic or hypomanic phrasing
func IsManiaLike(text string) bool {
	return HasAny(text, Manic)
}

// IsGriefDominant reports grief language without manic phrasing; active
// grief suppresses the depression-vs-bipolar differential.
func IsGriefDominant(text string) bool {
	return HasAny(text, Grief) && !IsManiaLike(text)
}

// HasADHDSignal reports an explicit ADHD mention, or attention complaints
// combined with childhood onset.
func HasADHDSignal(text string) bool {
	return HasAny(text, ADHD) ||
		(HasAny(text, attentionCues) && HasAny(text, ChildhoodOnset))
}

// IsEmergency reports whether the message contains a crisis phrase
func IsEmergency(text string) bool {
	return HasAny(text, EmergencyKeywords)
}
