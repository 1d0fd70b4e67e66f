package crypto

import (
	"unicode"
	"unicode/utf8"
)

// Band is the display bucket for a strength score.
type Band int

const (
	BandWeak Band = iota
	BandMedium
	BandStrong
)

var bandNames = [...]string{"weak", "medium", "strong"}

var bandColors = [...]string{"#d63031", "#fdcb6e", "#00b894"}

func (b Band) String() string {
	if b < BandWeak || b > BandStrong {
		return "unknown"
	}
	return bandNames[b]
}

// Color returns the hex display color of the band.
func (b Band) Color() string {
	if b < BandWeak || b > BandStrong {
		return bandColors[BandWeak]
	}
	return bandColors[b]
}

// Score estimates password strength on a 0-100 scale. Each rule is checked
// independently against the whole password and the sum is capped at 100.
// Length is measured in runes.
func Score(password string) int {
	score := 0

	length := utf8.RuneCountInString(password)
	if length >= 8 {
		score += 20
	}
	if length >= 12 {
		score += 20
	}
	if length >= 16 {
		score += 10
	}

	var hasLower, hasUpper, hasDigit, hasOther bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasOther = true
		}
	}

	if hasLower {
		score += 10
	}
	if hasUpper {
		score += 10
	}
	if hasDigit {
		score += 15
	}
	if hasOther {
		score += 15
	}

	return min(score, 100)
}

// BandFor maps a score to its display band.
func BandFor(score int) Band {
	switch {
	case score < 40:
		return BandWeak
	case score < 75:
		return BandMedium
	default:
		return BandStrong
	}
}
