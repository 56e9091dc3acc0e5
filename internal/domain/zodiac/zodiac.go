package zodiac

import "time"

// Sign is the pair of birth-date derived labels shown on a profile.
type Sign struct {
	Horoscope string `json:"horoscope"`
	Animal    string `json:"zodiac"`
}

// Resolve maps a calendar date (UTC) to its Western horoscope sign and
// Chinese zodiac animal. Pure and total: the same input always yields the
// same output and no input fails.
func Resolve(t time.Time) Sign {
	return Sign{
		Horoscope: Horoscope(t),
		Animal:    Animal(t),
	}
}

// Inclusive on both ends. Capricorn is handled separately because it is the
// only sign wrapping the year boundary.
var horoscopes = []struct {
	name       string
	startMonth time.Month
	startDay   int
	endMonth   time.Month
	endDay     int
}{
	{"Aquarius", time.January, 20, time.February, 18},
	{"Pisces", time.February, 19, time.March, 20},
	{"Aries", time.March, 21, time.April, 19},
	{"Taurus", time.April, 20, time.May, 20},
	{"Gemini", time.May, 21, time.June, 21},
	{"Cancer", time.June, 22, time.July, 22},
	{"Leo", time.July, 23, time.August, 22},
	{"Virgo", time.August, 23, time.September, 22},
	{"Libra", time.September, 23, time.October, 23},
	{"Scorpio", time.October, 24, time.November, 21},
	{"Sagittarius", time.November, 22, time.December, 21},
}

// Horoscope returns the Western (tropical) sign for the given date.
// Comparison is on (month, day) pairs, never day-of-year, so leap years
// cannot shift a boundary.
func Horoscope(t time.Time) string {
	m, d := t.UTC().Month(), t.UTC().Day()

	for _, h := range horoscopes {
		if (m == h.startMonth && d >= h.startDay) ||
			(m == h.endMonth && d <= h.endDay) ||
			(m > h.startMonth && m < h.endMonth) {
			return h.name
		}
	}

	// Dec 22 .. Jan 19
	return "Capricorn"
}

// The 12-animal cycle in fixed order. "Pig" is the canonical label; older
// almanac tables call the same animal "Boar".
var animals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

// ratYear is a known Rat year anchoring the cyclical fallback.
const ratYear = 2008

// Animal returns the Chinese zodiac animal for the given date. Dates inside
// the lunar-year table (1912-02-18 .. 2025-01-28) are resolved exactly
// against Lunar New Year boundaries; anything outside falls back to the
// year-cycle formula.
func Animal(t time.Time) string {
	key := t.UTC().Format("2006-01-02")

	for _, row := range lunarYears {
		if key >= row.start && key <= row.end {
			return row.animal
		}
	}

	y := t.UTC().Year()
	idx := (y - ratYear) % 12
	if idx < 0 {
		idx += 12
	}
	return animals[idx]
}
