package zodiac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_Horoscope_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"last day of Sagittarius", date(1995, time.December, 21), "Sagittarius"},
		{"first day of Capricorn", date(1995, time.December, 22), "Capricorn"},
		{"last day of Capricorn", date(1996, time.January, 19), "Capricorn"},
		{"first day of Aquarius", date(1996, time.January, 20), "Aquarius"},
		{"leap day is Pisces", date(2000, time.February, 29), "Pisces"},
		{"mid Aries", date(1990, time.April, 1), "Aries"},
		{"last day of Libra", date(1990, time.October, 23), "Libra"},
		{"first day of Scorpio", date(1990, time.October, 24), "Scorpio"},
		{"new year's day", date(2001, time.January, 1), "Capricorn"},
		{"new year's eve", date(2001, time.December, 31), "Capricorn"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Horoscope(tc.in))
		})
	}
}

func Test_Horoscope_TotalOverFullYear(t *testing.T) {
	// Every day of a leap year must land on one of the 12 signs.
	valid := map[string]bool{}
	for _, h := range horoscopes {
		valid[h.name] = true
	}
	valid["Capricorn"] = true

	d := date(2000, time.January, 1)
	for d.Year() == 2000 {
		assert.True(t, valid[Horoscope(d)], "no sign for %s", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
}

func Test_Animal_LunarYearBoundaries(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"first days of the 2008 Rat year", date(2008, time.February, 10), "Rat"},
		{"exact start of the 2008 Rat year", date(2008, time.February, 7), "Rat"},
		{"last day of the prior Pig year", date(2008, time.February, 6), "Pig"},
		{"2024 Dragon year", date(2024, time.February, 10), "Dragon"},
		{"gregorian new year stays in prior lunar year", date(2024, time.January, 1), "Rabbit"},
		{"first table row", date(1912, time.February, 18), "Rat"},
		{"last table row", date(2025, time.January, 28), "Dragon"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Animal(tc.in))
		})
	}
}

func Test_Animal_FallbackOutsideTable(t *testing.T) {
	// Dates beyond the table resolve via the year cycle anchored at 2008.
	assert.Equal(t, "Snake", Animal(date(2025, time.June, 1)))
	assert.Equal(t, "Rat", Animal(date(1900, time.June, 1)))

	// The cycle must normalize negative remainders.
	assert.Equal(t, "Monkey", Animal(date(1908, time.January, 1)))
}

func Test_Animal_FallbackAgreesWithTable(t *testing.T) {
	// For a year well inside a lunar year (mid-year, away from the January,
	// February boundary) the table lookup and the cycle formula must agree.
	for year := 1913; year <= 2024; year++ {
		d := date(year, time.June, 15)
		idx := (year - ratYear) % 12
		if idx < 0 {
			idx += 12
		}
		assert.Equal(t, animals[idx], Animal(d), "year %d", year)
	}
}

func Test_Resolve_Idempotent(t *testing.T) {
	d := date(1993, time.August, 12)

	first := Resolve(d)
	second := Resolve(d)

	assert.Equal(t, first, second)
	assert.Equal(t, "Leo", first.Horoscope)
	assert.Equal(t, "Rooster", first.Animal)
}

func Test_Resolve_IgnoresTimeOfDayAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	late := time.Date(1993, time.August, 12, 23, 59, 0, 0, time.UTC)
	zoned := time.Date(1993, time.August, 13, 6, 59, 0, 0, loc)

	assert.Equal(t, Resolve(late), Resolve(zoned))
}
