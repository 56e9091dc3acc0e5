package zodiac

// Lunar New Year boundaries, 1912 through early 2025. Each interval is
// inclusive on both ends and runs from one new year's first day to the day
// before the next. Extend the table as new years are published; dates past
// the last row fall back to the year-cycle formula.
var lunarYears = []struct {
	start, end string
	animal     string
}{
	{"1912-02-18", "1913-02-05", "Rat"},
	{"1913-02-06", "1914-01-25", "Ox"},
	{"1914-01-26", "1915-02-13", "Tiger"},
	{"1915-02-14", "1916-02-02", "Rabbit"},
	{"1916-02-03", "1917-01-22", "Dragon"},
	{"1917-01-23", "1918-02-10", "Snake"},
	{"1918-02-11", "1919-01-31", "Horse"},
	{"1919-02-01", "1920-02-19", "Goat"},
	{"1920-02-20", "1921-02-07", "Monkey"},
	{"1921-02-08", "1922-01-27", "Rooster"},
	{"1922-01-28", "1923-02-15", "Dog"},
	{"1923-02-16", "1924-02-04", "Pig"},
	{"1924-02-05", "1925-01-24", "Rat"},
	{"1925-01-25", "1926-02-12", "Ox"},
	{"1926-02-13", "1927-02-01", "Tiger"},
	{"1927-02-02", "1928-01-22", "Rabbit"},
	{"1928-01-23", "1929-02-09", "Dragon"},
	{"1929-02-10", "1930-01-29", "Snake"},
	{"1930-01-30", "1931-02-16", "Horse"},
	{"1931-02-17", "1932-02-05", "Goat"},
	{"1932-02-06", "1933-01-25", "Monkey"},
	{"1933-01-26", "1934-02-13", "Rooster"},
	{"1934-02-14", "1935-02-03", "Dog"},
	{"1935-02-04", "1936-01-23", "Pig"},
	{"1936-01-24", "1937-02-10", "Rat"},
	{"1937-02-11", "1938-01-30", "Ox"},
	{"1938-01-31", "1939-02-18", "Tiger"},
	{"1939-02-19", "1940-02-07", "Rabbit"},
	{"1940-02-08", "1941-01-26", "Dragon"},
	{"1941-01-27", "1942-02-14", "Snake"},
	{"1942-02-15", "1943-02-04", "Horse"},
	{"1943-02-05", "1944-01-24", "Goat"},
	{"1944-01-25", "1945-02-12", "Monkey"},
	{"1945-02-13", "1946-02-01", "Rooster"},
	{"1946-02-02", "1947-01-21", "Dog"},
	{"1947-01-22", "1948-02-09", "Pig"},
	{"1948-02-10", "1949-01-28", "Rat"},
	{"1949-01-29", "1950-02-16", "Ox"},
	{"1950-02-17", "1951-02-05", "Tiger"},
	{"1951-02-06", "1952-01-26", "Rabbit"},
	{"1952-01-27", "1953-02-13", "Dragon"},
	{"1953-02-14", "1954-02-02", "Snake"},
	{"1954-02-03", "1955-01-23", "Horse"},
	{"1955-01-24", "1956-02-11", "Goat"},
	{"1956-02-12", "1957-01-30", "Monkey"},
	{"1957-01-31", "1958-02-17", "Rooster"},
	{"1958-02-18", "1959-02-07", "Dog"},
	{"1959-02-08", "1960-01-27", "Pig"},
	{"1960-01-28", "1961-02-14", "Rat"},
	{"1961-02-15", "1962-02-04", "Ox"},
	{"1962-02-05", "1963-01-24", "Tiger"},
	{"1963-01-25", "1964-02-12", "Rabbit"},
	{"1964-02-13", "1965-02-01", "Dragon"},
	{"1965-02-02", "1966-01-20", "Snake"},
	{"1966-01-21", "1967-02-08", "Horse"},
	{"1967-02-09", "1968-01-29", "Goat"},
	{"1968-01-30", "1969-02-16", "Monkey"},
	{"1969-02-17", "1970-02-05", "Rooster"},
	{"1970-02-06", "1971-01-26", "Dog"},
	{"1971-01-27", "1972-01-15", "Pig"},
	{"1972-01-16", "1973-02-02", "Rat"},
	{"1973-02-03", "1974-01-22", "Ox"},
	{"1974-01-23", "1975-02-10", "Tiger"},
	{"1975-02-11", "1976-01-30", "Rabbit"},
	{"1976-01-31", "1977-02-17", "Dragon"},
	{"1977-02-18", "1978-02-06", "Snake"},
	{"1978-02-07", "1979-01-27", "Horse"},
	{"1979-01-28", "1980-02-15", "Goat"},
	{"1980-02-16", "1981-02-04", "Monkey"},
	{"1981-02-05", "1982-01-24", "Rooster"},
	{"1982-01-25", "1983-02-12", "Dog"},
	{"1983-02-13", "1984-02-01", "Pig"},
	{"1984-02-02", "1985-02-19", "Rat"},
	{"1985-02-20", "1986-02-08", "Ox"},
	{"1986-02-09", "1987-01-28", "Tiger"},
	{"1987-01-29", "1988-02-16", "Rabbit"},
	{"1988-02-17", "1989-02-05", "Dragon"},
	{"1989-02-06", "1990-01-26", "Snake"},
	{"1990-01-27", "1991-02-14", "Horse"},
	{"1991-02-15", "1992-02-03", "Goat"},
	{"1992-02-04", "1993-01-22", "Monkey"},
	{"1993-01-23", "1994-02-09", "Rooster"},
	{"1994-02-10", "1995-01-30", "Dog"},
	{"1995-01-31", "1996-02-18", "Pig"},
	{"1996-02-19", "1997-02-06", "Rat"},
	{"1997-02-07", "1998-01-27", "Ox"},
	{"1998-01-28", "1999-02-15", "Tiger"},
	{"1999-02-16", "2000-02-04", "Rabbit"},
	{"2000-02-05", "2001-01-23", "Dragon"},
	{"2001-01-24", "2002-02-11", "Snake"},
	{"2002-02-12", "2003-01-31", "Horse"},
	{"2003-02-01", "2004-01-21", "Goat"},
	{"2004-01-22", "2005-02-08", "Monkey"},
	{"2005-02-09", "2006-01-28", "Rooster"},
	{"2006-01-29", "2007-02-17", "Dog"},
	{"2007-02-18", "2008-02-06", "Pig"},
	{"2008-02-07", "2009-01-25", "Rat"},
	{"2009-01-26", "2010-02-13", "Ox"},
	{"2010-02-14", "2011-02-02", "Tiger"},
	{"2011-02-03", "2012-01-22", "Rabbit"},
	{"2012-01-23", "2013-02-09", "Dragon"},
	{"2013-02-10", "2014-01-30", "Snake"},
	{"2014-01-31", "2015-02-18", "Horse"},
	{"2015-02-19", "2016-02-07", "Goat"},
	{"2016-02-08", "2017-01-27", "Monkey"},
	{"2017-01-28", "2018-02-15", "Rooster"},
	{"2018-02-16", "2019-02-04", "Dog"},
	{"2019-02-05", "2020-01-24", "Pig"},
	{"2020-01-25", "2021-02-11", "Rat"},
	{"2021-02-12", "2022-01-31", "Ox"},
	{"2022-02-01", "2023-01-21", "Tiger"},
	{"2023-01-22", "2024-02-09", "Rabbit"},
	{"2024-02-10", "2025-01-28", "Dragon"},
}
