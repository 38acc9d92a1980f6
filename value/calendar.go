package value

import "fmt"

// IsLeap reports whether the year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

const (
	microsPerSecond = int64(1000000)
	microsPerDay    = int64(86400) * microsPerSecond

	// Days between 0000-03-01 of the computational calendar and the Unix
	// epoch; see the civil-days conversion below.
	epochShiftDays = 719468
)

// daysFromCivil converts a calendar date to days since the Unix epoch.
// Standard era/year-of-era arithmetic; valid for all years we represent.
func daysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y / 400
	yoe := y - era*400
	mp := int64(month+9) % 12
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - epochShiftDays
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year, month, day int) {
	z := days + epochShiftDays
	era := z / 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
		y++
	}
	return int(y), int(m), int(d)
}

// AbsMicros returns the datetime as microseconds since the Unix epoch,
// ignoring fold. The full representable range fits in an int64.
func (v DateTime) AbsMicros() int64 {
	days := daysFromCivil(v.Year, v.Month, v.Day)
	secs := int64(v.Hour)*3600 + int64(v.Minute)*60 + int64(v.Second)
	return days*microsPerDay + secs*microsPerSecond + int64(v.Micro)
}

// DateTimeFromAbsMicros converts microseconds since the Unix epoch back to a
// naive datetime (fold 0). It fails with ErrOverflow outside years 1-9999.
func DateTimeFromAbsMicros(micros int64) (DateTime, error) {
	days := micros / microsPerDay
	rem := micros - days*microsPerDay
	if rem < 0 {
		days--
		rem += microsPerDay
	}
	year, month, day := civilFromDays(days)
	if year < MinYear || year > MaxYear {
		return DateTime{}, fmt.Errorf("%w: year %d", ErrOverflow, year)
	}
	secs := rem / microsPerSecond
	return DateTime{
		Year: year, Month: month, Day: day,
		Hour:   int(secs / 3600),
		Minute: int(secs / 60 % 60),
		Second: int(secs % 60),
		Micro:  int(rem % microsPerSecond),
	}, nil
}
