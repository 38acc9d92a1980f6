// Command chronoforge samples temporal values from a bounded strategy and
// prints them, one per line. It is a diagnostic front end for the library:
// the same seed always prints the same values.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/mrsinham/chronoforge"
	"github.com/mrsinham/chronoforge/engine"
	"github.com/mrsinham/chronoforge/tz"
	"github.com/mrsinham/chronoforge/value"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	kind := flag.String("kind", "datetime", "Value kind: date, time, datetime, delta")
	count := flag.Int("count", 10, "Number of values to sample")
	seed := flag.Int64("seed", 0, "Seed for reproducibility (auto-generated if not specified)")
	minStr := flag.String("min", "", "Lower bound (YYYY-MM-DD, HH:MM:SS, YYYY-MM-DDTHH:MM:SS or microseconds)")
	maxStr := flag.String("max", "", "Upper bound, same format as --min")
	zoneName := flag.String("zone", "", "IANA timezone to attach (datetime and time only)")
	allowImaginary := flag.Bool("allow-imaginary", true, "Keep datetimes skipped by DST gaps")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("chronoforge %s\n", version)
		return
	}
	if *count <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --count must be positive\n")
		os.Exit(1)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
		fmt.Fprintf(os.Stderr, "Using seed: %d\n", *seed)
	}

	zones := chronoforge.NoZones()
	if *zoneName != "" {
		loc, err := time.LoadLocation(*zoneName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown timezone %q: %v\n", *zoneName, err)
			os.Exit(1)
		}
		zones = chronoforge.JustZone(tz.NewLocation(loc))
	}

	if err := run(*kind, *count, *seed, *minStr, *maxStr, zones, *allowImaginary); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(kind string, count int, seed int64, minStr, maxStr string, zones chronoforge.ZoneStrategy, allowImaginary bool) error {
	switch kind {
	case "date":
		s, err := dateStrategy(minStr, maxStr)
		if err != nil {
			return err
		}
		return sample(count, seed, s)
	case "time":
		s, err := timeStrategy(minStr, maxStr, zones)
		if err != nil {
			return err
		}
		return sample(count, seed, s)
	case "datetime":
		s, err := datetimeStrategy(minStr, maxStr, zones, allowImaginary)
		if err != nil {
			return err
		}
		return sample(count, seed, s)
	case "delta":
		s, err := deltaStrategy(minStr, maxStr)
		if err != nil {
			return err
		}
		return sample(count, seed, s)
	default:
		return fmt.Errorf("unknown kind %q (want date, time, datetime or delta)", kind)
	}
}

// sample draws count values, each from an engine seeded off the base seed so
// individual rejections do not disturb the rest of the stream.
func sample[T any](count int, seed int64, s chronoforge.Strategy[T]) error {
	rejected := 0
	for i := 0; i < count; i++ {
		e := engine.NewRandom(uint64(seed), uint64(i))
		v, err := s.Draw(e)
		if errors.Is(err, engine.ErrInvalid) {
			rejected++
			continue
		}
		if err != nil {
			return err
		}
		fmt.Println(v)
	}
	if rejected > 0 {
		fmt.Fprintf(os.Stderr, "Rejected %d of %d draws\n", rejected, count)
	}
	return nil
}

func dateStrategy(minStr, maxStr string) (chronoforge.Strategy[value.Date], error) {
	min, max := value.MinDate, value.MaxDate
	var err error
	if minStr != "" {
		if min, err = parseDate(minStr); err != nil {
			return nil, err
		}
	}
	if maxStr != "" {
		if max, err = parseDate(maxStr); err != nil {
			return nil, err
		}
	}
	return chronoforge.Dates(min, max)
}

func timeStrategy(minStr, maxStr string, zones chronoforge.ZoneStrategy) (chronoforge.Strategy[tz.ZonedTime], error) {
	min, max := value.MinTime, value.MaxTime
	var err error
	if minStr != "" {
		if min, err = parseTime(minStr); err != nil {
			return nil, err
		}
	}
	if maxStr != "" {
		if max, err = parseTime(maxStr); err != nil {
			return nil, err
		}
	}
	return chronoforge.Times(min, max, zones)
}

func datetimeStrategy(minStr, maxStr string, zones chronoforge.ZoneStrategy, allowImaginary bool) (chronoforge.Strategy[tz.Zoned], error) {
	min, max := value.MinDateTime, value.MaxDateTime
	var err error
	if minStr != "" {
		if min, err = parseDateTime(minStr); err != nil {
			return nil, err
		}
	}
	if maxStr != "" {
		if max, err = parseDateTime(maxStr); err != nil {
			return nil, err
		}
	}
	return chronoforge.Datetimes(min, max, zones, allowImaginary)
}

func deltaStrategy(minStr, maxStr string) (chronoforge.Strategy[value.Delta], error) {
	min, max := value.MinDelta, value.MaxDelta
	if minStr != "" {
		var micros int64
		if _, err := fmt.Sscanf(minStr, "%d", &micros); err != nil {
			return nil, fmt.Errorf("parse duration %q: %w", minStr, err)
		}
		min = value.DeltaFromMicros(micros)
	}
	if maxStr != "" {
		var micros int64
		if _, err := fmt.Sscanf(maxStr, "%d", &micros); err != nil {
			return nil, fmt.Errorf("parse duration %q: %w", maxStr, err)
		}
		max = value.DeltaFromMicros(micros)
	}
	return chronoforge.Deltas(min, max)
}

func parseDate(s string) (value.Date, error) {
	var y, mo, d int
	if _, err := fmt.Sscanf(s, "%d-%d-%d", &y, &mo, &d); err != nil {
		return value.Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return value.NewDate(y, mo, d)
}

func parseTime(s string) (value.Time, error) {
	var h, mi, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &mi, &sec); err != nil {
		return value.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return value.NewTime(h, mi, sec, 0, 0)
}

func parseDateTime(s string) (value.DateTime, error) {
	var y, mo, d, h, mi, sec int
	if _, err := fmt.Sscanf(s, "%d-%d-%dT%d:%d:%d", &y, &mo, &d, &h, &mi, &sec); err != nil {
		return value.DateTime{}, fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return value.NewDateTime(y, mo, d, h, mi, sec, 0, 0)
}
