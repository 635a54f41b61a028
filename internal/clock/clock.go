package clock

import (
	"fmt"
	"strings"
	"time"
	// Shop PCs often lack a zoneinfo database.
	_ "time/tzdata"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/config"
	"go.uber.org/fx"
)

// DefaultTimezone is the zone the shop keeps its books in.
const DefaultTimezone = "Asia/Kolkata"

// Clock is the time source services stamp rows with. Now is reported in the
// business time zone so calendar dates taken from it match the shop's day.
type Clock interface {
	Now() time.Time
}

type realClock struct {
	loc *time.Location
}

func (c realClock) Now() time.Time { return time.Now().In(c.loc) }

// Real returns the wall clock in UTC.
func Real() Clock { return realClock{loc: time.UTC} }

// In returns the wall clock reported in loc.
func In(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return realClock{loc: loc}
}

// LoadLocation resolves a configured zone name, DefaultTimezone when blank.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid app.timezone %q: %w", name, err)
	}
	return loc, nil
}

// Provide builds the wall clock for the configured business time zone.
func Provide(cfg config.Config) (Clock, error) {
	loc, err := LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	return In(loc), nil
}

var Module = fx.Module("clock",
	fx.Provide(Provide),
)
