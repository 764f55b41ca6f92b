package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// timeFlag is a pflag.Value for an optional instant, always viewed in loc so
// calendar days follow the configured timezone. Date-only values mean
// midnight in loc.
type timeFlag struct {
	loc *time.Location
	t   *time.Time
}

var _ pflag.Value = (*timeFlag)(nil)

func (f *timeFlag) String() string {
	if f.t == nil {
		return ""
	}
	return f.t.Format(time.RFC3339)
}

func (f *timeFlag) Set(s string) error {
	loc := f.loc
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.In(loc)
		f.t = &t
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return fmt.Errorf("want RFC3339 or YYYY-MM-DD, got %q", s)
	}
	f.t = &t
	return nil
}

func (f *timeFlag) Type() string { return "time" }

// Value returns the parsed instant, or nil when the flag was not set.
func (f *timeFlag) Value() *time.Time { return f.t }
