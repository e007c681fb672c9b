package timezone_test

import (
	"testing"
	"time"

	"campushub/shared/constant"
	"campushub/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	if now.IsZero() {
		t.Error("expected Now to return a non-zero time")
	}

	if now.Location() != timezone.GetLocation() {
		t.Errorf("expected Now to use the application location, got %s", now.Location())
	}
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC)
	converted := timezone.ToAppTime(utc)

	if !converted.Equal(utc) {
		t.Error("converting timezones must not change the instant")
	}
}

func TestFormatDisplayDate(t *testing.T) {
	moment := time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC)

	got := timezone.Format(moment, constant.DisplayDateFormat)
	if got != "March 15, 2023" {
		t.Errorf("expected display date 'March 15, 2023', got %q", got)
	}
}
