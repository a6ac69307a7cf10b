package progress

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name                       string
		offset, document, viewport float64
		want                       float64
	}{
		{"halfway", 1000, 3000, 1000, 50},
		{"top", 0, 3000, 1000, 0},
		{"bottom", 2000, 3000, 1000, 100},
		{"document fits viewport", 0, 1000, 1000, 0},
		{"document shorter than viewport", 10, 500, 1000, 0},
		{"overscroll", 2500, 3000, 1000, 100},
		{"negative offset", -40, 3000, 1000, 0},
		{"nan offset", math.NaN(), 3000, 1000, 0},
		{"infinite document", 10, math.Inf(1), 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.offset, tt.document, tt.viewport); got != tt.want {
				t.Errorf("Percent(%v, %v, %v) = %v, want %v", tt.offset, tt.document, tt.viewport, got, tt.want)
			}
		})
	}
}

func TestPercentBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		offset := rapid.Float64().Draw(t, "offset")
		document := rapid.Float64().Draw(t, "document")
		viewport := rapid.Float64().Draw(t, "viewport")

		p := Percent(offset, document, viewport)
		if math.IsNaN(p) || p < 0 || p > 100 {
			t.Fatalf("Percent(%v, %v, %v) = %v", offset, document, viewport, p)
		}
		if w := Width(p); strings.Contains(w, "NaN") || strings.Contains(w, "Inf") {
			t.Fatalf("Width(%v) = %q", p, w)
		}
	})
}

func TestWidth(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50, "50%"},
		{0, "0%"},
		{12.5, "12.5%"},
		{150, "100%"},
		{math.NaN(), "0%"},
	}
	for _, tt := range tests {
		if got := Width(tt.in); got != tt.want {
			t.Errorf("Width(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrackerFollowsFeed(t *testing.T) {
	var feed Feed
	var tr Tracker

	if tr.Percent() != 0 {
		t.Fatalf("initial percent = %v, want 0", tr.Percent())
	}

	detach := tr.Attach(&feed)
	feed.Publish(Event{Offset: 1000, DocumentHeight: 3000, ViewportHeight: 1000})
	if got := tr.Percent(); got != 50 {
		t.Errorf("percent = %v, want 50", got)
	}

	detach()
	detach()
	if n := feed.Listeners(); n != 0 {
		t.Errorf("listeners after detach = %d, want 0", n)
	}
	feed.Publish(Event{Offset: 2000, DocumentHeight: 3000, ViewportHeight: 1000})
	if got := tr.Percent(); got != 50 {
		t.Errorf("detached tracker moved to %v", got)
	}
}

func TestFeedOrder(t *testing.T) {
	var feed Feed
	var got []string
	cancelA := feed.Subscribe(func(Event) { got = append(got, "a") })
	feed.Subscribe(func(Event) { got = append(got, "b") })
	feed.Subscribe(func(Event) { got = append(got, "c") })

	cancelA()
	feed.Publish(Event{})
	if strings.Join(got, "") != "bc" {
		t.Errorf("delivery order = %v, want [b c]", got)
	}
}

func TestTrackersAreIndependent(t *testing.T) {
	var a, b Feed
	var ta, tb Tracker
	defer ta.Attach(&a)()
	defer tb.Attach(&b)()

	a.Publish(Event{Offset: 500, DocumentHeight: 2000, ViewportHeight: 1000})
	if ta.Percent() != 50 || tb.Percent() != 0 {
		t.Errorf("percent = %v / %v, want 50 / 0", ta.Percent(), tb.Percent())
	}
}

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "fundamentals")
	r.Finish()

	want := "Building site from 2 topics\n[1/2] fundamentals\nSite build complete\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
