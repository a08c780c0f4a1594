package wiki

import "testing"

func TestFormatDurationHMS(t *testing.T) {
	tests := map[int64]string{
		3661000: "1h1m1s",
		0:       "",
		45000:   "45s",
		60000:   "1m",
		3600000: "1h",
		3630000: "1h30s",
		5430999: "1h30m30s",
		999:     "",
		-5000:   "",
	}

	for in, want := range tests {
		if got := FormatDurationHMS(in); got != want {
			t.Fatalf("FormatDurationHMS(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := map[int64]string{
		1500: "1.5s",
		3000: "3s",
		0:    "0s",
		250:  "0.25s",
	}

	for in, want := range tests {
		if got := FormatSeconds(in); got != want {
			t.Fatalf("FormatSeconds(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatPercentDelta(t *testing.T) {
	tests := map[float64]string{
		1.25:  "+25%",
		0.9:   "-10%",
		1.0:   "+0%",
		2.0:   "+100%",
		0.5:   "-50%",
		1.004: "+0%",
		0.996: "+0%",
		0:     "-100%",
	}

	for in, want := range tests {
		if got := FormatPercentDelta(in); got != want {
			t.Fatalf("FormatPercentDelta(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestJoinWithCommaSpace(t *testing.T) {
	if got := JoinWithCommaSpace([]string{"a", "b", "c"}); got != "a, b, c" {
		t.Fatalf("JoinWithCommaSpace() = %q", got)
	}
	if got := JoinWithCommaSpace([]string{"solo"}); got != "solo" {
		t.Fatalf("JoinWithCommaSpace(single) = %q", got)
	}
	if got := JoinWithCommaSpace(nil); got != "" {
		t.Fatalf("JoinWithCommaSpace(nil) = %q", got)
	}
}
