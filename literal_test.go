package wktcrs

import "testing"

func TestQuote(t *testing.T) {
	cases := map[string]string{
		``:          `""`,
		`plain`:     `"plain"`,
		`a "b" c`:   `"a ""b"" c"`,
		`a ""b"" c`: `"a ""b"" c"`,
		`"`:         `""""`,
		`a,b]`:      `"a,b]"`,
	}
	for in, want := range cases {
		if got := quote(in); got != want {
			t.Fatalf("quote(%q) = %q, want %q", in, got, want)
		}
	}
	if s, ok := unquote(`"x"`); !ok || s != "x" {
		t.Fatalf("unquote failed: %q %v", s, ok)
	}
	if _, ok := unquote(`x`); ok {
		t.Fatalf("bare literal must not unquote")
	}
}

func TestIsDateTime(t *testing.T) {
	yes := []string{"2013", "2013-01", "2013-01-01", "2013-032", "2013-01-01T12", "2013-01-01T12:30Z", "1980-01-06T00:00:00.0Z", "2013-01-01T12:30:00+01:00", "-0500"}
	no := []string{"", "Jurassic", "13-01-01", "2013/01/01", "2013-01-01 12:00", "20130101T"}
	for _, s := range yes {
		if !IsDateTime(s) {
			t.Fatalf("IsDateTime(%q) = false", s)
		}
	}
	for _, s := range no {
		if IsDateTime(s) {
			t.Fatalf("IsDateTime(%q) = true", s)
		}
	}
}

func TestIsToken(t *testing.T) {
	for _, s := range []string{"north", "Cartesian", "ellipsoidal", "counter_clockwise", "north-east"} {
		if !isToken(s) {
			t.Fatalf("isToken(%q) = false", s)
		}
	}
	for _, s := range []string{"", `"north"`, "1north", "-north", "no rth"} {
		if isToken(s) {
			t.Fatalf("isToken(%q) = true", s)
		}
	}
}

func TestNumber(t *testing.T) {
	n, err := ParseNumber("0.0174532925199433")
	if err != nil {
		t.Fatal(err)
	}
	if n.Precision() != 16 || n.String() != "0.0174532925199433" {
		t.Fatalf("unexpected number %+v precision %d", n, n.Precision())
	}
	e, _ := ParseNumber("1.50e-3")
	if e.Precision() != 2 || !e.Equal(Num(0.0015)) {
		t.Fatalf("unexpected exponent handling %+v", e)
	}
	if Num(500000).String() != "500000" || Num(0.5).String() != "0.5" {
		t.Fatalf("Num shortest form broken")
	}
	if (Number{Value: 2}).String() != "2" {
		t.Fatalf("zero literal must fall back to value")
	}
	for _, bad := range []string{"abc", "Inf", "-inf", "NaN", "infinity", "0x1p3", "1_000", "1e", "."} {
		if _, err := ParseNumber(bad); err == nil {
			t.Fatalf("ParseNumber(%q): expected error", bad)
		}
	}
	for _, good := range []string{"+90", "-0.5", ".5", "5.", "1E10", "6378137.000"} {
		if n, err := ParseNumber(good); err != nil || n.String() != good {
			t.Fatalf("ParseNumber(%q) = %v, %v", good, n, err)
		}
	}
	if Code(4326).String() != "4326" || Text("4326").String() != `"4326"` {
		t.Fatalf("value forms broken")
	}
}
