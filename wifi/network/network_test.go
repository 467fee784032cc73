package network

import "testing"

func TestParse(t *testing.T) {
	got := Parse("home=secret;;shop=a=b; ;cafe")
	want := []AP{
		{SSID: "home", Pass: "secret"},
		{SSID: "shop", Pass: "a=b"},
		{SSID: "cafe"},
	}
	if len(got) != len(want) {
		t.Fatalf("Parse = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ap %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if aps := Parse(""); len(aps) != 0 {
		t.Fatalf("Parse(\"\") = %+v", aps)
	}
}
