package wifi

import "testing"

func TestParseBasicForms(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Credential
	}{
		{
			name: "standard order",
			text: "WIFI:T:WPA;S:HomeNet;P:s3cret;;",
			want: Credential{SSID: "HomeNet", Password: "s3cret", Security: "WPA"},
		},
		{
			name: "ssid first",
			text: "WIFI:S:Net;T:WPA;P:pw;;",
			want: Credential{SSID: "Net", Password: "pw", Security: "WPA"},
		},
		{
			name: "password first",
			text: "WIFI:P:pw;S:Net;T:WEP;;",
			want: Credential{SSID: "Net", Password: "pw", Security: "WEP"},
		},
		{
			name: "single terminal semicolon",
			text: "WIFI:T:WPA;S:Net;P:pw;",
			want: Credential{SSID: "Net", Password: "pw", Security: "WPA"},
		},
		{
			name: "missing password field",
			text: "WIFI:T:WEP;S:Net;;",
			want: Credential{SSID: "Net", Password: "", Security: "WEP"},
		},
		{
			name: "hidden flag ignored",
			text: "WIFI:T:WPA;S:Net;P:pw;H:true;;",
			want: Credential{SSID: "Net", Password: "pw", Security: "WPA"},
		},
		{
			name: "open network",
			text: "WIFI:T:nopass;S:GuestNet;;",
			want: Credential{SSID: "GuestNet", Password: "", Security: "nopass"},
		},
		{
			name: "marker-like text inside ssid",
			text: "WIFI:S:NET:work;T:WPA;P:pw;;",
			want: Credential{SSID: "NET:work", Password: "pw", Security: "WPA"},
		},
		{
			name: "surrounding whitespace",
			text: "  WIFI:T:WPA;S:Net;P:pw;;\n",
			want: Credential{SSID: "Net", Password: "pw", Security: "WPA"},
		},
		{
			name: "unknown security passes through",
			text: "WIFI:T:SAE;S:Net;P:pw;;",
			want: Credential{SSID: "Net", Password: "pw", Security: "SAE"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.text)
			if !ok {
				t.Fatalf("Parse(%q) rejected", tc.text)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q)=%+v, want=%+v", tc.text, got, tc.want)
			}
		})
	}
}

func TestParseFieldOrderIndependence(t *testing.T) {
	a, okA := Parse("WIFI:S:Net;T:WPA;P:pw;;")
	b, okB := Parse("WIFI:T:WPA;S:Net;P:pw;;")
	if !okA || !okB {
		t.Fatal("both orderings must parse")
	}
	if a != b {
		t.Fatalf("field order changed result: %+v vs %+v", a, b)
	}
}

func TestParseSecurityCanonicalization(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"WIFI:T:WPA2;S:Net;P:pw;;", "WPA"},
		{"WIFI:T:wpa3;S:Net;P:pw;;", "WPA"},
		{"WIFI:T:WPA;S:Net;P:pw;;", "WPA"},
		{"WIFI:T:WEP;S:Net;P:pw;;", "WEP"},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.text)
		if !ok {
			t.Fatalf("Parse(%q) rejected", tc.text)
		}
		if got.Security != tc.want {
			t.Errorf("Parse(%q).Security=%q, want=%q", tc.text, got.Security, tc.want)
		}
	}
}

func TestParseNopassForcesEmptyPassword(t *testing.T) {
	got, ok := Parse("WIFI:T:nopass;S:GuestNet;P:shouldvanish;;")
	if !ok {
		t.Fatal("payload rejected")
	}
	if got.Password != "" {
		t.Fatalf("password=%q, want empty for nopass", got.Password)
	}
}

func TestParseMinimalNopassFallback(t *testing.T) {
	got, ok := Parse("WIFI:T:nopass;S:GuestNet;")
	if !ok {
		t.Fatal("minimal open-network form rejected")
	}
	want := Credential{SSID: "GuestNet", Password: "", Security: "nopass"}
	if got != want {
		t.Fatalf("got=%+v, want=%+v", got, want)
	}
}

func TestParseRejections(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"missing ssid field", "WIFI:T:WPA;P:pw;;"},
		{"empty ssid", "WIFI:T:WPA;S:;P:pw;;"},
		{"missing security field", "WIFI:S:Net;P:pw;;"},
		{"not a wifi string", "not a wifi string"},
		{"url payload", "https://example.com/login"},
		{"empty string", ""},
		{"bare prefix", "WIFI:"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := Parse(tc.text); ok {
				t.Fatalf("Parse(%q) accepted: %+v", tc.text, got)
			}
		})
	}
}

func TestParseEscapedSemicolonKeptVerbatim(t *testing.T) {
	got, ok := Parse(`WIFI:T:WPA;S:Cafe\;Net;P:pw;;`)
	if !ok {
		t.Fatal("payload rejected")
	}
	if got.SSID != `Cafe\;Net` {
		t.Fatalf("ssid=%q, want escape kept verbatim", got.SSID)
	}
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		"WIFI:;;;;;",
		"WIFI:T:",
		"WIFI:S:",
		"WIFI:T;S;P",
		"WIFI:T:WPA;S:Net;P:",
		string([]byte{0x00, 0xff, 0xfe}),
		`WIFI:T:WPA;S:Net;P:trailing\`,
	}
	for _, in := range inputs {
		// Parse must return a value in all cases; a panic fails the test.
		Parse(in)
	}
}
