package main

import (
	"testing"

	"wificode/internal/wifi"
)

func TestRepeatFilterSuppressesConsecutiveDuplicates(t *testing.T) {
	home := wifi.Credential{SSID: "HomeNet", Password: "pw", Security: "WPA"}
	guest := wifi.Credential{SSID: "GuestNet", Security: "nopass"}

	filter := &repeatFilter{}

	if !filter.ShouldNotify(home) {
		t.Fatal("first result must notify")
	}
	if filter.ShouldNotify(home) {
		t.Fatal("identical consecutive result must be suppressed")
	}
	if !filter.ShouldNotify(guest) {
		t.Fatal("different credential must notify")
	}
	if !filter.ShouldNotify(home) {
		t.Fatal("earlier credential seen again after a different one must notify")
	}
}
