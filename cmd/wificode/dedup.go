package main

import "wificode/internal/wifi"

// repeatFilter suppresses notifications for an identical consecutive scan
// result, so a QR code held in front of the camera reports once. A
// different credential resets the filter.
type repeatFilter struct {
	last    wifi.Credential
	hasLast bool
}

func (f *repeatFilter) ShouldNotify(c wifi.Credential) bool {
	if f.hasLast && c == f.last {
		return false
	}
	f.last = c
	f.hasLast = true
	return true
}
