package main

import (
	"flag"
	"fmt"
	"os"

	"wificode/internal/qrgen"
)

func runGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	ssid := fs.String("ssid", "", "network SSID (required)")
	password := fs.String("password", "", "network password")
	security := fs.String("security", "WPA", "security type: WPA, WEP or nopass")
	out := fs.String("out", "wifi-qr.png", "output PNG path")
	fs.Parse(args)

	if *ssid == "" {
		fmt.Fprintln(os.Stderr, "usage: wificode generate -ssid <name> [-password pw] [-security WPA|WEP|nopass] [-out qr.png]")
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	data, err := qrgen.WifiPNG(*ssid, *password, *security, cfg.Generate.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate QR code: %v\n", err)
		return 1
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		return 1
	}

	fmt.Printf("wrote %s\n", *out)
	return 0
}
