// Command wificode recovers Wi-Fi credentials from QR code images and
// generates Wi-Fi QR codes.
//
// Usage:
//
//	wificode scan <image>            decode a credential from an image file
//	wificode scan -camera            scan live frames from a capture device
//	wificode generate -ssid ... -out qr.png
package main

import (
	"fmt"
	"os"

	"wificode/internal/config"
	"wificode/internal/logger"
)

const (
	appName    = "wificode"
	appVersion = "1.0.0"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 2
	}

	switch args[0] {
	case "scan":
		return runScan(args[1:])
	case "generate":
		return runGenerate(args[1:])
	case "version":
		fmt.Printf("%s %s\n", appName, appVersion)
		return 0
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `%s: Wi-Fi QR credential tool

Commands:
  scan <image>        decode a Wi-Fi credential from an image file
  scan -camera        scan live frames from the configured capture device
  generate            render a Wi-Fi credential as a QR code PNG
  version             print the version

Each command accepts -config <path> to load a YAML configuration file.
`, appName)
}

// loadConfig resolves the effective configuration: defaults, optionally
// overridden by a file.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))
}
