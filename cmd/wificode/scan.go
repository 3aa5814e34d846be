package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gocv.io/x/gocv"

	"wificode/internal/config"
	"wificode/internal/decode"
	"wificode/internal/logger"
	"wificode/internal/pipeline"
	"wificode/internal/preprocess"
)

func runScan(args []string) int {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	camera := fs.Bool("camera", false, "scan live frames from the capture device")
	device := fs.Int("device", -1, "capture device index, overrides the configured one")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}
	if *device >= 0 {
		cfg.Camera.Device = *device
	}
	log := newLogger(cfg)

	opts := preprocess.Options{
		GaussianKernel: cfg.Preprocess.GaussianKernel,
		MorphKernel:    cfg.Preprocess.MorphKernel,
		Scales:         cfg.Preprocess.Scales,
	}
	scanner := pipeline.New(decode.DefaultBackends(), opts, log)

	if *camera {
		return runLiveScan(scanner, cfg, log)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: wificode scan [-config path] <image>")
		return 2
	}
	return runFileScan(scanner, fs.Arg(0))
}

func runFileScan(scanner *pipeline.Scanner, path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}

	mat, err := pipeline.LoadBytes(data)
	if err != nil {
		if errors.Is(err, pipeline.ErrUndecodableImage) {
			fmt.Fprintf(os.Stderr, "%s is not a decodable image\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", path, err)
		}
		return 1
	}
	defer mat.Close()

	result, found, err := scanner.ScanMat(mat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		return 1
	}
	if !found {
		fmt.Println("no Wi-Fi credential found")
		return 1
	}

	printResult(result)
	return 0
}

// runLiveScan drives the per-frame pipeline from a capture device until
// interrupted. Repeat notifications for the same credential are suppressed
// here, not in the pipeline.
func runLiveScan(scanner *pipeline.Scanner, cfg config.Config, log logger.Logger) int {
	capture, err := gocv.OpenVideoCapture(cfg.Camera.Device)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open capture device %d: %v\n", cfg.Camera.Device, err)
		return 1
	}
	defer capture.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	ticker := time.NewTicker(time.Duration(cfg.Camera.PollIntervalMS) * time.Millisecond)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	log.Info("LiveScan", "scanning started", map[string]interface{}{
		"device":      cfg.Camera.Device,
		"interval_ms": cfg.Camera.PollIntervalMS,
	})

	filter := &repeatFilter{}
	for {
		select {
		case s := <-sig:
			log.Info("LiveScan", "stopping", map[string]interface{}{"signal": s.String()})
			return 0
		case <-ticker.C:
			if ok := capture.Read(&frame); !ok || frame.Empty() {
				continue
			}

			result, found, err := scanner.ScanFrame(frame)
			if err != nil {
				log.Warning("LiveScan", "frame scan failed", map[string]interface{}{
					"reason": err.Error(),
				})
				continue
			}
			if !found {
				continue
			}
			if !filter.ShouldNotify(result.Credential) {
				continue
			}
			printResult(result)
		}
	}
}

func printResult(result pipeline.Result) {
	fmt.Printf("SSID:     %s\n", result.Credential.SSID)
	fmt.Printf("Password: %s\n", result.Credential.Password)
	fmt.Printf("Security: %s\n", result.Credential.Security)
	fmt.Printf("(decoded by %s on %s variant)\n", result.Backend, result.Variant)
}
