// Command objrt-inspect is a CLI for polling an objrt-embedding
// service's debug endpoint and printing object-runtime diagnostics.
//
// The target service is expected to expose:
//   - GET /debug/objrt/snapshot  — JSON payload with runtime counters.
//   - GET /debug/pprof/{heap,goroutine} — standard pprof handlers.
//
// The snapshot is decoded into map[string]any so the CLI never skews
// against the library's own field set.
//
// Build-time flag: `-ldflags "-X main.version=vX.Y.Z"`.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var version = "dev"

type options struct {
	target           string
	watch            bool
	interval         time.Duration
	json             bool
	heapProfile      string
	goroutineProfile string
	version          bool
}

func parseFlags() *options {
	o := &options{}
	flag.StringVar(&o.target, "target", "http://localhost:6060", "base URL of the objrt-embedding service")
	flag.BoolVar(&o.watch, "watch", false, "poll the snapshot endpoint repeatedly")
	flag.DurationVar(&o.interval, "interval", 2*time.Second, "polling interval in watch mode")
	flag.BoolVar(&o.json, "json", false, "print the raw JSON snapshot instead of a formatted summary")
	flag.StringVar(&o.heapProfile, "heap-profile", "", "download a heap pprof profile to this path and exit")
	flag.StringVar(&o.goroutineProfile, "goroutine-profile", "", "download a goroutine pprof profile to this path and exit")
	flag.BoolVar(&o.version, "version", false, "print the CLI version and exit")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()

	if opts.version {
		fmt.Println(version)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if opts.heapProfile != "" {
		if err := downloadProfile(ctx, opts.target, "heap", opts.heapProfile); err != nil {
			fatal(err)
		}
		return
	}
	if opts.goroutineProfile != "" {
		if err := downloadProfile(ctx, opts.target, "goroutine", opts.goroutineProfile); err != nil {
			fatal(err)
		}
		return
	}

	if opts.watch {
		ticker := time.NewTicker(opts.interval)
		defer ticker.Stop()
		for {
			if err := dumpOnce(ctx, opts); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
			}
			select {
			case <-ticker.C:
				continue
			case <-ctx.Done():
				return
			}
		}
	}

	if err := dumpOnce(ctx, opts); err != nil {
		fatal(err)
	}
}

func dumpOnce(ctx context.Context, opts *options) error {
	snap, err := fetchSnapshot(ctx, opts.target)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	}
	return prettyPrint(snap)
}

func fetchSnapshot(ctx context.Context, base string) (map[string]any, error) {
	url := base + "/debug/objrt/snapshot"
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}
	var data map[string]any
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func prettyPrint(data map[string]any) error {
	fmt.Printf("Dict len:         %v\n", data["dict_len"])
	fmt.Printf("Interned strings: %v\n", data["interned_strings"])
	return nil
}

func downloadProfile(ctx context.Context, base, name, path string) error {
	url := fmt.Sprintf("%s/debug/pprof/%s", base, name)
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", res.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, res.Body); err != nil {
		return err
	}
	fmt.Printf("%s profile saved to %s\n", name, path)
	return nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "objrt-inspect:", err)
	os.Exit(1)
}
