package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"edgeorigin/pkg/log"
	"edgeorigin/pkg/routing"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultRetryMax     = 2
	defaultProbeTimeout = 10 * time.Second
)

// origin-check re-validates the compiled-in origin catalog offline: it
// rebuilds the catalog through the same construction checks the service
// runs at startup, cross-checks every bucket host's region token against
// its declared region, verifies the legacy POP lookup against the
// category-aware path, and optionally probes each bucket host over HTTPS.
func main() {
	_ = log.Logger

	probe := flag.Bool("probe", false, "Probe each distinct bucket host with an HTTPS HEAD request")
	probeTimeout := flag.Duration("probe-timeout", defaultProbeTimeout, "Timeout per host probe")
	retryMax := flag.Int("retry-max", defaultRetryMax, "Maximum retries per host probe")
	flag.Parse()

	catalog := routing.Default()
	failures := 0

	// Construction re-check over the dumped entries. Catches drift if the
	// dump and the registry ever disagree.
	if _, err := routing.NewCatalog(catalog.Entries()); err != nil {
		log.Error().Err(err).Msg("Catalog failed construction checks")
		failures++
	}

	for _, entry := range catalog.Entries() {
		token, ok := routing.RegionFromBucketHost(entry.Origin.BucketHost)
		if !ok {
			log.Error().
				Str("category", string(entry.Category)).
				Str("region", string(entry.Region)).
				Str("bucket_host", entry.Origin.BucketHost).
				Msg("Bucket host does not match the s3.<region>.<provider> pattern")
			failures++
			continue
		}
		log.Debug().
			Str("category", string(entry.Category)).
			Str("region", string(entry.Region)).
			Str("region_token", token).
			Msg("Bucket host token extracted")
	}

	// The legacy POP lookup must stay derivable from the catalog.
	for _, pop := range routing.POPs() {
		want := catalog.Lookup(routing.CategoryImages, routing.RegionForPOP(pop))
		if got := catalog.OriginForPOP(pop); got != want {
			log.Error().Str("pop", pop).Msg("Legacy POP lookup disagrees with category-aware resolution")
			failures++
		}
	}

	if *probe {
		failures += probeHosts(catalog.BucketHosts(), *retryMax, *probeTimeout)
	}

	if failures > 0 {
		log.Error().Int("failures", failures).Msg("Catalog check failed")
		os.Exit(1)
	}

	log.Info().
		Int("entries", len(catalog.Entries())).
		Int("pop_codes", len(routing.POPs())).
		Bool("probed", *probe).
		Msg("Catalog check passed")
}

// probeHosts issues a HEAD request to each host and reports unreachable
// ones. Any HTTP status counts as reachable; only transport failures are
// defects.
func probeHosts(hosts []string, retryMax int, timeout time.Duration) int {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	failures := 0
	for _, host := range hosts {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)

		req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, "https://"+host+"/", nil)
		if err != nil {
			cancel()
			log.Error().Err(err).Str("host", host).Msg("Failed to build probe request")
			failures++
			continue
		}

		start := time.Now()
		resp, err := client.Do(req)
		latency := time.Since(start)
		cancel()

		if err != nil {
			log.Error().Err(err).Str("host", host).Msg("Bucket host unreachable")
			failures++
			continue
		}
		_ = resp.Body.Close()

		log.Info().
			Str("host", host).
			Int("status", resp.StatusCode).
			Dur("latency", latency).
			Msg("Bucket host reachable")
	}

	return failures
}
