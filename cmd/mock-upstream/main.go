// Command mock-upstream serves a deterministic synthetic disbursal data set
// with the real upstream's wire contract, for local development of the
// reporting service.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/blinkr/disburse/internal/mockupstream"
)

// Default configuration constants.
const (
	defaultAddr     = ":9090"
	defaultRecords  = 250
	defaultSpanDays = 120
	defaultSeed     = 42
)

func main() {
	var (
		addr    = flag.String("addr", defaultAddr, "Listen address")
		records = flag.Int("records", defaultRecords, "Number of records to generate")
		span    = flag.Int("span", defaultSpanDays, "Spread disbursal dates over this many days ending today")
		seed    = flag.Int64("seed", defaultSeed, "Random seed for reproducible data")
	)
	flag.Parse()

	gen := mockupstream.NewGenerator(
		mockupstream.WithSeed(*seed),
		mockupstream.WithNumRecords(*records),
		mockupstream.WithDateSpan(time.Now().UTC().Truncate(24*time.Hour), *span),
	)

	mux := http.NewServeMux()
	mux.Handle("/disbursals", mockupstream.NewHandler(gen.Generate()))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		os.Stderr.WriteString("mock upstream failed: " + err.Error() + "\n")
	}
}
