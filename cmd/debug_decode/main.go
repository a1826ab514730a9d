package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"router-manager/core/config"
	"router-manager/core/router"
	"router-manager/core/staticlist"
)

// Fetches the live dhcp_staticlist (or reads one from argv) and prints
// every decode decision, for poking at lists the service refuses to parse.
func main() {
	var raw string

	if len(os.Args) > 1 {
		raw = os.Args[1]
	} else {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatal(err)
		}

		client, err := router.NewClient(cfg.Router)
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		fmt.Printf("Fetching dhcp_staticlist from %s...\n", cfg.Router.Host)
		raw, err = client.GetStaticList(ctx)
		if err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Raw value (%d bytes):\n%q\n\n", len(raw), raw)

	dec := staticlist.Decode(raw)
	fmt.Printf("Grammar: %s\n", dec.Grammar)
	fmt.Printf("Skipped fragments: %d\n", dec.Skipped)
	fmt.Printf("Decoded %d reservations:\n", len(dec.Reservations))
	for i, r := range dec.Reservations {
		fmt.Printf("  %2d. mac=%s ip=%s name=%q\n", i+1, r.MAC, r.IP, r.Name)
	}

	if dec.Empty() && raw != "" {
		fmt.Println("\n⚠️  Non-empty input decoded to zero reservations - unknown format!")
	}

	out, skipped := staticlist.Encode(dec.Reservations)
	fmt.Printf("\nCanonical re-encoding (%d excluded):\n%q\n", skipped, out)
}
