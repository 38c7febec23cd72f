package main

import (
	"fmt"
	"log"
	"os"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/catalog"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/display"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/domain"
)

// pos-demo runs the canonical single checkout against the seeded catalog and
// prints the notice, receipt and remaining balance to stdout.
func main() {
	store, customer := catalog.SeedDemo()
	svc := checkout.NewService(display.NewConsole(os.Stdout))
	cart := domain.NewCart()

	purchases := []struct {
		name     string
		quantity int
	}{
		{"Cheese", 1},
		{"Biscuits", 1},
		{"Scratch Card", 1},
	}

	for _, p := range purchases {
		product, err := store.Get(p.name)
		if err != nil {
			log.Fatalf("Seed is missing %s: %v", p.name, err)
		}
		if err := cart.Add(product, p.quantity); err != nil {
			fmt.Fprintf(os.Stderr, "Checkout failed: %v\n", err)
			os.Exit(1)
		}
	}

	if _, err := svc.Checkout(customer, cart); err != nil {
		fmt.Fprintf(os.Stderr, "Checkout failed: %v\n", err)
		os.Exit(1)
	}
}
