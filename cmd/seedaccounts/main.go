package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/pkg/client"
)

func main() {
	var (
		baseURL   string
		seedToken string
		timeout   time.Duration
	)

	flag.StringVar(&baseURL, "base-url", "http://localhost:8080", "API base URL")
	flag.StringVar(&seedToken, "seed-token", os.Getenv("SEED_TOKEN"), "value sent as X-Seed-Token")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	api := client.New(baseURL,
		client.WithHTTPClient(&http.Client{Timeout: timeout}),
		client.WithSeedToken(seedToken),
		client.WithNotifier(client.NewLogNotifier(logger)),
	)

	accounts, err := api.SeedTestAccounts(context.Background())
	if err != nil {
		os.Exit(1)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ROLE\tEMAIL\tPASSWORD")
	for _, account := range accounts {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", account.Role, account.Email, account.Password)
	}
	_ = writer.Flush()
}
