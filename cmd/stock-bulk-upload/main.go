// stock-bulk-upload pushes an xlsx stock file to the bulk update endpoint,
// or downloads the template with -template. The file is parsed locally first
// so obviously broken rows are reported before anything hits the server.
//
// Usage:
//   go run ./cmd/stock-bulk-upload stocks.xlsx
//   go run ./cmd/stock-bulk-upload -template template.xlsx
//
// Requires a token file from a previous login (see cmd/login-probe).
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/gateway"
	"github.com/exebone56/ecom-pulse2/session"
	"github.com/exebone56/ecom-pulse2/stockfile"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	template := flag.Bool("template", false, "write the upload template instead of uploading")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: stock-bulk-upload [-template] <file.xlsx>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *template {
		if err := writeTemplate(path); err != nil {
			fmt.Fprintf(os.Stderr, "writing template: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("template written to %s\n", path)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", path, err)
		os.Exit(1)
	}

	parsed, err := stockfile.Parse(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		os.Exit(1)
	}
	for _, rowErr := range parsed.Errors {
		fmt.Fprintf(os.Stderr, "skipping %s\n", rowErr)
	}
	if len(parsed.Rows) == 0 {
		fmt.Fprintln(os.Stderr, "no usable rows in file, nothing uploaded")
		os.Exit(1)
	}

	cfg := config.Load()
	store := session.NewFileTokenStore(cfg.TokenPath)
	api := gateway.NewClient(cfg, store)

	result, err := api.BulkUpdateStocks(context.Background(), filepath.Base(path), data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "upload failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("updated %d articles\n", len(result.Updated))
	for _, row := range result.Updated {
		fmt.Printf("  %s: %d -> %d\n", row.Article, row.PreviousQuantity, row.AvailableQuantity)
	}
	for _, serverErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "server: %s\n", serverErr)
	}
}

func writeTemplate(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return stockfile.BuildTemplate(f)
}
