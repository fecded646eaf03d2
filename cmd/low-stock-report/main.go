// low-stock-report pulls every product below its minimum stock level and
// writes them to an xlsx report for the purchasing team.
//
// Usage:
//   go run ./cmd/low-stock-report [output.xlsx]
//
// Requires a token file from a previous login (see cmd/login-probe).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/exebone56/ecom-pulse2/config"
	"github.com/exebone56/ecom-pulse2/gateway"
	"github.com/exebone56/ecom-pulse2/models"
	"github.com/exebone56/ecom-pulse2/session"
	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
)

const pageSize = 100

func main() {
	godotenv.Load()

	output := "low-stock-report.xlsx"
	if len(os.Args) > 1 {
		output = os.Args[1]
	}

	cfg := config.Load()
	store := session.NewFileTokenStore(cfg.TokenPath)
	api := gateway.NewClient(cfg, store)

	ctx := context.Background()
	var products []models.LowStockProduct
	for page := 1; ; page++ {
		result, err := api.LowStockProducts(ctx, page, pageSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fetching low stock page %d: %v\n", page, err)
			os.Exit(1)
		}
		products = append(products, result.Results...)
		if result.Next == nil {
			break
		}
	}

	if err := writeReport(output, products); err != nil {
		fmt.Fprintf(os.Stderr, "writing report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d low stock products to %s\n", len(products), output)
}

func writeReport(path string, products []models.LowStockProduct) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Article")
	f.SetCellValue("Sheet1", "B1", "Name")
	f.SetCellValue("Sheet1", "C1", "Available")
	f.SetCellValue("Sheet1", "D1", "Threshold")
	for i, p := range products {
		f.SetCellValue("Sheet1", "A"+fmt.Sprint(i+2), p.Article)
		f.SetCellValue("Sheet1", "B"+fmt.Sprint(i+2), p.Name)
		f.SetCellValue("Sheet1", "C"+fmt.Sprint(i+2), p.AvailableQuantity)
		f.SetCellValue("Sheet1", "D"+fmt.Sprint(i+2), p.Threshold)
	}
	return f.SaveAs(path)
}
