// cmd/roster-import - bulk-load a roster CSV from the command line.
//
// Useful for the initial season load, when the file is too big to click
// through the dashboard importer. Same mapping and validation rules as
// the HTTP endpoint.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Maexgon/RoasterManager/database"
	"github.com/Maexgon/RoasterManager/services"
	"github.com/joho/godotenv"
)

func main() {
	var (
		filePath = flag.String("file", "", "path to the CSV file (required)")
		mapping  = flag.String("mapping", "", `column mapping as JSON, e.g. {"first_name":"Nombre","last_name":"Apellido"}; omitted = auto-suggest`)
		dryRun   = flag.Bool("dry-run", false, "validate and report without inserting")
	)
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer f.Close()

	headers, rows, err := services.ParseCSV(f)
	if err != nil {
		log.Fatalf("Failed to parse CSV: %v", err)
	}

	var m services.ColumnMapping
	if *mapping != "" {
		if err := json.Unmarshal([]byte(*mapping), &m); err != nil {
			log.Fatalf("Invalid mapping JSON: %v", err)
		}
	} else {
		m = services.SuggestMapping(headers)
		log.Printf("Auto-suggested mapping: first_name=%q last_name=%q nickname=%q",
			m.FirstName, m.LastName, m.Nickname)
	}

	records, dropped, err := services.BuildRecords(rows, m)
	if err != nil {
		log.Fatalf("Validation failed: %v (dropped %d rows)", err, dropped)
	}
	log.Printf("%d valid rows, %d dropped", len(records), dropped)

	if *dryRun {
		fmt.Println("Dry run, nothing inserted")
		return
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}
	defer database.Close(db)

	importer := services.NewRosterImportService(db)
	if err := importer.Import(records); err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	fmt.Printf("Imported %d players\n", len(records))
}
