// Command migrate applies the database schema.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"quill/internal/config"
	"quill/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <up|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "up":
		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		log.Println("migrations applied")
	case "status":
		migrator := db.Migrator()
		for _, model := range database.PersistentModels() {
			fmt.Printf("%-30T %v\n", model, migrator.HasTable(model))
		}
	default:
		return usage()
	}

	return nil
}
