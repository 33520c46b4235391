package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"swasthya/database"
	"swasthya/internal/catalog"
	"swasthya/internal/config"
	"swasthya/internal/repository"
	"swasthya/internal/utils"
)

func init() {
	config.LoadEnv(".env", "../../.env")
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedFile := seedCmd.String("file", "", "YAML catalog to seed instead of the built-in foods")

	clearCmd := flag.NewFlagSet("clear", flag.ExitOnError)
	clearConfirm := clearCmd.Bool("yes", false, "Confirm deleting every food")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cfg := config.Load()
	log.Printf("DB_HOST: %s", cfg.DBHost)
	log.Printf("DB_PORT: %s", cfg.DBPort)
	log.Printf("DB_NAME: %s", cfg.DBName)

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		cat := catalog.Default()
		if *seedFile != "" {
			var err error
			if cat, err = catalog.LoadYAML(*seedFile); err != nil {
				log.Fatalf("Error loading catalog: %v", err)
			}
		}

		repo := connect(cfg)
		if _, err := utils.SeedFoods(repo, cat); err != nil {
			log.Fatalf("Error seeding foods: %v", err)
		}

	case "count":
		count, err := connect(cfg).Count()
		if err != nil {
			log.Fatalf("Error counting foods: %v", err)
		}
		log.Printf("Foods in table: %d", count)

	case "clear":
		clearCmd.Parse(os.Args[2:])
		if !*clearConfirm {
			log.Fatal("Refusing to clear without --yes")
		}
		if _, err := utils.ClearFoods(connect(cfg)); err != nil {
			log.Fatalf("Error clearing foods: %v", err)
		}

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func connect(cfg *config.Config) repository.FoodRepository {
	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	return repository.NewFoodRepository(db)
}

func printHelp() {
	fmt.Println("Catalog database tool for Swasthya")
	fmt.Println("\nUsage:")
	fmt.Println("  seed COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Write the food catalog into the database, overwriting foods with the same name")
	fmt.Println("               Options:")
	fmt.Println("                 --file=PATH     YAML catalog to seed (default: built-in foods)")
	fmt.Println("")
	fmt.Println("  count        Show how many foods are stored")
	fmt.Println("")
	fmt.Println("  clear        Delete every stored food")
	fmt.Println("               Options:")
	fmt.Println("                 --yes           Confirm the deletion")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host (default: localhost)")
	fmt.Println("  DB_PORT      Database port (default: 5432)")
	fmt.Println("  DB_USER      Database user (default: postgres)")
	fmt.Println("  DB_PASSWORD  Database password (default: postgres)")
	fmt.Println("  DB_NAME      Database name (default: swasthya)")
	fmt.Println("  DB_SSLMODE   Database SSL mode (default: disable)")
	fmt.Println("  DB_TIMEZONE  Database timezone (default: Asia/Kathmandu)")
}
