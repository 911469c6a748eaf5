package main

import (
	"database/sql"
	"fmt"
	"log"

	"social-im/config"
	"social-im/pkg/db"

	_ "github.com/go-sql-driver/mysql"
)

// 子表在前
var tables = []string{"comment", "moment", "conversation", "message", "friendship", "user"}

func main() {
	cfg := config.LoadConfig()

	conn, err := sql.Open("mysql", db.DSN(cfg.Database))
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}
	fmt.Printf("Database connected: %s (env=%s)\n", cfg.Database.Database, cfg.App.Env)

	if cfg.App.Env == "prod" {
		log.Fatal("Refusing to reset a prod database")
	}

	fmt.Printf("\nWARNING: This operation will CLEAR ALL DATA in tables %v!\n", tables)
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	_, _ = conn.Exec("SET FOREIGN_KEY_CHECKS=0")
	defer conn.Exec("SET FOREIGN_KEY_CHECKS=1")

	for _, table := range tables {
		fmt.Printf("Clearing table %s... ", table)
		// TRUNCATE 同时重置自增ID
		if _, err := conn.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)); err != nil {
			fmt.Printf("Failed: %v\n", err)
			continue
		}
		fmt.Println("Success")
	}

	fmt.Println("\nDatabase reset completed, table structure preserved")
}
