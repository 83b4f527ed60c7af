package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
	"strconv"

	"social-system/config"

	"github.com/go-sql-driver/mysql"
)

// 子表在前，父表在后
var tables = []string{"post", "friendship", "user"}

func main() {
	yes := flag.Bool("yes", false, "skip the interactive confirmation")
	flag.Parse()

	// Load configuration
	cfg := config.LoadConfig()
	if cfg.Database.Driver != "mysql" {
		log.Fatalf("reset_db only supports the mysql driver, got %q", cfg.Database.Driver)
	}

	// Connect DB
	db, err := sql.Open("mysql", buildDSN(cfg.Database))
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", cfg.Database.Database)

	// Confirm
	if !*yes {
		fmt.Printf("\nWARNING: This operation will CLEAR ALL DATA in tables %v!\n", tables)
		fmt.Print("Type 'YES' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "YES" {
			fmt.Println("Operation cancelled")
			return
		}
	}

	// Disable FK checks to avoid constraint issues
	_, _ = db.Exec("SET FOREIGN_KEY_CHECKS=0")
	defer func() { _, _ = db.Exec("SET FOREIGN_KEY_CHECKS=1") }()

	for _, table := range tables {
		fmt.Printf("Clearing table %s... ", table)
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM `%s`", table)); err != nil {
			fmt.Printf("Failed: %v\n", err)
			continue
		}
		if _, err := db.Exec(fmt.Sprintf("ALTER TABLE `%s` AUTO_INCREMENT = 1", table)); err != nil {
			fmt.Printf("Cleared, auto-increment reset failed: %v\n", err)
			continue
		}
		fmt.Println("Success")
	}

	fmt.Println("\nDatabase reset completed!")
}

// buildDSN 优先使用配置中的完整DSN
func buildDSN(cfg config.DatabaseConfig) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}
	mc := mysql.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	if cfg.Charset != "" {
		mc.Params = map[string]string{"charset": cfg.Charset}
	}
	return mc.FormatDSN()
}
