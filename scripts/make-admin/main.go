package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Admins may delete any club. Usage: make-admin <email>
func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <email>", os.Args[0])
	}
	email := os.Args[1]

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/clubhub.db"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	result, err := db.Exec("UPDATE users SET is_admin = TRUE, updated_at = CURRENT_TIMESTAMP WHERE email = ?", email)
	if err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Fatalf("Failed to get rows affected: %v", err)
	}

	if rowsAffected == 0 {
		fmt.Printf("No user found with email: %s\n", email)
		fmt.Println("The user needs to sign in once so their Clerk profile is synced.")
		return
	}
	fmt.Printf("%s can now delete any club\n", email)
}
