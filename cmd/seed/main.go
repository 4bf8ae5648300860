package main

import (
	"fmt"
	"log"
	"os"

	"userhub/internal/database"
	"userhub/internal/domain"
	"userhub/internal/pkg/password"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "userhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM users")

	hasher := password.NewHasher(password.DefaultCost)

	log.Println("Creating users...")

	adminHash, err := hasher.Hash("Admin@123")
	if err != nil {
		log.Fatal(err)
	}
	admin := domain.User{
		Email:        "admin@example.com",
		Name:         "Admin User",
		PasswordHash: adminHash,
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@example.com / Admin@123")

	for i := 1; i <= 2; i++ {
		hash, err := hasher.Hash("Employee@123")
		if err != nil {
			log.Fatal(err)
		}
		employee := domain.User{
			Email:        fmt.Sprintf("employee%d@example.com", i),
			Name:         fmt.Sprintf("Employee %d", i),
			PasswordHash: hash,
			Role:         domain.RoleEmployee,
			Active:       true,
		}
		db.Create(&employee)
	}

	for i := 1; i <= 10; i++ {
		hash, err := hasher.Hash("User@123")
		if err != nil {
			log.Fatal(err)
		}
		user := domain.User{
			Email:        fmt.Sprintf("user%d@example.com", i),
			Name:         fmt.Sprintf("User %d", i),
			PasswordHash: hash,
			Role:         domain.RoleUser,
			Active:       true,
		}
		db.Create(&user)
	}

	log.Println("Seed data inserted successfully!")
}
