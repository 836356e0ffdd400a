// cmd/seedadmin — creates a demo user for local development.
// Usage: go run ./cmd/seedadmin
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/WallaceMuylaert/optics-api/internal/dto"
	"github.com/WallaceMuylaert/optics-api/internal/infra"
	"github.com/WallaceMuylaert/optics-api/internal/repository"
	"github.com/WallaceMuylaert/optics-api/internal/service"
)

func main() {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = "optics.db"
	}

	db, err := infra.NewDatabase(path)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}

	users := service.NewUserService(
		repository.NewUserRepository(db),
		repository.NewRoleRepository(db),
	)

	resp, err := users.Create(context.Background(), dto.CreateUserRequest{
		Name:     "Demo User",
		Email:    "demo@optics.local",
		CPF:      "00000000000",
		Password: "demo1234",
	})
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}
	fmt.Printf("user %q created with id %d and password \"demo1234\"\n", resp.Email, resp.ID)
}
