// genhash prints bcrypt digests for the given passwords, for hand-written
// fixture rows in the users table.
package main

import (
	"fmt"
	"os"

	"go-internship-backend/pkg/security"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./scripts/genhash.go <password> [password...]")
		os.Exit(2)
	}

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	for _, pass := range os.Args[1:] {
		hash, err := hasher.Hash(pass)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, hash)
	}
}
