// Command hashpw reads a password from the terminal without echo and prints
// its bcrypt hash. Handy for seeding accounts by hand.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/apsihub/apsi-auth/internal/cryptox"
)

func main() {

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading password: %v\n", err)
		os.Exit(1)
	}

	hash, err := cryptox.HashPassword(string(password))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error hashing password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
