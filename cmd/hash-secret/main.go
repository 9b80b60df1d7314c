// Command hash-secret prints a bcrypt hash suitable for
// AUTH_ADMIN_PASSWORD_HASH. It is used to bootstrap the admin login.
//
// Usage:
//
//	hash-secret --secret='correct horse battery staple'
//	echo -n 'correct horse battery staple' | hash-secret
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ryankelly77/raptor-portal-sub000/internal/auth"
)

func main() {
	secret := flag.String("secret", "", "secret to hash; read from stdin when empty")
	flag.Parse()

	if *secret == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "Usage: hash-secret --secret=<value>  (or pipe the value on stdin)")
			os.Exit(1)
		}
		*secret = strings.TrimRight(line, "\r\n")
	}
	if *secret == "" {
		log.Fatal("secret must not be empty")
	}

	hash, err := auth.HashSecret(*secret)
	if err != nil {
		log.Fatalf("hash: %v", err)
	}
	fmt.Println(hash)
}
