package main

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
)

// provision registers a service-provider account against a running
// instance and writes the credentials to a file, so a fresh environment
// can be bootstrapped without touching the database by hand.

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"companyName"`
	Role        string `json:"role"`
}

type registerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func main() {
	url := flag.String("url", "http://localhost:8080/api/auth/register", "Registration URL")
	email := flag.String("email", "", "Account email (required)")
	password := flag.String("password", "", "Account password (generated when empty)")
	company := flag.String("company", "", "Company name")
	role := flag.String("role", "provider", "Account role (shipper, provider)")
	out := flag.String("out", "provision-credentials.json", "Credentials output file")
	dryRun := flag.Bool("dry-run", false, "Only print the payload, don't send")

	flag.Parse()

	if *email == "" {
		fmt.Fprintf(os.Stderr, "Error: -email is required\n")
		os.Exit(1)
	}
	if *password == "" {
		*password = "pw_" + randomHex(12)
	}

	payload := registerRequest{
		Email:       *email,
		Password:    *password,
		CompanyName: *company,
		Role:        *role,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling payload: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Payload: %s\n", string(body))
	if *dryRun {
		fmt.Println("\n[DRY RUN] Not sending request")
		return
	}

	fmt.Printf("\nSending to %s...\n", *url)
	resp, err := http.Post(*url, "application/json", bytes.NewReader(body))
	if err != nil {
		// Transport failure: the instance is unreachable, not a rejection.
		fmt.Fprintf(os.Stderr, "Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %d\n", resp.StatusCode)

	if resp.StatusCode != http.StatusCreated {
		var e errorResponse
		if json.Unmarshal(respBody, &e) == nil && e.Error != "" {
			fmt.Fprintf(os.Stderr, "Rejected: %s\n", e.Error)
			for k, v := range e.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", k, v)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Rejected: %s\n", string(respBody))
		}
		os.Exit(1)
	}

	var created registerResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing response: %v\n", err)
		os.Exit(1)
	}

	creds := map[string]string{
		"accountId": created.ID,
		"email":     created.Email,
		"password":  *password,
		"role":      created.Role,
	}
	credsJSON, _ := json.MarshalIndent(creds, "", "  ")
	if err := os.WriteFile(*out, credsJSON, 0o600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing credentials file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ account %s provisioned, credentials written to %s\n", created.Email, *out)
}

func randomHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)[:n]
}
