package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"zero-actions/internal/cards"
	"zero-actions/internal/models"
)

func main() {
	// Parse command line flags
	emlPath := flag.String("eml", "", "Path to an EML file or a directory containing EML files")
	serverURL := flag.String("server", "", "Base URL of a running server; cards are posted to its ingest endpoint instead of parsed locally")
	asJSON := flag.Bool("json", false, "Print the ingested cards as JSON")
	flag.Parse()

	if *emlPath == "" {
		fmt.Println("Usage:")
		fmt.Println("  Ingest one message:  ingest-emails -eml /path/to/file.eml")
		fmt.Println("  Ingest a directory:  ingest-emails -eml /path/to/directory")
		fmt.Println("  Post to a server:    ingest-emails -eml /path -server http://localhost:8080")
		fmt.Println("  Dump card JSON:      ingest-emails -eml /path -json")
		os.Exit(1)
	}

	// Check if it's a file or directory
	info, err := os.Stat(*emlPath)
	if err != nil {
		log.Fatalf("Failed to access path: %v", err)
	}

	var paths []string
	if info.IsDir() {
		fmt.Println("Scanning directory for EML files...")
		entries, err := os.ReadDir(*emlPath)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".eml") {
				continue
			}
			paths = append(paths, filepath.Join(*emlPath, entry.Name()))
		}
	} else if strings.HasSuffix(strings.ToLower(*emlPath), ".eml") {
		paths = []string{*emlPath}
	} else {
		log.Fatalf("Invalid file type. Expected .eml file or directory")
	}

	if len(paths) == 0 {
		log.Fatalf("No EML files found at %s", *emlPath)
	}

	fmt.Printf("Ingesting %d messages...\n", len(paths))

	ingested := make([]*models.EmailCard, 0, len(paths))
	errorCount := 0

	for _, path := range paths {
		card, err := ingestFile(path, *serverURL)
		if err != nil {
			fmt.Printf("Warning: Failed to ingest %s: %v\n", filepath.Base(path), err)
			errorCount++
			continue
		}
		ingested = append(ingested, card)
		fmt.Printf("  %s: %q [%s] %d suggested actions\n", card.ID, card.Title, card.Category, len(card.SuggestedActions))
	}

	if *asJSON {
		encoded, err := json.MarshalIndent(ingested, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode cards: %v", err)
		}
		fmt.Println(string(encoded))
	}

	fmt.Printf("\n✓ Ingest complete: %d cards (%d errors)\n", len(ingested), errorCount)
	if errorCount > 0 {
		os.Exit(1)
	}
}

// ingestFile turns one raw message into a card, locally or through a
// running server's ingest endpoint.
func ingestFile(path, serverURL string) (*models.EmailCard, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if serverURL == "" {
		return cards.FromEmail(bytes.NewReader(raw))
	}
	return postCard(serverURL, raw)
}

func postCard(serverURL string, raw []byte) (*models.EmailCard, error) {
	url := strings.TrimRight(serverURL, "/") + "/api/cards/ingest"
	resp, err := http.Post(url, "message/rfc822", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var card models.EmailCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("decode card: %w", err)
	}
	return &card, nil
}
