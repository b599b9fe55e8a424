// Package search gives admins full-text access to the message log.
// It decouples the raw console input from the index engine.
package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters of an admin search.
type Query struct {
	RawInput string // The original console input
	Terms    string // The text searched in the index
	From     string // Restrict to one sender
	Lang     string // Restrict to one detected language code
	Limit    int    // Number of results
}

// ParseQuery parses a raw string to extract command-line style flags.
// Example: /find overdue homework --from student1 --limit 5
func ParseQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    10, // Default limit
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --from student1 or --limit 5
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			switch key {
			case "from":
				query.From = val
			case "lang":
				query.Lang = val
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		// If it's not a flag, it's a search term
		if !strings.HasPrefix(part, "/") {
			textTerms = append(textTerms, part)
		}
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
