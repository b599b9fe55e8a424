package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"portal-messaging/domain"
	"portal-messaging/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/badger"`
}

// inspect dumps the four persisted portal slots without going through
// the service layer, for debugging a store while the portal runs.
func main() {
	_ = godotenv.Load()
	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	dbPath := flag.String("db", cfg.BadgerFilepath, "Path to badger DB")
	verbose := flag.Bool("v", false, "Print raw slot contents")
	flag.Parse()

	// BypassLockGuard allows opening while the portal holds the lock
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	state, err := repositories.NewPortalRepository(db, slog.Default()).LoadState()
	if err != nil {
		log.Fatalf("Failed to read portal slots: %v", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Slot", "Entries", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"accounts", fmt.Sprint(len(state.Accounts)), accountSummary(state.Accounts)})
	table.Append([]string{"messages", fmt.Sprint(len(state.Messages)), messageSummary(state.Messages)})
	table.Append([]string{"reports", fmt.Sprint(len(state.Reports)), ""})
	table.Append([]string{"session", fmt.Sprint(sessionCount(state.Session)), sessionSummary(state.Session)})
	table.Render()

	if *verbose {
		raw, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			log.Fatalf("Failed to render state: %v", err)
		}
		fmt.Println(string(raw))
	}
}

func accountSummary(accounts []domain.Account) string {
	byRole := map[domain.Role]int{}
	for _, a := range accounts {
		byRole[a.Role]++
	}
	return fmt.Sprintf("students=%d teachers=%d admins=%d",
		byRole[domain.RoleStudent], byRole[domain.RoleTeacher], byRole[domain.RoleAdmin])
}

func messageSummary(messages []domain.Message) string {
	if len(messages) == 0 {
		return ""
	}
	last := messages[len(messages)-1]
	return fmt.Sprintf("last: %s -> %s at %s", last.From, last.To, last.At.Format("15:04:05"))
}

func sessionCount(session *repositories.StoredSession) int {
	if session == nil {
		return 0
	}
	return 1
}

func sessionSummary(session *repositories.StoredSession) string {
	if session == nil {
		return "logged out"
	}
	return fmt.Sprintf("%s (%s)", session.Username, session.Role)
}
