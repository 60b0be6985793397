package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"upload-lab/domain"
	"upload-lab/infrastructure/storage"
)

func main() {
	dbPath := flag.String("db", "data/ledger", "Path to the ledger badger DB")
	limit := flag.Int("limit", 50, "Number of sessions to show, 0 for all")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	records, err := storage.NewTransferRepository(db, slog.Default()).List(*limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Started", "Session", "File", "Outcome", "Bytes", "Chunks", "Mime", "Duration", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, r := range records {
		table.Append(toRow(r))
	}
	table.Render()
}

func toRow(r domain.TransferRecord) []string {
	session := r.ID
	if len(session) > 8 {
		session = session[:8]
	}
	detail := ""
	if r.Outcome != domain.OutcomeCompleted {
		detail = fmt.Sprintf("%s: %s", r.Fault, r.Message)
	}
	return []string{
		r.StartedAt.Local().Format(time.DateTime),
		session,
		r.Name,
		r.Outcome.String(),
		fmt.Sprintf("%d", r.Bytes),
		fmt.Sprintf("%d", r.Chunks),
		r.MimeType,
		r.EndedAt.Sub(r.StartedAt).Round(time.Millisecond).String(),
		detail,
	}
}
