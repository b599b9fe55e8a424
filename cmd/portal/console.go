package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"portal-messaging/observability"
	"portal-messaging/search"
	"portal-messaging/services"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// console is the presentation layer of the portal: it turns stdin
// lines into core operations and re-renders whenever the core signals
// a state change through the render sink.
type console struct {
	service services.IPortalService
	index   *search.Index
	log     *slog.Logger
	out     *os.File
}

func newConsole(service services.IPortalService, index *search.Index, log *slog.Logger) *console {
	return &console{service: service, index: index, log: log, out: os.Stdout}
}

// Run processes one command at a time until quit or cancellation.
// Every command runs to completion before the next line is read, which
// is the portal's whole concurrency model.
func (c *console) Run(ctx context.Context) error {
	c.renderState()
	c.prompt()

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := c.dispatch(ctx, strings.TrimSpace(line)); quit {
				return nil
			}
			c.prompt()
		}
	}
}

func (c *console) dispatch(ctx context.Context, line string) (quit bool) {
	if line == "" {
		return false
	}
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]

	switch command {
	case "help":
		c.printHelp()
	case "login":
		c.login(args)
	case "logout":
		c.service.EndSession()
	case "recipients":
		c.printRecipients()
	case "send":
		c.send(args)
	case "inbox":
		c.printInbox()
	case "report":
		c.report(args)
	case "create":
		c.create(args)
	case "adminview":
		c.printAdminView()
	case "find":
		c.find(ctx, strings.TrimPrefix(line, "find"))
	case "status":
		c.printStatus()
	case "quit", "exit":
		return true
	default:
		color.Yellow.Printf("Unknown command %q, try 'help'\n", command)
	}
	return false
}

func (c *console) prompt() {
	if session, ok := c.service.Session(); ok {
		fmt.Fprintf(c.out, "%s> ", session.Username)
		return
	}
	fmt.Fprint(c.out, "> ")
}

// renderState is the re-render hook fired by the core after every
// state-mutating operation.
func (c *console) renderState() {
	session, ok := c.service.Session()
	if !ok {
		color.Gray.Println("Not logged in. Use: login <username> <password>")
		return
	}
	color.Cyan.Printf("Logged in as %s (%s). Messages may be monitored for safety.\n",
		session.Username, session.Role)
}

func (c *console) printHelp() {
	fmt.Fprintln(c.out, `Commands:
  login <username> <password>      open a session
  logout                           close the session
  recipients                       list who you may write to
  send <username> <text...>        send a message (20s cooldown)
  inbox                            show your thread
  report <position>                report a message to the admins
  create <username> <pw> <role>    provision an account (admin)
  adminview                        full message and report logs (admin)
  find <terms> [--from u] [--limit n]  search messages (admin)
  status                           process statistics
  quit                             exit`)
}

func (c *console) login(args []string) {
	if len(args) != 2 {
		color.Yellow.Println("Usage: login <username> <password>")
		return
	}
	if _, err := c.service.Authenticate(args[0], args[1]); err != nil {
		color.Red.Println(err)
	}
}

func (c *console) printRecipients() {
	recipients := c.service.AllowedRecipients()
	if len(recipients) == 0 {
		color.Gray.Println("Nobody to write to.")
		return
	}
	for _, a := range recipients {
		fmt.Fprintf(c.out, "  %s (%s)\n", a.Username, a.Role)
	}
}

func (c *console) send(args []string) {
	if len(args) < 2 {
		color.Yellow.Println("Usage: send <username> <text...>")
		return
	}
	recipient, text := args[0], strings.Join(args[1:], " ")

	message, err := c.service.Send(recipient, text, time.Now().UTC())
	if err != nil {
		color.Red.Println(err)
		return
	}
	// A nil message with no error is the tolerated stale-recipient
	// drop: the selection no longer resolves and nothing was recorded.
	if message != nil {
		color.Green.Printf("Delivered to %s.\n", message.To)
	}
}

func (c *console) printInbox() {
	entries := c.service.VisibleMessages()
	if len(entries) == 0 {
		color.Gray.Println("No messages.")
		return
	}
	for _, entry := range entries {
		m := entry.Message
		fmt.Fprintf(c.out, "  [%d] %s -> %s at %s\n      %s\n",
			entry.Position, m.From, m.To, m.At.Format(time.RFC3339), m.Text)
	}
}

func (c *console) report(args []string) {
	if len(args) != 1 {
		color.Yellow.Println("Usage: report <position>")
		return
	}
	position, err := strconv.Atoi(args[0])
	if err != nil {
		color.Yellow.Println("Position must be a number, see 'inbox'")
		return
	}
	if _, err := c.service.Report(position, time.Now().UTC()); err != nil {
		color.Red.Println(err)
		return
	}
	color.Green.Println("Message reported to admins.")
}

func (c *console) create(args []string) {
	if len(args) != 3 {
		color.Yellow.Println("Usage: create <username> <password> <role>")
		return
	}
	account, err := c.service.CreateAccount(args[0], args[1], args[2])
	if err != nil {
		color.Red.Println(err)
		return
	}
	color.Green.Printf("Account created for %s.\n", account.Username)
}

func (c *console) printAdminView() {
	view, err := c.service.AdminView()
	if err != nil {
		color.Red.Println(err)
		return
	}

	messages := tablewriter.NewWriter(c.out)
	messages.SetHeader([]string{"Pos", "From", "To", "At", "Text"})
	messages.SetAutoWrapText(false)
	messages.SetBorder(false)
	for i, m := range view.Messages {
		messages.Append([]string{
			strconv.Itoa(i), m.From, m.To, m.At.Format("15:04:05"), m.Text,
		})
	}
	messages.Render()

	reports := tablewriter.NewWriter(c.out)
	reports.SetHeader([]string{"Index", "Reported By", "At"})
	reports.SetAutoWrapText(false)
	reports.SetBorder(false)
	for _, r := range view.Reports {
		reports.Append([]string{
			strconv.Itoa(r.Index), r.ReportedBy, r.At.Format("15:04:05"),
		})
	}
	reports.Render()
}

func (c *console) find(ctx context.Context, input string) {
	// The search surface is admin-only, same as the combined view
	if _, err := c.service.AdminView(); err != nil {
		color.Red.Println(err)
		return
	}

	hits, err := c.index.Search(ctx, search.ParseQuery(input))
	if err != nil {
		color.Red.Println(err)
		return
	}
	if len(hits) == 0 {
		color.Gray.Println("No matches.")
		return
	}

	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Pos", "From", "To", "Lang", "Text"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	for _, hit := range hits {
		table.Append([]string{
			strconv.Itoa(hit.Position), hit.From, hit.To, hit.Lang, hit.Text,
		})
	}
	table.Render()
}

func (c *console) printStatus() {
	stats, err := observability.Snapshot()
	if err != nil {
		color.Red.Println(err)
		return
	}
	fmt.Fprintf(c.out, "pid=%d status=%s rss=%d cpu=%.1f%% alloc=%dMB gc=%d\n",
		stats.Pid, stats.PidStatus, stats.RSSBytes, stats.CPUPercent,
		stats.AllocMemMb, stats.NumGC)
}
