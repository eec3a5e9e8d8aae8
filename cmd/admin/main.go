package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/jala-youth/jala-web/internal/config"
	"github.com/jala-youth/jala-web/internal/dashboard"
	"github.com/jala-youth/jala-web/internal/gateway"
	"github.com/jala-youth/jala-web/internal/logger"
	"github.com/jala-youth/jala-web/internal/model"
	"github.com/jala-youth/jala-web/internal/store"
)

const maxLoginAttempts = 3

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	// Logs go to stderr so they do not interleave with the tables.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Token Storage ─────────────────────────────────────────────────
	path := cfg.AdminTokenFile
	if path == "" {
		var err error
		if path, err = store.DefaultTokenPath(); err != nil {
			log.Fatal().Err(err).Msg("Cannot locate the admin token file")
		}
	}

	client := gateway.NewClient(cfg.APIBaseURL, gateway.WithTimeout(cfg.APITimeout), gateway.WithLogger(log))
	sess := gateway.NewSession(client, store.NewFileStore(path))
	dash := dashboard.New(sess, log)

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("=== JALA Admin Dashboard ===")

	_ = dash.Dispatch(ctx, dashboard.Resume{})
	if dash.Snapshot().Auth != dashboard.Authenticated && !login(ctx, dash) {
		os.Exit(1)
	}

	render(os.Stdout, dash.Snapshot())
	fmt.Println(`Type "help" for commands.`)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch cmd := fields[0]; cmd {
		case "help":
			printHelp()
		case "quit", "exit":
			return
		case "logout":
			_ = dash.Dispatch(ctx, dashboard.Logout{})
			fmt.Println("Logged out.")
			return
		case "refresh":
			report(dash.Dispatch(ctx, dashboard.Refresh{}))
			render(os.Stdout, dash.Snapshot())
		case "delete":
			if len(fields) != 2 {
				fmt.Println("usage: delete <id>")
				continue
			}
			deleteRecord(ctx, dash, reader, fields[1])
		default:
			tab, err := dashboard.ParseTab(cmd)
			if err != nil {
				fmt.Printf("Unknown command %q.\n", cmd)
				continue
			}
			report(dash.Dispatch(ctx, dashboard.SelectTab{Tab: tab}))
			render(os.Stdout, dash.Snapshot())
		}

		if dash.Snapshot().Auth != dashboard.Authenticated {
			fmt.Println("Session expired. Please log in again.")
			if !login(ctx, dash) {
				return
			}
			render(os.Stdout, dash.Snapshot())
		}
	}
}

func login(ctx context.Context, dash *dashboard.Dashboard) bool {
	for i := 0; i < maxLoginAttempts; i++ {
		fmt.Print("Admin password: ")
		pw, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			fmt.Println("Error reading password")
			return false
		}

		err = dash.Dispatch(ctx, dashboard.Login{Password: string(pw)})
		if dash.Snapshot().Auth == dashboard.Authenticated {
			report(err)
			return true
		}
		fmt.Println(dash.Snapshot().AuthError)
		if errors.Is(err, gateway.ErrConnectivity) {
			return false
		}
	}
	return false
}

func deleteRecord(ctx context.Context, dash *dashboard.Dashboard, reader *bufio.Reader, rawID string) {
	snap := dash.Snapshot()
	kind, err := model.ParseRecordKind(string(snap.Active))
	if err != nil {
		fmt.Println("Select subscriptions, bookings or feedback first.")
		return
	}
	id, err := strconv.Atoi(rawID)
	if err != nil {
		fmt.Printf("Invalid id %q.\n", rawID)
		return
	}

	if err := dash.Dispatch(ctx, dashboard.RequestDelete{Kind: kind, ID: id}); err != nil {
		report(err)
		return
	}
	fmt.Printf("%s [y/N] ", dash.Snapshot().Pending.Prompt)
	answer, _ := reader.ReadString('\n')
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		_ = dash.Dispatch(ctx, dashboard.CancelDelete{})
		fmt.Println("Cancelled.")
		return
	}

	err = dash.Dispatch(ctx, dashboard.ConfirmDelete{Kind: kind, ID: id})
	if alert := dash.Snapshot().Alert; alert != "" {
		fmt.Println(alert)
		return
	}
	report(err)
	render(os.Stdout, dash.Snapshot())
}

// report prints err unless the snapshot already shows it.
func report(err error) {
	var gerr *gateway.Error
	switch {
	case err == nil:
	case errors.As(err, &gerr):
		if gerr.Detail != "" {
			fmt.Printf("%s: %s\n", gerr.Message, gerr.Detail)
			return
		}
		fmt.Println(gerr.Message)
	case errors.Is(err, dashboard.ErrBusy):
		fmt.Println("Still loading, try again in a moment.")
	default:
		fmt.Println(err)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  overview | subscriptions | bookings | feedback   switch tab
  refresh                                          reload the current tab
  delete <id>                                      delete a record from the current tab
  logout                                           forget the saved token and exit
  quit                                             exit, keeping the token`)
}
