// Command vaultctl is a line-mode client for a running go-pass-vault
// server. Passwords are always prompted interactively and never appear in
// shell history or process listings.
//
// Usage:
//
//	vaultctl [-s http://host:port] [-t token] <command> [args]
//
// Commands:
//
//	create-user <username>          register a new account
//	login <username>                authenticate; prints the session token
//	change-password                 rotate the login password
//	logout                          revoke the session
//	list                            list vault entries
//	view <id>                       show one decrypted entry
//	create <name> <username>        add an entry (secret prompted)
//	update <id> <name> <username>   replace an entry (secret prompted)
//	delete <id>                     remove an entry
//
// Commands other than create-user and login read the session token from
// the -t flag or the VAULT_TOKEN environment variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func main() {
	serverURL := flag.String("s", "http://localhost:8080", "Server base URL")
	token := flag.String("t", os.Getenv("VAULT_TOKEN"), "Session token (defaults to VAULT_TOKEN)")
	timeout := flag.Duration("timeout", 15*time.Second, "Request timeout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: vaultctl [-s url] [-t token] <command> [args]")
		os.Exit(2)
	}

	log := logger.NewClientLogger("vaultctl")

	client := adapter.NewRPCServerAdapter(adapter.RPCClientConfig{
		BaseURL: *serverURL,
		Timeout: *timeout,
	})
	ctx := context.Background()

	if err := run(ctx, client, *token, flag.Args()); err != nil {
		log.Err(err).Str("server", *serverURL).Msg("command failed")
		fmt.Fprintf(os.Stderr, "vaultctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.ServerAdapter, token string, args []string) error {
	command, rest := args[0], args[1:]

	switch command {
	case "create-user":
		if len(rest) != 1 {
			return fmt.Errorf("usage: create-user <username>")
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		return client.CreateUser(ctx, rest[0], password)

	case "login":
		if len(rest) != 1 {
			return fmt.Errorf("usage: login <username>")
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		session, err := client.Login(ctx, rest[0], password)
		if err != nil {
			return err
		}
		fmt.Println(session)
		return nil

	case "change-password":
		oldPassword, err := promptPassword("Current password: ")
		if err != nil {
			return err
		}
		newPassword, err := promptPassword("New password: ")
		if err != nil {
			return err
		}
		return client.ChangePassword(ctx, token, oldPassword, newPassword)

	case "logout":
		return client.Logout(ctx, token)

	case "list":
		items, err := client.ListPasswords(ctx, token)
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Printf("%d\t%s\t%s\n", item.ID, item.Name, time.Unix(item.UpdatedAt, 0).Format(time.RFC3339))
		}
		return nil

	case "view":
		if len(rest) != 1 {
			return fmt.Errorf("usage: view <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", rest[0])
		}
		view, err := client.ViewPassword(ctx, token, id)
		if err != nil {
			return err
		}
		if view == nil {
			return fmt.Errorf("no entry with id %d", id)
		}
		fmt.Printf("name:     %s\n", view.Name)
		fmt.Printf("username: %s\n", view.Username)
		fmt.Printf("password: %s\n", view.Password)
		if view.Attachment != nil {
			fmt.Printf("attachment:\n%s\n", *view.Attachment)
		}
		return nil

	case "create":
		if len(rest) != 2 {
			return fmt.Errorf("usage: create <name> <username>")
		}
		secret, err := promptPassword("Entry password: ")
		if err != nil {
			return err
		}
		return client.CreatePassword(ctx, token, models.PasswordCreate{
			Name:     rest[0],
			Username: rest[1],
			Password: secret,
		})

	case "update":
		if len(rest) != 3 {
			return fmt.Errorf("usage: update <id> <name> <username>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", rest[0])
		}
		secret, err := promptPassword("Entry password: ")
		if err != nil {
			return err
		}
		return client.UpdatePassword(ctx, token, id, models.PasswordUpdate{
			Name:     rest[1],
			Username: rest[2],
			Password: secret,
		})

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: delete <id>")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad id %q", rest[0])
		}
		return client.DeletePassword(ctx, token, id)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// promptPassword reads a secret from the terminal with echo disabled.
// Falls back to an error when stdin is not a terminal so secrets cannot be
// piped in accidentally.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal")
	}

	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	return string(secret), nil
}
