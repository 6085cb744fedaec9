package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"leadcrm/internal/auth"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd authenticates against the backend and saves the token
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session token",
	Long: `Authenticates against the backend and stores the bearer token under
~/.leadcrm/ so later commands and the interactive UI reuse it.`,
	RunE: runLogin,
}

// logoutCmd ends the session
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard the session token",
	RunE:  runLogout,
}

// whoamiCmd prints the logged-in user
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	email := loginEmail
	password := loginPassword

	reader := bufio.NewReader(os.Stdin)
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		email = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimSpace(line)
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	session := auth.NewSession(client, logger.Named("auth"))

	user, err := session.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("%s", auth.LoginMessage(err))
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	session := auth.NewSession(client, logger.Named("auth"))
	session.Logout(cmd.Context())

	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	_, user, err := restoreSession(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)
	return nil
}
