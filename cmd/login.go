package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print the access token",
	Long:  "Authenticates with --email and --password and prints the token for use with --token or FISHERMAN_API_TOKEN.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagEmail == "" {
			return eris.New("login requires --email and --password")
		}

		env, err := initDashboard("cli")
		if err != nil {
			return err
		}

		sess, err := env.Service.Login(cmd.Context(), flagEmail, flagPassword)
		if err != nil {
			return err
		}

		return printResult(cmd, sess, func(w io.Writer) {
			fmt.Fprintln(w, sess.Token)
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
