package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and update the own profile",
}

var profileMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the authenticated user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := profileSvc.Me(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s <%s>\nrole: %s\n", user.Name, user.Email, user.Role)
		if user.Phone != "" {
			fmt.Printf("phone: %s\n", user.Phone)
		}
		return nil
	},
}

var profileImageCmd = &cobra.Command{
	Use:   "set-image <file>",
	Short: "Upload a new profile image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		user, err := profileSvc.UploadImage(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			toasts.Error(err.Error())
			flushToasts()
			return err
		}

		toasts.Success("Profile image updated")
		flushToasts()
		fmt.Println(user.ProfileImage)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileMeCmd)
	profileCmd.AddCommand(profileImageCmd)
}
