package main

import (
	"errors"
	"fmt"

	"github.com/hupe1980/markbook/blobstore"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the saved book as a tab-separated table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		session, restored, err := loadSession(ctx)
		if err != nil {
			return err
		}
		if !restored {
			return errors.New("no saved book")
		}

		fmt.Fprint(cmd.OutOrStdout(), session.Export())
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved book",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		store, err := newStore()
		if err != nil {
			return err
		}
		if err := store.Delete(ctx, key); err != nil && !errors.Is(err, blobstore.ErrNotFound) {
			return err
		}
		return nil
	},
}
