package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Shengwang-Community/ShengwangBeautyView/domain/beauty"
	"github.com/Shengwang-Community/ShengwangBeautyView/domain/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List saved module snapshots",
		RunE:  runSnapshots,
	}
	cmd.Flags().StringP("module", "m", "", "Only this module (beauty, makeup, filter, sticker)")
	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().Bool("json", false, "Output JSON")
	cmd.Flags().Bool("clear", false, "Delete the listed module's snapshots instead")
	rootCmd.AddCommand(cmd)
}

func writeSnapshots(w io.Writer, snaps []store.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}
	if len(snaps) == 0 {
		fmt.Fprintln(w, "no snapshots")
		return nil
	}
	for _, s := range snaps {
		template := s.Template
		if template == "" {
			template = "-"
		}
		fmt.Fprintf(w, "%s  %-8s %-22s %3d values  %s\n",
			s.ID, s.Module, template, s.Len(), humanize.Time(s.CreatedAt))
	}
	return nil
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	cfg, _ := loadConfig(os.Stderr)
	name, _ := cmd.Flags().GetString("module")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")
	wipe, _ := cmd.Flags().GetBool("clear")

	var m beauty.Module
	if name != "" {
		var err error
		if m, err = beauty.ParseModule(name); err != nil {
			return err
		}
	}

	s, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	if wipe {
		if m == 0 {
			return fmt.Errorf("--clear needs --module")
		}
		n, err := s.DeleteSnapshots(cmd.Context(), m)
		if err != nil {
			return fmt.Errorf("delete snapshots: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d %s snapshots\n", n, m)
		return nil
	}

	snaps, err := s.ListSnapshots(cmd.Context(), m, limit)
	if err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}
	return writeSnapshots(cmd.OutOrStdout(), snaps, asJSON)
}
