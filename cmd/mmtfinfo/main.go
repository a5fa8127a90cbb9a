/*
 * main.go, part of gommtf.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//mmtfinfo prints information about MMTF files.
//
//	mmtfinfo summary 1abc.mmtf.gz
//	mmtfinfo json 1abc.mmtf > 1abc.json
//	mmtfinfo field 1abc.mmtf resolution
package main

import (
	"os"

	mmtf "github.com/rmera/gommtf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mmtfinfo",
		Short: "Inspect MMTF macromolecular structure files",
		Long: `mmtfinfo decodes MMTF files (plain, gzip or zstd compressed) and
prints a summary, the whole decoded structure as JSON, or single fields.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			var err error
			if verbose {
				logger, err = zap.NewDevelopment()
			} else {
				logger, err = zap.NewProduction()
			}
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug information")
	root.PersistentFlags().StringSlice("binary-keys", nil, "Fields that must be decoded as binary fields")
	root.AddCommand(newSummaryCmd(), newJSONCmd(), newFieldCmd())
	return root
}

//options builds the decoding options from the flags of cmd.
func options(cmd *cobra.Command) []mmtf.Option {
	keys, _ := cmd.Flags().GetStringSlice("binary-keys")
	return []mmtf.Option{mmtf.WithLogger(logger), mmtf.WithBinaryKeys(keys...)}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
