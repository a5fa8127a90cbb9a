/*
 * commands.go, part of gommtf.
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

package main

import (
	"encoding/json"
	"fmt"
	"os"

	mmtf "github.com/rmera/gommtf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func readFile(cmd *cobra.Command, name string) (*mmtf.DataDict, error) {
	d, err := mmtf.ReadFile(name, options(cmd)...)
	if err != nil {
		logger.Error("can't decode file", zap.String("file", name), zap.Error(err))
		return nil, err
	}
	return d, nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newSummaryCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "summary FILE",
		Short: "Print the number of chains, residues, molecules and atoms of each model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readFile(cmd, args[0])
			if err != nil {
				return err
			}
			S := d.Summary()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return writeJSON(cmd, S)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), S.String())
			return err
		},
	}
	c.Flags().Bool("json", false, "Print the summary as JSON")
	return c
}

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json FILE",
		Short: "Print the decoded structure as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readFile(cmd, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, d)
		},
	}
}

func newFieldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "field FILE KEY",
		Short: "Print one top-level field of the file, with binary fields decoded",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			v, err := mmtf.ReadValue(f, options(cmd)...)
			if err != nil {
				logger.Error("can't unpack file", zap.String("file", args[0]), zap.Error(err))
				return err
			}
			field, ok := v.Key(args[1])
			if !ok {
				return fmt.Errorf("no field %q in %s", args[1], args[0])
			}
			logger.Debug("field found", zap.String("key", args[1]), zap.Stringer("kind", field.Kind()))
			return writeJSON(cmd, field.Interface())
		},
	}
}
