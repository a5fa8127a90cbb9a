/*
 * decode.go, part of gommtf.
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

package mmtf

import (
	"errors"
	"fmt"

	"github.com/rmera/gommtf/envelope"
	"go.uber.org/zap"
)

type config struct {
	binaryKeys []string
	noSniff    bool
	logger     *zap.Logger
}

func newConfig(opts []Option) *config {
	c := &config{logger: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *config) envelopeOptions() []envelope.Option {
	ret := []envelope.Option{envelope.WithBinaryKeys(c.binaryKeys...)}
	if c.noSniff {
		ret = append(ret, envelope.WithoutSniffing())
	}
	return ret
}

//Option configures Decode, Read and ReadFile.
type Option func(*config)

//WithBinaryKeys names top-level fields that must be decoded as binary fields.
//If one of them can't be decoded, the whole decoding fails.
func WithBinaryKeys(keys ...string) Option {
	return func(c *config) { c.binaryKeys = append(c.binaryKeys, keys...) }
}

//OnlyBinaryKeys turns off the detection of binary fields, so only the
//fields given with WithBinaryKeys are decoded.
func OnlyBinaryKeys() Option {
	return func(c *config) { c.noSniff = true }
}

//WithLogger sets the logger used by Read and ReadFile. Decode doesn't log.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

//Decode decodes the msgpack-encoded MMTF file in b.
func Decode(b []byte, opts ...Option) (*DataDict, error) {
	c := newConfig(opts)
	v, err := envelope.Unmarshal(b, c.envelopeOptions()...)
	if err != nil {
		return nil, errDecorate(fmt.Errorf("mmtf: %w", err), "Decode")
	}
	d, err := Build(v)
	if err != nil {
		return nil, errDecorate(err, "Decode")
	}
	return d, nil
}

/*Build builds a DataDict from an unpacked MMTF file. Metadata fields that
are absent or can't be converted are left nil. Any inconsistency in the
tables that build the models and assemblies is an error, and no DataDict
is returned in that case.*/
func Build(v envelope.Value) (*DataDict, error) {
	if v.Kind() != envelope.Map {
		return nil, newError(ErrMissingField, "Build", "the file content is a %s, not a map", v.Kind())
	}
	d := &DataDict{
		Description: Description{Keywords: []string{}, Authors: []string{}},
		Models:      []*Model{},
	}
	transfers := []struct {
		key  string
		dst  interface{}
		opts []TransferOption
	}{
		{"structureId", &d.Description.Code, nil},
		{"title", &d.Description.Title, nil},
		{"depositionDate", &d.Description.DepositionDate, []TransferOption{AsDate()}},
		{"experimentalMethods", &d.Experiment.Technique, []TransferOption{First()}},
		{"resolution", &d.Quality.Resolution, []TransferOption{Trim(3)}},
		{"rWork", &d.Quality.RValue, []TransferOption{Trim(3)}},
		{"rFree", &d.Quality.RFree, []TransferOption{Trim(3)}},
	}
	for _, t := range transfers {
		_, err := Transfer(v, t.key, t.dst, t.opts...)
		if err != nil && !errors.Is(err, ErrInvalidField) {
			return nil, errDecorate(err, "Build")
		}
	}
	t, err := newTables(v)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	d.Geometry.Assemblies, err = buildAssemblies(v, t.chainNames)
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	d.Models, err = t.buildModels()
	if err != nil {
		return nil, errDecorate(err, "Build")
	}
	return d, nil
}
