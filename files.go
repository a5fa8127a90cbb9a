/*
 * files.go, part of gommtf.
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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gommtf/envelope"
	"go.uber.org/zap"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

//Compression returns the compression of a stream starting with head:
//"gzip", "zstd" or "" for none.
func Compression(head []byte) string {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return "gzip"
	case bytes.HasPrefix(head, zstdMagic):
		return "zstd"
	}
	return ""
}

//decompress returns a reader that decompresses r if it starts with the gzip or
//zstd magic numbers, or that just reads r otherwise.
func decompress(r io.Reader, logger *zap.Logger) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))
	kind := Compression(head)
	logger.Debug("detected input compression", zap.String("compression", kind))
	switch kind {
	case "gzip":
		return gzip.NewReader(br)
	case "zstd":
		d, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
	return io.NopCloser(br), nil
}

func readAll(r io.Reader, c *config) ([]byte, error) {
	in, err := decompress(r, c.logger)
	if err != nil {
		return nil, fmt.Errorf("mmtf: can't decompress input: %w", err)
	}
	defer in.Close()
	b, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("mmtf: can't read input: %w", err)
	}
	c.logger.Debug("read input", zap.Int("bytes", len(b)))
	return b, nil
}

//Read reads a whole MMTF file from r, decompressing it if needed, and decodes it.
func Read(r io.Reader, opts ...Option) (*DataDict, error) {
	c := newConfig(opts)
	b, err := readAll(r, c)
	if err != nil {
		return nil, err
	}
	d, err := Decode(b, opts...)
	if err != nil {
		c.logger.Debug("decoding failed", zap.Error(err))
		return nil, errDecorate(err, "Read")
	}
	c.logger.Debug("decoded file",
		zap.Int("models", len(d.Models)),
		zap.Int("assemblies", len(d.Geometry.Assemblies)))
	return d, nil
}

//ReadValue reads a whole MMTF file from r, like Read, but only unpacks it,
//without building the DataDict. It gives access to the fields that are not
//part of a DataDict.
func ReadValue(r io.Reader, opts ...Option) (envelope.Value, error) {
	c := newConfig(opts)
	b, err := readAll(r, c)
	if err != nil {
		return envelope.Value{}, err
	}
	v, err := envelope.Unmarshal(b, c.envelopeOptions()...)
	if err != nil {
		return envelope.Value{}, errDecorate(fmt.Errorf("mmtf: %w", err), "ReadValue")
	}
	c.logger.Debug("unpacked file", zap.Int("fields", v.Len()))
	return v, nil
}

//ReadFile reads and decodes the MMTF file with the given name.
//The file can be gzip or zstd compressed.
func ReadFile(name string, opts ...Option) (*DataDict, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f, opts...)
	if err != nil {
		return nil, errDecorate(err, "ReadFile: "+name)
	}
	return d, nil
}
