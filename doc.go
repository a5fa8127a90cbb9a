/*
 * doc.go, part of gommtf.
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

/*Package mmtf decodes MMTF files, the compact binary format for macromolecular
structures, into a DataDict: a description of the entry, its experiment and
quality figures, the biological assemblies and one Model per deposited model,
each holding its polymer chains, non-polymer molecules and waters down to
the atoms.

The msgpack envelope and the binary fields are handled by the envelope and
codec subpackages. Decode and Build are pure functions of their input: they
don't log, keep no state and can be used concurrently. Read and ReadFile add
the I/O, including gzip and zstd decompression.

	d, err := mmtf.ReadFile("1lol.mmtf.gz")
	if err != nil {
		...
	}
	coords, atoms := d.Models[0].Coords()

*/
package mmtf
