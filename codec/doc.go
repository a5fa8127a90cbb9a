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

/*
Package codec decodes (and encodes) the binary fields of MMTF files.

A binary field is a 12-byte header followed by a payload. The header holds three
big-endian int32: the codec (strategy) id, the number of elements and a
codec-dependent parameter. The ten strategies are:

	1   float32
	2   int8
	3   int16
	4   int32
	5   4-byte NUL-padded ASCII strings
	6   run-length encoded characters (int32 pairs)
	7   run-length encoded int32
	8   run-length + delta encoded int32
	9   run-length encoded fixed-point int32, divided by the parameter
	10  recursive-indexed, delta encoded int16, divided by the parameter

All multi-byte numbers are big-endian. Integer results are returned as int,
fixed-point results as float64.

The primitive transforms (RunLengthDecode, DeltaDecode, RecursiveDecode) are
exported, together with their inverses, so they can be used on their own.
*/
package codec
