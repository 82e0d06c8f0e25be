// This file is part of mc6809.
//
// mc6809 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mc6809 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mc6809.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

// Labels names addresses. A label is used in place of the address in the
// operand of extended, 16 bit immediate and relative instructions.
type Labels map[uint16]string

// FlexLabels returns the entry points and system variables of the FLEX
// operating system.
func FlexLabels() Labels {
	return Labels{
		// DOS entry points
		0xcd00: "COLDS",
		0xcd03: "WARMS",
		0xcd06: "RENTER",
		0xcd09: "INCH",
		0xcd0c: "INCH2",
		0xcd0f: "OUTCH",
		0xcd12: "OUTCH2",
		0xcd15: "GETCHR",
		0xcd18: "PUTCHR",
		0xcd1b: "INBUFF",
		0xcd1e: "PSTRNG",
		0xcd21: "CLASS",
		0xcd24: "PCRLF",
		0xcd27: "NXTCH",
		0xcd2a: "RSTRIO",
		0xcd2d: "GETFIL",
		0xcd30: "LOAD",
		0xcd33: "SETEXT",
		0xcd36: "ADDBX",
		0xcd39: "OUTDEC",
		0xcd3c: "OUTHEX",
		0xcd3f: "RPTERR",
		0xcd42: "GETHEX",
		0xcd45: "OUTADR",
		0xcd48: "INDEC",
		0xcd4b: "DOCMND",
		0xcd4e: "STAT",

		// FMS entry points
		0xd400: "FMSINI",
		0xd403: "FMSCLS",
		0xd406: "FMS",
		0xc840: "FCB",

		// system variables
		0xd435: "VFYFLG",
		0xc080: "LINBUF",
		0xcc00: "TTYBS",
		0xcc01: "TTYDEL",
		0xcc02: "TTYEOL",
		0xcc03: "TTYDPT",
		0xcc04: "TTYWDT",
		0xcc11: "TTYTRM",
		0xcc12: "COMTBL",
		0xcc14: "LINBFP",
		0xcc16: "ESCRET",
		0xcc18: "LINCHR",
		0xcc19: "LINPCH",
		0xcc1a: "LINENR",
		0xcc1b: "LODOFS",
		0xcc1d: "TFRFLG",
		0xcc1e: "TFRADR",
		0xcc20: "FMSERR",
		0xcc21: "IOFLG",
		0xcc22: "OUTSWT",
		0xcc23: "INSWT",
		0xcc24: "OUTADR",
		0xcc26: "INADR",
		0xcc28: "COMFLG",
		0xcc29: "OUTCOL",
		0xcc2a: "SCRATC",
		0xcc2b: "MEMEND",
		0xcc2d: "ERRVEC",
		0xcc2f: "INECHO",

		// printer support
		0xccc0: "PRTINI",
		0xccd8: "PRTCHK",
		0xcce4: "PRTOUT",
	}
}
