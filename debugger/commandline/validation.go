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

package commandline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue converts a numeric token. Hexadecimal values are prefixed with
// 0x or $. Everything else is decimal.
func ParseValue(s string) (uint64, error) {
	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}
	return strconv.ParseUint(s, base, 64)
}

// Validate tokenises the input and checks it against the template.
func (cmds *Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens checks the tokenised input against the template. The tokens
// are reset before returning.
func (cmds *Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()

	name, ok := tokens.Get()
	if !ok {
		return nil
	}

	c, ok := cmds.lookup(name)
	if !ok {
		return fmt.Errorf("unrecognised command (%s)", name)
	}

	for _, g := range c.args {
		tok, ok := tokens.Get()
		if !ok {
			if g.optional {
				return nil
			}
			return fmt.Errorf("missing %s for %s", g.describe(), c.name)
		}
		if !g.match(tok) {
			return fmt.Errorf("unrecognised argument (%s) for %s", tok, c.name)
		}
	}

	if tokens.Remaining() > 0 {
		return fmt.Errorf("too many arguments for %s", c.name)
	}

	return nil
}

func (g group) match(tok string) bool {
	for _, a := range g.alts {
		switch a {
		case PlaceholderValue:
			if _, err := ParseValue(tok); err == nil {
				return true
			}
		case PlaceholderFloat:
			if _, err := strconv.ParseFloat(tok, 64); err == nil {
				return true
			}
		case PlaceholderFilename, PlaceholderString:
			return true
		default:
			if strings.ToUpper(tok) == a {
				return true
			}
		}
	}
	return false
}

// a less cryptic description of the group for error messages
func (g group) describe() string {
	if len(g.alts) == 1 {
		switch g.alts[0] {
		case PlaceholderValue:
			return "numeric argument"
		case PlaceholderFloat:
			return "floating-point argument"
		case PlaceholderFilename:
			return "filename argument"
		case PlaceholderString:
			return "string argument"
		}
	}
	return fmt.Sprintf("required argument %s", g)
}
