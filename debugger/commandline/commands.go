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
	"sort"
	"strings"
)

// Placeholders that can be used in a template.
const (
	PlaceholderValue    = "%V"
	PlaceholderFloat    = "%I"
	PlaceholderFilename = "%F"
	PlaceholderString   = "%S"
)

type group struct {
	optional bool
	alts     []string
}

func (g group) String() string {
	s := strings.Join(g.alts, "|")
	if g.optional {
		return fmt.Sprintf("(%s)", s)
	}
	return fmt.Sprintf("[%s]", s)
}

// the keywords in a group. ie. the alternatives that aren't placeholders
func (g group) keywords() []string {
	var k []string
	for _, a := range g.alts {
		if !strings.HasPrefix(a, "%") {
			k = append(k, a)
		}
	}
	return k
}

type command struct {
	name string
	args []group
}

func (c command) String() string {
	s := strings.Builder{}
	s.WriteString(c.name)
	for _, a := range c.args {
		s.WriteString(" ")
		s.WriteString(a.String())
	}
	return s.String()
}

// Commands is the root of the parsed template.
type Commands struct {
	cmds  []command
	index map[string]int
}

// ParseCommandTemplate turns a string representation of a command template
// into a Commands instance.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		index: make(map[string]int),
	}

	for _, t := range template {
		f := strings.Fields(t)
		if len(f) == 0 {
			return nil, fmt.Errorf("empty template entry")
		}

		c := command{name: strings.ToUpper(f[0])}
		if strings.ContainsAny(c.name, "[]()|%") {
			return nil, fmt.Errorf("invalid command name (%s)", f[0])
		}
		if _, ok := cmds.index[c.name]; ok {
			return nil, fmt.Errorf("duplicate command (%s)", c.name)
		}

		optional := false
		for _, a := range f[1:] {
			g, err := parseGroup(a)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", c.name, err)
			}
			if optional && !g.optional {
				return nil, fmt.Errorf("%s: required argument after optional argument", c.name)
			}
			optional = g.optional
			c.args = append(c.args, g)
		}

		cmds.index[c.name] = len(cmds.cmds)
		cmds.cmds = append(cmds.cmds, c)
	}

	sort.Slice(cmds.cmds, func(i, j int) bool {
		return cmds.cmds[i].name < cmds.cmds[j].name
	})
	for i, c := range cmds.cmds {
		cmds.index[c.name] = i
	}

	return cmds, nil
}

func parseGroup(s string) (group, error) {
	var g group

	switch {
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		s = s[1 : len(s)-1]
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		g.optional = true
		s = s[1 : len(s)-1]
	case strings.ContainsAny(s, "[]()"):
		return g, fmt.Errorf("unbalanced brackets (%s)", s)
	}

	for _, a := range strings.Split(s, "|") {
		if a == "" {
			return g, fmt.Errorf("empty alternative (%s)", s)
		}
		if strings.HasPrefix(a, "%") {
			switch a {
			case PlaceholderValue, PlaceholderFloat, PlaceholderFilename, PlaceholderString:
			default:
				return g, fmt.Errorf("unknown placeholder (%s)", a)
			}
		} else {
			a = strings.ToUpper(a)
		}
		g.alts = append(g.alts, a)
	}

	return g, nil
}

func (cmds *Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Names returns the sorted list of command names.
func (cmds *Commands) Names() []string {
	n := make([]string, 0, len(cmds.cmds))
	for _, c := range cmds.cmds {
		n = append(n, c.name)
	}
	return n
}

// Usage returns the template for the named command. Returns the empty string
// if the command does not exist.
func (cmds *Commands) Usage(name string) string {
	if i, ok := cmds.index[strings.ToUpper(name)]; ok {
		return cmds.cmds[i].String()
	}
	return ""
}

func (cmds *Commands) lookup(name string) (command, bool) {
	i, ok := cmds.index[strings.ToUpper(name)]
	if !ok {
		return command{}, false
	}
	return cmds.cmds[i], true
}
