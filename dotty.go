package strvec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/strvec/arena"
)

type pageids struct {
	idTable map[*arena.Page]int
	max     int
}

func newtable() pageids {
	return pageids{
		idTable: make(map[*arena.Page]int),
		max:     1,
	}
}

func (ids pageids) find(page *arena.Page) int {
	return ids.idTable[page]
}

func (ids *pageids) alloc(page *arena.Page) int {
	if id := ids.find(page); id > 0 {
		return id
	}
	ids.idTable[page] = ids.max
	ids.max++
	return ids.max - 1
}

// Vec2Dot outputs the storage layout of a vector in Graphviz DOT format
// (for debugging purposes): elements in order, and the pages or side
// allocations their bytes live in.
func Vec2Dot[D any](v *Vec[D], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist strings.Builder
	for page := range v.arena.Pages() {
		ID := ids.alloc(page)
		label := fmt.Sprintf("page %d\\n%d / %d bytes", ID, page.Len(), page.Cap())
		fmt.Fprintf(&nodelist, "\"p%d\" [label=\"%s\" %s];\n", ID, label, dotStyles(arena.KindPage))
	}
	for i, sl := range v.slots {
		label := fmt.Sprintf("%d: “%s”", i, strstart(sl.str))
		if sl.str.IsNull() {
			label = fmt.Sprintf("%d: null", i)
		}
		fmt.Fprintf(&nodelist, "\"e%d\" [label=\"%s\" %s];\n", i, label, dotStyles(sl.kind))
		if i > 0 {
			fmt.Fprintf(&edgelist, "\"e%d\" -> \"e%d\" [style=dotted];\n", i-1, i)
		}
		switch sl.kind {
		case arena.KindPage:
			if page := owningPage(v, sl.str); page != nil {
				fmt.Fprintf(&edgelist, "\"e%d\" -> \"p%d\";\n", i, ids.find(page))
			} else {
				T().Errorf("vec DOT: element %d not found in any page", i)
			}
		case arena.KindSide:
			fmt.Fprintf(&nodelist, "\"s%d\" [label=\"side\\n%d bytes\" %s];\n", i, sl.str.Len()+1,
				dotStyles(arena.KindSide))
			fmt.Fprintf(&edgelist, "\"e%d\" -> \"s%d\";\n", i, i)
		}
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func owningPage[D any](v *Vec[D], s Str) *arena.Page {
	for page := range v.arena.Pages() {
		if page.Owns(s) {
			return page
		}
	}
	return nil
}

func strstart(s Str) string {
	str := s.String()
	if len(str) > 16 {
		n := 16
		for n > 0 && !utf8.RuneStart(str[n]) {
			n--
		}
		str = str[:n] + "…"
	}
	return strings.ReplaceAll(str, "\"", "\\\"")
}

func dotStyles(kind arena.Kind) string {
	s := ",style=filled"
	switch kind {
	case arena.KindPage:
		s += fmt.Sprintf(",shape=box3d,fillcolor=\"%s\"", hexcolors[2])
	case arena.KindSide:
		s += fmt.Sprintf(",shape=box,fillcolor=\"%s\"", hexhlcolors[3])
	default:
		s += ",shape=box,color=black,fillcolor=white"
	}
	return s
}

var hexhlcolors = [...]string{"#FFEEDD", "#FFDDCC", "#FFCCAA", "#FFBB88", "#FFAA66"}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF"}
