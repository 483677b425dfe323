package table

import (
	"fmt"
	"html"
	"io"
)

// AsHTML exports a parse table in HTML-format. If ruleText is non-nil, it is
// called for every non-blank cell and the result is attached as a tooltip.
func (t *Table) AsHTML(w io.Writer, title string, ruleText func(int) string) error {
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("<html><body>\n")
	write(fmt.Sprintf("<h3>%s</h3><p>", html.EscapeString(title)))
	write(fmt.Sprintf("parse table of size %d x %d, %d entries<p>",
		len(t.nonterminals), len(t.terminals), t.matrix.ValueCount()))
	write("<table border=1 cellspacing=0 cellpadding=5>\n")
	write("<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range t.terminals {
		write(fmt.Sprintf("<td>%s</td>", html.EscapeString(a.Name())))
	}
	write("</tr>\n")
	var td string // table cell
	for i, A := range t.nonterminals {
		write(fmt.Sprintf("<tr><td bgcolor=#cccccc>%s</td>\n", html.EscapeString(A.Name())))
		for j := range t.terminals {
			v := t.matrix.Value(i, j)
			if v == t.matrix.NullValue() {
				td = "&nbsp;"
			} else if ruleText != nil {
				td = fmt.Sprintf("<span title=\"%s\">%d</span>", html.EscapeString(ruleText(int(v))), v)
			} else {
				td = fmt.Sprintf("%d", v)
			}
			write("<td>")
			write(td)
			write("</td>\n")
		}
		write("</tr>\n")
	}
	write("</table></body></html>\n")
	return err
}
