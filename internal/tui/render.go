package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	"github.com/KirkDiggler/rpg-tooltips/internal/services/content"
)

// MaxTooltipWidth caps the tooltip box, border included
const MaxTooltipWidth = 48

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	labelStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	strongStyle = lipgloss.NewStyle().Bold(true)
	linkStyle   = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("39"))
	rollStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// RenderPayload turns tooltip HTML into boxed terminal text. An empty
// payload renders as an empty string.
func RenderPayload(payload string) string {
	text := payloadText(payload)
	if text == "" {
		return ""
	}

	// Border and padding take four cells.
	inner := MaxTooltipWidth - 4
	if w := lipgloss.Width(text); w < inner {
		inner = w
	}
	return boxStyle.Width(inner + 2).Render(text)
}

// payloadText walks the payload tokens and emits styled lines
func payloadText(payload string) string {
	if strings.TrimSpace(payload) == "" {
		return ""
	}

	var (
		out    strings.Builder
		line   strings.Builder
		styles []lipgloss.Style
		stack  []string
	)

	current := func() *lipgloss.Style {
		if len(styles) == 0 {
			return nil
		}
		return &styles[len(styles)-1]
	}
	flush := func() {
		text := strings.TrimRight(line.String(), " ")
		line.Reset()
		if text == "" {
			return
		}
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(text)
	}
	push := func(tag string, st lipgloss.Style) {
		stack = append(stack, tag)
		styles = append(styles, st)
	}
	pop := func(tag string) {
		for i := len(stack) - 1; i >= 0; i-- {
			if stack[i] == tag {
				stack = stack[:i]
				styles = styles[:i]
				return
			}
		}
	}

	z := html.NewTokenizer(strings.NewReader(payload))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			flush()
			return out.String()

		case html.TextToken:
			text := collapseSpace(string(z.Text()))
			if text == "" {
				continue
			}
			if line.Len() == 0 {
				text = strings.TrimLeft(text, " ")
			}
			if st := current(); st != nil {
				text = st.Render(text)
			}
			line.WriteString(text)

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "br":
				flush()
			case "h3":
				flush()
				push("h3", titleStyle)
			case "p":
				flush()
			case "div":
				switch classOf(tok) {
				case content.ClassLabel:
					flush()
					push("div", labelStyle)
				case content.ClassDesc:
					flush()
					push("div", lipgloss.NewStyle())
				default:
					push("div", inherit(current()))
				}
			case "strong", "b":
				push(tok.Data, strongStyle)
			case "a":
				push("a", linkStyle)
			case "span":
				if strings.Contains(classOf(tok), "inline-roll") {
					push("span", rollStyle)
				} else {
					push("span", inherit(current()))
				}
			}

		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "h3", "div":
				pop(tok.Data)
				flush()
			case "p":
				flush()
			case "strong", "b", "a", "span":
				pop(tok.Data)
			}
		}
	}
}

func inherit(st *lipgloss.Style) lipgloss.Style {
	if st == nil {
		return lipgloss.NewStyle()
	}
	return *st
}

func classOf(tok html.Token) string {
	for _, a := range tok.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\t") {
		out = " " + out
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\t") {
		out += " "
	}
	return out
}
