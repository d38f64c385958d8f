/*
Package html extracts the text content of HTML documents into string vectors.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/strvec"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNilNode is returned if InnerText is called for a nil node.
var ErrNilNode = errors.New("html: node is nil")

// InnerText creates a string vector for the textual content of an HTML element
// and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// Every text node becomes an element of the vector, in document order.
// Text nodes consisting of white space only are dropped, as are the contents
// of <script> and <style> elements.
func InnerText(n *html.Node) (*strvec.StrVec, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	v := strvec.New()
	AppendText(v, n)
	return v, nil
}

// AppendText appends the text nodes below n to v and returns the number of
// elements appended.
func AppendText(v *strvec.StrVec, n *html.Node) int {
	l := v.Len()
	collectText(n, v)
	return v.Len() - l
}

func collectText(n *html.Node, v *strvec.StrVec) {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return
	} else if n.Type == html.TextNode {
		if strings.TrimSpace(n.Data) != "" {
			v.Append(n.Data)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, v)
	}
}

// TextFromHTML creates a string vector from the textual content of an HTML fragment.
// It does not interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (*strvec.StrVec, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	v := strvec.New()
	for _, n := range nodes {
		collectText(n, v)
	}
	return v, nil
}
