package output

import (
	"strings"

	"github.com/marcus/folio/internal/models"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	Label    string
	Detail   string // muted text after the label
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowDetail bool // Whether to show the muted detail
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "\u251c\u2500\u2500 " // ├──
		if isLast {
			connector = "\u2514\u2500\u2500 " // └──
		}

		line := prefix + connector + node.Label
		if opts.ShowDetail && node.Detail != "" {
			line += " " + Muted(node.Detail)
		}
		lines = append(lines, line)

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "\u2502   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}

// ProjectNode builds the tree node for a catalog entry: the title with
// its media and download references as children.
func ProjectNode(p models.Project) TreeNode {
	node := TreeNode{Label: p.Title}
	switch {
	case p.Video != "":
		node.Children = append(node.Children, TreeNode{Label: "video", Detail: p.Video})
	case p.Image != "":
		node.Children = append(node.Children, TreeNode{Label: "image", Detail: p.Image})
	}
	if p.PDFURL != "" {
		node.Children = append(node.Children, TreeNode{Label: "pdf", Detail: p.PDFURL})
	}
	if p.DetailedDescription == "" {
		node.Detail = "(no description)"
	}
	return node
}
