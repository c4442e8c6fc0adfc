package output

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// Tree characters
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// Description alignment column
	descriptionColumn = 30
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders a file tree with descriptions aligned at column 30.
// Files is a map of slash-separated relative paths to their descriptions.
// rootName is the root directory name.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	// Build tree structure
	root := &TreeNode{
		Name:     rootName,
		IsDir:    true,
		Children: []*TreeNode{},
	}

	for path, desc := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root

		for i, part := range parts {
			isLast := i == len(parts)-1

			// Find or create child
			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{
					Name:     part,
					IsDir:    !isLast,
					Children: []*TreeNode{},
				}
				current.Children = append(current.Children, child)
			}

			if isLast {
				child.Description = desc
			}

			current = child
		}
	}

	// Sort children alphabetically (directories first)
	sortTree(root)

	// Render tree
	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

// sortTree recursively sorts tree nodes (directories first, then alphabetically).
func sortTree(node *TreeNode) {
	if len(node.Children) == 0 {
		return
	}

	sort.Slice(node.Children, func(i, j int) bool {
		// Directories before files
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		// Alphabetical
		return node.Children[i].Name < node.Children[j].Name
	})

	for _, child := range node.Children {
		sortTree(child)
	}
}

// renderNode recursively renders a tree node with proper indentation and styling.
func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		// Root node
		name := node.Name + "/"
		sb.WriteString(StyleSummary.Render(name))
		sb.WriteString("\n")
	} else {
		// Child node
		connector := treeEdge
		if isLast {
			connector = treeLast
		}

		name := node.Name
		if node.IsDir {
			name += "/"
		}

		line := prefix + connector + name

		// Add description if present, aligned to column 30. The padding is
		// computed on the unstyled line.
		if node.Description != "" {
			padding := descriptionColumn - utf8.RuneCountInString(line)
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding)
			line += node.Description
		}

		sb.WriteString(line)
		sb.WriteString("\n")
	}

	// Render children
	for i, child := range node.Children {
		childIsLast := i == len(node.Children)-1

		var childPrefix string
		if isRoot {
			childPrefix = ""
		} else {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}

		renderNode(sb, child, childPrefix, false, childIsLast)
	}
}

// RenderStatusTree renders relative paths with their color-coded status.
func RenderStatusTree(rootName string, statuses map[string]string) string {
	files := make(map[string]string, len(statuses))
	for path, status := range statuses {
		files[path] = StatusStyle(status).Render(status)
	}
	return RenderFileTree(rootName, files)
}
