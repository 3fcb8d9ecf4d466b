package cmd

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootPage = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

const childPage = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// pageMeta is for describing the position/info for a command doc page
type pageMeta struct {
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var pageMetaMap = map[string]pageMeta{
	"pilercr-parser": {
		title:    "pilercr-parser",
		navOrder: 0,
	},
	"pilercr-parser_parse": {
		title:    "parse",
		navOrder: 1,
		parent:   "pilercr-parser",
	},
	"pilercr-parser_gff": {
		title:    "gff",
		navOrder: 2,
		parent:   "pilercr-parser",
	},
	"pilercr-parser_summary": {
		title:    "summary",
		navOrder: 3,
		parent:   "pilercr-parser",
	},
}

// docsCmd regenerates the Markdown documentation pages
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := doc.GenMarkdownTreeCustom(RootCmd, "./docs", filePrepender, linkHandler); err != nil {
			logger.Fatal(err)
		}
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))
	m := pageMetaMap[base]

	if m.parent == "" {
		return fmt.Sprintf(rootPage, m.title, m.navOrder)
	}
	return fmt.Sprintf(childPage, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "pilercr-parser" {
		return "/"
	}
	return base
}
