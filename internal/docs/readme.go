// Package docs renders README.md from the live command registry so the
// documentation never drifts from the code.
package docs

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"sort"
	"text/template"

	"github.com/keshon/prefixkit/internal/core"
)

// UpdateReadme generates README.md from the command registry and
// category ordering. categoryWeights maps category name to sort order,
// lower first.
func UpdateReadme(registry *core.Registry, categoryWeights map[string]int, tmplPath, outPath string) error {
	commands := registry.All()
	sort.Slice(commands, func(i, j int) bool {
		wi := categoryWeights[commands[i].Category()]
		wj := categoryWeights[commands[j].Category()]
		if wi == wj {
			return commands[i].Name() < commands[j].Name()
		}
		return wi < wj
	})

	var buf bytes.Buffer
	currentCategory := ""
	for _, c := range commands {
		if c.RequireDev() {
			continue
		}
		if c.Category() != currentCategory {
			if currentCategory != "" {
				buf.WriteString("\n")
			}
			currentCategory = c.Category()
			buf.WriteString(fmt.Sprintf("### %s\n\n", currentCategory))
		}

		marker := ""
		if c.RequireAdmin() {
			marker = " (admin)"
		}
		buf.WriteString(fmt.Sprintf("- **!%s** — %s%s\n", c.Name(), c.Description(), marker))
	}

	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	data := struct {
		CommandSections string
	}{
		CommandSections: buf.String(),
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render readme: %w", err)
	}

	log.Println("[INFO] README.md updated with current commands")
	return nil
}
