package main

import (
	"log"

	_ "github.com/keshon/prefixkit/internal/commands/core"

	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/core"
	"github.com/keshon/prefixkit/internal/docs"
)

func main() {
	if err := docs.UpdateReadme(core.Default, config.CategoryWeights, "README.md.tmpl", "README.md"); err != nil {
		log.Fatalf("[ERR] Failed to update README: %v", err)
	}
}
