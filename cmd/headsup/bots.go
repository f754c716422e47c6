package main

import (
	"fmt"

	"github.com/lox/headsup/internal/bot"
)

// BotsCmd lists the built-in engines.
type BotsCmd struct{}

func (c *BotsCmd) Run() error {
	registry := bot.DefaultRegistry()
	for _, id := range registry.IDs() {
		def, _ := registry.Get(id)
		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-10s", id)), def.Name)
	}
	return nil
}
