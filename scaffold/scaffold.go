// Package scaffold provides the embedded template used by
// `tokenpage new` to create a character configuration file.
package scaffold

import (
	"embed"
	"fmt"
	"io"
	"text/template"
)

// Templates contains the scaffold template files. Files use Go
// text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// Data holds the variables passed to the character template.
type Data struct {
	Slug   string
	Name   string
	Ticker string
}

// WriteCharacter renders a new character configuration for d to w.
func WriteCharacter(w io.Writer, d Data) error {
	tmpl, err := template.ParseFS(Templates, "templates/character.json.tmpl")
	if err != nil {
		return fmt.Errorf("parse character template: %w", err)
	}
	if err := tmpl.Execute(w, d); err != nil {
		return fmt.Errorf("execute character template: %w", err)
	}
	return nil
}
