// Package render turns a selector listing into <select> markup.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"

	"cmsselect/internal/config"
	"cmsselect/internal/domain/models"
	"cmsselect/internal/selection"
)

// CSS classes set on options.
const (
	ClassGroup     = "cms-option-group"
	ClassContainer = "cms-option-container"
	ClassMuted     = "cms-option-muted"
	ClassWarn      = "cms-option-warn"
)

// Field describes the form control a listing is rendered into.
type Field struct {
	Name string
	// ID defaults to a sanitized Name.
	ID string
	// Multiple renders a multi-select that keeps a hidden companion field in
	// sync with the comma joined selection.
	Multiple bool
	Size     int
	// OptionLabel is the text of the empty first option.
	OptionLabel   string
	NoFirstOption bool
}

type optionView struct {
	Value    string
	Text     string
	Class    string
	URL      string
	Muted    bool
	Selected bool
	Disabled bool
}

type selectView struct {
	Name         string
	ID           string
	Multiple     bool
	Size         int
	Disabled     bool
	ValueFieldID string
	Value        string
	FirstOption  bool
	OptionLabel  string
	Options      []optionView
}

var selectTemplate = template.Must(template.New("select").Parse(
	`<select{{if not .Multiple}} name="{{.Name}}"{{end}} id="{{.ID}}"` +
		`{{if .Multiple}} multiple{{if gt .Size 0}} size="{{.Size}}"{{end}} data-value-field="{{.ValueFieldID}}"{{end}}` +
		`{{if .Disabled}} disabled{{end}}>` +
		`{{if .FirstOption}}<option value="">{{.OptionLabel}}</option>{{end}}` +
		`{{range .Options}}<option value="{{.Value}}"` +
		`{{if .Class}} class="{{.Class}}"{{end}}{{if .URL}} data-url="{{.URL}}"{{end}}{{if .Muted}} style="color: #666;"{{end}}` +
		`{{if .Selected}} selected{{end}}{{if .Disabled}} disabled{{end}}>{{.Text}}</option>{{end}}` +
		`</select>` +
		`{{if .Multiple}}<input type="hidden" id="{{.ValueFieldID}}" name="{{.Name}}" value="{{.Value}}">{{end}}`,
))

// Select writes the markup for listing to w.
func Select(w io.Writer, listing *models.Listing, field Field) error {
	if listing == nil {
		listing = &models.Listing{Disabled: true}
	}

	view := selectView{
		Name:         field.Name,
		ID:           field.ID,
		Multiple:     field.Multiple,
		Size:         field.Size,
		Disabled:     listing.Disabled,
		ValueFieldID: ValueFieldID(field.Name),
		FirstOption:  !field.NoFirstOption,
		OptionLabel:  field.OptionLabel,
	}
	if view.ID == "" {
		view.ID = sanitizeID(field.Name)
	}

	var selected []selection.Token
	for _, node := range listing.Nodes {
		view.Options = append(view.Options, option(node))
		if node.Selected && node.Selectable {
			selected = append(selected, node.Token)
		}
	}
	view.Value = selection.Join(selected)

	if err := selectTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("render select %s: %w", field.Name, err)
	}
	return nil
}

// String renders into a string.
func String(listing *models.Listing, field Field) (string, error) {
	var buf bytes.Buffer
	if err := Select(&buf, listing, field); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func option(node models.TreeNode) optionView {
	text := node.Label
	if node.Icon != "" {
		text = node.Icon + " " + text
	}
	text = strings.Repeat(config.LevelSpacer, max(node.Level, 0)) + text

	var classes []string
	switch {
	case node.Header:
		classes = append(classes, ClassGroup)
	case node.Orphan:
		classes = append(classes, ClassWarn)
	}
	if node.Container && !node.Header {
		classes = append(classes, ClassContainer)
	}
	if !node.Online {
		classes = append(classes, ClassMuted)
	}

	return optionView{
		Value:    node.Value,
		Text:     text,
		Class:    strings.Join(classes, " "),
		URL:      node.URL,
		Muted:    !node.Online,
		Selected: node.Selected && node.Selectable,
		Disabled: !node.Selectable,
	}
}

var nonIDChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

func sanitizeID(name string) string {
	return nonIDChars.ReplaceAllString(name, "_")
}

// ValueFieldID returns the id of the hidden field that mirrors a multi-select
// named name. Client scripts read and write the comma joined selection there.
func ValueFieldID(name string) string {
	return sanitizeID(name) + "_value"
}
