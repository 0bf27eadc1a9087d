// Command enhance-cli fills a form definition interactively and runs it
// through the validation engine, the same rules a bound page enforces.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-enhance/pkg/dom"
	"github.com/goliatone/go-enhance/pkg/forms"
	"github.com/goliatone/go-enhance/pkg/present"
)

type fieldDef struct {
	Name     string `yaml:"name"`
	Label    string `yaml:"label"`
	Kind     string `yaml:"kind"`
	Required bool   `yaml:"required"`
}

type formDef struct {
	Title  string     `yaml:"title"`
	Fields []fieldDef `yaml:"fields"`
}

func main() {
	formPath := flag.String("form", "form.yaml", "form definition to fill")
	attempts := flag.Int("attempts", 3, "validation attempts before giving up")
	flag.Parse()

	def, err := loadDefinition(*formPath)
	if err != nil {
		log.Fatalf("Failed to load form definition: %v", err)
	}
	if len(def.Fields) == 0 {
		log.Fatalf("Form definition %q has no fields", *formPath)
	}

	doc, form := buildDocument(def)
	engine := forms.New(forms.WithSink(present.NewInline()))
	bound := engine.Bind(doc)
	if len(bound) != 1 {
		log.Fatalf("Expected one bound form, got %d", len(bound))
	}

	if def.Title != "" {
		fmt.Println(def.Title)
	}

	for attempt := 1; ; attempt++ {
		if err := promptFields(def, form); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				fmt.Println("Aborted.")
				os.Exit(1)
			}
			log.Fatalf("Prompt failed: %v", err)
		}

		failed := forms.Failed(engine.Validate(bound[0]))
		if len(failed) == 0 {
			break
		}

		fmt.Println()
		for _, verdict := range failed {
			fmt.Printf("  %s: %s\n", verdict.Field.Name, verdict.Message)
		}
		if attempt >= *attempts {
			fmt.Println("Giving up.")
			os.Exit(1)
		}
		fmt.Println("Please try again.")
	}

	fmt.Println()
	fmt.Println("Accepted:")
	for _, field := range bound[0].Fields {
		if field.Kind == forms.FieldCheckbox {
			fmt.Printf("  %s: %v\n", field.Name, field.El.Checked)
			continue
		}
		fmt.Printf("  %s: %s\n", field.Name, field.El.Value)
	}
}

func loadDefinition(path string) (formDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return formDef{}, err
	}
	var def formDef
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return formDef{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return def, nil
}

// buildDocument projects the definition onto the element tree the engine
// binds against, mirroring the markup a hosting page would serve.
func buildDocument(def formDef) (*dom.Document, *dom.Element) {
	form := dom.NewElement("form", dom.WithAttr("data-validate", ""))
	for _, fd := range def.Fields {
		tag := "input"
		if fd.Kind == "textarea" {
			tag = "textarea"
		}
		field := dom.NewElement(tag, dom.WithAttr("name", fd.Name))
		switch fd.Kind {
		case "email", "tel", "checkbox":
			field.SetAttr("type", fd.Kind)
		}
		if fd.Required {
			field.SetAttr("required", "")
		}
		form.AppendChild(dom.NewElement("div", dom.WithChildren(field)))
	}
	return dom.NewDocument(dom.NewElement("body", dom.WithChildren(form))), form
}

func promptFields(def formDef, form *dom.Element) error {
	inputs := form.FindAll(dom.ByTag("input", "textarea"))
	for i, fd := range def.Fields {
		label := fd.Label
		if label == "" {
			label = fd.Name
		}
		el := inputs[i]

		if fd.Kind == "checkbox" {
			var checked bool
			prompt := &survey.Confirm{Message: label, Default: el.Checked}
			if err := survey.AskOne(prompt, &checked); err != nil {
				return err
			}
			el.Checked = checked
			continue
		}

		var value string
		if fd.Kind == "textarea" {
			prompt := &survey.Multiline{Message: label, Default: el.Value}
			if err := survey.AskOne(prompt, &value); err != nil {
				return err
			}
		} else {
			prompt := &survey.Input{Message: label, Default: el.Value}
			if err := survey.AskOne(prompt, &value); err != nil {
				return err
			}
		}
		el.Value = value
		el.Input()
	}
	return nil
}
