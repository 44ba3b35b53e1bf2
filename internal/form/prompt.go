package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	oerrors "github.com/upmkit/cli/internal/errors"
	"github.com/upmkit/cli/internal/naming"
)

// Choice is one selectable template.
type Choice struct {
	Value string
	Label string
}

// Prompter collects form values and confirmations from the user.
type Prompter interface {
	// Fill lets the user edit f in place. templates lists the selectable
	// template names.
	Fill(ctx context.Context, f *Form, templates []Choice) error

	// Confirm asks a yes/no question. A declined question returns false, nil.
	Confirm(title, description string) (bool, error)
}

var runForm = func(ctx context.Context, form *huh.Form) error {
	return form.RunWithContext(ctx)
}

var runConfirm = func(title, description string, value *bool) error {
	return huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Replace").
		Negative("Cancel").
		Value(value).
		Run()
}

// HuhPrompter implements Prompter with charmbracelet/huh.
type HuhPrompter struct{}

// Fill runs a three-page form: identity, author, layout.
func (HuhPrompter) Fill(ctx context.Context, f *Form, templates []Choice) error {
	options := make([]huh.Option[string], len(templates))
	for i, c := range templates {
		options[i] = huh.NewOption(c.Label, c.Value)
	}

	keywords := strings.Join(f.Keywords, ", ")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Value(&f.Company).
				Validate(required("company name")),
			huh.NewInput().
				Title("Package name").
				Description("Lower-case words separated by hyphens, e.g. cool-tool").
				Value(&f.Package).
				Validate(required("package name")),
			huh.NewInput().
				Title("Display name").
				Placeholder(naming.DisplayName(f.Package)).
				Value(&f.DisplayName),
			huh.NewInput().
				Title("Description").
				Value(&f.Description),
			huh.NewInput().
				Title("Version").
				Value(&f.Version).
				Validate(naming.ValidateVersion),
		).Title("Package"),
		huh.NewGroup(
			huh.NewInput().Title("Author name").Value(&f.AuthorName),
			huh.NewInput().Title("Author email").Value(&f.AuthorEmail),
			huh.NewInput().Title("Author URL").Value(&f.AuthorURL),
			huh.NewInput().
				Title("Keywords").
				Description("Comma separated").
				Value(&keywords),
		).Title("Author"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Template").
				Options(options...).
				Value(&f.Template),
			huh.NewInput().
				Title("Unity version").
				Description("Full editor version, e.g. 6000.2.1f1").
				Value(&f.UnityVersion).
				Validate(required("unity version")),
			huh.NewInput().
				Title("Output directory").
				Value(&f.OutputDir).
				Validate(required("output directory")),
		).Title("Layout"),
	)

	if err := runForm(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return oerrors.NewAbortedError("package form cancelled", "")
		}
		return fmt.Errorf("prompt form: %w", err)
	}

	f.Keywords = splitKeywords(keywords)
	return nil
}

// Confirm shows a Replace/Cancel question.
func (HuhPrompter) Confirm(title, description string) (bool, error) {
	var ok bool
	if err := runConfirm(title, description, &ok); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return ok, nil
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func splitKeywords(s string) []string {
	var out []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
