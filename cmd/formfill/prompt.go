package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	fv "github.com/Gobd/formvalidation"
)

// prompt asks for one element's value and stores it in m.
type prompt func(e fv.Element, m *fv.Model) error

func newPromptRegistry() *fv.Registry[prompt] {
	return fv.NewRegistry[prompt]().
		Register(fv.ElementText, askText).
		Register(fv.ElementNumber, askNumber).
		Register(fv.ElementCheckbox, askCheckbox).
		Register(fv.ElementSelect, askSelect)
}

func label(e fv.Element) string {
	if e.Field != nil && e.Field.Label != "" {
		return e.Field.Label
	}
	return e.ID
}

func help(e fv.Element) string {
	if e.Field == nil {
		return ""
	}
	return e.Field.Description
}

// fieldValidator stores each answer through conv and reports the field's
// error, so survey re-asks until the value is valid.
func fieldValidator(e fv.Element, m *fv.Model, conv func(string) (fv.Value, error)) survey.Validator {
	return func(ans any) error {
		s, _ := ans.(string)
		v, err := conv(s)
		if err != nil {
			return err
		}
		m.SetValue(e.ID, v)
		m.MarkTouched(e.ID)
		if msg := m.VisibleError(e.ID); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func askText(e fv.Element, m *fv.Model) error {
	cur, _ := m.Value(e.ID)
	def, _ := cur.Str()

	var out string
	q := &survey.Input{Message: label(e), Default: def, Help: help(e)}
	conv := func(s string) (fv.Value, error) { return fv.String(s), nil }
	if err := survey.AskOne(q, &out, survey.WithValidator(fieldValidator(e, m, conv))); err != nil {
		return err
	}
	m.SetValue(e.ID, fv.String(out))
	return nil
}

func askNumber(e fv.Element, m *fv.Model) error {
	cur, _ := m.Value(e.ID)

	var out string
	q := &survey.Input{Message: label(e), Default: cur.String(), Help: help(e)}
	conv := func(s string) (fv.Value, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fv.Value{}, errors.New("must be a number")
		}
		return fv.Number(f), nil
	}
	if err := survey.AskOne(q, &out, survey.WithValidator(fieldValidator(e, m, conv))); err != nil {
		return err
	}
	v, err := conv(out)
	if err != nil {
		return err
	}
	m.SetValue(e.ID, v)
	return nil
}

func askCheckbox(e fv.Element, m *fv.Model) error {
	cur, _ := m.Value(e.ID)
	def, _ := cur.Boolean()

	var out bool
	q := &survey.Confirm{Message: label(e), Default: def, Help: help(e)}
	if err := survey.AskOne(q, &out); err != nil {
		return err
	}
	m.SetValue(e.ID, fv.Bool(out))
	m.MarkTouched(e.ID)
	return nil
}

func askSelect(e fv.Element, m *fv.Model) error {
	q := &survey.Select{Message: label(e), Options: e.Options, Help: help(e)}
	cur, _ := m.Value(e.ID)
	if s, ok := cur.Str(); ok {
		for _, o := range e.Options {
			if o == s {
				q.Default = s
				break
			}
		}
	}

	var out string
	if err := survey.AskOne(q, &out); err != nil {
		return err
	}
	m.SetValue(e.ID, fv.String(out))
	m.MarkTouched(e.ID)
	return nil
}
