package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/notoize"
	"github.com/pterm/pterm"
)

var errNoStack = errors.New("no font stack resolved yet; enter some text first")

func (intp *Intp) stackOp(text string) error {
	res, err := notoize.Stack(text, intp.config)
	if err != nil {
		return err
	}
	intp.result = res
	data := [][]string{
		{"Font", "Script"},
	}
	for _, v := range res.Fonts {
		data = append(data, []string{v.Name(), v.Script().String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if len(res.Uncovered) > 0 {
		pterm.Error.Printf("%d codepoint(s) not covered by any known script:\n", len(res.Uncovered))
		for _, r := range res.Uncovered {
			pterm.Printf("    U+%04X\n", r)
		}
	}
	for _, fb := range res.Fallbacks {
		pterm.Printf("note: %s has no %s face, using %s\n",
			fb.Script, fb.Requested, fb.Variant.Name())
	}
	return nil
}

func (intp *Intp) filesOp() error {
	if intp.result == nil {
		return errNoStack
	}
	data := [][]string{
		{"Font", "File", "Repository path"},
	}
	for _, ref := range intp.result.Files() {
		data = append(data, []string{ref.Name, ref.Filename, ref.RepoPath})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

func (intp *Intp) mapOp() error {
	if intp.result == nil {
		return errNoStack
	}
	runes := make([]rune, 0, len(intp.result.Map))
	for r := range intp.result.Map {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	data := [][]string{
		{"Codepoint", "Char", "Font"},
	}
	for _, r := range runes {
		data = append(data, []string{
			fmt.Sprintf("U+%04X", r),
			string(r),
			intp.result.Map[r].Name(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}

func (intp *Intp) missingOp() error {
	if intp.result == nil {
		return errNoStack
	}
	missing := intp.result.MissingVariants()
	if len(missing) == 0 {
		pterm.Info.Println("the stack holds every variant of its scripts")
		return nil
	}
	data := [][]string{
		{"Font", "Script"},
	}
	for _, v := range missing {
		data = append(data, []string{v.Name(), v.Script().String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil
}
