// Package cli routes subcommands to the store and the interactive view.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tickdone/tick/internal/model"
	"github.com/tickdone/tick/internal/store"
	"github.com/tickdone/tick/internal/tui"
	"github.com/tickdone/tick/internal/ui"
)

// Options tune output behavior from root flags and config.
type Options struct {
	Plain bool   // print the list instead of starting the TUI
	Theme string // initial theme name for the TUI
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, st store.Store, opt Options) int {
	if len(args) == 0 {
		args = []string{"ls"}
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList(st, opt)

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: tick add <text...>")
			return 2
		}
		return doAdd(st, strings.Join(a, " "))

	case "edit":
		if len(a) < 2 {
			ui.Fail("usage: tick edit <index> <text...>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("edit: not a number: " + a[0])
			return 2
		}
		return doEdit(st, n, strings.Join(a[1:], " "))

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: tick rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(st, n)
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`tick - a tiny todo list

Usage:
  tick [flags] <subcommand> [args]

Subcommands:
  ls                 Show the list (interactive TUI; -plain to print)
  add <text...>      Add a new item (text can be multiple words)
  edit <index> <text...>   Replace the text of the item at 1-based index
  rm <index>         Remove the item at 1-based index

Examples:
  tick add "Buy milk"
  tick ls
  tick edit 1 "Buy oat milk"
  tick rm 2
`)
}

func doList(st store.Store, opt Options) int {
	if !opt.Plain {
		if err := tui.Run(st, ui.ByName(opt.Theme)); err != nil {
			ui.Fail("tui: " + err.Error())
			return 1
		}
		return 0
	}
	items := st.Load()
	if len(items) == 0 {
		ui.Hint("nothing to do")
		return 0
	}
	for i, it := range items {
		fmt.Printf("%2d. %s\n", i+1, it.Text)
	}
	return 0
}

func doAdd(st store.Store, text string) int {
	items := st.Load()
	next, ok := model.Add(items, text)
	if !ok {
		ui.Fail("add: empty text")
		return 2
	}
	st.Save(next)
	ui.OK("added")
	return 0
}

func doEdit(st store.Store, userIndex int, text string) int {
	items := st.Load()
	id, code := resolveIndex(items, userIndex)
	if code != 0 {
		return code
	}
	next, ok := model.SetText(items, id, text)
	if !ok {
		ui.Fail("edit: empty text")
		return 2
	}
	st.Save(next)
	ui.OK("updated")
	return 0
}

func doRemove(st store.Store, userIndex int) int {
	items := st.Load()
	id, code := resolveIndex(items, userIndex)
	if code != 0 {
		return code
	}
	next, _ := model.Remove(items, id)
	st.Save(next)
	ui.OK("removed")
	return 0
}

// resolveIndex maps a 1-based display index to an item id.
func resolveIndex(items []model.Item, userIndex int) (string, int) {
	if userIndex < 1 || userIndex > len(items) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(items), userIndex))
		ui.Hint("Hint: run `tick ls -plain` to see valid indexes")
		return "", 2
	}
	return items[userIndex-1].ID, 0
}
