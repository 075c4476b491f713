package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/simonhull/firebird-suite/quill/ansi"
	"github.com/simonhull/firebird-suite/quill/key"
	"github.com/simonhull/firebird-suite/quill/term"
)

// PathOptions configures a PathBrowser prompt. A nil *PathOptions means
// defaults.
type PathOptions struct {
	// Base is the directory browsing cannot ascend above. Empty means the
	// starting directory's filesystem root.
	Base string

	// Start is the directory the browser opens in. Empty means the
	// current working directory.
	Start string

	// Validate runs on a chosen file path before the prompt completes; a
	// failure is shown and browsing continues.
	Validate Validator[string]

	// ShowHidden includes dotfiles in listings.
	ShowHidden bool

	// MaxVisible caps how many entries are drawn at once. Zero means
	// DefaultMaxVisible.
	MaxVisible int
}

// pathEntry is one row of the browser listing.
type pathEntry struct {
	name  string
	isDir bool
	goUp  bool // the synthetic ".." row
}

// pathState is replaced wholesale on every transition.
type pathState struct {
	dir     string
	filter  []rune
	entries []pathEntry
	cursor  int
	window  int
	notice  string
}

// PathBrowser asks the operator to navigate the filesystem and pick a file.
// Directories sort before files, each group lexicographically, regardless
// of filesystem enumeration order. Typing narrows the listing by
// case-insensitive prefix; Tab completes a single unambiguous match; Enter
// descends into a directory or returns a file path after validation;
// Backspace on an empty filter ascends (never above Base).
//
// Without a terminal, PathBrowser degrades to a typed path validated the
// same way.
func PathBrowser(r *term.Reader, message string, opts *PathOptions) (string, error) {
	if opts == nil {
		opts = &PathOptions{}
	}

	start := opts.Start
	if start == "" {
		start = "."
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	base := opts.Base
	if base != "" {
		base, err = filepath.Abs(base)
		if err != nil {
			return "", fmt.Errorf("resolving base directory: %w", err)
		}
	}

	maxVisible := opts.MaxVisible
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}

	w := r.Out()
	prevLines := 0

	render := func(state any, first bool) {
		st := state.(*pathState)
		if !first {
			ansi.ClearLines(w, prevLines)
		}

		lines := 0
		fmt.Fprintf(w, "%s%s %s %s\n", stylePrefix(DefaultPrefix), styleMessage(message),
			styleHint(st.dir), string(st.filter))
		lines++

		end := st.window + maxVisible
		if end > len(st.entries) {
			end = len(st.entries)
		}
		for i := st.window; i < end; i++ {
			fmt.Fprintln(w, renderPathLine(st.entries[i], i == st.cursor))
			lines++
		}
		if remaining := len(st.entries) - end; remaining > 0 {
			fmt.Fprintln(w, styleHint(fmt.Sprintf("  +%d more", remaining)))
			lines++
		}
		if len(st.entries) == 0 {
			fmt.Fprintln(w, styleHint("  (empty)"))
			lines++
		}
		if st.notice != "" {
			fmt.Fprintln(w, styleHint("  "+st.notice))
			lines++
		}

		prevLines = lines
	}

	load := func(dir string, filter []rune) *pathState {
		entries := listDir(dir, string(filter), opts.ShowHidden)
		if base == "" || dir != base {
			entries = append([]pathEntry{{name: "..", isDir: true, goUp: true}}, entries...)
		}
		return &pathState{dir: dir, filter: filter, entries: entries}
	}

	ascend := func(st *pathState) *pathState {
		parent := filepath.Dir(st.dir)
		if base != "" && !strings.HasPrefix(parent, base) {
			return st
		}
		if parent == st.dir {
			return st
		}
		return load(parent, nil)
	}

	handle := func(ev key.Event, state any) (Step[string], error) {
		st := state.(*pathState)

		switch {
		case ev.IsEscape() || ev.IsInterrupt():
			ansi.ShowCursor(w)
			return Step[string]{}, ErrCancelled

		case ev.IsReturn():
			if len(st.entries) == 0 {
				return Continue[string](st), nil
			}
			entry := st.entries[st.cursor]
			if entry.goUp {
				return Continue[string](ascend(st)), nil
			}
			full := filepath.Join(st.dir, entry.name)
			if entry.isDir {
				return Continue[string](load(full, nil)), nil
			}
			if opts.Validate != nil {
				if err := opts.Validate(full); err != nil {
					next := load(st.dir, st.filter)
					next.cursor, next.window, next.notice = st.cursor, st.window, err.Error()
					return Continue[string](next), nil
				}
			}
			return Done(full), nil

		case ev.IsTab():
			if match, ok := singleMatch(st.entries); ok {
				next := load(st.dir, []rune(match.name))
				if match.isDir {
					return Continue[string](load(filepath.Join(st.dir, match.name), nil)), nil
				}
				return Continue[string](next), nil
			}
			return Continue[string](st), nil

		case ev.IsBackspace():
			if len(st.filter) > 0 {
				return Continue[string](load(st.dir, st.filter[:len(st.filter)-1])), nil
			}
			return Continue[string](ascend(st)), nil

		case ev.Name == "up":
			return Continue[string](movePathCursor(st, -1, maxVisible)), nil

		case ev.Name == "down":
			return Continue[string](movePathCursor(st, +1, maxVisible)), nil

		case ev.IsChar():
			return Continue[string](load(st.dir, append(copyRunes(st.filter), ev.Rune()))), nil
		}

		return Continue[string](st), nil
	}

	ks := &KeySchema[string]{
		Message:   message,
		Init:      func() any { return load(start, nil) },
		Render:    render,
		HandleKey: handle,
		Cleanup:   func() { ansi.ShowCursor(w) },
		Fallback: func() (string, error) {
			ls := &LineSchema[string]{
				Message: message,
				Hint:    func() string { return "(path)" },
				Parse: func(trimmed string, empty bool) (string, error) {
					if empty {
						return "", fmt.Errorf("a path is required")
					}
					return trimmed, nil
				},
			}
			if opts.Validate != nil {
				ls.Validators = []Validator[string]{opts.Validate}
			}
			return Run(r, Schema[string]{Line: ls})
		},
	}

	return Run(r, Schema[string]{Key: ks})
}

func renderPathLine(entry pathEntry, focused bool) string {
	marker := "  "
	if focused {
		marker = styleCursor("❯ ")
	}

	name := entry.name
	if entry.isDir {
		name += "/"
	}
	if focused {
		name = styleSelected(name)
	}
	return marker + name
}

// listDir returns dir's entries matching the case-insensitive prefix
// filter, directories first, then lexicographic. An unreadable directory
// lists as empty; the browser stays usable.
func listDir(dir, filter string, showHidden bool) []pathEntry {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	lower := strings.ToLower(filter)
	var entries []pathEntry
	for _, de := range dirents {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		if lower != "" && !strings.HasPrefix(strings.ToLower(name), lower) {
			continue
		}
		entries = append(entries, pathEntry{name: name, isDir: de.IsDir()})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})

	return entries
}

// singleMatch returns the only real (non-"..") entry, if there is exactly
// one.
func singleMatch(entries []pathEntry) (pathEntry, bool) {
	var match pathEntry
	count := 0
	for _, e := range entries {
		if e.goUp {
			continue
		}
		match = e
		count++
	}
	return match, count == 1
}

func movePathCursor(st *pathState, delta, maxVisible int) *pathState {
	total := len(st.entries)
	if total == 0 {
		return st
	}

	next := &pathState{
		dir:     st.dir,
		filter:  st.filter,
		entries: st.entries,
		cursor:  (st.cursor + delta + total) % total,
		window:  st.window,
	}
	if next.cursor < next.window {
		next.window = next.cursor
	}
	if next.cursor >= next.window+maxVisible {
		next.window = next.cursor - maxVisible + 1
	}
	return next
}
