// Package host implements the terminal front-end driven by the screen router:
// menu rendering, the modal search prompt, and playback launch.
package host

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
	"github.com/libria-cli/libria/catalog"
	"github.com/libria-cli/libria/key"
	"github.com/libria-cli/libria/log"
	"github.com/libria-cli/libria/nav"
	"github.com/libria-cli/libria/open"
	"github.com/libria-cli/libria/player"
	"github.com/libria-cli/libria/style"
	"github.com/libria-cli/libria/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// backLabel is the pseudo-entry appended to every menu for stepping back.
const backLabel = "← Back"

// fallbackWidth is used when the terminal size can not be determined.
const fallbackWidth = 80

// Terminal renders screens as interactive select lists. After each rendered
// screen it remembers the target of the chosen item so the browse loop can
// re-enter the router with it.
type Terminal struct {
	next mo.Option[string]
}

// NewTerminal returns a ready-to-use terminal host.
func NewTerminal() *Terminal {
	return &Terminal{next: mo.None[string]()}
}

// Next returns the target chosen on the last rendered screen and clears it,
// so a dispatch that produces no screen can never replay a stale target.
// None means the user stepped back or the screen had nothing to select.
func (t *Terminal) Next() mo.Option[string] {
	next := t.next
	t.next = mo.None[string]()
	return next
}

// RenderScreen displays one complete menu and blocks until the user chooses
// an entry. A leading non-folder item is shown as a detail card instead of a
// selectable entry.
func (t *Terminal) RenderScreen(category, content string, items []nav.Item) {
	t.next = mo.None[string]()

	fmt.Println()
	fmt.Println(style.Title(category))

	selectable := items
	if len(items) > 0 && items[0].Target == "" && items[0].Info != nil {
		t.renderCard(*items[0].Info)
		selectable = items[1:]
	}

	if len(selectable) == 0 {
		fmt.Println(style.Faint("Nothing to show"))
	}

	labels := make([]string, 0, len(selectable)+1)
	for _, item := range selectable {
		label := item.Label
		if item.IsPlayable {
			label = "▶ " + label
		}
		labels = append(labels, label)
	}
	labels = append(labels, backLabel)

	var answer survey.OptionAnswer
	prompt := &survey.Select{
		Message:  util.Quantify(len(selectable), "entry", "entries"),
		Options:  labels,
		PageSize: 15,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		if !errors.Is(err, surveyterm.InterruptErr) {
			log.Error(err)
		}
		return
	}

	if answer.Index >= len(selectable) {
		return // back
	}
	if target := selectable[answer.Index].Target; target != "" {
		t.next = mo.Some(target)
	}
}

// ResolvePlayback launches the configured player application with the
// resolved stream, falling back to the system handler when none is set.
func (t *Terminal) ResolvePlayback(handle player.Handle) {
	app := viper.GetString(key.PlayerApp)
	log.Infof("starting playback of %s", handle.URL)
	fmt.Println(style.Faint("Playing " + util.Truncate(handle.URL, fallbackWidth)))

	if err := open.StartWith(handle.URL, app); err != nil {
		log.Error(err)
		t.Notify("Playback error", err.Error())
	}
}

// PromptText runs the modal search input. None means the user cancelled.
func (t *Terminal) PromptText(title string) mo.Option[string] {
	var text string
	if err := survey.AskOne(&survey.Input{Message: title}, &text); err != nil {
		if !errors.Is(err, surveyterm.InterruptErr) {
			log.Error(err)
		}
		return mo.None[string]()
	}
	return mo.Some(text)
}

// Notify prints a single short user-visible message.
func (t *Terminal) Notify(title, message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", style.ErrorTitle(title), message)
}

// renderCard prints the normalized record as a metadata card.
func (t *Terminal) renderCard(d catalog.DisplayItem) {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = fallbackWidth
	}

	line := func(label, value string) {
		fmt.Printf("%s %s\n", style.Faint(label+":"), value)
	}

	fmt.Println(style.Bold(d.Title))
	if genres := d.GenreLine(); genres != "" {
		line("Genres", genres)
	}
	line("Season", d.Season)
	line("Year", d.Year)
	line("Type", d.MediaType)
	line("Rating", d.AgeRating)
	fmt.Println(wordwrap.String(d.Synopsis, width))
}
