// Package cmd implements the command-line interface for libria.
package cmd

import (
	"github.com/libria-cli/libria/anilibria"
	"github.com/libria-cli/libria/host"
	"github.com/libria-cli/libria/key"
	"github.com/libria-cli/libria/screen"
	"github.com/libria-cli/libria/util"
	"github.com/spf13/viper"
)

// browse runs the interactive navigation loop: authenticate once, render the
// home screen, then keep re-entering the router with whatever target the user
// selects. A back selection pops the visited-target stack; backing out of the
// home screen ends the session.
func browse(terminal *host.Terminal) error {
	login, password, err := credentials()
	if err != nil {
		return err
	}

	session, err := anilibria.Authenticate(viper.GetString(key.APIBaseURL), login, password)
	if err != nil {
		terminal.Notify("Authentication Error", err.Error())
		return err
	}

	router := screen.NewRouter(screen.Options{
		API:            anilibria.New(session),
		Host:           terminal,
		BaseURL:        session.BaseURL,
		FavoritesLimit: viper.GetInt(key.APIFavoritesLimit),
	})

	var visited util.Stack[string]
	current := ""
	for {
		if err := router.Dispatch(current); err != nil {
			return err
		}

		next, ok := terminal.Next().Get()
		if !ok {
			// Back: resume the previous screen, or quit from the root.
			if visited.Len() == 0 {
				return nil
			}
			current = visited.Pop()
			continue
		}

		visited.Push(current)
		current = next
	}
}
