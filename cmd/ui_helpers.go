// Copyright (c) 2025 Reactivities
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"

	"reactivities/cli/internal/session"
	"reactivities/cli/internal/terminal"
)

// Braille spinner frames similar to docker CLI.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// startLoadingArea shows a spinner followed by text for as long as loading
// reports true. The returned function removes the area and restores the
// cursor. Nothing is drawn when stdout is not a terminal.
func startLoadingArea(text string, loading func() bool) func() {
	if !terminal.OutputIsTerminal() {
		return func() {}
	}
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return func() {}
	}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		i := 0
		for {
			select {
			case <-t.C:
				if loading() {
					i++
					area.Update(fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text))
				}
			case <-stop:
				return
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
		_ = area.Stop()
		cursor.Show()
	}
}

// openBrowser attempts to open the provided URL in the user's default browser.
// It starts the browser process but does not wait for it to complete.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

// greeting returns a random welcome line for u.
func greeting(u *session.User) string {
	name := u.DisplayName
	if name == "" {
		name = u.Email
	}
	greetings := []string{
		"🎉 Welcome back, %s!",
		"✨ Great to see you, %s!",
		"🚀 You're all set, %s!",
		"👋 Hello %s! Ready for your next activity?",
		"🌟 Welcome aboard, %s!",
		"🎯 You're in, %s!",
	}
	return fmt.Sprintf(greetings[rand.Intn(len(greetings))], name)
}

// greetCurrentUser reads the freshly invalidated session and greets whoever
// the server now reports as signed in.
func (a *app) greetCurrentUser(ctx context.Context) {
	stop := startLoadingArea("Loading your profile", a.coord.Session().Loading)
	u, err := a.coord.CurrentUser(ctx)
	stop()
	if err != nil || u == nil {
		pterm.Success.Println("Login successful!")
		return
	}
	pterm.Println(greeting(u))
}

func printNotLoggedIn() {
	pterm.Println("🔒 You're not logged in yet!")
	pterm.Println("   Run 'reactivities login' to get started.")
}
