// Package commands defines the moviesctl CLI.
//
// Commands
//
//   - validate <email> <password>   Run the sign-in validator locally
//   - movies                         List the catalogue
//   - movie <id>                     Show one movie with its reviews
//   - session open|show|signout      Manage a screen session on a server
//   - signin set|toggle|submit       Drive a session's sign-in form
//   - profile show|edit|set|confirm|cancel|toggle|commit|avatar
//   - review open|show|text|rating|submit|cancel
//   - bookmark <movie-id>, saved     Saved movies for a session
//
// validate, movies and movie work offline against the built-in catalogue.
// Everything else talks to a running server (--server, or MOVIES_SERVER).
package commands
