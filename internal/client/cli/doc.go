// Package cli provides the interactive contact book client.
//
// NewApp wires configuration, the local session database, the backend
// client and the contact manager; App.Run loads the list and blocks in a
// line-oriented REPL until the user exits. Browsing the list and viewing a
// contact work anonymously. Adding, editing, deleting and changing a
// contact's password require a login.
package cli
