// Package tui is the terminal front end of the chat client.
//
// It has two pages: the connect form and the chat, with a message list
// above a composer. The chat service talks back through [Notifier], whose
// messages the root model fans out to both pages.
package tui
