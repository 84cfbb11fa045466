// Package cli implements the interactive MindCare terminal client: a small
// read-eval-print loop whose commands map onto the auth, mood, dashboard and
// settings services. All state lives in the local SQLite store; nothing
// talks to a network.
package cli
