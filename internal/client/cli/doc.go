// Package cli implements the interactive identcore command line: register,
// sign in, show and update the profile, sign out. The current session is
// kept in a local session file so it survives restarts.
package cli
