// Package cli provides the interactive safekey administration client.
//
// It connects to the vault server, lets the operator pick a user and then
// manage that user's categories, credentials, security settings, OTP
// challenges and activity log from a simple REPL. Sensitive input (PIN
// codes, secret values) is read from the terminal without echo.
//
// Revealing, adding and deleting credentials is recorded in the user's
// activity log by the client; the server never does that on its own.
//
// The REPL is started via App.Run(ctx), which blocks until the operator
// exits. See runREPL for the command set.
package cli
