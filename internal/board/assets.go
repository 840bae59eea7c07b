package board

import _ "embed"

// Script is the browser shim that forwards form submissions and drag
// gestures to the server and applies live list updates.
//
//go:embed static/board.js
var Script []byte
