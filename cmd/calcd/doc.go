// Package main runs calcd, the stateless HTTP evaluation service.
//
// HTTP API
//
//	GET /
//	    Health check, returns {"status":"ok"}.
//
//	POST /v1/evaluate {"expression": "2+2"}
//	    Evaluate an expression. 200 carries {"value", "display"}; evaluator
//	    errors answer 422 with {"error", "kind"}.
//
//	POST /v1/keys {"keys": ["1", "+", "2", "="]}
//	    Replay keys through a fresh controller and return its display
//	    {"expression", "current", "error"}. Unknown keys answer 400.
//
// Behaviour
//
//   - No state survives a request.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - An access log records method, path, remote, status, bytes and duration
//     for each request.
//   - The listen port comes from server.port or DESKCALC_PORT (default 8080).
package main
