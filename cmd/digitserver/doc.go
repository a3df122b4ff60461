// Package main runs a small HTTP server that publishes a pi digit artifact
// so picipher's network tier can be exercised without the internet.
//
// HTTP API
//
//	GET /pi1000000.txt
//	    Return the artifact as text/plain. Range and conditional requests are
//	    honoured.
//
// Behaviour
//
//   - The artifact is read and validated once at startup and served from
//     memory. It comes from --file, or from the picipher cache in --home.
//   - A request log records method, path, remote, status, bytes and duration.
//   - The default listen address is :8080.
//
// Point picipher at it with
//
//	picipher --url http://localhost:8080/pi1000000.txt digits
package main
