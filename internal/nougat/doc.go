// Package nougat holds the document-to-LaTeX extraction seam of the service.
// Keep this package free of transport (HTTP) and infrastructure concerns.
package nougat
